package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Node is one of Branch, Leaf or Summary
type Node interface {
	NodeName() string
	node()
}

// Branch is a directory owning its named children
type Branch struct {
	Children map[string]Node
	Name     string
}

// Leaf is a single changed file
type Leaf struct {
	Name   string
	Status FileStatus
}

// Summary is a whole repository collapsed to its diff statistics
type Summary struct {
	Name  string
	Stats DiffStat
}

func (b *Branch) NodeName() string  { return b.Name }
func (l *Leaf) NodeName() string    { return l.Name }
func (s *Summary) NodeName() string { return s.Name }

func (*Branch) node()  {}
func (*Leaf) node()    {}
func (*Summary) node() {}

// NewBranch creates an empty Branch
func NewBranch(name string) *Branch {
	return &Branch{
		Children: make(map[string]Node),
		Name:     name,
	}
}

// Add stores node under key, replacing any existing child with that key
func (b *Branch) Add(key string, node Node) {
	b.Children[key] = node
}

// SortedChildren returns the children in ascending key order
func (b *Branch) SortedChildren() []Node {
	keys := make([]string, 0, len(b.Children))
	for key := range b.Children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	children := make([]Node, 0, len(keys))
	for _, key := range keys {
		children = append(children, b.Children[key])
	}
	return children
}

// Insert places a Leaf for relPath below b, creating intermediate Branches on
// demand. relPath is slash-separated; empty, "." and ".." components as well
// as absolute paths are rejected with ErrUnsupportedPathComponent.
func (b *Branch) Insert(relPath string, status FileStatus) error {
	components, err := splitPath(relPath)
	if err != nil {
		return err
	}

	dirs, fileName := components[:len(components)-1], components[len(components)-1]

	current := b
	for _, dir := range dirs {
		child, ok := current.Children[dir].(*Branch)
		if !ok {
			// Missing, or a Leaf that now has to become a directory
			child = NewBranch(dir)
			current.Children[dir] = child
		}
		current = child
	}

	current.Add(fileName, &Leaf{Name: fileName, Status: status})
	return nil
}

func splitPath(relPath string) ([]string, error) {
	if relPath == "" {
		return nil, fmt.Errorf("empty path: %w", ErrUnsupportedPathComponent)
	}
	if strings.HasPrefix(relPath, "/") {
		return nil, fmt.Errorf("%q is absolute: %w", relPath, ErrUnsupportedPathComponent)
	}

	components := strings.Split(relPath, "/")
	for _, c := range components {
		switch c {
		case "", ".", "..":
			return nil, fmt.Errorf("%q in %q: %w", c, relPath, ErrUnsupportedPathComponent)
		}
	}
	return components, nil
}
