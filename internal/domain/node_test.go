package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert_CreatesIntermediateBranches(t *testing.T) {
	root := NewBranch(".")
	status := Classify(StatusWorktreeNew)

	require.NoError(t, root.Insert("src/cmd/main.go", status))

	src, ok := root.Children["src"].(*Branch)
	require.True(t, ok, "src should be a branch")
	cmd, ok := src.Children["cmd"].(*Branch)
	require.True(t, ok, "cmd should be a branch")
	leaf, ok := cmd.Children["main.go"].(*Leaf)
	require.True(t, ok, "main.go should be a leaf")

	assert.Equal(t, "main.go", leaf.Name)
	assert.Equal(t, status, leaf.Status)
}

func TestInsert_TopLevelFile(t *testing.T) {
	root := NewBranch(".")

	require.NoError(t, root.Insert("README.md", Classify(StatusWorktreeModified)))

	require.Len(t, root.Children, 1)
	assert.IsType(t, &Leaf{}, root.Children["README.md"])
}

func TestInsert_ReusesExistingBranch(t *testing.T) {
	root := NewBranch(".")

	require.NoError(t, root.Insert("src/a.go", Classify(StatusWorktreeNew)))
	require.NoError(t, root.Insert("src/b.go", Classify(StatusWorktreeNew)))

	src := root.Children["src"].(*Branch)
	assert.Len(t, src.Children, 2)
}

func TestInsert_LastWriteWins(t *testing.T) {
	root := NewBranch(".")

	require.NoError(t, root.Insert("a.txt", Classify(StatusWorktreeNew)))
	require.NoError(t, root.Insert("a.txt", Classify(StatusIgnored)))

	leaf := root.Children["a.txt"].(*Leaf)
	assert.Equal(t, CategoryIgnored, leaf.Status.Category)
}

func TestInsert_LeafReplacedByBranch(t *testing.T) {
	root := NewBranch(".")

	require.NoError(t, root.Insert("docs", Classify(StatusWorktreeNew)))
	require.NoError(t, root.Insert("docs/guide.md", Classify(StatusWorktreeNew)))

	assert.IsType(t, &Branch{}, root.Children["docs"])
}

func TestInsert_RejectsUnsupportedComponents(t *testing.T) {
	for _, path := range []string{"", "/etc/passwd", "../x", "a/./b", "a//b", "a/..", "dir/"} {
		t.Run(path, func(t *testing.T) {
			root := NewBranch(".")

			err := root.Insert(path, Classify(StatusWorktreeNew))

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnsupportedPathComponent))
			assert.Empty(t, root.Children, "failed insert must not leave partial branches")
		})
	}
}

func TestSortedChildren_Lexicographic(t *testing.T) {
	root := NewBranch(".")
	for _, name := range []string{"b", "a", "c"} {
		root.Add(name, &Leaf{Name: name})
	}

	var names []string
	for _, child := range root.SortedChildren() {
		names = append(names, child.NodeName())
	}

	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestDiffStat_HasChanges(t *testing.T) {
	assert.False(t, DiffStat{FilesChanged: 3}.HasChanges())
	assert.True(t, DiffStat{Insertions: 1}.HasChanges())
	assert.True(t, DiffStat{Deletions: 1}.HasChanges())
}

func TestNoRepositoryError(t *testing.T) {
	err := &NoRepositoryError{Path: "."}

	assert.True(t, errors.Is(err, ErrRepositoryNotFound))
	assert.Contains(t, err.Error(), "--depth")
}
