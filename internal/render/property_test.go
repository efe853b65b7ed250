package render

import (
	"path"
	"sort"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"pgregory.net/rapid"

	"gittree/internal/domain"
)

var flagChoices = []domain.StatusFlags{
	domain.StatusWorktreeModified,
	domain.StatusIndexModified,
	domain.StatusWorktreeNew,
	domain.StatusIndexNew,
	domain.StatusIgnored,
	domain.StatusWorktreeDeleted,
}

// genPaths draws distinct file paths where no path is a directory prefix of another
func genPaths(t *rapid.T) []string {
	component := rapid.StringMatching(`[a-z]{1,3}`)
	return rapid.SliceOfNDistinct(
		rapid.Custom(func(t *rapid.T) string {
			dirs := rapid.SliceOfN(component, 0, 3).Draw(t, "dirs")
			file := component.Draw(t, "file") + ".f"
			return path.Join(append(dirs, file)...)
		}), 1, 20, rapid.ID[string]).Draw(t, "paths")
}

// edge is a (parent path, child name) relationship
type edge struct {
	parent string
	child  string
}

func expectedEdges(paths []string) map[edge]bool {
	edges := make(map[edge]bool)
	for _, p := range paths {
		parts := strings.Split(p, "/")
		parent := ""
		for _, part := range parts {
			edges[edge{parent, part}] = true
			parent = path.Join(parent, part)
		}
	}
	return edges
}

// parseEdges recovers parent/child relationships from rendered lines. Every
// nesting level adds exactly four runes of prefix.
func parseEdges(lines []string) map[edge]bool {
	edges := make(map[edge]bool)
	var stack []string
	for _, line := range lines[1:] {
		runes := []rune(ansi.Strip(line))
		depth := 0
		for len(runes) >= 4 && strings.TrimLeft(string(runes[:4]), "├└│─ ") == "" {
			runes = runes[4:]
			depth++
		}
		label := string(runes)
		if _, name, isLeaf := strings.Cut(label, " "); isLeaf {
			label = name
		}
		stack = append(stack[:depth-1], label)
		edges[edge{path.Join(stack[:depth-1]...), label}] = true
	}
	return edges
}

func TestProperty_RenderRecoversStructure(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		paths := genPaths(t)

		root := domain.NewBranch(".")
		for _, p := range paths {
			flags := rapid.SampledFrom(flagChoices).Draw(t, "flags")
			if err := root.Insert(p, domain.Classify(flags)); err != nil {
				t.Fatalf("insert %q: %v", p, err)
			}
		}

		lines := Lines(root)
		want := expectedEdges(paths)
		got := parseEdges(lines)

		if len(got) != len(want) {
			t.Fatalf("got %d edges, want %d\n%s", len(got), len(want), strings.Join(lines, "\n"))
		}
		for e := range want {
			if !got[e] {
				t.Fatalf("missing edge %v\n%s", e, strings.Join(lines, "\n"))
			}
		}
	})
}

func TestProperty_SiblingsAreSorted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOfNDistinct(rapid.StringMatching(`[a-z]{1,4}`), 1, 15, rapid.ID[string]).Draw(t, "names")

		root := domain.NewBranch("root")
		for _, name := range names {
			root.Add(name, &domain.Leaf{Name: name, Status: domain.Classify(domain.StatusWorktreeNew)})
		}

		lines := Lines(root)
		var rendered []string
		for _, line := range lines[1:] {
			_, name, _ := strings.Cut(ansi.Strip(line)[len("├── "):], " ")
			rendered = append(rendered, name)
		}

		if !sort.StringsAreSorted(rendered) {
			t.Fatalf("children not sorted: %v", rendered)
		}
		if !strings.HasPrefix(ansi.Strip(lines[len(lines)-1]), connectorLast) {
			t.Fatalf("last child must use %q: %q", connectorLast, lines[len(lines)-1])
		}
	})
}

func TestProperty_RenderIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		root := domain.NewBranch(".")
		for _, p := range genPaths(t) {
			if err := root.Insert(p, domain.Classify(domain.StatusIndexNew)); err != nil {
				t.Fatalf("insert %q: %v", p, err)
			}
		}

		first := strings.Join(Lines(root), "\n")
		second := strings.Join(Lines(root), "\n")
		if first != second {
			t.Fatalf("rendering differs:\n%s\n---\n%s", first, second)
		}
	})
}
