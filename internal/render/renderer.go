// Package render turns a status tree into box-drawn text lines.
package render

import (
	"bufio"
	"fmt"
	"io"

	"gittree/internal/domain"
	"gittree/internal/theme"
)

// Prefixes for a child's first line and for its following lines
const (
	connectorLast      = "└── "
	connectorMiddle    = "├── "
	continuationLast   = "    "
	continuationMiddle = "│   "
)

// Lines renders node depth-first in pre-order, one line per node.
// Children are always emitted in ascending name order.
func Lines(node domain.Node) []string {
	switch n := node.(type) {
	case *domain.Leaf:
		return []string{LeafLabel(n)}
	case *domain.Summary:
		return []string{SummaryLabel(n)}
	case *domain.Branch:
		return branchLines(n)
	default:
		return nil
	}
}

func branchLines(b *domain.Branch) []string {
	lines := []string{b.Name}

	children := b.SortedChildren()
	for i, child := range children {
		childLines := Lines(child)
		if i == len(children)-1 {
			lines = append(lines, prefix(childLines, connectorLast, continuationLast)...)
		} else {
			lines = append(lines, prefix(childLines, connectorMiddle, continuationMiddle)...)
		}
	}

	return lines
}

// prefix prepends first to lines[0] and rest to every following line
func prefix(lines []string, first, rest string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if i == 0 {
			out[i] = first + line
		} else {
			out[i] = rest + line
		}
	}
	return out
}

// LeafLabel formats a changed file as "<index><worktree> <name>"
func LeafLabel(leaf *domain.Leaf) string {
	return fmt.Sprintf("%s%s %s",
		theme.ModifierStyle.Render(string(leaf.Status.Index)),
		theme.ModifierStyle.Render(string(leaf.Status.Worktree)),
		theme.FileStyle(leaf.Status.Style).Render(leaf.Name))
}

// SummaryLabel formats a collapsed repository as "<name> [<branch>] +<ins> -<del> (<files>)"
func SummaryLabel(summary *domain.Summary) string {
	return fmt.Sprintf("%s %s +%s -%s (%s)",
		summary.Name,
		theme.BranchStyle.Render("["+summary.Stats.Branch+"]"),
		theme.AdditionsStyle.Render(fmt.Sprint(summary.Stats.Insertions)),
		theme.DeletionsStyle.Render(fmt.Sprint(summary.Stats.Deletions)),
		theme.FilesChangedStyle.Render(fmt.Sprint(summary.Stats.FilesChanged)))
}

// Write renders node to w, each line terminated by a newline
func Write(w io.Writer, node domain.Node) error {
	bw := bufio.NewWriter(w)
	for _, line := range Lines(node) {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return bw.Flush()
}
