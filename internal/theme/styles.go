package theme

import (
	"github.com/charmbracelet/lipgloss"

	"gittree/internal/domain"
)

// File name styles, one per domain.Style
var (
	DefaultStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	IgnoredStyle = lipgloss.NewStyle().
			Foreground(ColorIgnored)

	ModifiedEmphasizedStyle = lipgloss.NewStyle().
				Foreground(ColorModified).
				Bold(true)

	ModifiedStyle = lipgloss.NewStyle().
			Foreground(ColorModified)

	NewEmphasizedStyle = lipgloss.NewStyle().
				Foreground(ColorNew).
				Bold(true)

	NewStyle = lipgloss.NewStyle().
			Foreground(ColorNew)
)

// Column and summary styles
var (
	AdditionsStyle = lipgloss.NewStyle().
			Foreground(ColorAdditions)

	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	DeletionsStyle = lipgloss.NewStyle().
			Foreground(ColorDeletions)

	FilesChangedStyle = lipgloss.NewStyle().
				Foreground(ColorFilesChanged)

	ModifierStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// FileStyle returns the lipgloss style for a leaf's display style
func FileStyle(style domain.Style) lipgloss.Style {
	switch style {
	case domain.StyleModified:
		return ModifiedStyle
	case domain.StyleModifiedEmphasized:
		return ModifiedEmphasizedStyle
	case domain.StyleNew:
		return NewStyle
	case domain.StyleNewEmphasized:
		return NewEmphasizedStyle
	case domain.StyleIgnored:
		return IgnoredStyle
	default:
		return DefaultStyle
	}
}
