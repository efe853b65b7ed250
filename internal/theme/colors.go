package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// File status colors
const (
	ColorIgnored  Color = "4" // Blue
	ColorModified Color = "1" // Red
	ColorNew      Color = "2" // Green
	ColorNormal   Color = "7" // White
)

// UI semantic colors
const (
	ColorMuted Color = "244" // Gray - modifier columns, branch labels
)

// Git diff colors
const (
	ColorAdditions    Color = "2" // Green
	ColorDeletions    Color = "1" // Red
	ColorFilesChanged Color = "3" // Yellow
)
