package domain

// Category is the display classification of a changed path.
// Lower values take precedence when several flags are set on the same path.
type Category int

const (
	CategoryWorktreeModified Category = iota
	CategoryIndexModified
	CategoryWorktreeNew
	CategoryIndexNew
	CategoryIgnored
	CategoryDefault
)

var categoryNames = map[Category]string{
	CategoryDefault:          "default",
	CategoryIgnored:          "ignored",
	CategoryIndexModified:    "index-modified",
	CategoryIndexNew:         "index-new",
	CategoryWorktreeModified: "worktree-modified",
	CategoryWorktreeNew:      "worktree-new",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// Style is the semantic display style applied to a leaf name
type Style int

const (
	StyleModified Style = iota
	StyleModifiedEmphasized
	StyleNew
	StyleNewEmphasized
	StyleIgnored
	StyleDefault
)

// Modifier glyphs shown in the index and worktree columns
const (
	GlyphDeleted  = 'D'
	GlyphModified = 'M'
	GlyphNew      = 'N'
	GlyphNone     = '-'
)

// FileStatus is the classified status stored in a Leaf
type FileStatus struct {
	Category Category
	Index    rune
	Style    Style
	Worktree rune
}

// Modifiers returns the two-character index/worktree column, e.g. "-M"
func (s FileStatus) Modifiers() string {
	return string([]rune{s.Index, s.Worktree})
}

// precedence pairs each category with the flag that selects it, highest first
var precedence = []struct {
	category Category
	flag     StatusFlags
	style    Style
}{
	{CategoryWorktreeModified, StatusWorktreeModified, StyleModified},
	{CategoryIndexModified, StatusIndexModified, StyleModifiedEmphasized},
	{CategoryWorktreeNew, StatusWorktreeNew, StyleNew},
	{CategoryIndexNew, StatusIndexNew, StyleNewEmphasized},
	{CategoryIgnored, StatusIgnored, StyleIgnored},
}

// Classify resolves a raw flag set into a FileStatus. Flags outside the
// recognized set (renames, type changes, conflicts) fall through to the
// default category with "--" modifiers unless another flag is present.
func Classify(flags StatusFlags) FileStatus {
	status := FileStatus{
		Category: CategoryDefault,
		Index:    indexGlyph(flags),
		Style:    styleFor(flags),
		Worktree: worktreeGlyph(flags),
	}
	for _, p := range precedence {
		if flags.Has(p.flag) {
			status.Category = p.category
			break
		}
	}
	return status
}

// styleFor walks the same precedence as Classify, independently of the
// modifier columns.
func styleFor(flags StatusFlags) Style {
	for _, p := range precedence {
		if flags.Has(p.flag) {
			return p.style
		}
	}
	return StyleDefault
}

func indexGlyph(flags StatusFlags) rune {
	switch {
	case flags.Has(StatusIndexModified):
		return GlyphModified
	case flags.Has(StatusIndexNew):
		return GlyphNew
	default:
		return GlyphNone
	}
}

func worktreeGlyph(flags StatusFlags) rune {
	switch {
	case flags.Has(StatusWorktreeModified):
		return GlyphModified
	case flags.Has(StatusWorktreeNew):
		return GlyphNew
	case flags.Has(StatusWorktreeDeleted):
		return GlyphDeleted
	default:
		return GlyphNone
	}
}
