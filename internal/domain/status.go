package domain

// StatusFlags is the raw change-flag set reported for one path
type StatusFlags uint16

const (
	StatusIndexNew StatusFlags = 1 << iota
	StatusIndexModified
	StatusIndexDeleted
	StatusIndexRenamed
	StatusIndexTypeChange
	StatusWorktreeNew
	StatusWorktreeModified
	StatusWorktreeDeleted
	StatusWorktreeRenamed
	StatusWorktreeTypeChange
	StatusIgnored
	StatusConflicted
)

// Has reports whether every flag in f is set
func (s StatusFlags) Has(f StatusFlags) bool {
	return f != 0 && s&f == f
}

// StatusEntry is one changed path as reported by the status source
type StatusEntry struct {
	Flags StatusFlags
	Path  string // Slash-separated, relative to the repository root
}

// DiffStat holds aggregate changes between HEAD and the working tree
type DiffStat struct {
	Branch       string
	Deletions    int
	FilesChanged int
	Insertions   int
}

// HasChanges reports whether any line was inserted or deleted
func (d DiffStat) HasChanges() bool {
	return d.Insertions > 0 || d.Deletions > 0
}

// Repository is an opened repository handle
type Repository struct {
	Name string // Human-facing label, usually the base name of Root
	Root string // Absolute path of the working tree
}

// DirEntry is a child of a plain filesystem directory
type DirEntry struct {
	Name string
	Path string
}
