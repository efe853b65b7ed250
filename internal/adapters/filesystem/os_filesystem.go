package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"gittree/internal/domain"
	"gittree/internal/logging"
	"gittree/internal/ports"
)

// OSFileSystem implements ports.FileSystem on the local disk
type OSFileSystem struct{}

// Verify interface compliance at compile time
var _ ports.FileSystem = (*OSFileSystem)(nil)

// NewOSFileSystem creates a new OSFileSystem
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// IsDir reports whether path is a directory, following symlinks
func (f *OSFileSystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ReadDir lists the children of path. Entries are returned in directory order.
func (f *OSFileSystem) ReadDir(path string) ([]domain.DirEntry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil && len(dirEntries) == 0 {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}
	if err != nil {
		// Partial listing: keep what could be read
		logging.Logger.Debug("Partial directory listing", "path", path, "error", err)
	}

	entries := make([]domain.DirEntry, 0, len(dirEntries))
	for _, e := range dirEntries {
		entries = append(entries, domain.DirEntry{
			Name: e.Name(),
			Path: filepath.Join(path, e.Name()),
		})
	}
	return entries, nil
}
