package ports

import "gittree/internal/domain"

// FileSystem enumerates plain directories during the repository walk
type FileSystem interface {
	IsDir(path string) bool
	// ReadDir lists the children of path, skipping entries that cannot be read
	ReadDir(path string) ([]domain.DirEntry, error)
}
