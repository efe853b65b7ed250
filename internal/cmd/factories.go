package cmd

import (
	adapterfs "gittree/internal/adapters/filesystem"
	adaptergit "gittree/internal/adapters/git"
	"gittree/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	TreeService *services.TreeService
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer() *Container {
	gitRepo := adaptergit.NewCLIRepository()
	fs := adapterfs.NewOSFileSystem()

	return &Container{
		TreeService: services.NewTreeService(gitRepo, fs),
	}
}
