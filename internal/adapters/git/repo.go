package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"gittree/internal/domain"
	"gittree/internal/logging"
)

// openRepository opens path only if it is the root of a working tree
func openRepository(path string) (*domain.Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	// Bare repositories and plain directories have no .git entry
	if _, err := os.Stat(filepath.Join(absPath, ".git")); err != nil {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrRepositoryNotFound)
	}

	repo, err := gogit.PlainOpen(absPath)
	if err != nil {
		return nil, translateOpenError(path, err)
	}

	return toDomainRepository(repo)
}

// discoverRepository finds the repository containing path, walking up its ancestors
func discoverRepository(path string) (*domain.Repository, error) {
	logging.Logger.Debug("Discovering repository", "path", path)

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, translateOpenError(path, err)
	}

	return toDomainRepository(repo)
}

func toDomainRepository(repo *gogit.Repository) (*domain.Repository, error) {
	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, gogit.ErrIsBareRepository) {
			return nil, fmt.Errorf("bare repository has no working tree: %w", err)
		}
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	root := wt.Filesystem.Root()
	logging.Logger.Debug("Opened repository", "root", root)

	return &domain.Repository{
		Name: filepath.Base(root),
		Root: root,
	}, nil
}

func translateOpenError(path string, err error) error {
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return fmt.Errorf("%s: %w", path, domain.ErrRepositoryNotFound)
	}
	return fmt.Errorf("failed to open repository at %s: %w", path, err)
}

// headBranch returns the short name HEAD points to ("HEAD" when detached)
func headBranch(root string) (string, error) {
	repo, err := gogit.PlainOpen(root)
	if err != nil {
		return "", translateOpenError(root, err)
	}

	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", fmt.Errorf("%s: %w", root, domain.ErrUnresolvableHead)
		}
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	return head.Name().Short(), nil
}
