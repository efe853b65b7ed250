package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"gittree/internal/domain"
	"gittree/internal/logging"
	"gittree/internal/ports"
)

// TreeOptions controls how a status tree is built
type TreeOptions struct {
	Depth           int  // Levels of plain directories to descend looking for repositories
	IncludeIgnored  bool // Keep ignored files in full mode
	Jobs            int  // Sibling directories walked concurrently, 0 = NumCPU
	OnlyShowChanges bool // Summary mode: drop repositories without insertions or deletions
	Summary         bool // Collapse each repository into a single Summary node
}

// TreeService walks a filesystem location and composes the status tree
type TreeService struct {
	fs      ports.FileSystem
	gitRepo ports.GitRepository
}

// NewTreeService creates a new TreeService
func NewTreeService(gitRepo ports.GitRepository, fs ports.FileSystem) *TreeService {
	return &TreeService{
		fs:      fs,
		gitRepo: gitRepo,
	}
}

// BuildTree returns the tree for path, or nil when there is nothing to show.
// A directory searched with a positive depth always yields a Branch, even an
// empty one. At depth 0 a path that is not a repository root falls back to the
// repository enclosing it; a *domain.NoRepositoryError is returned if there is none.
func (s *TreeService) BuildTree(ctx context.Context, path string, opts TreeOptions) (domain.Node, error) {
	logging.Logger.Info("Building tree", "path", path, "depth", opts.Depth, "summary", opts.Summary)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := displayName(path)

	repo, err := s.gitRepo.Open(ctx, path)
	if err == nil {
		return s.walkRepository(ctx, repo, name, opts)
	}
	if !errors.Is(err, domain.ErrRepositoryNotFound) {
		return nil, err
	}

	if opts.Depth == 0 || !s.fs.IsDir(path) {
		return s.fallback(ctx, path, opts)
	}

	node, err := s.walkDirectory(ctx, path, name, opts.Depth, opts)
	if err != nil {
		return nil, err
	}
	if node == nil {
		logging.Logger.Debug("No repository to show below path", "path", path)
		return domain.NewBranch(name), nil
	}
	return node, nil
}

// fallback shows the repository enclosing path
func (s *TreeService) fallback(ctx context.Context, path string, opts TreeOptions) (domain.Node, error) {
	logging.Logger.Debug("Not a repository root, discovering enclosing repository", "path", path)

	repo, err := s.gitRepo.Discover(ctx, path)
	if err != nil {
		if errors.Is(err, domain.ErrRepositoryNotFound) {
			return nil, &domain.NoRepositoryError{Path: path}
		}
		return nil, err
	}

	return s.walkRepository(ctx, repo, repo.Name, opts)
}

// walkPath returns the node for one location: a repository, a directory
// containing repositories within the depth budget, or nil
func (s *TreeService) walkPath(ctx context.Context, path, name string, depth int, opts TreeOptions) (domain.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo, err := s.gitRepo.Open(ctx, path)
	if err == nil {
		return s.walkRepository(ctx, repo, name, opts)
	}
	if !errors.Is(err, domain.ErrRepositoryNotFound) {
		return nil, err
	}

	if depth <= 0 || !s.fs.IsDir(path) {
		return nil, nil
	}

	return s.walkDirectory(ctx, path, name, depth, opts)
}

// walkDirectory recurses into every child of a plain directory. Children that
// fail or yield nothing are left out.
func (s *TreeService) walkDirectory(ctx context.Context, path, name string, depth int, opts TreeOptions) (domain.Node, error) {
	entries, err := s.fs.ReadDir(path)
	if err != nil {
		return nil, err
	}

	branch := domain.NewBranch(name)
	var mu sync.Mutex

	g := new(errgroup.Group)
	g.SetLimit(jobs(opts.Jobs))

	for _, entry := range entries {
		entry := entry
		g.Go(func() error {
			child, err := s.walkPath(ctx, entry.Path, entry.Name, depth-1, opts)
			if err != nil {
				logging.Logger.Debug("Skipping entry", "path", entry.Path, "error", err)
				return nil
			}
			if child == nil {
				return nil
			}

			mu.Lock()
			branch.Add(entry.Name, child)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(branch.Children) == 0 {
		return nil, nil
	}
	return branch, nil
}

// walkRepository builds either a Summary or the full entries tree of repo
func (s *TreeService) walkRepository(ctx context.Context, repo *domain.Repository, name string, opts TreeOptions) (domain.Node, error) {
	if opts.Summary {
		return s.summarize(ctx, repo, name, opts)
	}

	entries, err := s.gitRepo.ListStatus(ctx, repo, ports.StatusOptions{IncludeIgnored: opts.IncludeIgnored})
	if err != nil {
		return nil, err
	}

	return buildEntriesTree(name, entries, opts.IncludeIgnored)
}

func (s *TreeService) summarize(ctx context.Context, repo *domain.Repository, name string, opts TreeOptions) (domain.Node, error) {
	stats, err := s.gitRepo.DiffStats(ctx, repo)
	if err != nil {
		return nil, err
	}

	if opts.OnlyShowChanges && !stats.HasChanges() {
		logging.Logger.Debug("Suppressing unchanged repository", "root", repo.Root)
		return nil, nil
	}

	return &domain.Summary{Name: name, Stats: *stats}, nil
}

// buildEntriesTree classifies each status entry and inserts it under a Branch named name
func buildEntriesTree(name string, entries []domain.StatusEntry, includeIgnored bool) (*domain.Branch, error) {
	root := domain.NewBranch(name)

	for _, entry := range entries {
		status := domain.Classify(entry.Flags)
		if status.Category == domain.CategoryIgnored && !includeIgnored {
			continue
		}

		if entry.Path == "" || !utf8.ValidString(entry.Path) {
			return nil, fmt.Errorf("%q %w", entry.Path, domain.ErrUnresolvablePath)
		}
		if err := root.Insert(entry.Path, status); err != nil {
			return nil, err
		}
	}

	return root, nil
}

// displayName labels the starting location the way the user typed it
func displayName(path string) string {
	return filepath.Base(path)
}

func jobs(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}
