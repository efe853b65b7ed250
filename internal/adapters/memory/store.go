// Package memory provides in-memory implementations of the ports used by the
// repository walk, so the walk can be exercised without git or a real disk.
package memory

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"gittree/internal/domain"
	"gittree/internal/ports"
)

// RepoFixture describes a fake repository
type RepoFixture struct {
	Entries   []domain.StatusEntry
	Stats     domain.DiffStat
	StatsErr  error
	StatusErr error
}

// Store is a fake directory hierarchy holding fake repositories
type Store struct {
	mu sync.RWMutex

	dirs     map[string]map[string]struct{} // directory -> child names
	openErrs map[string]error
	readErrs map[string]error
	repos    map[string]*RepoFixture
}

// Verify interface compliance at compile time
var (
	_ ports.FileSystem    = (*Store)(nil)
	_ ports.GitRepository = (*Store)(nil)
)

// NewStore creates an empty Store
func NewStore() *Store {
	return &Store{
		dirs:     make(map[string]map[string]struct{}),
		openErrs: make(map[string]error),
		readErrs: make(map[string]error),
		repos:    make(map[string]*RepoFixture),
	}
}

// AddDir registers path and all of its ancestors as directories
func (s *Store) AddDir(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addDirLocked(filepath.Clean(path))
}

// AddFile registers a plain file under an existing or new directory
func (s *Store) AddFile(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	path = filepath.Clean(path)
	parent := filepath.Dir(path)
	s.addDirLocked(parent)
	s.dirs[parent][filepath.Base(path)] = struct{}{}
}

// AddRepo registers path as a repository root
func (s *Store) AddRepo(path string, fixture RepoFixture) {
	s.mu.Lock()
	defer s.mu.Unlock()
	path = filepath.Clean(path)
	s.addDirLocked(path)
	s.repos[path] = &fixture
}

// FailOpen makes Open on path fail with err
func (s *Store) FailOpen(path string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.openErrs[filepath.Clean(path)] = err
}

// FailReadDir makes ReadDir on path fail with err
func (s *Store) FailReadDir(path string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readErrs[filepath.Clean(path)] = err
}

func (s *Store) addDirLocked(path string) {
	for {
		if _, ok := s.dirs[path]; !ok {
			s.dirs[path] = make(map[string]struct{})
		}
		parent := filepath.Dir(path)
		if parent == path {
			return
		}
		if _, ok := s.dirs[parent]; !ok {
			s.dirs[parent] = make(map[string]struct{})
		}
		s.dirs[parent][filepath.Base(path)] = struct{}{}
		path = parent
	}
}

// FileSystem methods

// IsDir implements FileSystem.IsDir
func (s *Store) IsDir(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.dirs[filepath.Clean(path)]
	return ok
}

// ReadDir implements FileSystem.ReadDir. Children come back in reverse name
// order so callers cannot depend on listing order.
func (s *Store) ReadDir(path string) ([]domain.DirEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	path = filepath.Clean(path)

	if err, ok := s.readErrs[path]; ok {
		return nil, err
	}
	children, ok := s.dirs[path]
	if !ok {
		return nil, fmt.Errorf("not a directory: %s", path)
	}

	names := make([]string, 0, len(children))
	for name := range children {
		names = append(names, name)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	entries := make([]domain.DirEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, domain.DirEntry{Name: name, Path: filepath.Join(path, name)})
	}
	return entries, nil
}

// RepositoryOpener methods

// Open implements RepositoryOpener.Open
func (s *Store) Open(ctx context.Context, path string) (*domain.Repository, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	path = filepath.Clean(path)

	if err, ok := s.openErrs[path]; ok {
		return nil, err
	}
	if _, ok := s.repos[path]; !ok {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrRepositoryNotFound)
	}
	return &domain.Repository{Name: filepath.Base(path), Root: path}, nil
}

// Discover implements RepositoryOpener.Discover
func (s *Store) Discover(ctx context.Context, path string) (*domain.Repository, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	current := filepath.Clean(path)
	for {
		if _, ok := s.repos[current]; ok {
			return &domain.Repository{Name: filepath.Base(current), Root: current}, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrRepositoryNotFound)
		}
		current = parent
	}
}

// StatusLister methods

// ListStatus implements StatusLister.ListStatus. Ignored entries are always
// reported; filtering is left to the caller.
func (s *Store) ListStatus(ctx context.Context, repo *domain.Repository, opts ports.StatusOptions) ([]domain.StatusEntry, error) {
	fixture, err := s.fixture(repo)
	if err != nil {
		return nil, err
	}
	if fixture.StatusErr != nil {
		return nil, fixture.StatusErr
	}
	return append([]domain.StatusEntry(nil), fixture.Entries...), nil
}

// DiffStatsProvider methods

// DiffStats implements DiffStatsProvider.DiffStats
func (s *Store) DiffStats(ctx context.Context, repo *domain.Repository) (*domain.DiffStat, error) {
	fixture, err := s.fixture(repo)
	if err != nil {
		return nil, err
	}
	if fixture.StatsErr != nil {
		return nil, fixture.StatsErr
	}
	stats := fixture.Stats
	return &stats, nil
}

func (s *Store) fixture(repo *domain.Repository) (*RepoFixture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fixture, ok := s.repos[filepath.Clean(repo.Root)]
	if !ok {
		return nil, fmt.Errorf("%s: %w", repo.Root, domain.ErrRepositoryNotFound)
	}
	return fixture, nil
}
