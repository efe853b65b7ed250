package ports

import (
	"context"

	"gittree/internal/domain"
)

// RepositoryOpener locates repositories on disk
type RepositoryOpener interface {
	// Discover walks path and its ancestors until a repository is found.
	// Returns domain.ErrRepositoryNotFound when none exists.
	Discover(ctx context.Context, path string) (*domain.Repository, error)
	// Open succeeds only when path is itself a repository root
	Open(ctx context.Context, path string) (*domain.Repository, error)
}

// StatusOptions controls which records the status source reports
type StatusOptions struct {
	IncludeIgnored bool
}

// StatusLister lists changed paths of a repository
type StatusLister interface {
	ListStatus(ctx context.Context, repo *domain.Repository, opts StatusOptions) ([]domain.StatusEntry, error)
}

// DiffStatsProvider computes aggregate diff statistics against HEAD
type DiffStatsProvider interface {
	// DiffStats returns domain.ErrUnresolvableHead when HEAD cannot be resolved
	DiffStats(ctx context.Context, repo *domain.Repository) (*domain.DiffStat, error)
}

// GitRepository is the composite interface
type GitRepository interface {
	DiffStatsProvider
	RepositoryOpener
	StatusLister
}
