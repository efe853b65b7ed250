package git

import (
	"context"

	"gittree/internal/domain"
	"gittree/internal/ports"
)

// CLIRepository implements ports.GitRepository.
// Repositories are opened with go-git; status and diff statistics come from
// the git binary.
type CLIRepository struct {
	gitBinary string
}

// Verify interface compliance at compile time
var _ ports.GitRepository = (*CLIRepository)(nil)

// NewCLIRepository creates a new CLIRepository
func NewCLIRepository() *CLIRepository {
	return &CLIRepository{gitBinary: "git"}
}

// RepositoryOpener methods

// Open implements RepositoryOpener.Open
func (r *CLIRepository) Open(ctx context.Context, path string) (*domain.Repository, error) {
	return openRepository(path)
}

// Discover implements RepositoryOpener.Discover
func (r *CLIRepository) Discover(ctx context.Context, path string) (*domain.Repository, error) {
	return discoverRepository(path)
}

// StatusLister methods

// ListStatus implements StatusLister.ListStatus
func (r *CLIRepository) ListStatus(ctx context.Context, repo *domain.Repository, opts ports.StatusOptions) ([]domain.StatusEntry, error) {
	return listStatus(ctx, r.gitBinary, repo.Root, opts.IncludeIgnored)
}

// DiffStatsProvider methods

// DiffStats implements DiffStatsProvider.DiffStats
func (r *CLIRepository) DiffStats(ctx context.Context, repo *domain.Repository) (*domain.DiffStat, error) {
	branch, err := headBranch(repo.Root)
	if err != nil {
		return nil, err
	}

	insertions, deletions, files, err := fetchNumstat(ctx, r.gitBinary, repo.Root)
	if err != nil {
		return nil, err
	}

	return &domain.DiffStat{
		Branch:       branch,
		Deletions:    deletions,
		FilesChanged: files,
		Insertions:   insertions,
	}, nil
}
