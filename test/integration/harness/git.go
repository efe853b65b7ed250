package harness

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TestRepo is a working repository with one initial commit on main.
//
// Setup structure:
//
//	<dir>/
//	├── .git/
//	└── README.md   <- committed
type TestRepo struct {
	Path string
	tb   testing.TB
}

// NewTestRepo initializes a repository at dir, creating dir if needed, and
// commits a README.md so HEAD resolves.
func NewTestRepo(tb testing.TB, dir string) *TestRepo {
	tb.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		tb.Fatalf("Failed to create repository directory: %v", err)
	}

	runGitCommand(tb, dir, "init")
	runGitCommand(tb, dir, "config", "user.email", "test@example.com")
	runGitCommand(tb, dir, "config", "user.name", "Test User")

	repo := &TestRepo{Path: dir, tb: tb}
	repo.WriteFile("README.md", "# Test Repo\n")
	repo.Commit("README.md")

	// Ensure branch is named "main" (git might default to "master")
	runGitCommand(tb, dir, "branch", "-M", "main")

	return repo
}

// WriteFile writes content to a path relative to the repository root,
// creating parent directories.
func (r *TestRepo) WriteFile(relPath, content string) {
	r.tb.Helper()

	path := filepath.Join(r.Path, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		r.tb.Fatalf("Failed to create parent of %s: %v", relPath, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		r.tb.Fatalf("Failed to write %s: %v", relPath, err)
	}
}

// Stage adds paths to the index.
func (r *TestRepo) Stage(paths ...string) {
	r.tb.Helper()
	runGitCommand(r.tb, r.Path, append([]string{"add", "--"}, paths...)...)
}

// Commit stages paths and commits them.
func (r *TestRepo) Commit(paths ...string) {
	r.tb.Helper()
	r.Stage(paths...)
	runGitCommand(r.tb, r.Path, "commit", "-m", "Update")
}

// RunGitCommand executes a git command in the specified directory (exported for tests).
func RunGitCommand(tb testing.TB, dir string, args ...string) {
	runGitCommand(tb, dir, args...)
}

// runGitCommand executes a git command in the specified directory.
func runGitCommand(tb testing.TB, dir string, args ...string) {
	tb.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v\nOutput: %s", args, dir, err, output)
	}
}
