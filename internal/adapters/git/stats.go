package git

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"gittree/internal/logging"
)

// fetchNumstat sums `git diff --numstat HEAD`, comparing HEAD with the working
// tree. Untracked files are not part of the diff.
func fetchNumstat(ctx context.Context, gitBinary, root string) (insertions, deletions, files int, err error) {
	cmd := exec.CommandContext(ctx, gitBinary, "diff", "--numstat", "HEAD")
	cmd.Dir = root

	output, err := cmd.Output()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("git diff failed: %w", err)
	}

	insertions, deletions, files = parseNumstat(string(output))

	logging.Logger.Debug("Diff stats fetched",
		"root", root,
		"insertions", insertions,
		"deletions", deletions,
		"files", files)

	return insertions, deletions, files, nil
}

// parseNumstat parses lines of "ADDED	DELETED	filename"; binary files report "-"
func parseNumstat(output string) (insertions, deletions, files int) {
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 3 {
			continue
		}
		files++

		if added, err := strconv.Atoi(parts[0]); err == nil {
			insertions += added
		}
		if deleted, err := strconv.Atoi(parts[1]); err == nil {
			deletions += deleted
		}
	}

	return insertions, deletions, files
}
