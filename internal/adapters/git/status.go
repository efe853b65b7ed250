package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"gittree/internal/domain"
	"gittree/internal/logging"
)

// listStatus runs `git status --porcelain=v1 -z` in root and parses the records.
// Untracked directories are expanded to their files, ignored directories are
// reported once, and renames show up as a deletion plus an addition.
func listStatus(ctx context.Context, gitBinary, root string, includeIgnored bool) ([]domain.StatusEntry, error) {
	args := []string{"status", "--porcelain=v1", "-z", "--untracked-files=all", "--no-renames"}
	if includeIgnored {
		args = append(args, "--ignored=matching")
	}

	cmd := exec.CommandContext(ctx, gitBinary, args...)
	cmd.Dir = root

	output, err := cmd.Output()
	if err != nil {
		logging.Logger.Debug("git status failed", "root", root, "error", err)
		return nil, fmt.Errorf("git status failed: %w", err)
	}

	entries, err := parsePorcelainStatus(output)
	if err != nil {
		return nil, err
	}

	logging.Logger.Debug("Status listed", "root", root, "entries", len(entries))
	return entries, nil
}

// parsePorcelainStatus parses NUL-separated `XY path` records. Rename and
// copy records are followed by an extra field holding the origin path.
func parsePorcelainStatus(output []byte) ([]domain.StatusEntry, error) {
	fields := bytes.Split(output, []byte{0})

	var entries []domain.StatusEntry
	for i := 0; i < len(fields); i++ {
		rec := fields[i]
		if len(rec) == 0 {
			continue
		}
		if len(rec) < 4 || rec[2] != ' ' {
			return nil, fmt.Errorf("malformed status record %q", rec)
		}

		x, y := rec[0], rec[1]
		path := strings.TrimSuffix(string(rec[3:]), "/")

		if x == 'R' || x == 'C' || y == 'R' || y == 'C' {
			i++
		}

		entries = append(entries, domain.StatusEntry{
			Flags: parseStatusCode(x, y),
			Path:  path,
		})
	}

	return entries, nil
}

// parseStatusCode maps a porcelain XY code to raw status flags
func parseStatusCode(x, y byte) domain.StatusFlags {
	switch {
	case x == '?' && y == '?':
		return domain.StatusWorktreeNew
	case x == '!' && y == '!':
		return domain.StatusIgnored
	case x == 'U' || y == 'U' || (x == 'A' && y == 'A') || (x == 'D' && y == 'D'):
		return domain.StatusConflicted
	}

	var flags domain.StatusFlags

	switch x {
	case 'M':
		flags |= domain.StatusIndexModified
	case 'A', 'C':
		flags |= domain.StatusIndexNew
	case 'D':
		flags |= domain.StatusIndexDeleted
	case 'R':
		flags |= domain.StatusIndexRenamed
	case 'T':
		flags |= domain.StatusIndexTypeChange
	}

	switch y {
	case 'M':
		flags |= domain.StatusWorktreeModified
	case 'A':
		// intent-to-add
		flags |= domain.StatusWorktreeNew
	case 'D':
		flags |= domain.StatusWorktreeDeleted
	case 'R':
		flags |= domain.StatusWorktreeRenamed
	case 'T':
		flags |= domain.StatusWorktreeTypeChange
	}

	return flags
}
