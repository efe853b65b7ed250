package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gittree/internal/adapters/memory"
	"gittree/internal/config"
	"gittree/internal/domain"
	"gittree/internal/services"
)

// runCLI parses args against a memory-backed container and runs the command
func runCLI(t *testing.T, store *memory.Store, settings *config.Settings, args ...string) (string, *CLI, error) {
	t.Helper()
	t.Setenv("GITTREE_DEBUG", "")

	var out bytes.Buffer
	cli := &CLI{Container: &Container{TreeService: services.NewTreeService(store, store)}}
	cli.SetOutput(&out)
	cli.SetSettings(settings)

	parser, err := kong.New(cli, Options()...)
	require.NoError(t, err)

	kctx, err := parser.Parse(args)
	if err != nil {
		return "", cli, err
	}

	err = kctx.Run()
	return ansi.Strip(out.String()), cli, err
}

func projectStore() *memory.Store {
	store := memory.NewStore()
	store.AddRepo("/work/projects/app", memory.RepoFixture{
		Entries: []domain.StatusEntry{
			{Flags: domain.StatusWorktreeNew, Path: "src/main.txt"},
			{Flags: domain.StatusWorktreeModified, Path: "README.md"},
			{Flags: domain.StatusIgnored, Path: "debug.log"},
		},
		Stats: domain.DiffStat{Branch: "main", FilesChanged: 1, Insertions: 4, Deletions: 2},
	})
	store.AddRepo("/work/projects/lib", memory.RepoFixture{
		Stats: domain.DiffStat{Branch: "dev"},
	})
	return store
}

func TestRun_FullTree(t *testing.T) {
	out, _, err := runCLI(t, projectStore(), nil, "--color=never", "/work/projects/app")

	require.NoError(t, err)
	assert.Equal(t, "app\n├── -M README.md\n└── src\n    └── -N main.txt\n", out)
}

func TestRun_AllIncludesIgnored(t *testing.T) {
	out, _, err := runCLI(t, projectStore(), nil, "-a", "/work/projects/app")

	require.NoError(t, err)
	assert.Contains(t, out, "├── -- debug.log")
}

func TestRun_SummaryWithDepth(t *testing.T) {
	out, _, err := runCLI(t, projectStore(), nil, "--depth", "1", "-s", "/work/projects")

	require.NoError(t, err)
	assert.Equal(t, "projects\n├── app [main] +4 -2 (1)\n└── lib [dev] +0 -0 (0)\n", out)
}

func TestRun_OnlyShowChanges(t *testing.T) {
	out, _, err := runCLI(t, projectStore(), nil, "--depth=1", "--summary", "--only-show-changes", "/work/projects")

	require.NoError(t, err)
	assert.Equal(t, "projects\n└── app [main] +4 -2 (1)\n", out)
}

func TestRun_OnlyShowChangesWithNothingChanged(t *testing.T) {
	store := memory.NewStore()
	store.AddRepo("/work/projects/lib", memory.RepoFixture{Stats: domain.DiffStat{Branch: "dev"}})

	out, _, err := runCLI(t, store, nil, "--depth=1", "-s", "--only-show-changes", "/work/projects")

	require.NoError(t, err)
	assert.Equal(t, "projects\n", out)
}

func TestRun_NoRepository(t *testing.T) {
	_, _, err := runCLI(t, projectStore(), nil, "/work/projects")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no git repository found")
	assert.Contains(t, err.Error(), "--depth")
}

func TestRun_NegativeDepthRejected(t *testing.T) {
	_, _, err := runCLI(t, projectStore(), nil, "--depth=-1", "/work/projects")

	assert.ErrorContains(t, err, "--depth must not be negative")
}

func TestRun_SettingsApplyWhenFlagsAtDefault(t *testing.T) {
	depth := 1
	summary := true
	settings := &config.Settings{Depth: &depth, Summary: &summary}

	out, cli, err := runCLI(t, projectStore(), settings, "/work/projects")

	require.NoError(t, err)
	assert.Equal(t, 1, cli.Depth)
	assert.True(t, cli.Summary)
	assert.Contains(t, out, "app [main] +4 -2 (1)")
}

func TestRun_FlagsOverrideSettings(t *testing.T) {
	depth := 5
	settings := &config.Settings{Depth: &depth}

	_, cli, err := runCLI(t, projectStore(), settings, "--depth=1", "-s", "/work/projects")

	require.NoError(t, err)
	assert.Equal(t, 1, cli.Depth)
}

func TestRun_SettingsExample(t *testing.T) {
	t.Setenv("GITTREE_HOME", t.TempDir())

	out, _, err := runCLI(t, projectStore(), nil, "--settings-example")

	require.NoError(t, err)
	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Contains(t, parsed, "settings_file")
	assert.Contains(t, parsed, "format")
}
