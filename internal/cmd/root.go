package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"gittree/internal/config"
	"gittree/internal/logging"
	"gittree/internal/render"
	"gittree/internal/services"
	"gittree/version"
)

const helpDescription = version.Tagline + `

gittree searches for a git repository the same way git does, and displays a
tree showing untracked and modified files. The tree's root is the repository's
root. Items are colored to indicate their status (green: new, red: modified,
blue: ignored). Changes to files in the index are shown in bold.

A column in front of each file's name indicates changes to the index and the
working tree, respectively (M: modified, N: new, D: deleted).`

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	All             bool   `help:"Include ignored files" short:"a"`
	Color           string `help:"When to color the output" default:"auto" enum:"auto,always,never"`
	Depth           int    `help:"Recursively search for repositories up to N levels deep" default:"0" placeholder:"N"`
	Jobs            int    `help:"Directories searched concurrently (0 = number of CPUs)" short:"j" default:"0"`
	OnlyShowChanges bool   `help:"With --summary, omit repositories without insertions or deletions"`
	SettingsExample bool   `help:"Print the settings file location and an example settings.json, then exit"`
	Summary         bool   `help:"Show only a summary containing the number of additions, deletions, and changed files" short:"s"`

	Path string `arg:"" optional:"" default:"." help:"Directory to inspect"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	out       io.Writer        `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// Options returns the kong options used to build the parser
func Options() []kong.Option {
	return []kong.Option{
		kong.Name("gittree"),
		kong.Description(helpDescription),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
	}
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// SetOutput redirects the rendered tree, os.Stdout by default
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// Validate rejects flag values kong's type checks accept
func (c *CLI) Validate() error {
	if c.Depth < 0 {
		return fmt.Errorf("--depth must not be negative, got %d", c.Depth)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("--jobs must not be negative, got %d", c.Jobs)
	}
	return nil
}

// AfterApply applies settings, initializes logging and wires the container
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting only applies while its flag is still at the default value.
	c.applySettings()

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	if logFilePath != "" {
		fmt.Fprintf(os.Stderr, "Debug mode enabled. Logs: %s\n", logFilePath)
	}

	applyColorMode(c.Color)

	if c.Container == nil {
		c.Container = NewContainer()
	}
	return nil
}

func (c *CLI) applySettings() {
	s := c.settings
	if s == nil {
		return
	}

	if !c.All && s.All != nil {
		c.All = *s.All
	}
	if c.Color == config.ColorAuto && s.Color != "" {
		c.Color = s.Color
	}
	if !c.Debug && s.Debug != nil && *s.Debug {
		if _, hasEnv := os.LookupEnv("GITTREE_DEBUG"); !hasEnv {
			c.Debug = true
		}
	}
	if c.Depth == 0 && s.Depth != nil {
		c.Depth = *s.Depth
	}
	if c.Jobs == 0 && s.Jobs != nil {
		c.Jobs = *s.Jobs
	}
	if c.MaxLogFiles == logging.DefaultMaxLogFiles && s.MaxLogFiles != nil {
		if _, hasEnv := os.LookupEnv("GITTREE_MAX_LOG_FILES"); !hasEnv {
			c.MaxLogFiles = *s.MaxLogFiles
		}
	}
	if !c.OnlyShowChanges && s.OnlyShowChanges != nil {
		c.OnlyShowChanges = *s.OnlyShowChanges
	}
	if !c.Summary && s.Summary != nil {
		c.Summary = *s.Summary
	}
}

func applyColorMode(mode string) {
	switch mode {
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
	case config.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Run builds the status tree for Path and prints it
func (c *CLI) Run() error {
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	if c.SettingsExample {
		return printSettingsExample(out)
	}

	node, err := c.Container.TreeService.BuildTree(context.Background(), c.Path, services.TreeOptions{
		Depth:           c.Depth,
		IncludeIgnored:  c.All,
		Jobs:            c.Jobs,
		OnlyShowChanges: c.OnlyShowChanges,
		Summary:         c.Summary,
	})
	if err != nil {
		logging.Logger.Error("Failed to build tree", "path", c.Path, "error", err)
		return err
	}
	if node == nil {
		logging.Logger.Info("Nothing to show", "path", c.Path)
		return nil
	}

	return render.Write(out, node)
}
