package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own GITTREE_HOME.
type TestEnvironment struct {
	GittreeHome string
	extraEnv    map[string]string
	tb          testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp GITTREE_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		GittreeHome: tb.TempDir(),
		extraEnv:    make(map[string]string),
		tb:          tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out GITTREE_* variables and sets:
//   - GITTREE_HOME to the temp directory
//   - GITTREE_DEBUG to empty string (disables debug logging)
//   - NO_COLOR so lipgloss renders plain text
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	overrideKeys := make(map[string]bool)
	overrideKeys["GITTREE_HOME"] = true
	overrideKeys["GITTREE_DEBUG"] = true
	overrideKeys["NO_COLOR"] = true
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		key := parts[0]
		if strings.HasPrefix(key, "GITTREE_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"GITTREE_HOME="+e.GittreeHome,
		"GITTREE_DEBUG=",
		"NO_COLOR=1",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// SettingsPath returns the path of the settings file read by the binary.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.GittreeHome, "settings.json")
}

// WriteSettings writes raw JSON content to the settings file.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
