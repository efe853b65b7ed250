// Package harness provides utilities for integration testing the gittree CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - GITTREE_HOME: Isolated per test (temp directory)
//   - GITTREE_DEBUG: Disabled to reduce noise
//   - NO_COLOR: Set so output is plain text
package harness
