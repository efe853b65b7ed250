package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumstat(t *testing.T) {
	output := "3\t1\tREADME.md\n10\t0\tsrc/main.go\n-\t-\tlogo.png\n"

	insertions, deletions, files := parseNumstat(output)

	assert.Equal(t, 13, insertions)
	assert.Equal(t, 1, deletions)
	assert.Equal(t, 3, files)
}

func TestParseNumstat_Empty(t *testing.T) {
	insertions, deletions, files := parseNumstat("")

	assert.Zero(t, insertions)
	assert.Zero(t, deletions)
	assert.Zero(t, files)
}
