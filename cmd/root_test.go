package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFloatList_ParsesTrimmedValues verifies whitespace around
// comma-separated values is tolerated.
func TestParseFloatList_ParsesTrimmedValues(t *testing.T) {
	got, err := parseFloatList("1.0, 2.5,-3.25")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.0, 2.5, -3.25}, got)
}

// TestParseFloatList_RejectsInvalidValue verifies a malformed entry is
// reported with its 1-based position.
func TestParseFloatList_RejectsInvalidValue(t *testing.T) {
	_, err := parseFloatList("1.0,oops,3.0")
	assert.Error(t, err)
}

// TestExplainCmd_EndToEnd runs the explain subcommand against a temp
// background CSV and asserts it prints a feature-attribution table
// without error.
func TestExplainCmd_EndToEnd(t *testing.T) {
	bgPath := filepath.Join(t.TempDir(), "bg.csv")
	require.NoError(t, os.WriteFile(bgPath, []byte(
		"5.8,2.8,5.1,2.4\n5.8,2.7,5.1,1.9\n7.2,3.6,6.1,2.5\n6.2,2.8,4.8,1.8\n4.9,3.1,1.5,0.1\n"), 0o644))

	// cobra always executes from the root command, so the subcommand name
	// is passed as the first argument to the root.
	cmd := rootCmd
	cmd.SetArgs([]string{
		"explain",
		"--background", bgPath,
		"--query", "5.8,2.8,5.1,2.4",
		"--coeffs", "-0.1991,0.3426,0.0478,1.03745",
		"--bias", "-1.6689",
		"--seed", "42",
		"--log", "error",
	})
	var out bytes.Buffer
	cmd.SetOut(&out)

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "feature 0:")
}
