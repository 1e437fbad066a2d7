package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/conference-scheduler/internal/config"
)

func TestParseRunID(t *testing.T) {
	id, err := parseRunID(nil)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, id)

	want := uuid.New()
	id, err = parseRunID([]string{want.String()})
	require.NoError(t, err)
	assert.Equal(t, want, id)

	_, err = parseRunID([]string{"run-42"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid run id")
}

func TestRunsCommand_InvalidRunID(t *testing.T) {
	binaryPath := getBinaryPath(t)

	output, err := exec.Command(binaryPath, "runs", "run-42", "--database-url", "postgres://localhost/scheduler").CombinedOutput()
	assert.Error(t, err)
	assert.Contains(t, string(output), "invalid run id")
}

func TestRunsCommand_RequiresDatabaseURL(t *testing.T) {
	binaryPath, err := filepath.Abs(getBinaryPath(t))
	require.NoError(t, err)

	cmd := exec.Command(binaryPath, "runs")
	// Run outside the repo so no .env supplies a database URL
	cmd.Dir = t.TempDir()
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, config.EnvDatabaseURL+"=") {
			cmd.Env = append(cmd.Env, kv)
		}
	}
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--database-url is required")
}
