package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/conference-scheduler/internal/constraints"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"constraints": ["schedule_all_events", "max_one_event_per_slot"],
		"tag_policy": "any",
		"workers": 4,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, []string{"schedule_all_events", "max_one_event_per_slot"}, cfg.Constraints)
	assert.Equal(t, "any", cfg.TagPolicy)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty config", Config{}, ""},
		{"known rules", Config{Constraints: []string{"max_one_event_per_slot"}, TagPolicy: "pairwise"}, ""},
		{"negative workers", Config{Workers: -1}, "Workers"},
		{"unknown tag policy", Config{TagPolicy: "majority"}, "TagPolicy"},
		{"empty rule name", Config{Constraints: []string{""}}, "Constraints"},
		{"unknown rule", Config{Constraints: []string{"room_capacity"}}, "unknown constraint"},
		{"missing problem file", Config{Problem: "/nonexistent/problem.json"}, "problem file not found"},
		{"missing solution file", Config{Solution: "/nonexistent/solution.json"}, "solution file not found"},
		{"missing candidates file", Config{Candidates: "/nonexistent/candidates.json"}, "candidates file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{
		Problem: "custom_problem.json",
		Workers: 2,
	}

	defaults := Config{
		Problem:     "default_problem.json",
		Solution:    "default_solution.json",
		Candidates:  "default_candidates.json",
		Constraints: []string{"schedule_all_events"},
		TagPolicy:   "any",
		Workers:     8,
		DatabaseURL: "postgres://localhost/scheduler",
	}

	result := cfg.MergeWithDefaults(defaults)

	// Config values should take precedence
	assert.Equal(t, "custom_problem.json", result.Problem)
	assert.Equal(t, 2, result.Workers)

	// Default values should fill in empty fields
	assert.Equal(t, "default_solution.json", result.Solution)
	assert.Equal(t, "default_candidates.json", result.Candidates)
	assert.Equal(t, []string{"schedule_all_events"}, result.Constraints)
	assert.Equal(t, "any", result.TagPolicy)
	assert.Equal(t, "postgres://localhost/scheduler", result.DatabaseURL)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{}
	result := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "pairwise", result.TagPolicy, "should default to pairwise tag matching")
	assert.Empty(t, result.Constraints)
	assert.Zero(t, result.Workers)
}

func TestRegistry(t *testing.T) {
	cfg := Config{}
	r, err := cfg.Registry()
	require.NoError(t, err)
	assert.Equal(t, constraints.Default(constraints.TagPolicyPairwise).Names(), r.Names())

	cfg = Config{Constraints: []string{"max_one_event_per_slot", "schedule_all_events"}, TagPolicy: "any"}
	r, err = cfg.Registry()
	require.NoError(t, err)
	assert.Equal(t, []string{"max_one_event_per_slot", "schedule_all_events"}, r.Names())

	cfg = Config{TagPolicy: "majority"}
	_, err = cfg.Registry()
	assert.Error(t, err)
}

func TestEngineConfig(t *testing.T) {
	cfg := Config{Constraints: []string{"schedule_all_events"}}
	engineCfg, err := cfg.EngineConfig()
	require.NoError(t, err)
	require.NotNil(t, engineCfg.Registry)
	assert.Len(t, engineCfg.Registry.Names(), 1)
}
