package main

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTestFile writes content to name inside dir and returns the path
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// conferenceProblem is a 3 event, 7 slot problem whose first session groups slots 0 and 1.
// Events 0 and 2 share no tag.
const conferenceProblem = `{
	"name": "pycon",
	"shape": {"events": 3, "slots": 7},
	"events": [
		{"id": 0, "tags": ["community", "web"]},
		{"id": 1, "tags": ["web"]},
		{"id": 2, "tags": ["pydata"]}
	],
	"sessions": [{"id": 0, "slots": [0, 1]}]
}`
