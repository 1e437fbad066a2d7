package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["shape"],
	"properties": {
		"shape": {
			"type": "object",
			"required": ["events", "slots"],
			"properties": {
				"events": {"type": "integer", "minimum": 0},
				"slots": {"type": "integer", "minimum": 0}
			}
		}
	}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON_ValidJSON(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"shape": {"events": 3, "slots": 7}}`)

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_InvalidJSON_MissingField(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"shape": {"events": 3}}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr), "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_NonExistentFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)

	err := ValidateJSON(filepath.Join(dir, "nonexistent_schema.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(schemaPath, filepath.Join(dir, "nonexistent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_WrongType(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"shape": {"events": "three", "slots": 7}}`)

	err := ValidateJSON(schemaPath, jsonPath)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Error(), "shape.events")
}

func TestValidateJSON_MalformedSchema(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", `{ invalid`)
	jsonPath := writeFile(t, dir, "doc.json", `{}`)

	err := ValidateJSON(schemaPath, jsonPath)
	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestResolveSchemaPath_FindsRepoSchemas(t *testing.T) {
	// Tests run from internal/schemas; the schema directory is two levels up.
	path := ResolveSchemaPath(filepath.Join("schemas", ViolationsSchema))
	require.NotEmpty(t, path)
	assert.True(t, filepath.IsAbs(path))

	assert.Empty(t, ResolveSchemaPath(filepath.Join("schemas", "nonexistent.schema.json")))
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	valid := writeFile(t, dir, "report.json", `{"rules": ["schedule_all_events"], "valid": false, "violations": [{"rule": "schedule_all_events", "event_id": 1}]}`)
	invalid := writeFile(t, dir, "bad.json", `{"rules": [], "valid": "no", "violations": []}`)

	assert.NoError(t, ValidateFile(ViolationsSchema, valid))

	var validationErr *ValidationError
	assert.True(t, errors.As(ValidateFile(ViolationsSchema, invalid), &validationErr))

	assert.Error(t, ValidateFile(ViolationsSchema, filepath.Join(dir, "missing.json")))
}

func TestValidateDocument_Problem(t *testing.T) {
	valid := `{
		"name": "pycon",
		"shape": {"events": 2, "slots": 2},
		"events": [{"id": 0, "tags": ["web"]}, {"id": 1}],
		"slots": [{"id": 0, "day": "2026-06-01", "venue": "Room A"}, {"id": 1}],
		"sessions": [{"id": 0, "slots": [0, 1]}]
	}`
	assert.NoError(t, ValidateDocument(ProblemSchema, []byte(valid)))

	invalid := `{"shape": {"events": -1, "slots": 2}, "events": [], "sessions": []}`
	var validationErr *ValidationError
	assert.True(t, errors.As(ValidateDocument(ProblemSchema, []byte(invalid)), &validationErr))
}

func TestValidateDocument_Violations(t *testing.T) {
	report := `{
		"run_id": "550e8400-e29b-41d4-a716-446655440000",
		"valid": false,
		"violations": [{"rule": "schedule_all_events", "event_id": 1}]
	}`
	assert.NoError(t, ValidateDocument(ViolationsSchema, []byte(report)))
}

func TestValidateDocument_UnknownSchema(t *testing.T) {
	err := ValidateDocument("nonexistent.schema.json", []byte(`{}`))
	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}
