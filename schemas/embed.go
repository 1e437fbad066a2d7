// Package schemas holds the JSON Schema documents for problem, solution and report files.
package schemas

import "embed"

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
