// Package convert runs the one-shot archive-to-Markdown conversion:
// load the export, render the document, write the output file. It is
// shared by the CLI and the MCP server.
package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorewood/chatdown/internal/archive"
	"github.com/gorewood/chatdown/internal/markdown"
	"github.com/gorewood/chatdown/internal/output"
)

// ProgressFunc receives human-readable progress lines during a run.
// A nil ProgressFunc silences progress entirely (JSON mode, MCP).
type ProgressFunc func(format string, args ...any)

// Result describes a completed conversion.
type Result struct {
	InputPath  string `json:"input"`
	OutputPath string `json:"output"`
	Messages   int    `json:"messages"`
	Name       string `json:"name,omitempty"`
}

// DefaultOutputPath derives the output path from the input path by
// replacing its extension.
func DefaultOutputPath(inputPath, extension string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + extension
}

// Run converts one export file. The input must exist and parse as a
// JSON object; missing fields inside it degrade per the rendering
// rules. Parent directories of the output path are created as needed.
// On any error, nothing is written.
func Run(inputPath, outputPath string, opts markdown.Options, progress ProgressFunc) (*Result, error) {
	if progress == nil {
		progress = func(string, ...any) {}
	}

	if _, err := os.Stat(inputPath); err != nil {
		if os.IsNotExist(err) {
			return nil, output.NewUserError(fmt.Sprintf("input file not found: %s", inputPath))
		}
		return nil, output.NewSystemError(fmt.Sprintf("checking input file: %v", err))
	}

	progress("Loading chat data from: %s\n", inputPath)
	a, err := archive.Load(inputPath)
	if err != nil {
		return nil, output.NewUserErrorWithCause(err.Error(), err)
	}

	progress("Converting %d messages...\n", len(a.Messages))
	doc := markdown.Document(a, opts)

	if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, output.NewSystemError(fmt.Sprintf("creating output directory %s: %v", dir, err))
		}
	}
	if err := os.WriteFile(outputPath, []byte(doc), 0o644); err != nil {
		return nil, output.NewSystemError(fmt.Sprintf("writing output file %s: %v", outputPath, err))
	}

	return &Result{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Messages:   len(a.Messages),
		Name:       a.Name,
	}, nil
}
