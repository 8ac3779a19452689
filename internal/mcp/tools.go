package mcp

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/chatdown/internal/archive"
	"github.com/gorewood/chatdown/internal/convert"
	"github.com/gorewood/chatdown/internal/markdown"
	"github.com/gorewood/chatdown/internal/options"
)

// --- Inspect tool ---

// InspectInput is the input for the inspect tool.
type InspectInput struct {
	Path string `json:"path" jsonschema:"path to the chat export JSON file"`
}

// InspectOutput is the output for the inspect tool.
type InspectOutput struct {
	Name         string   `json:"name"                  jsonschema:"chat display name"`
	Type         string   `json:"type"                  jsonschema:"raw chat type code"`
	TypeDisplay  string   `json:"type_display"          jsonschema:"humanized chat type"`
	ID           string   `json:"id,omitempty"          jsonschema:"chat identifier"`
	Messages     int      `json:"messages"              jsonschema:"total message count"`
	FirstMessage string   `json:"first_message,omitempty" jsonschema:"earliest message timestamp"`
	LastMessage  string   `json:"last_message,omitempty"  jsonschema:"latest message timestamp"`
	Participants []string `json:"participants"          jsonschema:"distinct participant names, sorted"`
}

func handleInspect() mcp.ToolHandlerFor[InspectInput, InspectOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input InspectInput) (*mcp.CallToolResult, InspectOutput, error) {
		if input.Path == "" {
			return nil, InspectOutput{}, errors.New("path is required")
		}
		if _, err := os.Stat(input.Path); os.IsNotExist(err) {
			return nil, InspectOutput{}, fmt.Errorf("input file not found: %s", input.Path)
		}

		a, err := archive.Load(input.Path)
		if err != nil {
			return nil, InspectOutput{}, err
		}

		stats := a.Stats()
		return nil, InspectOutput{
			Name:         stats.Name,
			Type:         stats.Type,
			TypeDisplay:  markdown.HumanizeType(stats.Type),
			ID:           stats.ID,
			Messages:     stats.Messages,
			FirstMessage: markdown.Timestamp(stats.FirstDate),
			LastMessage:  markdown.Timestamp(stats.LastDate),
			Participants: stats.Participants,
		}, nil
	}
}

// --- Convert tool ---

// ConvertInput is the input for the convert tool.
type ConvertInput struct {
	Path        string `json:"path"                  jsonschema:"path to the chat export JSON file"`
	Output      string `json:"output,omitempty"      jsonschema:"output file path (default: input path with .md extension)"`
	Frontmatter bool   `json:"frontmatter,omitempty" jsonschema:"prepend a YAML frontmatter block"`
	NoHeader    bool   `json:"no_header,omitempty"   jsonschema:"omit the chat details header"`
}

// ConvertOutput is the output for the convert tool.
type ConvertOutput struct {
	OutputPath string `json:"output_path"    jsonschema:"path of the written Markdown file"`
	Messages   int    `json:"messages"       jsonschema:"number of converted messages"`
	Name       string `json:"name,omitempty" jsonschema:"chat display name"`
}

func handleConvert() mcp.ToolHandlerFor[ConvertInput, ConvertOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ConvertInput) (*mcp.CallToolResult, ConvertOutput, error) {
		if input.Path == "" {
			return nil, ConvertOutput{}, errors.New("path is required")
		}

		outputPath := input.Output
		if outputPath == "" {
			outputPath = convert.DefaultOutputPath(input.Path, options.DefaultExtension)
		}

		result, err := convert.Run(input.Path, outputPath, markdown.Options{
			Frontmatter: input.Frontmatter,
			NoHeader:    input.NoHeader,
		}, nil)
		if err != nil {
			return nil, ConvertOutput{}, err
		}

		return nil, ConvertOutput{
			OutputPath: result.OutputPath,
			Messages:   result.Messages,
			Name:       result.Name,
		}, nil
	}
}
