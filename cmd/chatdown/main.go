// Package main provides the entry point for the chatdown CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/chatdown/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the chatdown CLI.
// Running the root with an input path converts it directly, so the
// common case stays a one-liner: chatdown result.json
func newRootCmd() *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "chatdown [<input.json>]",
		Short: "Convert Telegram chat exports to Markdown",
		Long: `Chatdown - Convert exported Telegram chat history (JSON) into readable Markdown.

Chatdown reads the result.json produced by Telegram's chat export, renders
every message (text formatting, media tags, replies, forwards, service
events) as Markdown, and writes a single document with a chat summary
header.

Examples:
  chatdown result.json                    # writes result.md
  chatdown result.json -o chat_history.md
  chatdown inspect result.json            # summary without converting
  chatdown serve                          # run as an MCP server

All commands support --json for structured output.`,
		Version:       buildVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if isJSONMode(cmd) {
					printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
					err := output.NewUserError("no input file specified. Run 'chatdown --help' for usage")
					printer.Error(err)
					return err
				}
				return cmd.Help()
			}
			return runConvert(cmd, args[0], flags)
		},
	}

	// Persistent --json flag (available to all subcommands)
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")

	// The root accepts the same flags as the convert subcommand.
	addConvertFlags(cmd, flags)

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}
