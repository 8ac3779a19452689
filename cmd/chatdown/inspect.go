// Package main provides the entry point for the chatdown CLI.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/chatdown/internal/archive"
	"github.com/gorewood/chatdown/internal/markdown"
	"github.com/gorewood/chatdown/internal/output"
)

// newInspectCmd creates the inspect command.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <input.json>",
		Short: "Summarize a chat export without converting it",
		Long: `Summarize a Telegram chat export: name, type, message count,
date range, and participants. Nothing is written.

Examples:
  chatdown inspect result.json
  chatdown inspect result.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0])
		},
	}
}

// runInspect executes the inspect command.
func runInspect(cmd *cobra.Command, inputPath string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		userErr := output.NewUserError(fmt.Sprintf("input file not found: %s", inputPath))
		printer.Error(userErr)
		return userErr
	}

	a, err := archive.Load(inputPath)
	if err != nil {
		userErr := output.NewUserErrorWithCause(err.Error(), err)
		printer.Error(userErr)
		return userErr
	}

	stats := a.Stats()

	if printer.IsJSON() {
		return printer.WriteJSON(stats)
	}

	outputInspectHuman(printer, stats)
	return nil
}

// outputInspectHuman renders the archive summary for terminal display.
func outputInspectHuman(printer *output.Printer, stats archive.Stats) {
	name := stats.Name
	if name == "" {
		name = "Telegram Chat"
	}

	printer.Section(name)
	printer.KeyValue("Type", markdown.HumanizeType(stats.Type))
	printer.KeyValue("ID", stats.ID)
	printer.KeyValue("Messages", strconv.Itoa(stats.Messages))
	if stats.FirstDate != "" {
		printer.KeyValue("First message", markdown.Timestamp(stats.FirstDate))
		printer.KeyValue("Last message", markdown.Timestamp(stats.LastDate))
	}

	if len(stats.Participants) > 0 {
		printer.Section(fmt.Sprintf("Participants (%d)", len(stats.Participants)))
		for _, p := range stats.Participants {
			printer.Println("- " + p)
		}
	}
}
