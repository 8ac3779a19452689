// Package main provides the entry point for the chatdown CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/chatdown/internal/convert"
	"github.com/gorewood/chatdown/internal/markdown"
	"github.com/gorewood/chatdown/internal/options"
	"github.com/gorewood/chatdown/internal/output"
)

// convertFlags holds the flag values shared by the root command and the
// convert subcommand.
type convertFlags struct {
	output      string
	frontmatter bool
	noHeader    bool
	optionsPath string
}

// addConvertFlags registers the conversion flags on a command.
func addConvertFlags(cmd *cobra.Command, flags *convertFlags) {
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output Markdown file path (default: input path with .md extension)")
	cmd.Flags().BoolVar(&flags.frontmatter, "frontmatter", false, "Prepend a YAML frontmatter block to the document")
	cmd.Flags().BoolVar(&flags.noHeader, "no-header", false, "Omit the chat details header")
	cmd.Flags().StringVar(&flags.optionsPath, "options", "", "YAML file with conversion defaults")
}

// newConvertCmd creates the convert command.
func newConvertCmd() *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert <input.json>",
		Short: "Convert a chat export to Markdown",
		Long: `Convert a Telegram chat export (JSON) into a Markdown document.

Examples:
  chatdown convert result.json
  chatdown convert result.json -o chat_history.md
  chatdown convert export/result.json --output ./output/chat.md
  chatdown convert result.json --frontmatter --no-header`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], flags)
		},
	}

	addConvertFlags(cmd, flags)

	return cmd
}

// runConvert executes a conversion for the root or convert command.
func runConvert(cmd *cobra.Command, inputPath string, flags *convertFlags) error {
	jsonMode := isJSONMode(cmd)
	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	opts, extension, err := resolveOptions(cmd, flags)
	if err != nil {
		printer.Error(err)
		return err
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = convert.DefaultOutputPath(inputPath, extension)
	}

	var progress convert.ProgressFunc
	if !jsonMode {
		progress = printer.Print
	}

	result, err := convert.Run(inputPath, outputPath, opts, progress)
	if err != nil {
		printer.Error(err)
		return err
	}

	if jsonMode {
		return printer.WriteJSON(result)
	}
	printer.Print("Markdown saved to: %s\n", result.OutputPath)
	return nil
}

// resolveOptions merges the options file (explicit --options path, else
// the per-user defaults file) with command-line flags. Flags that were
// set explicitly win.
func resolveOptions(cmd *cobra.Command, flags *convertFlags) (markdown.Options, string, error) {
	var file *options.File
	if flags.optionsPath != "" {
		loaded, err := options.Load(flags.optionsPath)
		if err != nil {
			return markdown.Options{}, "", output.NewUserError(err.Error())
		}
		file = loaded
	} else {
		file = options.LoadDefault()
	}

	opts := markdown.Options{
		Frontmatter: file.Frontmatter,
		NoHeader:    file.NoHeader,
	}
	if cmd.Flags().Changed("frontmatter") {
		opts.Frontmatter = flags.frontmatter
	}
	if cmd.Flags().Changed("no-header") {
		opts.NoHeader = flags.noHeader
	}

	return opts, file.OutputExtension(), nil
}
