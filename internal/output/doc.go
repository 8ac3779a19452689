// Package output provides structured output handling for the chatdown CLI.
//
// This package handles both human-readable and JSON output formats so
// every command works equally well for human users and automation.
//
// # Printer
//
// The Printer is the primary interface for command output. It switches
// format based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	printer.Success(map[string]any{"output": path, "messages": n})
//	printer.Error(err)
//	printer.Print("Markdown saved to: %s\n", path)
//
// # JSON Mode
//
// When JSON mode is enabled (via --json), all output is structured:
//
//	// Success: {"output": "...", "messages": N}
//	// Error: {"error": "message", "code": N}
//
// # Exit Codes
//
// The package defines the exit codes and a typed error carrying them:
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad args, missing input)
//	output.ExitSystemError // 2: System error (I/O failure)
//
// Use the constructors to create properly-coded errors:
//
//	output.NewUserError("input file not found: chat.json")
//	output.NewSystemError("writing output file failed")
//
// These errors drive both the JSON error output and the process exit
// code.
package output
