package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestInspectCommand(t *testing.T) {
	input := writeExport(t)

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"inspect", input})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Weekend Plans",
		"Type: Private Group",
		"ID: 12345",
		"Messages: 3",
		"First message: 2024-01-15 10:30:00",
		"Participants (3)",
		"- Alice",
		"- Bob",
		"- Carol",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output should contain %q: %q", want, out)
		}
	}
}

func TestInspectCommand_JSON(t *testing.T) {
	input := writeExport(t)

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"inspect", input, "--json"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var stats map[string]any
	if err := json.Unmarshal(buf.Bytes(), &stats); err != nil {
		t.Fatalf("output should be valid JSON: %v\nOutput: %s", err, buf.String())
	}
	if stats["name"] != "Weekend Plans" {
		t.Errorf("name = %v", stats["name"])
	}
	if stats["messages"] != float64(3) {
		t.Errorf("messages = %v, want 3", stats["messages"])
	}
	participants, ok := stats["participants"].([]any)
	if !ok || len(participants) != 3 {
		t.Errorf("participants = %v, want 3 entries", stats["participants"])
	}
}

func TestInspectCommand_MissingInput(t *testing.T) {
	t.Setenv("CHATDOWN_CONFIG_HOME", t.TempDir())

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"inspect", "does-not-exist.json"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Expected error for missing input file")
	}
	if !strings.Contains(errOut.String(), "input file not found") {
		t.Errorf("stderr = %q, want file-not-found message", errOut.String())
	}
}
