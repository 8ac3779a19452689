package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestPrinterSuccess_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)

	if err := p.Success(map[string]any{"message": "converted"}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got["message"] != "converted" {
		t.Errorf("message = %v, want %q", got["message"], "converted")
	}
}

func TestPrinterSuccess_Human(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)

	if err := p.Success(map[string]any{"message": "converted"}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	if !strings.Contains(buf.String(), "converted") {
		t.Errorf("output = %q, want it to contain %q", buf.String(), "converted")
	}
}

func TestPrinterError_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)

	p.Error(NewUserError("input file not found: chat.json"))

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got["error"] != "input file not found: chat.json" {
		t.Errorf("error = %v", got["error"])
	}
	if got["code"] != float64(ExitUserError) {
		t.Errorf("code = %v, want %d", got["code"], ExitUserError)
	}
}

func TestPrinterError_HumanGoesToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, false, false).WithStderr(&errOut)

	p.Error(NewSystemError("writing output"))

	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
	if !strings.Contains(errOut.String(), "Error: writing output") {
		t.Errorf("stderr = %q, want it to contain %q", errOut.String(), "Error: writing output")
	}
}

func TestPrinterWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)

	type result struct {
		Path string `json:"path"`
	}
	if err := p.WriteJSON(result{Path: "chat.md"}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"path": "chat.md"`) {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPrinterSection(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)

	p.Section("Participants")

	got := buf.String()
	if !strings.Contains(got, "Participants\n") {
		t.Errorf("output = %q, want a title line", got)
	}
	if !strings.Contains(got, "────") {
		t.Errorf("output = %q, want an underline", got)
	}
}

func TestPrinterKeyValue(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)

	p.KeyValue("Messages", "42")

	if got := buf.String(); got != "Messages: 42\n" {
		t.Errorf("output = %q, want %q", got, "Messages: 42\n")
	}
}

func TestErrorJSON(t *testing.T) {
	raw := ErrorJSON("boom", 2)

	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("not valid JSON: %v", err)
	}
	if got["error"] != "boom" || got["code"] != float64(2) {
		t.Errorf("got = %v", got)
	}
}
