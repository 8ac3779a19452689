package config

import (
	"path/filepath"
	"testing"
)

func TestDir_ExplicitOverride(t *testing.T) {
	t.Setenv("CHATDOWN_CONFIG_HOME", "/tmp/chatdown-config")
	t.Setenv("XDG_CONFIG_HOME", "/ignored")

	if got := Dir(); got != "/tmp/chatdown-config" {
		t.Errorf("Dir() = %q, want %q", got, "/tmp/chatdown-config")
	}
}

func TestDir_XDG(t *testing.T) {
	t.Setenv("CHATDOWN_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/home/u/.config")

	want := filepath.Join("/home/u/.config", "chatdown")
	if got := Dir(); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}

func TestDir_HomeFallback(t *testing.T) {
	t.Setenv("CHATDOWN_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/u")

	got := Dir()
	if got == "" {
		t.Fatal("Dir() = empty, want a fallback path")
	}
	if filepath.Base(got) != "chatdown" {
		t.Errorf("Dir() = %q, want it to end in chatdown", got)
	}
}
