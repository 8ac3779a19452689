// Package config provides the global configuration directory for chatdown.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the chatdown configuration directory.
//
// Resolution:
//   - $CHATDOWN_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/chatdown if set (respects XDG on any platform)
//   - %AppData%/chatdown on Windows
//   - ~/.config/chatdown on macOS and Linux
func Dir() string {
	if dir := os.Getenv("CHATDOWN_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "chatdown")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "chatdown")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "chatdown")
}
