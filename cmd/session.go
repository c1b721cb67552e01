package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// The session file holds the username of the logged-in player. It is the
// CLI counterpart of the in-memory login of a menu loop: written by login,
// removed by logout, read by every authenticated command.
const sessionFile = "session"

func sessionPath() string { return filepath.Join(dir(), sessionFile) }

// currentUser returns the logged-in username.
func currentUser() (string, error) {
	b, err := os.ReadFile(sessionPath())
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("not logged in: run `bourse login <user> <pass>` first")
	}
	if err != nil {
		return "", fmt.Errorf("cannot read session: %w", err)
	}
	username := strings.TrimSpace(string(b))
	if username == "" {
		return "", fmt.Errorf("not logged in: run `bourse login <user> <pass>` first")
	}
	return username, nil
}

func writeSession(username string) error {
	if err := os.WriteFile(sessionPath(), []byte(username+"\n"), 0o600); err != nil {
		return fmt.Errorf("cannot write session: %w", err)
	}
	return nil
}

func clearSession() error {
	err := os.Remove(sessionPath())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot clear session: %w", err)
	}
	return nil
}
