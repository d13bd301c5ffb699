// Package token persists the API token in the user's config directory.
package token

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/taskdeck/taskdeck/internal/domain"
)

const tokenFileName = "token"

// Ensure Store implements domain.TokenStore.
var _ domain.TokenStore = (*Store)(nil)

// Store keeps the token in a 0600 file.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at the given config directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the token file path.
func (s *Store) Path() string {
	return filepath.Join(s.dir, tokenFileName)
}

// Token returns the stored token.
func (s *Store) Token() (string, error) {
	content, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", domain.ErrTokenNotFound
		}
		return "", fmt.Errorf("read token file: %w", err)
	}
	token := strings.TrimSpace(string(content))
	if token == "" {
		return "", domain.ErrTokenNotFound
	}
	return token, nil
}

// Save stores a token, replacing any previous one.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(s.Path(), []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Clear removes the stored token.
func (s *Store) Clear() error {
	err := os.Remove(s.Path())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
