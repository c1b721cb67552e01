// Package vault is the persistence gateway of the trading game: an opaque
// encrypted blob store keyed by a secret generated on first run. Callers
// hand it already-encoded bytes and get them back verbatim; it knows
// nothing about the records it seals.
package vault

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/crypto/chacha20poly1305"
)

// SecretSize is the size in bytes of the encryption secret.
const SecretSize = chacha20poly1305.KeySize

// Well-known blob names. Each user's portfolio gets its own blob from
// PortfolioBlob.
const (
	MarketBlob   = "market.dat"
	RegistryBlob = "users.dat"
)

// PortfolioBlob returns the blob name holding a user's portfolio.
func PortfolioBlob(username string) string {
	return "portfolio-" + username + ".dat"
}

// Secret is the key every blob is sealed with.
type Secret []byte

// LoadSecret reads the secret from path, generating and persisting a fresh
// one on first run.
func LoadSecret(path string) (Secret, error) {
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if len(b) != SecretSize {
			return nil, fmt.Errorf("secret file %q: got %d bytes, want %d", path, len(b), SecretSize)
		}
		return Secret(b), nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("cannot read secret file %q: %w", path, err)
	}

	key := make([]byte, SecretSize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("cannot generate secret: %w", err)
	}
	if err := os.WriteFile(path, key, 0o600); err != nil {
		return nil, fmt.Errorf("cannot persist secret file %q: %w", path, err)
	}
	return Secret(key), nil
}

// Store seals blobs into a directory, one file per blob. Saves are plain
// whole-file overwrites: a crash mid-write can corrupt the blob being
// written, an accepted limitation of the game.
type Store struct {
	dir    string
	secret Secret
}

// NewStore returns a store writing sealed blobs under dir, creating the
// directory if needed.
func NewStore(dir string, secret Secret) (*Store, error) {
	if len(secret) != SecretSize {
		return nil, fmt.Errorf("secret: got %d bytes, want %d", len(secret), SecretSize)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("cannot create store directory %q: %w", dir, err)
	}
	return &Store{dir: dir, secret: secret}, nil
}

// Seal encrypts plain with the store secret. The random nonce is prefixed
// to the returned ciphertext.
func (s *Store) Seal(plain []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(s.secret)
	if err != nil {
		return nil, fmt.Errorf("cannot build cipher: %w", err)
	}
	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plain)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("cannot generate nonce: %w", err)
	}
	return aead.Seal(nonce, nonce, plain, nil), nil
}

// Open decrypts a sealed blob, failing on any tampering.
func (s *Store) Open(sealed []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(s.secret)
	if err != nil {
		return nil, fmt.Errorf("cannot build cipher: %w", err)
	}
	if len(sealed) < aead.NonceSize() {
		return nil, fmt.Errorf("sealed blob too short: %d bytes", len(sealed))
	}
	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot open sealed blob: %w", err)
	}
	return plain, nil
}

// SaveBlob seals plain and overwrites the named blob file.
func (s *Store) SaveBlob(name string, plain []byte) error {
	sealed, err := s.Seal(plain)
	if err != nil {
		return fmt.Errorf("save blob %q: %w", name, err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, sealed, 0o600); err != nil {
		return fmt.Errorf("save blob %q: %w", name, err)
	}
	return nil
}

// LoadBlob opens the named blob. A blob that was never saved reports
// fs.ErrNotExist, which callers treat as "use the default", not an error.
func (s *Store) LoadBlob(name string) ([]byte, error) {
	path := filepath.Join(s.dir, name)
	sealed, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load blob %q: %w", name, err)
	}
	plain, err := s.Open(sealed)
	if err != nil {
		return nil, fmt.Errorf("load blob %q: %w", name, err)
	}
	return plain, nil
}
