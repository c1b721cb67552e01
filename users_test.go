package bourse

import (
	"errors"
	"fmt"
	"testing"
)

// Passwords are stored and compared in plaintext, faithfully to the game
// this engine reimplements. A production system would substitute a salted
// hash; doing so here would silently change the persisted registry format,
// so the weakness is kept and acknowledged.

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry(func(string) (*Portfolio, error) { return NewPortfolio(), nil })

	account, err := r.Register("alice", "wonder")
	if err != nil {
		t.Fatalf("Register(alice) error = %v", err)
	}
	if account.Username() != "alice" {
		t.Errorf("Username() = %q, want alice", account.Username())
	}
	p, err := account.Portfolio()
	if err != nil {
		t.Fatalf("Portfolio() error = %v", err)
	}
	if p.Cash() != StartingCash {
		t.Errorf("new account Cash() = %v, want %v", p.Cash(), float64(StartingCash))
	}

	// Registering the same username again is a reported no-op.
	if _, err := r.Register("alice", "other"); !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("second Register(alice) error = %v, want ErrDuplicateUsername", err)
	}
	if got := r.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
	// The original credentials still hold.
	if _, err := r.Login("alice", "wonder"); err != nil {
		t.Errorf("Login(alice, wonder) error = %v", err)
	}
}

func TestRegistry_RegisterValidation(t *testing.T) {
	r := NewRegistry(func(string) (*Portfolio, error) { return NewPortfolio(), nil })

	testCases := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "pw"},
		{"path-hostile username", "../etc/passwd", "pw"},
		{"username with spaces", "a b", "pw"},
		{"overlong username", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "pw"},
		{"empty password", "carol", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := r.Register(tc.username, tc.password); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Register(%q, %q) error = %v, want ErrInvalidArgument", tc.username, tc.password, err)
			}
		})
	}
	if got := r.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

func TestRegistry_Login(t *testing.T) {
	r := NewRegistry(func(string) (*Portfolio, error) { return NewPortfolio(), nil })
	if _, err := r.Register("alice", "wonder"); err != nil {
		t.Fatal(err)
	}

	if _, err := r.Login("alice", "wonder"); err != nil {
		t.Fatalf("Login with correct credentials error = %v", err)
	}
	// Comparison is exact and case-sensitive.
	if _, err := r.Login("alice", "Wonder"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login with wrong case error = %v, want ErrInvalidCredentials", err)
	}

	// Wrong password and unknown user yield the same condition: a caller
	// cannot probe which usernames exist.
	wrongPass := mustLoginErr(t, r, "alice", "nope")
	unknown := mustLoginErr(t, r, "nobody", "nope")
	if !errors.Is(wrongPass, ErrInvalidCredentials) || !errors.Is(unknown, ErrInvalidCredentials) {
		t.Errorf("errors = %v and %v, want ErrInvalidCredentials for both", wrongPass, unknown)
	}
}

func mustLoginErr(t *testing.T, r *Registry, username, password string) error {
	t.Helper()
	_, err := r.Login(username, password)
	if err == nil {
		t.Fatalf("Login(%q, %q) succeeded, want failure", username, password)
	}
	return err
}

func TestRegistry_PortfolioLoaderFailure(t *testing.T) {
	boom := fmt.Errorf("disk on fire")
	r := NewRegistry(func(string) (*Portfolio, error) { return nil, boom })

	if _, err := r.Register("alice", "wonder"); !errors.Is(err, boom) {
		t.Fatalf("Register with failing loader error = %v, want %v", err, boom)
	}
	if got := r.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0 after failed registration", got)
	}
}
