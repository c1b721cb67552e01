package bourse

import (
	"fmt"
	"regexp"
	"sort"
)

// usernames double as persistence blob names, so keep them filesystem-safe.
var usernameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,31}$`)

// ValidateUsername checks that a username is 1 to 32 characters of letters,
// digits, dots, dashes or underscores, starting with a letter or digit.
func ValidateUsername(username string) error {
	if !usernameRe.MatchString(username) {
		return fmt.Errorf("username %q: must match %s: %w", username, usernameRe, ErrInvalidArgument)
	}
	return nil
}

// PortfolioLoader resolves a username to its persisted portfolio, returning
// a fresh default when none was ever saved.
type PortfolioLoader func(username string) (*Portfolio, error)

// UserAccount is an identity plus its portfolio. The portfolio is loaded on
// first reference through the registry's loader.
type UserAccount struct {
	username  string
	password  string // compared verbatim, see Registry.Login
	load      PortfolioLoader
	portfolio *Portfolio
}

// Username returns the account's unique name.
func (a *UserAccount) Username() string { return a.username }

// Portfolio returns the account's portfolio, loading it on first call.
func (a *UserAccount) Portfolio() (*Portfolio, error) {
	if a.portfolio == nil {
		p, err := a.load(a.username)
		if err != nil {
			return nil, fmt.Errorf("portfolio of %q: %w", a.username, err)
		}
		a.portfolio = p
	}
	return a.portfolio, nil
}

// Registry is the sole authority for registration and login. It maps
// usernames to accounts and enforces their uniqueness. Callers persist it
// as a whole after every registration.
type Registry struct {
	index map[string]*UserAccount
	load  PortfolioLoader
}

// NewRegistry returns an empty registry whose accounts resolve their
// portfolios through load.
func NewRegistry(load PortfolioLoader) *Registry {
	return &Registry{index: make(map[string]*UserAccount), load: load}
}

// Len returns the number of registered accounts.
func (r *Registry) Len() int { return len(r.index) }

// Usernames returns all registered usernames, sorted.
func (r *Registry) Usernames() []string {
	names := make([]string, 0, len(r.index))
	for name := range r.index {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Account looks up a registered account by username.
func (r *Registry) Account(username string) (*UserAccount, bool) {
	account, ok := r.index[username]
	return account, ok
}

// Register creates an account. A taken username is reported as
// ErrDuplicateUsername and leaves the registry unchanged. The new account's
// portfolio is loaded-or-defaulted immediately.
func (r *Registry) Register(username, password string) (*UserAccount, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, fmt.Errorf("register %q: empty password: %w", username, ErrInvalidArgument)
	}
	if _, ok := r.index[username]; ok {
		return nil, fmt.Errorf("register %q: %w", username, ErrDuplicateUsername)
	}
	account := &UserAccount{username: username, password: password, load: r.load}
	if _, err := account.Portfolio(); err != nil {
		return nil, err
	}
	r.index[username] = account
	return account, nil
}

// Login returns the account when the username exists and the password
// matches exactly. Both failure modes return ErrInvalidCredentials: the
// caller cannot tell an unknown user from a wrong password.
func (r *Registry) Login(username, password string) (*UserAccount, error) {
	account, ok := r.index[username]
	if !ok || account.password != password {
		return nil, fmt.Errorf("login %q: %w", username, ErrInvalidCredentials)
	}
	return account, nil
}
