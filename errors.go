package bourse

import "errors"

// The conditions below are all recoverable: a command that hits one reports
// it to the user and leaves every piece of state untouched. None of them is
// fatal to the session.
var (
	// ErrInsufficientFunds rejects a buy whose total cost, fee included,
	// exceeds the portfolio's cash balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientInventory rejects a buy for more units than the market
	// has available.
	ErrInsufficientInventory = errors.New("insufficient inventory")

	// ErrInsufficientHoldings rejects a sell for more units than the
	// portfolio holds.
	ErrInsufficientHoldings = errors.New("insufficient holdings")

	// ErrInstrumentNotFound reports a lookup for a symbol the market does
	// not know.
	ErrInstrumentNotFound = errors.New("instrument not found")

	// ErrDuplicateInstrument reports an attempt to add a symbol that
	// already exists in its namespace. The market is left unchanged.
	ErrDuplicateInstrument = errors.New("instrument already exists")

	// ErrDuplicateUsername reports an attempt to register a taken username.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidCredentials reports a failed login. Unknown usernames and
	// wrong passwords are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidArgument rejects calls the surface should have validated,
	// such as negative quantities or prices.
	ErrInvalidArgument = errors.New("invalid argument")
)
