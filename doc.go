// Package bourse implements the engine of a single-user trading game: a
// simulated market of stocks and general goods whose prices random-walk
// over time, traded against a personal cash balance and holdings ledger.
//
// The core pieces are:
//   - Market: the registry of tradable instruments, split into a stock and
//     an item namespace, with bulk repricing of all stocks.
//   - PriceModel: the stochastic rule evolving one stock price by one tick.
//   - Portfolio: a user's cash and holdings, with the transactional buy and
//     sell state transitions and their invariants (balance sufficiency,
//     inventory sufficiency, flat fee on both legs, both sides of a trade
//     updated together).
//   - Registry: usernames to accounts, registration and login.
//   - Versioned codecs turning market, portfolio and registry state into
//     records that the vault package seals onto disk.
//
// Everything is single-threaded by design: the only clock advancing the
// market is an explicit Reprice call, triggered after trades and by the
// refresh command of the `bourse` CLI built on this package.
package bourse
