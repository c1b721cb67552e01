// Package cmd implements the CLI application driving the trading game.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"bourse"
	"bourse/vault"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Register registers every game command on the commander.
func Register(c *subcommands.Commander) {
	c.Register(&marketCmd{}, "market")
	c.Register(&refreshCmd{}, "market")
	c.Register(&addStockCmd{}, "market")
	c.Register(&addItemCmd{}, "market")
	c.Register(&importStocksCmd{}, "market")
	c.Register(&historyCmd{}, "market")

	c.Register(&buyStockCmd{}, "trading")
	c.Register(&sellStockCmd{}, "trading")
	c.Register(&buyItemCmd{}, "trading")
	c.Register(&sellItemCmd{}, "trading")
	c.Register(&portfolioCmd{}, "trading")
	c.Register(&feeCmd{}, "trading")

	c.Register(&registerCmd{}, "accounts")
	c.Register(&loginCmd{}, "accounts")
	c.Register(&logoutCmd{}, "accounts")

	c.Register(&topicCmd{}, "help")
}

// Completion describes the CLI to the shell completion machinery.
func Completion() *complete.Command {
	sub := make(map[string]*complete.Command)
	for _, name := range []string{
		"market", "refresh", "add-stock", "add-item", "import-stocks", "history",
		"buy-stock", "sell-stock", "buy-item", "sell-item", "portfolio", "fee",
		"register", "login", "logout", "topic", "help", "flags", "commands",
	} {
		sub[name] = &complete.Command{}
	}
	return &complete.Command{
		Sub:   sub,
		Flags: map[string]complete.Predictor{"dir": predict.Dirs("*")},
	}
}

// as a CLI application, it is short lived, so a flag as app-wide state is ok.

var dataDir = flag.String("dir", "", "Path to the game data directory (default $BOURSE_DIR or .bourse)")

func dir() string {
	if *dataDir != "" {
		return *dataDir
	}
	if d := os.Getenv("BOURSE_DIR"); d != "" {
		return d
	}
	return ".bourse"
}

// openStore opens the sealed blob store in the data directory, generating
// the secret key on first run.
func openStore() (*vault.Store, error) {
	if err := os.MkdirAll(dir(), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create data directory %q: %w", dir(), err)
	}
	secret, err := vault.LoadSecret(filepath.Join(dir(), "secret.key"))
	if err != nil {
		return nil, err
	}
	return vault.NewStore(dir(), secret)
}

// loadMarket reads the persisted market, or an empty one on a fresh game.
func loadMarket(store *vault.Store) (*bourse.Market, error) {
	b, err := store.LoadBlob(vault.MarketBlob)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("no market saved yet, starting with an empty one")
		return bourse.NewMarket(), nil
	}
	if err != nil {
		return nil, err
	}
	return bourse.DecodeMarket(b)
}

func saveMarket(store *vault.Store, m *bourse.Market) error {
	b, err := bourse.EncodeMarket(m)
	if err != nil {
		return err
	}
	return store.SaveBlob(vault.MarketBlob, b)
}

// portfolioLoader resolves usernames to their persisted portfolios, handing
// out a fresh one to first-time players.
func portfolioLoader(store *vault.Store) bourse.PortfolioLoader {
	return func(username string) (*bourse.Portfolio, error) {
		b, err := store.LoadBlob(vault.PortfolioBlob(username))
		if errors.Is(err, fs.ErrNotExist) {
			return bourse.NewPortfolio(), nil
		}
		if err != nil {
			return nil, err
		}
		return bourse.DecodePortfolio(b)
	}
}

func savePortfolio(store *vault.Store, username string, p *bourse.Portfolio) error {
	b, err := bourse.EncodePortfolio(p)
	if err != nil {
		return err
	}
	return store.SaveBlob(vault.PortfolioBlob(username), b)
}

// loadRegistry reads the persisted user registry, or an empty one on a
// fresh game.
func loadRegistry(store *vault.Store) (*bourse.Registry, error) {
	b, err := store.LoadBlob(vault.RegistryBlob)
	if errors.Is(err, fs.ErrNotExist) {
		return bourse.NewRegistry(portfolioLoader(store)), nil
	}
	if err != nil {
		return nil, err
	}
	return bourse.DecodeRegistry(b, portfolioLoader(store))
}

func saveRegistry(store *vault.Store, r *bourse.Registry) error {
	b, err := bourse.EncodeRegistry(r)
	if err != nil {
		return err
	}
	return store.SaveBlob(vault.RegistryBlob, b)
}
