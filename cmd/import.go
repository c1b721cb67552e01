package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"bourse"
	"github.com/google/subcommands"
)

type importStocksCmd struct {
	file string
	path string
}

func (*importStocksCmd) Name() string     { return "import-stocks" }
func (*importStocksCmd) Synopsis() string { return "seed the market from a JSON quote dump" }
func (*importStocksCmd) Usage() string {
	return `bourse import-stocks -file <quotes.json> [-path <jsonpath>]

  Lists one stock per entry of a JSON quote document. Entries are objects
  with "symbol", "price" and "quantity" properties; by default they are
  read from a top-level "quotes" array, and -path selects entries nested
  anywhere else. Symbols already on the market are skipped.
`
}

func (c *importStocksCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "JSON quote document to import (required)")
	f.StringVar(&c.path, "path", bourse.DefaultQuotePath, "JSONPath expression selecting the quote entries")
}

func (c *importStocksCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: the -file flag is required.")
		return subcommands.ExitUsageError
	}
	if _, err := currentUser(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	r, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening quote document: %v\n", err)
		return subcommands.ExitFailure
	}
	defer r.Close()

	quotes, err := bourse.ImportQuotes(r, c.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	if len(quotes) == 0 {
		fmt.Println("No quotes found; nothing to import.")
		return subcommands.ExitSuccess
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	market, err := loadMarket(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market: %v\n", err)
		return subcommands.ExitFailure
	}

	added := 0
	for _, q := range quotes {
		_, err := market.AddStock(q.Symbol, q.Price, q.Quantity)
		if errors.Is(err, bourse.ErrDuplicateInstrument) {
			fmt.Printf("Skipping %s: already on the market.\n", q.Symbol)
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing %s: %v\n", q.Symbol, err)
			return subcommands.ExitFailure
		}
		added++
	}

	if added > 0 {
		if err := saveMarket(store, market); err != nil {
			fmt.Fprintf(os.Stderr, "Error persisting market: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	fmt.Printf("Imported %d of %d quotes.\n", added, len(quotes))
	return subcommands.ExitSuccess
}
