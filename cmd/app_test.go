package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"bourse"
)

// useTempDir points the data directory flag at a throwaway dir for the
// duration of one test.
func useTempDir(t *testing.T) string {
	t.Helper()
	d := t.TempDir()
	old := *dataDir
	*dataDir = d
	t.Cleanup(func() { *dataDir = old })
	return d
}

func TestOpenStoreFirstRun(t *testing.T) {
	d := useTempDir(t)

	if _, err := openStore(); err != nil {
		t.Fatalf("openStore() on a fresh dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(d, "secret.key")); err != nil {
		t.Errorf("secret.key not created on first run: %v", err)
	}
	// A second open must reuse the same key, not regenerate it.
	key1, err := os.ReadFile(filepath.Join(d, "secret.key"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := openStore(); err != nil {
		t.Fatalf("openStore() second run: %v", err)
	}
	key2, err := os.ReadFile(filepath.Join(d, "secret.key"))
	if err != nil {
		t.Fatal(err)
	}
	if string(key1) != string(key2) {
		t.Error("secret.key changed between runs")
	}
}

func TestMarketRoundTrip(t *testing.T) {
	useTempDir(t)
	store, err := openStore()
	if err != nil {
		t.Fatal(err)
	}

	market, err := loadMarket(store)
	if err != nil {
		t.Fatalf("loadMarket() on a fresh game: %v", err)
	}
	if len(market.Stocks()) != 0 || len(market.Items()) != 0 {
		t.Fatal("fresh game must start with an empty market")
	}

	if _, err := market.AddStock("ACME", 100, 50); err != nil {
		t.Fatal(err)
	}
	if _, err := market.AddItem("gold", 25, 10); err != nil {
		t.Fatal(err)
	}
	if err := saveMarket(store, market); err != nil {
		t.Fatalf("saveMarket(): %v", err)
	}

	reloaded, err := loadMarket(store)
	if err != nil {
		t.Fatalf("loadMarket() after save: %v", err)
	}
	stock, ok := reloaded.Stock("ACME")
	if !ok || stock.Price() != 100 || stock.Available() != 50 {
		t.Errorf("stock did not survive the round trip: %v", stock)
	}
	if _, ok := reloaded.Item("gold"); !ok {
		t.Error("item did not survive the round trip")
	}
}

func TestPortfolioLoaderFreshPlayer(t *testing.T) {
	useTempDir(t)
	store, err := openStore()
	if err != nil {
		t.Fatal(err)
	}

	load := portfolioLoader(store)
	p, err := load("alice")
	if err != nil {
		t.Fatalf("loading a first-time player: %v", err)
	}
	if p.Cash() != bourse.StartingCash {
		t.Errorf("fresh portfolio cash = %v, want %v", p.Cash(), bourse.StartingCash)
	}

	market := bourse.NewMarket()
	inst, err := market.AddStock("ACME", 100, 50)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Buy(inst, 3); err != nil {
		t.Fatal(err)
	}
	if err := savePortfolio(store, "alice", p); err != nil {
		t.Fatalf("savePortfolio(): %v", err)
	}

	reloaded, err := load("alice")
	if err != nil {
		t.Fatalf("reloading alice: %v", err)
	}
	if got := reloaded.Holding(bourse.Stock, "ACME"); got != 3 {
		t.Errorf("reloaded holding = %d, want 3", got)
	}
	if reloaded.Cash() != p.Cash() {
		t.Errorf("reloaded cash = %v, want %v", reloaded.Cash(), p.Cash())
	}
}

func TestRegistryRoundTrip(t *testing.T) {
	useTempDir(t)
	store, err := openStore()
	if err != nil {
		t.Fatal(err)
	}

	registry, err := loadRegistry(store)
	if err != nil {
		t.Fatalf("loadRegistry() on a fresh game: %v", err)
	}
	if registry.Len() != 0 {
		t.Fatal("fresh game must start with an empty registry")
	}

	if _, err := registry.Register("alice", "s3cret"); err != nil {
		t.Fatal(err)
	}
	if err := saveRegistry(store, registry); err != nil {
		t.Fatalf("saveRegistry(): %v", err)
	}

	reloaded, err := loadRegistry(store)
	if err != nil {
		t.Fatalf("loadRegistry() after save: %v", err)
	}
	if _, err := reloaded.Login("alice", "s3cret"); err != nil {
		t.Errorf("login after reload: %v", err)
	}
	if _, err := reloaded.Login("alice", "wrong"); !errors.Is(err, bourse.ErrInvalidCredentials) {
		t.Errorf("wrong password after reload: %v, want ErrInvalidCredentials", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	useTempDir(t)

	if _, err := currentUser(); err == nil {
		t.Fatal("currentUser() must fail before login")
	}
	if err := writeSession("alice"); err != nil {
		t.Fatalf("writeSession(): %v", err)
	}
	username, err := currentUser()
	if err != nil {
		t.Fatalf("currentUser() after login: %v", err)
	}
	if username != "alice" {
		t.Errorf("currentUser() = %q, want %q", username, "alice")
	}
	if err := clearSession(); err != nil {
		t.Fatalf("clearSession(): %v", err)
	}
	if _, err := currentUser(); err == nil {
		t.Error("currentUser() must fail after logout")
	}
	// Logging out twice is fine.
	if err := clearSession(); err != nil {
		t.Errorf("clearSession() when already logged out: %v", err)
	}
}
