package ledger

import "testing"

// USD is a helper for tests to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// open is a helper that opens an account and fails the test on error.
func open(t *testing.T, l *Ledger, username string) *Account {
	t.Helper()
	a, err := l.Open(username, Profile{})
	if err != nil {
		t.Fatalf("could not open account %q: %v", username, err)
	}
	return a
}

// lookup is a helper that fetches an account snapshot and fails the test on error.
func lookup(t *testing.T, l *Ledger, username string) *Account {
	t.Helper()
	a, err := l.Lookup(username)
	if err != nil {
		t.Fatalf("could not lookup account %q: %v", username, err)
	}
	return a
}

// journal collects an account's entries in creation order.
func journal(t *testing.T, l *Ledger, username string) []Transaction {
	t.Helper()
	var txs []Transaction
	for tx := range lookup(t, l, username).Chronological() {
		txs = append(txs, tx)
	}
	return txs
}
