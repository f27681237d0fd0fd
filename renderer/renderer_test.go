package renderer

import (
	"strings"
	"testing"

	"github.com/tanakala/ledger"
)

func testLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	l := ledger.NewLedger()
	if _, err := l.Open("alice", ledger.Profile{FirstName: "Alice", LastName: "Martin"}); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Open("bob", ledger.Profile{}); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Deposit("alice", ledger.M(100, ledger.DefaultCurrency)); err != nil {
		t.Fatal(err)
	}
	if err := l.Transfer("alice", "bob", ledger.M(40, ledger.DefaultCurrency)); err != nil {
		t.Fatal(err)
	}
	return l
}

func TestHistory(t *testing.T) {
	l := testLedger(t)
	a, err := l.Lookup("alice")
	if err != nil {
		t.Fatal(err)
	}

	doc := History(a, ledger.NewestFirst)
	for _, want := range []string{
		"# Account alice (ACC-000001)",
		"Balance: **$60.00**",
		"Sent to bob",
		"-$40.00",
		"Deposit",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("history does not contain %q:\n%s", want, doc)
		}
	}
	// The transfer row shows the counterparty's number, not alice's.
	if !strings.Contains(doc, "ACC-000002") {
		t.Errorf("history does not reference the counterparty account:\n%s", doc)
	}
}

func TestHistory_EmptyJournal(t *testing.T) {
	l := ledger.NewLedger()
	if _, err := l.Open("carol", ledger.Profile{}); err != nil {
		t.Fatal(err)
	}
	a, err := l.Lookup("carol")
	if err != nil {
		t.Fatal(err)
	}
	doc := History(a, ledger.NewestFirst)
	if !strings.Contains(doc, "No transactions yet.") {
		t.Errorf("empty history does not say so:\n%s", doc)
	}
}

func TestOverview(t *testing.T) {
	l := testLedger(t)
	doc := Overview(l)
	for _, want := range []string{
		"# Banker Overview",
		"## Accounts",
		"Alice Martin",
		"ACC-000001",
		"$60.00",
		"$40.00",
		"## Activity",
		"Received from alice",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("overview does not contain %q:\n%s", want, doc)
		}
	}
}

func TestOverview_Empty(t *testing.T) {
	doc := Overview(ledger.NewLedger())
	if !strings.Contains(doc, "No accounts registered yet.") {
		t.Errorf("empty overview does not say so:\n%s", doc)
	}
}
