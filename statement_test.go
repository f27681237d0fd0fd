package ledger

import (
	"strings"
	"testing"
	"time"
)

func TestFormatEntry(t *testing.T) {
	day := time.Date(2026, time.March, 5, 10, 30, 0, 0, time.UTC)
	alice := &Account{username: "alice", number: "ACC-000001"}

	testCases := []struct {
		name string
		tx   Transaction
		want string
	}{
		{
			name: "deposit shows the own account number",
			tx:   Transaction{Time: day, Kind: Credit, Amount: USD(100), Label: "Deposit"},
			want: "Mar 05 | Credit | ACC-000001     | Deposit" + strings.Repeat(" ", 17) + " |     +$100.00",
		},
		{
			name: "transfer shows the counterparty number",
			tx:   Transaction{Time: day, Kind: Debit, Amount: USD(40), Label: "Sent to bob", Counterparty: "ACC-000002"},
			want: "Mar 05 | Debit  | ACC-000002     | Sent to bob" + strings.Repeat(" ", 13) + " |      -$40.00",
		},
		{
			name: "long label is truncated with a marker",
			tx:   Transaction{Time: day, Kind: Credit, Amount: USD(1), Label: "Received from a very long username"},
			want: "Mar 05 | Credit | ACC-000001     | Received from a very lo… |       +$1.00",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatEntry(alice, tc.tx)
			if got != tc.want {
				t.Errorf("row is\n%q\nwant\n%q", got, tc.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	testCases := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 24, "short"},
		{"exactly-twenty-four-char", 24, "exactly-twenty-four-char"},
		{"twenty-five-characters-xx", 24, "twenty-five-characters-…"},
		{"héllo wörld with accénts and more", 24, "héllo wörld with accént…"},
	}
	for _, tc := range testCases {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestStatementRowsAlign(t *testing.T) {
	header, separator := statementHeader()
	if len(header) != len(separator) {
		t.Errorf("separator length %d does not match header length %d", len(separator), len(header))
	}

	tx := Transaction{Time: time.Now(), Kind: Credit, Amount: USD(12.34), Label: "Deposit"}
	// Alignment must hold once allocation outgrows the six-digit zero padding.
	for _, a := range []*Account{
		{username: "alice", number: "ACC-000001"},
		{username: "late", number: "ACC-1000000"},
	} {
		if row := FormatEntry(a, tx); len(row) != len(header) {
			t.Errorf("row for %s has length %d, want header length %d:\n%s\n%s", a.number, len(row), len(header), header, row)
		}
	}
}

func TestStatement_Order(t *testing.T) {
	l := NewLedger()
	open(t, l, "alice")
	if _, err := l.Deposit("alice", USD(1)); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Deposit("alice", USD(2)); err != nil {
		t.Fatal(err)
	}

	newest, err := l.Statement("alice", NewestFirst)
	if err != nil {
		t.Fatal(err)
	}
	oldest, err := l.Statement("alice", OldestFirst)
	if err != nil {
		t.Fatal(err)
	}
	if len(newest) != 2 || len(oldest) != 2 {
		t.Fatalf("statements have %d and %d rows, want 2 and 2", len(newest), len(oldest))
	}
	if newest[0] != oldest[1] || newest[1] != oldest[0] {
		t.Errorf("orders are not reverses of each other:\n%v\n%v", newest, oldest)
	}

	if _, err := l.Statement("nobody", NewestFirst); err == nil {
		t.Error("statement of unknown account did not fail")
	}
}

func TestAggregatedStatement(t *testing.T) {
	l := NewLedger()
	alice := open(t, l, "alice")
	open(t, l, "bob")
	if _, err := l.Deposit("alice", USD(100)); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)
	if err := l.Transfer("alice", "bob", USD(40)); err != nil {
		t.Fatal(err)
	}

	rows := l.AggregatedStatement()
	if len(rows) != 3 {
		t.Fatalf("aggregated statement has %d rows, want 3", len(rows))
	}
	if !strings.HasPrefix(rows[0], "User: bob (ACC-000002) | ") {
		t.Errorf("first row is %q, want it prefixed with bob", rows[0])
	}
	if !strings.HasPrefix(rows[1], "User: alice ("+alice.Number()+") | ") {
		t.Errorf("second row is %q, want it prefixed with alice", rows[1])
	}
	if !strings.Contains(rows[2], "Deposit") {
		t.Errorf("last row is %q, want the deposit", rows[2])
	}
}

func TestExportStatement(t *testing.T) {
	l := NewLedger()
	open(t, l, "alice")
	open(t, l, "bob")
	if _, err := l.Deposit("alice", USD(100)); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)
	if err := l.Transfer("alice", "bob", USD(40)); err != nil {
		t.Fatal(err)
	}

	blob, err := l.ExportStatement("alice")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(blob, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("export has %d lines, want header, separator and 2 rows:\n%s", len(lines), blob)
	}
	header, separator := statementHeader()
	if lines[0] != header {
		t.Errorf("first line is %q, want the header", lines[0])
	}
	if lines[1] != separator {
		t.Errorf("second line is %q, want the separator", lines[1])
	}
	// most recent first
	if !strings.Contains(lines[2], "Sent to bob") {
		t.Errorf("third line is %q, want the transfer", lines[2])
	}
	if !strings.Contains(lines[3], "Deposit") {
		t.Errorf("fourth line is %q, want the deposit", lines[3])
	}

	if _, err := l.ExportStatement("nobody"); err == nil {
		t.Error("export of unknown account did not fail")
	}
}
