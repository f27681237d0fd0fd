package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind identifies the direction of a journal entry.
type Kind int

const (
	// Credit increases the account balance.
	Credit Kind = iota
	// Debit decreases the account balance.
	Debit
)

func (k Kind) String() string {
	switch k {
	case Credit:
		return "Credit"
	case Debit:
		return "Debit"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "Credit":
		return Credit, nil
	case "Debit":
		return Debit, nil
	default:
		return 0, fmt.Errorf("unknown transaction kind: %q", s)
	}
}

// Signed returns the amount with the sign carried by the kind:
// positive for a credit, negative for a debit.
func (k Kind) Signed(amount Money) Money {
	if k == Debit {
		return amount.Neg()
	}
	return amount
}

// Transaction is a single immutable journal entry. The amount is always
// positive, the sign is carried by Kind. Counterparty holds the other
// account's number when the entry originates from a transfer, and is empty
// for deposits. The two entries of a transfer share the same ID and Time.
type Transaction struct {
	ID           uuid.UUID
	Time         time.Time
	Kind         Kind
	Amount       Money
	Label        string
	Counterparty string

	seq int64 // global append order, tie-breaker for aggregated sorting
}

func newTransaction(at time.Time, kind Kind, amount Money, label, counterparty string) Transaction {
	return Transaction{
		ID:           uuid.New(),
		Time:         at,
		Kind:         kind,
		Amount:       amount,
		Label:        label,
		Counterparty: counterparty,
	}
}

// Equal reports whether two transactions are the same journal entry.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID && t.Time.Equal(o.Time) && t.Kind == o.Kind &&
		t.Amount.Equal(o.Amount) && t.Label == o.Label && t.Counterparty == o.Counterparty
}
