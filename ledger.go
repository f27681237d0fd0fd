package ledger

import (
	"fmt"
	"iter"
	"sync"
	"time"
)

// DefaultCurrency is the single currency this ledger operates in.
const DefaultCurrency = "USD"

// accountNumberFormat renders the monotonically increasing allocation counter.
const accountNumberFormat = "ACC-%06d"

// Ledger is the aggregate of all accounts and their transaction journals.
//
// A single mutex serializes every mutation, so a transfer's debit and credit
// (and their journal appends) are one indivisible unit relative to any other
// operation, and account-number allocation can never hand out the same number
// twice. Reads take the read lock and return snapshots, never live state.
type Ledger struct {
	mu         sync.RWMutex
	accounts   map[string]*Account // indexed by username
	order      []*Account          // insertion order, for aggregation views
	nextNumber int64
	nextSeq    int64
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{accounts: make(map[string]*Account)}
}

// Open creates a new zero-balance account with an empty journal.
// It fails with ErrDuplicateUsername if the username already exists.
func (l *Ledger) Open(username string, profile Profile) (*Account, error) {
	return l.openAt(time.Now(), username, profile)
}

func (l *Ledger) openAt(at time.Time, username string, profile Profile) (*Account, error) {
	if username == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.accounts[username]; exists {
		return nil, fmt.Errorf("cannot open account %q: %w", username, ErrDuplicateUsername)
	}

	l.nextNumber++
	a := &Account{
		username: username,
		number:   fmt.Sprintf(accountNumberFormat, l.nextNumber),
		profile:  profile,
		openedAt: at,
		balance:  M(0, DefaultCurrency),
	}
	l.accounts[username] = a
	l.order = append(l.order, a)
	return a.snapshot(), nil
}

// nextAccountNumber returns the number the next opened account will receive.
func (l *Ledger) nextAccountNumber() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return fmt.Sprintf(accountNumberFormat, l.nextNumber+1)
}

// Lookup returns a snapshot of the account registered under username,
// or ErrAccountNotFound.
func (l *Ledger) Lookup(username string) (*Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	a, ok := l.accounts[username]
	if !ok {
		return nil, fmt.Errorf("lookup %q: %w", username, ErrAccountNotFound)
	}
	return a.snapshot(), nil
}

// Accounts returns account snapshots in insertion order.
func (l *Ledger) Accounts() iter.Seq[*Account] {
	l.mu.RLock()
	snapshots := make([]*Account, 0, len(l.order))
	for _, a := range l.order {
		snapshots = append(snapshots, a.snapshot())
	}
	l.mu.RUnlock()

	return func(yield func(*Account) bool) {
		for _, a := range snapshots {
			if !yield(a) {
				return
			}
		}
	}
}

// Deposit credits amount to the account and appends one credit entry labeled
// "Deposit". It returns the new balance.
func (l *Ledger) Deposit(username string, amount Money) (Money, error) {
	return l.depositAt(time.Now(), username, amount)
}

func (l *Ledger) depositAt(at time.Time, username string, amount Money) (Money, error) {
	if !amount.IsPositive() || amount.HasSubunits() {
		return Money{}, fmt.Errorf("deposit of %s: %w", amount, ErrInvalidAmount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.accounts[username]
	if !ok {
		return Money{}, fmt.Errorf("deposit to %q: %w", username, ErrAccountNotFound)
	}

	a.balance = a.balance.Add(amount)
	l.append(a, newTransaction(at, Credit, amount, "Deposit", ""))
	return a.balance, nil
}

// Transfer moves amount from sender to recipient as one atomic unit: both
// balances change and both journal entries are appended together, or nothing
// happens at all. The two entries share the same timestamp and ID, and each
// records the other side's account number as counterparty.
func (l *Ledger) Transfer(sender, recipient string, amount Money) error {
	return l.transferAt(time.Now(), sender, recipient, amount)
}

func (l *Ledger) transferAt(at time.Time, sender, recipient string, amount Money) error {
	// Validation order is part of the contract: exactly one error is reported.
	if !amount.IsPositive() || amount.HasSubunits() {
		return fmt.Errorf("transfer of %s: %w", amount, ErrInvalidAmount)
	}
	if sender == recipient {
		return fmt.Errorf("transfer from %q: %w", sender, ErrSelfTransfer)
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	from, ok := l.accounts[sender]
	if !ok {
		return fmt.Errorf("transfer from %q: %w", sender, ErrAccountNotFound)
	}
	to, ok := l.accounts[recipient]
	if !ok {
		return fmt.Errorf("transfer to %q: %w", recipient, ErrRecipientNotFound)
	}
	if from.balance.LessThan(amount) {
		return fmt.Errorf("transfer of %s from %q: %w", amount, sender, ErrInsufficientBalance)
	}

	from.balance = from.balance.Sub(amount)
	to.balance = to.balance.Add(amount)

	debit := newTransaction(at, Debit, amount, "Sent to "+recipient, to.number)
	credit := debit
	credit.Kind = Credit
	credit.Label = "Received from " + sender
	credit.Counterparty = from.number

	// The credit is appended first so that aggregated views, which break
	// timestamp ties by append order, list the received side ahead of the
	// sent side.
	l.append(to, credit)
	l.append(from, debit)
	return nil
}

// append stamps the entry with the next global sequence number and adds it to
// the account's journal. Must be called with the write lock held.
func (l *Ledger) append(a *Account, tx Transaction) {
	l.nextSeq++
	tx.seq = l.nextSeq
	a.append(tx)
}
