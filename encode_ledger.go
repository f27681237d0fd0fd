package ledger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EventType is a typed string for identifying ledger events.
type EventType string

// Event types recorded in the ledger file.
const (
	EvtOpen     EventType = "open"
	EvtDeposit  EventType = "deposit"
	EvtTransfer EventType = "transfer"
)

// Event is one line of the ledger file: a single operation that, replayed in
// order, rebuilds the ledger state.
type Event interface {
	What() EventType  // What returns the event type ("open", "deposit", "transfer").
	When() time.Time  // When returns the instant the operation happened.
	apply(l *Ledger) error
}

// Apply replays a single event against the ledger, going through the same
// validation as a live operation.
func (l *Ledger) Apply(e Event) error {
	return e.apply(l)
}

type baseEvent struct {
	Event EventType `json:"event"`
	Time  time.Time `json:"time"`
}

func (e baseEvent) What() EventType { return e.Event }
func (e baseEvent) When() time.Time { return e.Time }

// amountField is a specialized struct to read an event amount in two fields.
type amountField struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a amountField) Money() Money {
	cur := a.Currency
	if cur == "" {
		cur = DefaultCurrency
	}
	return M(a.Amount, cur)
}

// OpenEvent records an account creation. The allocated number is recorded so
// that replay can detect a ledger file whose lines were reordered or dropped.
type OpenEvent struct {
	baseEvent
	Username string  `json:"username"`
	Number   string  `json:"number"`
	Profile  Profile `json:"profile"`
}

// NewOpenEvent creates an account-creation event.
func NewOpenEvent(at time.Time, username, number string, profile Profile) OpenEvent {
	return OpenEvent{
		baseEvent: baseEvent{Event: EvtOpen, Time: at},
		Username:  username,
		Number:    number,
		Profile:   profile,
	}
}

func (e OpenEvent) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEvent)
	w.Append("username", e.Username)
	w.Optional("number", e.Number)
	if e.Profile != (Profile{}) {
		w.Append("profile", e.Profile)
	}
	return w.MarshalJSON()
}

func (e OpenEvent) apply(l *Ledger) error {
	// Verify before opening, so a mismatch leaves the ledger untouched.
	if e.Number != "" {
		if want := l.nextAccountNumber(); e.Number != want {
			return fmt.Errorf("account %q was recorded as %s but replay allocates %s", e.Username, e.Number, want)
		}
	}
	_, err := l.openAt(e.Time, e.Username, e.Profile)
	return err
}

// DepositEvent records a deposit.
type DepositEvent struct {
	baseEvent
	Username string
	Amount   Money
}

// NewDepositEvent creates a deposit event.
func NewDepositEvent(at time.Time, username string, amount Money) DepositEvent {
	return DepositEvent{
		baseEvent: baseEvent{Event: EvtDeposit, Time: at},
		Username:  username,
		Amount:    amount,
	}
}

func (e DepositEvent) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEvent)
	w.Append("username", e.Username)
	w.EmbedFrom(e.Amount)
	return w.MarshalJSON()
}

func (e *DepositEvent) UnmarshalJSON(data []byte) error {
	var temp struct {
		baseEvent
		amountField
		Username string `json:"username"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	e.baseEvent = temp.baseEvent
	e.Username = temp.Username
	e.Amount = temp.Money()
	return nil
}

func (e DepositEvent) apply(l *Ledger) error {
	_, err := l.depositAt(e.Time, e.Username, e.Amount)
	return err
}

// TransferEvent records a transfer between two accounts.
type TransferEvent struct {
	baseEvent
	From   string
	To     string
	Amount Money
}

// NewTransferEvent creates a transfer event.
func NewTransferEvent(at time.Time, from, to string, amount Money) TransferEvent {
	return TransferEvent{
		baseEvent: baseEvent{Event: EvtTransfer, Time: at},
		From:      from,
		To:        to,
		Amount:    amount,
	}
}

func (e TransferEvent) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEvent)
	w.Append("from", e.From)
	w.Append("to", e.To)
	w.EmbedFrom(e.Amount)
	return w.MarshalJSON()
}

func (e *TransferEvent) UnmarshalJSON(data []byte) error {
	var temp struct {
		baseEvent
		amountField
		From string `json:"from"`
		To   string `json:"to"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	e.baseEvent = temp.baseEvent
	e.From = temp.From
	e.To = temp.To
	e.Amount = temp.Money()
	return nil
}

func (e TransferEvent) apply(l *Ledger) error {
	return l.transferAt(e.Time, e.From, e.To, e.Amount)
}

// DecodeEvent decodes a single JSON event line.
func DecodeEvent(line []byte) (Event, error) {
	var identifier struct {
		Event EventType `json:"event"`
	}
	if err := json.Unmarshal(line, &identifier); err != nil {
		return nil, fmt.Errorf("could not identify event in line %q: %w", string(line), err)
	}

	switch identifier.Event {
	case EvtOpen:
		var e OpenEvent
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("could not decode open event: %w", err)
		}
		return e, nil
	case EvtDeposit:
		var e DepositEvent
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("could not decode deposit event: %w", err)
		}
		return e, nil
	case EvtTransfer:
		var e TransferEvent
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("could not decode transfer event: %w", err)
		}
		return e, nil
	default:
		return nil, fmt.Errorf("unknown event type %q", identifier.Event)
	}
}

// DecodeLedger reads a stream of JSONL events and replays them, in file
// order, into a fresh ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	l := NewLedger()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		e, err := DecodeEvent(lineBytes)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if err := l.Apply(e); err != nil {
			return nil, fmt.Errorf("line %d: could not replay %s event: %w", line, e.What(), err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger stream: %w", err)
	}
	return l, nil
}

// EncodeEvent writes a single event as one JSON line.
func EncodeEvent(w io.Writer, e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("could not encode %s event: %w", e.What(), err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write %s event: %w", e.What(), err)
	}
	return nil
}

// EncodeLedger writes the ledger state as a canonical event stream: account
// openings first, in allocation order, then every money movement in global
// append order. Replaying the output yields the same state.
func (l *Ledger) EncodeLedger(w io.Writer) error {
	byNumber := make(map[string]string) // account number -> username
	for a := range l.Accounts() {
		byNumber[a.Number()] = a.Username()
		ev := NewOpenEvent(a.OpenedAt(), a.Username(), a.Number(), a.Profile())
		if err := EncodeEvent(w, ev); err != nil {
			return err
		}
	}
	for a, tx := range l.Entries() {
		var ev Event
		switch {
		case tx.Kind == Credit && tx.Counterparty == "":
			ev = NewDepositEvent(tx.Time, a.Username(), tx.Amount)
		case tx.Kind == Debit && tx.Counterparty != "":
			to, ok := byNumber[tx.Counterparty]
			if !ok {
				return fmt.Errorf("entry %s references unknown account number %s", tx.ID, tx.Counterparty)
			}
			ev = NewTransferEvent(tx.Time, a.Username(), to, tx.Amount)
		default:
			// The credit side of a transfer is recreated by replaying the
			// transfer event emitted for its debit twin.
			continue
		}
		if err := EncodeEvent(w, ev); err != nil {
			return err
		}
	}
	return nil
}
