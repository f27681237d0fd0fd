package ledger

import "errors"

// Domain errors reported by ledger operations. All of them are recoverable:
// callers display the message and let the user retry, no ledger state is
// touched on any failure path.
var (
	// ErrDuplicateUsername is returned by Open when the username is taken.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrAccountNotFound is returned when the operating account does not exist.
	// Operating on an unknown account is a caller bug, not a user mistake.
	ErrAccountNotFound = errors.New("account not found")

	// ErrRecipientNotFound is returned by Transfer when the recipient is unknown.
	ErrRecipientNotFound = errors.New("recipient account not found")

	// ErrInvalidAmount is returned when an amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrSelfTransfer is returned by Transfer when sender and recipient match.
	ErrSelfTransfer = errors.New("cannot transfer to the same account")

	// ErrInsufficientBalance is returned by Transfer when the sender cannot cover the amount.
	ErrInsufficientBalance = errors.New("insufficient balance")
)
