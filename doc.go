// Package ledger provides the core types and operations of a small retail
// bank: account registration, deposits, transfers between accounts, and the
// journals that record every movement of money.
//
// The core functionalities include:
//   - Account Management: Registering account holders under a unique username,
//     allocating sequential account numbers, and keeping holder profiles.
//   - Ledger Operations: Depositing funds and transferring money between
//     accounts, with balances updated atomically and every movement recorded
//     as a journal entry.
//   - Transaction Journal: An append-only, per-account record of credits and
//     debits, plus an aggregated view across all accounts for the banker.
//   - Statement Formatting: Rendering journals as fixed-width text statements
//     suitable for printing or export.
//   - Data Persistence: Encoding and decoding the ledger as a human-readable,
//     version-controllable JSONL event file.
//
// This package serves as the foundational logic for the `teller` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package ledger
