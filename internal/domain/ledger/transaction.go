package ledger

import (
	"time"

	"github.com/minibank-ledger/internal/domain/shared"
)

// Transaction records a single monetary movement in an account's history.
// It is immutable once created: histories are append-only and entries are
// never edited or removed.
type Transaction struct {
	Timestamp          time.Time              `json:"timestamp"`
	Type               shared.TransactionType `json:"type"`
	Amount             int64                  `json:"amount"` // Stored in cents/minor units
	Description        string                 `json:"description"`
	SourceAccount      string                 `json:"source_account,omitempty"`
	DestinationAccount string                 `json:"destination_account,omitempty"`
}

// NewDeposit builds a deposit record crediting the given account.
func NewDeposit(at time.Time, amount int64, description, accountNumber string) Transaction {
	return Transaction{
		Timestamp:          at,
		Type:               shared.TransactionTypeDeposit,
		Amount:             amount,
		Description:        description,
		DestinationAccount: accountNumber,
	}
}

// NewWithdrawal builds a withdrawal record debiting the given account.
func NewWithdrawal(at time.Time, amount int64, description, accountNumber string) Transaction {
	return Transaction{
		Timestamp:     at,
		Type:          shared.TransactionTypeWithdrawal,
		Amount:        amount,
		Description:   description,
		SourceAccount: accountNumber,
	}
}

// NewTransfer builds the record shared by both legs of a transfer. The same
// value is appended to the source and destination histories so both sides
// see identical timestamp, amount, and endpoints.
func NewTransfer(at time.Time, amount int64, description, sourceNumber, destinationNumber string) Transaction {
	return Transaction{
		Timestamp:          at,
		Type:               shared.TransactionTypeTransfer,
		Amount:             amount,
		Description:        description,
		SourceAccount:      sourceNumber,
		DestinationAccount: destinationNumber,
	}
}
