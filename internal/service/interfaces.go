package service

import (
	"github.com/minibank-ledger/internal/domain/account"
	"github.com/minibank-ledger/internal/domain/customer"
	"github.com/minibank-ledger/internal/domain/ledger"
)

// CustomerAccounts pairs a customer with the accounts they own
type CustomerAccounts struct {
	Customer *customer.Customer
	Accounts []*account.Account
}

// LedgerService orchestrates customer and account creation plus the monetary
// operations against the two directories. Every operation is synchronous and
// either fully applies or fails before any mutation; validation failures
// propagate to the caller without internal retries.
type LedgerService interface {
	// CreateCustomer registers a customer, returning the existing record
	// unchanged when the tax id is already known
	CreateCustomer(name, taxID string) *customer.Customer

	// OpenAccount creates a new account for an existing customer
	// Returns ErrCustomerNotFound if the tax id is unknown
	OpenAccount(taxID string) (*account.Account, error)

	// Deposit credits the decimal value to the account
	// Returns ErrAccountNotFound or ErrInvalidAmount
	Deposit(accountNumber string, value float64) error

	// Withdraw debits the decimal value from the account
	// Returns ErrAccountNotFound, ErrInvalidAmount, or ErrInsufficientBalance
	Withdraw(accountNumber string, value float64) error

	// Transfer moves the decimal value between two distinct accounts,
	// recording a shared transfer entry in both histories
	Transfer(sourceNumber, destinationNumber string, value float64) error

	// FindAccount resolves an account by number
	// Returns ErrAccountNotFound if the account does not exist
	FindAccount(accountNumber string) (*account.Account, error)

	// ListCustomersWithAccounts returns every customer paired with their
	// accounts (possibly empty), in customer insertion order
	ListCustomersWithAccounts() []CustomerAccounts

	// Statement returns the account's full history in chronological order
	// Returns ErrAccountNotFound if the account does not exist
	Statement(accountNumber string) ([]ledger.Transaction, error)
}
