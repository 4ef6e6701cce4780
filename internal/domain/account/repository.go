package account

import "github.com/minibank-ledger/internal/domain/customer"

// Directory stores accounts keyed by their account number
type Directory interface {
	// NextNumber returns a fresh, previously unused account number. Numbers
	// form a monotonically increasing sequence and are never reassigned.
	NextNumber() string

	// Add creates and stores a new account owned by the given customer. The
	// number must have been obtained from NextNumber.
	Add(number string, owner *customer.Customer) *Account

	// Find retrieves an account by number, or nil if none exists
	Find(number string) *Account

	// ByCustomer returns the accounts owned by the customer with the given
	// tax id, in insertion order
	ByCustomer(taxID string) []*Account

	// All returns every known account in insertion order
	All() []*Account
}

// ErrAccountNotFound indicates missing account
type ErrAccountNotFound struct {
	Number string
}

func (e ErrAccountNotFound) Error() string {
	return "account not found: " + e.Number
}
