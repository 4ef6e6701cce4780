package account

import (
	"sync"

	"github.com/minibank-ledger/internal/domain/customer"
	"github.com/minibank-ledger/internal/domain/ledger"
	"github.com/minibank-ledger/internal/domain/shared"
)

// Account represents a bank account: a non-negative balance in minor units
// plus an append-only, chronologically ordered transaction history. Balance
// and history are mutated exclusively through the account's own methods,
// each serialized by a per-account mutex.
type Account struct {
	number string
	owner  *customer.Customer
	clock  shared.Clock

	mu      sync.Mutex
	balance int64 // Stored in cents/minor units, never negative
	history []ledger.Transaction
}

// New creates an empty account owned by the given customer. The account
// number must come from the directory's number generator so it is never
// reassigned.
func New(number string, owner *customer.Customer, clock shared.Clock) *Account {
	return &Account{
		number: number,
		owner:  owner,
		clock:  clock,
	}
}

// Number returns the unique account number.
func (a *Account) Number() string {
	return a.number
}

// Owner returns the customer owning this account.
func (a *Account) Owner() *customer.Customer {
	return a.owner
}

// Balance returns the current balance in minor units.
func (a *Account) Balance() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Deposit adds the specified amount to the account balance and appends a
// deposit record stamped with the current time
func (a *Account) Deposit(amount int64, description string) error {
	if amount <= 0 {
		return shared.ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance += amount
	a.history = append(a.history, ledger.NewDeposit(a.clock.Now(), amount, description, a.number))
	return nil
}

// Withdraw subtracts the specified amount from the account balance and
// appends a withdrawal record. The balance is left untouched on failure.
func (a *Account) Withdraw(amount int64, description string) error {
	if amount <= 0 {
		return shared.ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.balance < amount {
		return shared.ErrInsufficientBalance
	}

	a.balance -= amount
	a.history = append(a.history, ledger.NewWithdrawal(a.clock.Now(), amount, description, a.number))
	return nil
}

// Append records a pre-built transaction without touching the balance. It
// performs no validation: the caller is responsible for having already
// validated and applied the corresponding balance change. The ledger
// service uses it to record the shared transfer entry in both accounts'
// histories.
func (a *Account) Append(tx ledger.Transaction) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history = append(a.history, tx)
}

// Statement returns a copy of the full transaction history in the order the
// transactions were applied.
func (a *Account) Statement() []ledger.Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]ledger.Transaction, len(a.history))
	copy(out, a.history)
	return out
}
