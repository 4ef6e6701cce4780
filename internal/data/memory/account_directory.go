package memory

import (
	"strconv"
	"sync"

	"github.com/minibank-ledger/internal/domain/account"
	"github.com/minibank-ledger/internal/domain/customer"
	"github.com/minibank-ledger/internal/domain/shared"
)

// DefaultFirstAccountNumber is the first number handed out by a fresh
// account directory.
const DefaultFirstAccountNumber = 1001

// AccountDirectory is an in-memory account.Directory keyed by account
// number. The number generator is directory-owned counter state, so the
// uniqueness guarantee holds under concurrent OpenAccount calls.
type AccountDirectory struct {
	clock shared.Clock

	mu       sync.RWMutex
	byNumber map[string]*account.Account
	sorted   []*account.Account // insertion order
	nextSeq  int
}

// NewAccountDirectory creates an empty account directory whose numbers start
// at firstNumber. Accounts created here stamp transactions with the given
// clock.
func NewAccountDirectory(clock shared.Clock, firstNumber int) *AccountDirectory {
	if firstNumber <= 0 {
		firstNumber = DefaultFirstAccountNumber
	}
	return &AccountDirectory{
		clock:    clock,
		byNumber: make(map[string]*account.Account),
		nextSeq:  firstNumber,
	}
}

// NextNumber returns a fresh, previously unused account number
func (d *AccountDirectory) NextNumber() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := strconv.Itoa(d.nextSeq)
	d.nextSeq++
	return n
}

// Add creates and stores a new account owned by the given customer
func (d *AccountDirectory) Add(number string, owner *customer.Customer) *account.Account {
	acc := account.New(number, owner, d.clock)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.byNumber[number] = acc
	d.sorted = append(d.sorted, acc)
	return acc
}

// Find retrieves an account by number, or nil if none exists
func (d *AccountDirectory) Find(number string) *account.Account {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.byNumber[number]
}

// ByCustomer returns the accounts owned by the customer with the given tax id
func (d *AccountDirectory) ByCustomer(taxID string) []*account.Account {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []*account.Account
	for _, acc := range d.sorted {
		if acc.Owner().TaxID == taxID {
			out = append(out, acc)
		}
	}
	return out
}

// All returns every known account in insertion order
func (d *AccountDirectory) All() []*account.Account {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*account.Account, len(d.sorted))
	copy(out, d.sorted)
	return out
}
