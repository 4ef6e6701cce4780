// Package memory provides in-process implementations of the customer and
// account directories: plain maps guarded by mutexes, with explicit counter
// state so multiple independent ledgers can coexist in one process.
package memory

import (
	"sync"

	"github.com/minibank-ledger/internal/domain/customer"
)

// CustomerDirectory is an in-memory customer.Directory keyed by tax id.
type CustomerDirectory struct {
	mu     sync.RWMutex
	byTax  map[string]*customer.Customer
	sorted []*customer.Customer // insertion order, for reproducible listings
	nextID int
}

// NewCustomerDirectory creates an empty customer directory. Identifiers are
// assigned sequentially starting at 1.
func NewCustomerDirectory() *CustomerDirectory {
	return &CustomerDirectory{
		byTax:  make(map[string]*customer.Customer),
		nextID: 1,
	}
}

// GetByTaxID retrieves a customer by tax id, or nil if none exists
func (d *CustomerDirectory) GetByTaxID(taxID string) *customer.Customer {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.byTax[taxID]
}

// Add creates a customer with the next sequential identifier. The check and
// the insert happen under one lock so concurrent calls with the same tax id
// still yield a single customer record.
func (d *CustomerDirectory) Add(name, taxID string) *customer.Customer {
	d.mu.Lock()
	defer d.mu.Unlock()

	if existing, ok := d.byTax[taxID]; ok {
		return existing
	}

	c := &customer.Customer{
		ID:    d.nextID,
		Name:  name,
		TaxID: taxID,
	}
	d.nextID++
	d.byTax[taxID] = c
	d.sorted = append(d.sorted, c)
	return c
}

// All returns every known customer in insertion order
func (d *CustomerDirectory) All() []*customer.Customer {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*customer.Customer, len(d.sorted))
	copy(out, d.sorted)
	return out
}
