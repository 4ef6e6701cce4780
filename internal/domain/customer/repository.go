package customer

// Directory stores customers keyed by their tax id
type Directory interface {
	// GetByTaxID retrieves a customer by tax id, or nil if none exists
	GetByTaxID(taxID string) *Customer

	// Add creates a customer with the next sequential identifier. It is
	// idempotent: when a customer with the same tax id already exists, the
	// existing customer is returned unchanged.
	Add(name, taxID string) *Customer

	// All returns every known customer in insertion order
	All() []*Customer
}

// ErrCustomerNotFound indicates missing customer
type ErrCustomerNotFound struct {
	TaxID string
}

func (e ErrCustomerNotFound) Error() string {
	return "customer not found: " + e.TaxID
}
