package customer

// Customer represents an account holder, identified by a unique tax id.
// Customers are created once per tax id and never mutated or deleted; every
// account a customer owns shares the same *Customer value.
type Customer struct {
	ID    int    `json:"id"` // Assigned sequentially by the directory
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
}
