package handler

// CreateCustomerRequest represents a request to register a customer
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	TaxID string `json:"tax_id" binding:"required"`
}

// OpenAccountRequest represents a request to open an account for an
// existing customer
type OpenAccountRequest struct {
	TaxID string `json:"tax_id" binding:"required"`
}

// MovementRequest represents a deposit or withdrawal request. The amount is
// a decimal currency value; the engine converts it to minor units.
type MovementRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// TransferRequest represents a request to move money between two accounts
type TransferRequest struct {
	SourceAccount      string  `json:"source_account" binding:"required"`
	DestinationAccount string  `json:"destination_account" binding:"required"`
	Amount             float64 `json:"amount" binding:"required"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	Number  string           `json:"number"`
	Balance int64            `json:"balance"`
	Owner   CustomerResponse `json:"owner"`
}

// CustomerWithAccountsResponse pairs a customer with their accounts in the
// listing endpoint
type CustomerWithAccountsResponse struct {
	Customer CustomerResponse  `json:"customer"`
	Accounts []AccountResponse `json:"accounts"`
}

// TransactionResponse represents a statement entry in API responses
type TransactionResponse struct {
	Timestamp          string `json:"timestamp"`
	Type               string `json:"type"`
	Amount             int64  `json:"amount"`
	Description        string `json:"description"`
	SourceAccount      string `json:"source_account,omitempty"`
	DestinationAccount string `json:"destination_account,omitempty"`
}

// StatementResponse represents an account's transaction history
type StatementResponse struct {
	AccountNumber string                `json:"account_number"`
	Transactions  []TransactionResponse `json:"transactions"`
}
