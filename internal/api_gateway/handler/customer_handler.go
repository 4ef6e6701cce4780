package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/minibank-ledger/internal/domain/account"
	"github.com/minibank-ledger/internal/domain/customer"
	"github.com/minibank-ledger/internal/service"
)

// CustomerHandler handles HTTP requests for customer operations
type CustomerHandler struct {
	ledger service.LedgerService
	logger *slog.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(logger *slog.Logger, ledger service.LedgerService) *CustomerHandler {
	return &CustomerHandler{
		ledger: ledger,
		logger: logger,
	}
}

// Create handles registration of a customer. Creation is idempotent per tax
// id: repeating a request returns the already-registered customer unchanged.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "BAD_REQUEST", "Invalid request body: "+err.Error())
		return
	}

	cust := h.ledger.CreateCustomer(req.Name, req.TaxID)
	RespondCreated(c, mapCustomerToResponse(cust))
}

// List returns every customer paired with the accounts they own
func (h *CustomerHandler) List(c *gin.Context) {
	entries := h.ledger.ListCustomersWithAccounts()

	response := make([]CustomerWithAccountsResponse, 0, len(entries))
	for _, entry := range entries {
		accounts := make([]AccountResponse, 0, len(entry.Accounts))
		for _, acc := range entry.Accounts {
			accounts = append(accounts, mapAccountToResponse(acc))
		}
		response = append(response, CustomerWithAccountsResponse{
			Customer: mapCustomerToResponse(entry.Customer),
			Accounts: accounts,
		})
	}
	RespondOK(c, response)
}

// mapCustomerToResponse maps a customer entity to a customer response DTO
func mapCustomerToResponse(cust *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:    cust.ID,
		Name:  cust.Name,
		TaxID: cust.TaxID,
	}
}

// mapAccountToResponse maps an account entity to an account response DTO
func mapAccountToResponse(acc *account.Account) AccountResponse {
	return AccountResponse{
		Number:  acc.Number(),
		Balance: acc.Balance(),
		Owner:   mapCustomerToResponse(acc.Owner()),
	}
}
