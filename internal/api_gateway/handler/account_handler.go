package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/minibank-ledger/internal/service"
)

// AccountHandler handles HTTP requests for account operations
type AccountHandler struct {
	ledger service.LedgerService
	logger *slog.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(logger *slog.Logger, ledger service.LedgerService) *AccountHandler {
	return &AccountHandler{
		ledger: ledger,
		logger: logger,
	}
}

// Open handles opening a new account for an existing customer, returning
// 404 when the tax id is unknown
func (h *AccountHandler) Open(c *gin.Context) {
	var req OpenAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "BAD_REQUEST", "Invalid request body: "+err.Error())
		return
	}

	acc, err := h.ledger.OpenAccount(req.TaxID)
	if err != nil {
		respondLedgerError(c, h.logger, err)
		return
	}

	RespondCreated(c, mapAccountToResponse(acc))
}

// GetByNumber retrieves an account summary by number, returning 404 if it
// does not exist
func (h *AccountHandler) GetByNumber(c *gin.Context) {
	number := c.Param("number")

	acc, err := h.ledger.FindAccount(number)
	if err != nil {
		respondLedgerError(c, h.logger, err)
		return
	}

	RespondOK(c, mapAccountToResponse(acc))
}
