package handler

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/minibank-ledger/internal/domain/ledger"
	"github.com/minibank-ledger/internal/service"
)

// TransactionHandler handles HTTP requests for monetary movements and
// statements
type TransactionHandler struct {
	ledger service.LedgerService
	logger *slog.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(logger *slog.Logger, ledger service.LedgerService) *TransactionHandler {
	return &TransactionHandler{
		ledger: ledger,
		logger: logger,
	}
}

// Deposit credits a decimal amount to the account in the path
func (h *TransactionHandler) Deposit(c *gin.Context) {
	number := c.Param("number")

	var req MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "BAD_REQUEST", "Invalid request body: "+err.Error())
		return
	}

	if err := h.ledger.Deposit(number, req.Amount); err != nil {
		respondLedgerError(c, h.logger, err)
		return
	}

	h.respondWithAccount(c, number)
}

// Withdraw debits a decimal amount from the account in the path
func (h *TransactionHandler) Withdraw(c *gin.Context) {
	number := c.Param("number")

	var req MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "BAD_REQUEST", "Invalid request body: "+err.Error())
		return
	}

	if err := h.ledger.Withdraw(number, req.Amount); err != nil {
		respondLedgerError(c, h.logger, err)
		return
	}

	h.respondWithAccount(c, number)
}

// Transfer moves a decimal amount between the two accounts in the body
func (h *TransactionHandler) Transfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "BAD_REQUEST", "Invalid request body: "+err.Error())
		return
	}

	if err := h.ledger.Transfer(req.SourceAccount, req.DestinationAccount, req.Amount); err != nil {
		respondLedgerError(c, h.logger, err)
		return
	}

	src, err := h.ledger.FindAccount(req.SourceAccount)
	if err != nil {
		respondLedgerError(c, h.logger, err)
		return
	}
	dst, err := h.ledger.FindAccount(req.DestinationAccount)
	if err != nil {
		respondLedgerError(c, h.logger, err)
		return
	}

	RespondOK(c, gin.H{
		"source":      mapAccountToResponse(src),
		"destination": mapAccountToResponse(dst),
	})
}

// Statement returns the account's full transaction history in the order the
// transactions were applied
func (h *TransactionHandler) Statement(c *gin.Context) {
	number := c.Param("number")

	history, err := h.ledger.Statement(number)
	if err != nil {
		respondLedgerError(c, h.logger, err)
		return
	}

	transactions := make([]TransactionResponse, 0, len(history))
	for _, tx := range history {
		transactions = append(transactions, mapTransactionToResponse(tx))
	}

	RespondOK(c, StatementResponse{
		AccountNumber: number,
		Transactions:  transactions,
	})
}

// respondWithAccount sends the account's current summary after a movement
func (h *TransactionHandler) respondWithAccount(c *gin.Context, number string) {
	acc, err := h.ledger.FindAccount(number)
	if err != nil {
		respondLedgerError(c, h.logger, err)
		return
	}
	RespondOK(c, mapAccountToResponse(acc))
}

// mapTransactionToResponse maps a transaction record to a response DTO
func mapTransactionToResponse(tx ledger.Transaction) TransactionResponse {
	return TransactionResponse{
		Timestamp:          tx.Timestamp.Format(time.RFC3339),
		Type:               string(tx.Type),
		Amount:             tx.Amount,
		Description:        tx.Description,
		SourceAccount:      tx.SourceAccount,
		DestinationAccount: tx.DestinationAccount,
	}
}
