package handler

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/minibank-ledger/internal/domain/account"
	"github.com/minibank-ledger/internal/domain/customer"
	"github.com/minibank-ledger/internal/domain/shared"
)

// respondLedgerError maps the engine's error taxonomy onto HTTP responses:
// missing entities become 404, invalid amounts 400, and insufficient balance
// 422. Anything outside the taxonomy is logged and reported as a 500.
func respondLedgerError(c *gin.Context, logger *slog.Logger, err error) {
	var accNotFound account.ErrAccountNotFound
	var custNotFound customer.ErrCustomerNotFound

	switch {
	case errors.As(err, &accNotFound), errors.As(err, &custNotFound):
		RespondNotFound(c, err.Error())
	case errors.Is(err, shared.ErrInsufficientBalance):
		RespondUnprocessable(c, "INSUFFICIENT_BALANCE", err.Error())
	case errors.Is(err, shared.ErrInvalidAmount):
		RespondBadRequest(c, "INVALID_AMOUNT", err.Error())
	default:
		logger.Error("Unexpected ledger error", "error", err, "path", c.Request.URL.Path)
		RespondInternalError(c)
	}
}
