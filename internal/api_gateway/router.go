package api_gateway

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/minibank-ledger/internal/api_gateway/handler"
	"github.com/minibank-ledger/internal/api_gateway/middleware"
)

// setupRouter configures API routes and middleware for the application
func setupRouter(
	logger *slog.Logger,
	r *gin.Engine,
	customerHandler *handler.CustomerHandler,
	accountHandler *handler.AccountHandler,
	transactionHandler *handler.TransactionHandler,
) {
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CorrelationID())
	r.Use(middleware.Logger(logger))

	// API v1 endpoints
	v1 := r.Group("/api/v1")
	{
		// Customer operations
		customers := v1.Group("/customers")
		{
			customers.POST("", customerHandler.Create)
			customers.GET("", customerHandler.List)
		}

		// Account operations and movements
		accounts := v1.Group("/accounts")
		{
			accounts.POST("", accountHandler.Open)
			accounts.GET("/:number", accountHandler.GetByNumber)
			accounts.GET("/:number/statement", transactionHandler.Statement)
			accounts.POST("/:number/deposits", transactionHandler.Deposit)
			accounts.POST("/:number/withdrawals", transactionHandler.Withdraw)
		}

		// Transfers between accounts
		v1.POST("/transfers", transactionHandler.Transfer)
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}
