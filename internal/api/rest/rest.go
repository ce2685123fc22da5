package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/arvalon/chainledger/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Payment lifecycle (requires authentication)
		v1.POST("/payments", middleware.Auth(authCfg), handler.CreatePayment)
		v1.GET("/payments/:id", middleware.Auth(authCfg), handler.GetPayment)
		v1.GET("/payments", middleware.Auth(authCfg), handler.ListPayments)
		v1.POST("/payments/:id/intent", middleware.Auth(authCfg), handler.BuildIntent)
		v1.POST("/payments/:id/confirm", middleware.Auth(authCfg), handler.ConfirmPayment)
		v1.POST("/payments/:id/verify", middleware.Auth(authCfg), handler.VerifyPayment)

		// Internal ledger (requires authentication)
		v1.POST("/transfers", middleware.Auth(authCfg), handler.CreateTransfer)
		v1.GET("/balances/:user_id", middleware.Auth(authCfg), handler.GetBalance)
		v1.POST("/balances/:user_id/deposit", middleware.Auth(authCfg), handler.Deposit)
		v1.POST("/balances/:user_id/lock", middleware.Auth(authCfg), handler.LockFunds)
		v1.POST("/balances/:user_id/unlock", middleware.Auth(authCfg), handler.UnlockFunds)
		v1.POST("/balances/:user_id/wallet", middleware.Auth(authCfg), handler.LinkWallet)

		// Reporting endpoints (requires API key authentication only)
		v1.GET("/reports/earnings/:user_id", middleware.Auth(authCfg), handler.GetUserEarnings)
		v1.GET("/reports/fees", middleware.APIKeyAuth(authCfg), handler.GetPlatformFees)
		v1.GET("/reports/top-earners", middleware.APIKeyAuth(authCfg), handler.GetTopEarners)

		// Gas estimation (open, the intent carries no server-side state)
		v1.POST("/gas/estimate", handler.EstimateGas)
	}
}
