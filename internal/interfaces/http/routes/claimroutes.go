package routes

import (
	"github.com/gin-gonic/gin"

	claimhandlers "recruitscore/internal/interfaces/http/handlers/claim"
	"recruitscore/internal/interfaces/http/middleware"
	"recruitscore/internal/shared/authorization"
)

type ClaimRouteConfig struct {
	ClaimHandler     *claimhandlers.ClaimHandler
	AuthMiddleware   *middleware.AuthMiddleware
	ClaimSubmitLimit gin.HandlerFunc
}

func SetupClaimRoutes(engine *gin.Engine, config *ClaimRouteConfig) {
	// Claim submission hangs off the company resource
	companies := engine.Group("/companies")
	companies.Use(config.AuthMiddleware.RequireAuth())
	{
		companies.POST("/:id/claims/email",
			config.ClaimSubmitLimit,
			config.ClaimHandler.SubmitEmailClaim)
		companies.POST("/:id/claims/manual",
			config.ClaimSubmitLimit,
			config.ClaimHandler.SubmitManualClaim)
	}

	claims := engine.Group("/claims")
	{
		// The verification link arrives by email, so the caller may not be
		// logged in. The token itself is the credential.
		claims.GET("/verify/:token", config.ClaimHandler.VerifyClaimToken)

		claims.GET("",
			config.AuthMiddleware.RequireAuth(),
			config.ClaimHandler.ListClaims)

		claims.POST("/:id/approve",
			config.AuthMiddleware.RequireAuth(),
			authorization.RequireAdmin(),
			config.ClaimHandler.ApproveClaim)
		claims.POST("/:id/reject",
			config.AuthMiddleware.RequireAuth(),
			authorization.RequireAdmin(),
			config.ClaimHandler.RejectClaim)

		claims.GET("/:id",
			config.AuthMiddleware.RequireAuth(),
			config.ClaimHandler.GetClaim)
	}
}
