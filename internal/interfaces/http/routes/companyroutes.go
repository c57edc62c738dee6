package routes

import (
	"github.com/gin-gonic/gin"

	companyhandlers "recruitscore/internal/interfaces/http/handlers/company"
	"recruitscore/internal/interfaces/http/middleware"
	"recruitscore/internal/shared/authorization"
)

type CompanyRouteConfig struct {
	CompanyHandler *companyhandlers.CompanyHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupCompanyRoutes(engine *gin.Engine, config *CompanyRouteConfig) {
	companies := engine.Group("/companies")
	{
		// Public directory endpoints
		companies.GET("", config.CompanyHandler.ListCompanies)
		companies.GET("/slug/:slug", config.CompanyHandler.GetCompanyBySlug)
		companies.GET("/:id", config.CompanyHandler.GetCompany)

		// Mutations require authentication
		companies.POST("",
			config.AuthMiddleware.RequireAuth(),
			authorization.RequireAdmin(),
			config.CompanyHandler.CreateCompany)
		companies.PUT("/:id",
			config.AuthMiddleware.RequireAuth(),
			config.CompanyHandler.UpdateCompany)
		companies.DELETE("/:id",
			config.AuthMiddleware.RequireAuth(),
			authorization.RequireAdmin(),
			config.CompanyHandler.DeleteCompany)
		companies.POST("/:id/transfer",
			config.AuthMiddleware.RequireAuth(),
			config.CompanyHandler.TransferOwnership)
	}
}
