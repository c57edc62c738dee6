package routes

import (
	"github.com/gin-gonic/gin"

	reviewhandlers "recruitscore/internal/interfaces/http/handlers/review"
	"recruitscore/internal/interfaces/http/middleware"
	"recruitscore/internal/shared/authorization"
)

type ReviewRouteConfig struct {
	ReviewHandler     *reviewhandlers.ReviewHandler
	AuthMiddleware    *middleware.AuthMiddleware
	ReviewSubmitLimit gin.HandlerFunc
}

func SetupReviewRoutes(engine *gin.Engine, config *ReviewRouteConfig) {
	companies := engine.Group("/companies")
	{
		// Reading reviews is public; OptionalAuth lets admins see
		// non-approved statuses through the same endpoint.
		companies.GET("/:id/reviews",
			config.AuthMiddleware.OptionalAuth(),
			config.ReviewHandler.ListCompanyReviews)

		companies.POST("/:id/reviews",
			config.AuthMiddleware.RequireAuth(),
			config.ReviewSubmitLimit,
			config.ReviewHandler.SubmitReview)
	}

	reviews := engine.Group("/reviews")
	reviews.Use(config.AuthMiddleware.RequireAuth())
	{
		reviews.GET("/mine", config.ReviewHandler.ListMyReviews)

		reviews.POST("/:id/responses", config.ReviewHandler.RespondToReview)
		reviews.POST("/:id/helpful", config.ReviewHandler.MarkHelpful)
		reviews.PATCH("/:id/status",
			authorization.RequireAdmin(),
			config.ReviewHandler.ModerateReview)

		reviews.PUT("/:id", config.ReviewHandler.UpdateReview)
		reviews.DELETE("/:id", config.ReviewHandler.DeleteReview)
	}
}
