// Package http wires the HTTP surface: repositories, use cases, handlers,
// middleware, and routes.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	claimUC "recruitscore/internal/application/claim/usecases"
	companyUC "recruitscore/internal/application/company/usecases"
	reviewUC "recruitscore/internal/application/review/usecases"
	"recruitscore/internal/infrastructure/auth"
	"recruitscore/internal/infrastructure/config"
	"recruitscore/internal/infrastructure/email"
	"recruitscore/internal/infrastructure/ratelimit"
	"recruitscore/internal/infrastructure/repository"
	claimhandlers "recruitscore/internal/interfaces/http/handlers/claim"
	companyhandlers "recruitscore/internal/interfaces/http/handlers/company"
	reviewhandlers "recruitscore/internal/interfaces/http/handlers/review"
	"recruitscore/internal/interfaces/http/middleware"
	"recruitscore/internal/interfaces/http/routes"
	"recruitscore/internal/shared/db"
	"recruitscore/internal/shared/logger"
	"recruitscore/internal/shared/services/markdown"
)

type Router struct {
	engine         *gin.Engine
	companyHandler *companyhandlers.CompanyHandler
	claimHandler   *claimhandlers.ClaimHandler
	reviewHandler  *reviewhandlers.ReviewHandler
	authMiddleware *middleware.AuthMiddleware
	ipLimiter      *middleware.IPRateLimiter
	writeLimiter   ratelimit.RateLimiter
}

// NewRouter builds the full dependency graph for the HTTP API.
func NewRouter(cfg *config.Config, database *gorm.DB, redisClient *redis.Client) *Router {
	log := logger.NewLogger()

	// Repositories
	companyRepo := repository.NewCompanyRepository(database)
	claimRepo := repository.NewClaimRequestRepository(database)
	reviewRepo := repository.NewReviewRepository(database)
	userRepo := repository.NewUserRepository(database)

	txMgr := db.NewTransactionManager(database)

	// Outbound services
	notifier := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Server.BaseURL,
	})

	tokenTTL := time.Duration(cfg.Claim.TokenExpiresHours) * time.Hour

	// Company use cases
	companyHandler := companyhandlers.NewCompanyHandler(
		companyUC.NewCreateCompanyUseCase(companyRepo, userRepo, log),
		companyUC.NewUpdateCompanyUseCase(companyRepo, userRepo, log),
		companyUC.NewDeleteCompanyUseCase(companyRepo, userRepo, log),
		companyUC.NewGetCompanyUseCase(companyRepo, markdown.NewService(), log),
		companyUC.NewListCompaniesUseCase(companyRepo, log),
		companyUC.NewTransferOwnershipUseCase(companyRepo, userRepo, log),
	)

	// Claim use cases
	claimHandler := claimhandlers.NewClaimHandler(
		claimUC.NewSubmitEmailClaimUseCase(claimRepo, companyRepo, notifier, tokenTTL, log),
		claimUC.NewSubmitManualClaimUseCase(claimRepo, companyRepo, log),
		claimUC.NewVerifyClaimTokenUseCase(claimRepo, companyRepo, txMgr, log),
		claimUC.NewApproveClaimUseCase(claimRepo, companyRepo, userRepo, txMgr, notifier, log),
		claimUC.NewRejectClaimUseCase(claimRepo, companyRepo, userRepo, notifier, log),
		claimUC.NewGetClaimUseCase(claimRepo, log),
		claimUC.NewListClaimsUseCase(claimRepo, log),
	)

	// Review use cases
	reviewHandler := reviewhandlers.NewReviewHandler(
		reviewUC.NewSubmitReviewUseCase(reviewRepo, companyRepo, txMgr, log),
		reviewUC.NewUpdateReviewUseCase(reviewRepo, companyRepo, txMgr, log),
		reviewUC.NewDeleteReviewUseCase(reviewRepo, companyRepo, userRepo, txMgr, log),
		reviewUC.NewListReviewsUseCase(reviewRepo, log),
		reviewUC.NewRespondToReviewUseCase(reviewRepo, companyRepo, log),
		reviewUC.NewModerateReviewUseCase(reviewRepo, companyRepo, userRepo, txMgr, log),
		reviewUC.NewMarkReviewHelpfulUseCase(reviewRepo, log),
	)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	return &Router{
		engine:         gin.New(),
		companyHandler: companyHandler,
		claimHandler:   claimHandler,
		reviewHandler:  reviewHandler,
		authMiddleware: middleware.NewAuthMiddleware(jwtService, log),
		ipLimiter:      middleware.NewIPRateLimiter(redisClient, 300, time.Minute),
		writeLimiter:   ratelimit.NewRedisRateLimiter(redisClient),
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Logger(logger.NewLogger()))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(r.ipLimiter.Limit())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupCompanyRoutes(r.engine, &routes.CompanyRouteConfig{
		CompanyHandler: r.companyHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupClaimRoutes(r.engine, &routes.ClaimRouteConfig{
		ClaimHandler:   r.claimHandler,
		AuthMiddleware: r.authMiddleware,
		ClaimSubmitLimit: middleware.UserWriteLimit(r.writeLimiter, "claims", ratelimit.Config{
			RequestsPerHour: 5,
			RequestsPerDay:  10,
		}),
	})

	routes.SetupReviewRoutes(r.engine, &routes.ReviewRouteConfig{
		ReviewHandler:  r.reviewHandler,
		AuthMiddleware: r.authMiddleware,
		ReviewSubmitLimit: middleware.UserWriteLimit(r.writeLimiter, "reviews", ratelimit.Config{
			RequestsPerHour: 10,
			RequestsPerDay:  30,
		}),
	})
}

// Engine exposes the underlying gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the given address.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
