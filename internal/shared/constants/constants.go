// Package constants defines shared constants used across the application.
package constants

const (
	// DefaultPage is the default page number for paginated listings.
	DefaultPage = 1
	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 20
	// MaxPageSize caps the number of items a single page may request.
	MaxPageSize = 100

	// ContextKeyUserID is the gin context key holding the authenticated user ID.
	ContextKeyUserID = "user_id"
	// ContextKeyUserRole is the gin context key holding the authenticated user role.
	ContextKeyUserRole = "user_role"

	// EnvDevelopment is the development environment name.
	EnvDevelopment = "development"
	// EnvTest is the test environment name.
	EnvTest = "test"
	// EnvProduction is the production environment name.
	EnvProduction = "production"
)
