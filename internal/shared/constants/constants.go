// Package constants defines shared constant values used across the application.
package constants

// Role slugs. Exactly one role per profile.
const (
	RoleAdmin    = "admin"
	RoleSalesman = "salesman"
	RoleEmployee = "employee"
)

// Runtime environments
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Table names
const (
	TableProfiles          = "profiles"
	TableExpenses          = "expenses"
	TableRevenues          = "revenues"
	TableClaims            = "claims"
	TableCommissionRecords = "commission_records"
	TableNotifications     = "notifications"
)

// Gin context keys set by the auth middleware.
const (
	ContextKeyProfileID   = "profile_id"
	ContextKeyAuthSubject = "auth_subject"
	ContextKeyRole        = "role"
)

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Field length limits
const (
	MaxDescriptionLength = 2000
	MaxCommentLength     = 2000
	MaxNameLength        = 100
)
