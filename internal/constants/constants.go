package constants

// ContextKeyUserID is the gin context key holding the authenticated user ID.
const ContextKeyUserID = "user_id"

// AuthorizationHeader carries the bearer token on protected routes.
const AuthorizationHeader = "Authorization"

// BearerPrefix precedes the token in the Authorization header.
const BearerPrefix = "Bearer "

// Policy defaults. Both are overridable via config.
const (
	DefaultMinPasswordLength  = 6
	DefaultDescriptionWordCap = 250
)
