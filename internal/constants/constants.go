package constants

// Session and context keys
const (
	SessionCookieName  = "portfolio_session"
	ContextKeyUserID   = "user_id"
	SessionKeyVisitors = "visitors"
)

// Validation limits
const (
	MinPasswordLength = 6
	MinUsernameLength = 3
	MaxUsernameLength = 30
	MinNameLength     = 2
	MaxNameLength     = 50
)

// Public search
const (
	SearchResultLimit = 20
)

// Visitor log entries kept in the session for owner analytics.
// The log is capped so the session cookie cannot grow without bound.
const (
	MaxVisitorLogEntries = 20
)
