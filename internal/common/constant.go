package common

const (
	// TokenQueryParam is the query parameter carrying a session token on GET /feed.
	TokenQueryParam = "token"

	// UserIDQueryParam is the query parameter selecting a feed owner on GET /feed.
	UserIDQueryParam = "user_id"

	// RequestIDHeaderName carries the per-request correlation id.
	RequestIDHeaderName = "X-Request-ID"
)
