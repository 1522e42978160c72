package common

type contextKey string

// UserContextKey is where the auth middleware stores the authenticated
// identity on the request context.
const UserContextKey contextKey = "user"
