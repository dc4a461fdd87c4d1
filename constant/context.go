package constant

type ContextKey string

// UserIDKey carries the authenticated user's hex object id through the
// request context.
const UserIDKey ContextKey = "user_id"
