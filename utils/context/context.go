package context

import (
	"context"

	"github.com/divyaalluri1312/FriendFleet/constant"
)

// GetUserID returns the authenticated user's hex object id from the
// request context.
func GetUserID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
