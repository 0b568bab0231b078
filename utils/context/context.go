package context

import (
	"context"

	"github.com/okozak/contacts-api/constant"
)

// GetUserID extracts the authenticated user id placed into the context by
// the auth middleware.
func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
