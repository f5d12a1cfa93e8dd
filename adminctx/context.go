package adminctx

import "context"

// Context key type
type contextKey string

const adminIDKey contextKey = "admin_id"
const adminUsernameKey contextKey = "admin_username"

// WithAdmin adds the authenticated admin's identity to the context
func WithAdmin(ctx context.Context, id int, username string) context.Context {
	ctx = context.WithValue(ctx, adminIDKey, id)
	return context.WithValue(ctx, adminUsernameKey, username)
}

// AdminID retrieves the authenticated admin's id from the context
func AdminID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(adminIDKey).(int)
	return id, ok
}

// Username retrieves the authenticated admin's username from the context
func Username(ctx context.Context) string {
	username, ok := ctx.Value(adminUsernameKey).(string)
	if !ok {
		return "anonymous"
	}
	return username
}
