package auth

import "context"

// sessionKey is an unexported context key type for the current session.
type sessionKey struct{}

// ContextWithSession returns a context carrying the given session.
func ContextWithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// SessionFromContext returns the session carried by ctx, or nil.
func SessionFromContext(ctx context.Context) *Session {
	if sess, ok := ctx.Value(sessionKey{}).(*Session); ok {
		return sess
	}
	return nil
}

// TokenFromContext returns the backend token of the session carried by
// ctx, or the empty string for anonymous calls.
func TokenFromContext(ctx context.Context) string {
	if sess := SessionFromContext(ctx); sess != nil {
		return sess.Token
	}
	return ""
}
