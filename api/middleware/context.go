package middleware

import "context"

type contextKey string

const (
	ctxSessionID     contextKey = "cart_session"
	ctxSessionMinted contextKey = "cart_session_minted"
	ctxRequestID     contextKey = "request_id"
)

// SessionIDFromContext returns the cart session bound by CartSession.
func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxSessionID).(string); ok {
		return v
	}
	return ""
}

// WithSessionID injects the cart session identifier into the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSessionID, sessionID)
}

// SessionMinted reports whether the request arrived without a usable session and was given a
// fresh id by CartSession.
func SessionMinted(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	minted, _ := ctx.Value(ctxSessionMinted).(bool)
	return minted
}

func withSessionMinted(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxSessionMinted, true)
}

// RequestIDFromContext returns the id assigned by RequestID.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxRequestID).(string); ok {
		return v
	}
	return ""
}

func withRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxRequestID, requestID)
}
