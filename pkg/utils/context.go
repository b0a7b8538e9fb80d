package utils

import (
	"context"

	"rentoverse-web/internal/data/session"
)

type contextKey string

const (
	SessionKey contextKey = "session"
	TokenKey   contextKey = "session_token"
)

func SetSessionContext(ctx context.Context, token string, sess session.Session) context.Context {
	ctx = context.WithValue(ctx, SessionKey, sess)
	ctx = context.WithValue(ctx, TokenKey, token)
	return ctx
}

func GetSessionFromContext(ctx context.Context) (session.Session, bool) {
	val := ctx.Value(SessionKey)
	if val == nil {
		return session.Session{}, false
	}
	sess, ok := val.(session.Session)
	return sess, ok
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(TokenKey)
	if val == nil {
		return "", false
	}
	token, ok := val.(string)
	return token, ok
}
