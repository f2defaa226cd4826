package utils

import (
	"context"
	"time"
)

type contextKey string

const (
	ContextUserIDKey contextKey = "userID"
	ContextEmailKey  contextKey = "email"
)

// SessionData is the immutable snapshot the session middleware works with.
type SessionData struct {
	UserID    int
	Email     string
	ExpiresAt time.Time
}

func GetUserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(ContextUserIDKey).(int)
	return userID, ok
}

func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(ContextEmailKey).(string)
	return email, ok
}
