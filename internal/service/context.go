package service

import "context"

type ctxKey string

const ctxUserIDKey ctxKey = "userID"

func WithUserID(ctx context.Context, id uint) context.Context {
	return context.WithValue(ctx, ctxUserIDKey, id)
}

func UserIDFromContext(ctx context.Context) (uint, bool) {
	v, ok := ctx.Value(ctxUserIDKey).(uint)
	return v, ok
}
