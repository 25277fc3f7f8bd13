package auth

import (
	"context"

	"github.com/matefs/next-crm-api/internal/entity"
)

type contextKey string

const (
	userContextKey  contextKey = "auth.user"
	tokenContextKey contextKey = "auth.token"
)

func WithUser(ctx context.Context, user *entity.AuthUser, accessToken string) context.Context {
	ctx = context.WithValue(ctx, userContextKey, user)
	return context.WithValue(ctx, tokenContextKey, accessToken)
}

// UserFromContext devolve o usuário autenticado ou nil para anônimo.
func UserFromContext(ctx context.Context) *entity.AuthUser {
	user, _ := ctx.Value(userContextKey).(*entity.AuthUser)
	return user
}

// TokenFromContext devolve o access token cru, para repassar ao GoTrue.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}
