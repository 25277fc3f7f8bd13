package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/matefs/next-crm-api/internal/entity"
	"github.com/matefs/next-crm-api/internal/logs"
)

// Claims de um access token do Supabase (HS256, assinado com o JWT secret
// do projeto). O sub é o id do usuário.
type Claims struct {
	Email        string              `json:"email"`
	Phone        string              `json:"phone"`
	Role         string              `json:"role"`
	UserMetadata entity.UserMetadata `json:"user_metadata"`
	jwt.RegisteredClaims
}

type Middleware struct {
	secret []byte
}

func NewMiddleware(jwtSecret string) *Middleware {
	return &Middleware{secret: []byte(jwtSecret)}
}

// Handler extrai o usuário do Bearer token quando houver um válido.
// Não rejeita nada: requisição sem token (ou com token ruim) segue anônima
// e cada operação decide o que um anônimo pode fazer.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearerToken(r)
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.ParseToken(raw)
		if err != nil {
			logs.Logger.WithError(err).Debug("access token inválido, seguindo como anônimo")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user, raw)))
	})
}

func (m *Middleware) ParseToken(raw string) (*entity.AuthUser, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token inválido")
	}
	if claims.Subject == "" {
		return nil, errors.New("token sem subject")
	}

	return &entity.AuthUser{
		ID:       claims.Subject,
		Email:    claims.Email,
		Phone:    claims.Phone,
		Metadata: claims.UserMetadata,
	}, nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
