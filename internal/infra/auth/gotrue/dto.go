package gotrue

import "github.com/matefs/next-crm-api/internal/entity"

type UserData struct {
	FullName  string `json:"full_name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// UpdateUserInput é o corpo do PUT /auth/v1/user: só os campos que o
// usuário pode editar por aqui.
type UpdateUserInput struct {
	Phone string   `json:"phone,omitempty"`
	Data  UserData `json:"data"`
}

type userResponse struct {
	ID               string              `json:"id"`
	Email            string              `json:"email"`
	Phone            string              `json:"phone"`
	CreatedAt        string              `json:"created_at"`
	LastSignInAt     string              `json:"last_sign_in_at"`
	EmailConfirmedAt string              `json:"email_confirmed_at"`
	UserMetadata     entity.UserMetadata `json:"user_metadata"`
}

// O GoTrue varia o campo de erro conforme o endpoint/versão.
type errorResponse struct {
	Msg              string `json:"msg"`
	ErrorDescription string `json:"error_description"`
	ErrorCode        string `json:"error"`
}
