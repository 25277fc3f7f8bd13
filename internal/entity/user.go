package entity

type UserMetadata struct {
	FullName  string `json:"full_name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// AuthUser é o que dá pra extrair do access token sem consultar o GoTrue.
// É a identidade usada pelas operações para escopar as queries.
type AuthUser struct {
	ID       string       `json:"id"`
	Email    string       `json:"email"`
	Phone    string       `json:"phone,omitempty"`
	Metadata UserMetadata `json:"user_metadata"`
}

// UserProfile é a projeção completa vinda do GoTrue. Os timestamps ficam
// como strings RFC3339, igual ao payload da API de auth.
type UserProfile struct {
	ID               string       `json:"id"`
	Email            string       `json:"email"`
	CreatedAt        string       `json:"created_at"`
	LastSignInAt     string       `json:"last_sign_in_at,omitempty"`
	EmailConfirmedAt string       `json:"email_confirmed_at,omitempty"`
	Phone            string       `json:"phone,omitempty"`
	UserMetadata     UserMetadata `json:"user_metadata"`
}
