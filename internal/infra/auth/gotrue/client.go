package gotrue

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/matefs/next-crm-api/internal/entity"
)

// Client fala com o GoTrue do Supabase em nome do próprio usuário: todas as
// chamadas vão com o access token dele, nunca com service role.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// GetUser busca o registro completo do usuário dono do token.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*entity.UserProfile, error) {
	url := fmt.Sprintf("%s/auth/v1/user", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request gotrue: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(parseError(body, resp.StatusCode))
	}

	var user userResponse
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta do gotrue: %w", err)
	}

	return &entity.UserProfile{
		ID:               user.ID,
		Email:            user.Email,
		CreatedAt:        user.CreatedAt,
		LastSignInAt:     user.LastSignInAt,
		EmailConfirmedAt: user.EmailConfirmedAt,
		Phone:            user.Phone,
		UserMetadata:     user.UserMetadata,
	}, nil
}

// UpdateUser repassa o patch parcial (phone, full_name) para o update nativo
// do GoTrue. Erro volta com a mensagem do subsistema, sem tradução.
func (c *Client) UpdateUser(ctx context.Context, accessToken string, input UpdateUserInput) error {
	url := fmt.Sprintf("%s/auth/v1/user", c.baseURL)

	jsonBody, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("erro ao marshal update de usuário: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	c.setHeaders(req, accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro request gotrue: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return errors.New(parseError(body, resp.StatusCode))
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request, accessToken string) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")
}

func parseError(body []byte, status int) string {
	var er errorResponse
	if json.Unmarshal(body, &er) == nil {
		switch {
		case er.Msg != "":
			return er.Msg
		case er.ErrorDescription != "":
			return er.ErrorDescription
		case er.ErrorCode != "":
			return er.ErrorCode
		}
	}
	return fmt.Sprintf("gotrue retornou status %d", status)
}
