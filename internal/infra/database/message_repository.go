package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/matefs/next-crm-api/internal/entity"
	"github.com/matefs/next-crm-api/internal/logs"
)

type MessageRepository struct {
	DB *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

func (r *MessageRepository) Create(ctx context.Context, message *entity.Message) error {
	return r.CreateBatch(ctx, []entity.Message{*message})
}

// CreateBatch grava o lote num único INSERT multi-linha: ou entra tudo,
// ou não entra nada.
func (r *MessageRepository) CreateBatch(ctx context.Context, messages []entity.Message) error {
	if len(messages) == 0 {
		return nil
	}

	values := make([]string, 0, len(messages))
	args := make([]interface{}, 0, len(messages)*6)
	for i, m := range messages {
		base := i * 6
		values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6))
		args = append(args, m.ID, m.LeadID, m.Message, m.SentAt, m.UserID, m.Status)
	}

	query := `INSERT INTO messages (id, lead_id, message, sent_at, user_id, status) VALUES ` +
		strings.Join(values, ", ")

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		logs.Logger.WithError(err).Error("erro no banco ao inserir mensagens")
		return err
	}

	return nil
}

// FindAllByUser traz as mensagens do usuário com o nome do lead junto,
// mais recente primeiro.
func (r *MessageRepository) FindAllByUser(ctx context.Context, userID string) ([]entity.MessageWithLead, error) {
	query := `
		SELECT m.id, m.lead_id, m.message, m.sent_at, m.user_id, m.status, l.name
		FROM messages m
		JOIN leads l ON l.id = m.lead_id
		WHERE m.user_id = $1
		ORDER BY m.sent_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []entity.MessageWithLead{}
	for rows.Next() {
		var m entity.MessageWithLead
		if err := rows.Scan(&m.ID, &m.LeadID, &m.Message.Message, &m.SentAt, &m.UserID, &m.Status, &m.LeadName); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}
