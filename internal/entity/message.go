package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MessageStatusSent é o único status produzido hoje: a mensagem é gravada
// como intenção de envio, não existe máquina de estados de entrega.
const MessageStatusSent = "sent"

type Message struct {
	ID      string    `json:"id"`
	LeadID  string    `json:"lead_id"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sent_at"`
	UserID  string    `json:"user_id"`
	Status  string    `json:"status"`
}

// Factory
func NewMessage(userID, leadID, text string) *Message {
	return &Message{
		ID:      uuid.New().String(),
		LeadID:  leadID,
		Message: strings.TrimSpace(text),
		SentAt:  time.Now(),
		UserID:  userID,
		Status:  MessageStatusSent,
	}
}

// MessageWithLead carrega o nome do lead junto, para a listagem.
type MessageWithLead struct {
	Message
	LeadName string `json:"lead_name"`
}
