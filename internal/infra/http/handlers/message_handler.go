package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/matefs/next-crm-api/internal/infra/auth"
	"github.com/matefs/next-crm-api/internal/infra/http/middleware"
	"github.com/matefs/next-crm-api/internal/usecase"
)

type MessageHandler struct {
	SendUC      *usecase.SendMessageUseCase
	BulkUC      *usecase.SendBulkMessageUseCase
	ListUC      *usecase.ListMessagesUseCase
	rateLimiter *RateLimiter
}

func NewMessageHandler(
	sendUC *usecase.SendMessageUseCase,
	bulkUC *usecase.SendBulkMessageUseCase,
	listUC *usecase.ListMessagesUseCase,
	rateLimit int,
	rateWindow time.Duration,
) *MessageHandler {
	return &MessageHandler{
		SendUC:      sendUC,
		BulkUC:      bulkUC,
		ListUC:      listUC,
		rateLimiter: NewRateLimiter(rateLimit, rateWindow),
	}
}

func (h *MessageHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	if !h.allow(r) {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "Muitas requisições. Tente novamente em instantes."})
		return
	}

	var input usecase.SendMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido"})
		return
	}

	output, err := h.SendUC.Execute(r.Context(), auth.UserFromContext(r.Context()), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordMessagesSent("single", 1)
	writeJSON(w, http.StatusCreated, output)
}

func (h *MessageHandler) HandleSendBulk(w http.ResponseWriter, r *http.Request) {
	if !h.allow(r) {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "Muitas requisições. Tente novamente em instantes."})
		return
	}

	var input usecase.BulkMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido"})
		return
	}

	output, err := h.BulkUC.Execute(r.Context(), auth.UserFromContext(r.Context()), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordMessagesSent("bulk", len(input.LeadIDs))
	writeJSON(w, http.StatusCreated, output)
}

func (h *MessageHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	messages, err := h.ListUC.Execute(r.Context(), auth.UserFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (h *MessageHandler) allow(r *http.Request) bool {
	key := getClientIP(r)
	if user := auth.UserFromContext(r.Context()); user != nil {
		key = user.ID
	}
	return h.rateLimiter.Allow(key)
}
