package handlers

import (
	"net/http"

	"github.com/matefs/next-crm-api/internal/infra/auth"
	"github.com/matefs/next-crm-api/internal/usecase"
)

type DashboardHandler struct {
	StatsUC *usecase.LeadStatsUseCase
}

func NewDashboardHandler(statsUC *usecase.LeadStatsUseCase) *DashboardHandler {
	return &DashboardHandler{StatsUC: statsUC}
}

func (h *DashboardHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsUC.Execute(r.Context(), auth.UserFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
