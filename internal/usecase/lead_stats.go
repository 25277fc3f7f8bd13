package usecase

import (
	"context"
	"time"

	"github.com/matefs/next-crm-api/internal/entity"
	"github.com/matefs/next-crm-api/internal/logs"
)

type LeadStatsUseCase struct {
	Repo LeadRepositoryInterface

	// Now é injetável para fixar o relógio nos testes.
	Now func() time.Time
}

func NewLeadStatsUseCase(repo LeadRepositoryInterface) *LeadStatsUseCase {
	return &LeadStatsUseCase{Repo: repo, Now: time.Now}
}

// Execute agrega os leads do usuário: total, quebra por status, criados nos
// últimos 7 dias (limite inclusivo) e criados desde o dia 1º do mês corrente.
// As janelas usam o fuso local do servidor, igual à aritmética de datas da
// aplicação original.
func (uc *LeadStatsUseCase) Execute(ctx context.Context, user *entity.AuthUser) (*LeadStats, error) {
	if user == nil {
		return nil, ErrNotAuthenticated()
	}

	leads, err := uc.Repo.ListForStats(ctx, user.ID)
	if err != nil {
		logs.Logger.WithError(err).Error("erro ao buscar estatísticas")
		return nil, &TechnicalError{Code: CodeDatabase, Message: "Erro ao buscar estatísticas"}
	}

	now := uc.Now()
	sevenDaysAgo := now.AddDate(0, 0, -7)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := &LeadStats{ByStatus: make(map[string]int)}
	for _, lead := range leads {
		stats.Total++
		stats.ByStatus[lead.Status]++
		if !lead.CreatedAt.Before(sevenDaysAgo) {
			stats.RecentLeads++
		}
		if !lead.CreatedAt.Before(firstOfMonth) {
			stats.ThisMonth++
		}
	}

	return stats, nil
}
