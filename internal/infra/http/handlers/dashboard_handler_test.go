package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/matefs/next-crm-api/internal/entity"
	"github.com/matefs/next-crm-api/internal/infra/auth"
	"github.com/matefs/next-crm-api/internal/infra/http/handlers"
	"github.com/matefs/next-crm-api/internal/usecase"
)

func TestDashboardStatsEndpoint(t *testing.T) {
	now := time.Now()
	repo := new(MockLeadRepositoryHandler)
	repo.On("ListForStats", mock.Anything, "user-1").Return([]entity.Lead{
		{Status: entity.StatusNovo, CreatedAt: now},
		{Status: entity.StatusQualificado, CreatedAt: now.AddDate(0, 0, -2)},
	}, nil)

	h := handlers.NewDashboardHandler(usecase.NewLeadStatsUseCase(repo))

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(auth.WithUser(req.Context(), &entity.AuthUser{ID: "user-1"}, "token-abc")))
		})
	})
	r.Get("/dashboard/stats", h.HandleStats)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var stats usecase.LeadStats
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.ByStatus[entity.StatusNovo])
	assert.Equal(t, 2, stats.RecentLeads)
}

func TestDashboardStatsEndpointSemAutenticacao(t *testing.T) {
	h := handlers.NewDashboardHandler(usecase.NewLeadStatsUseCase(new(MockLeadRepositoryHandler)))

	r := chi.NewRouter()
	r.Get("/dashboard/stats", h.HandleStats)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Usuário não autenticado")
}
