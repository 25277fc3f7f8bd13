package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matefs/next-crm-api/internal/config"
	"github.com/matefs/next-crm-api/internal/infra/auth"
	"github.com/matefs/next-crm-api/internal/infra/auth/gotrue"
	"github.com/matefs/next-crm-api/internal/infra/database"
	"github.com/matefs/next-crm-api/internal/infra/http/handlers"
	"github.com/matefs/next-crm-api/internal/infra/http/middleware"
	"github.com/matefs/next-crm-api/internal/logs"
	"github.com/matefs/next-crm-api/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logs.Logger.Fatal(err)
	}
	logs.Init(logs.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		logs.Logger.Fatalf("erro ao conectar no banco: %v", err)
	}
	defer db.Close()

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	messageRepo := database.NewMessageRepository(db)

	// 2. Auth: verificação local do token + cliente GoTrue para o perfil
	authMiddleware := auth.NewMiddleware(cfg.SupabaseJWTSecret)
	gotrueClient := gotrue.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)

	// 3. UseCases
	listLeadsUC := usecase.NewListLeadsUseCase(leadRepo)
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo)
	updateLeadUC := usecase.NewUpdateLeadUseCase(leadRepo)
	deleteLeadUC := usecase.NewDeleteLeadUseCase(leadRepo)
	statsUC := usecase.NewLeadStatsUseCase(leadRepo)
	sendMessageUC := usecase.NewSendMessageUseCase(leadRepo, messageRepo)
	sendBulkUC := usecase.NewSendBulkMessageUseCase(leadRepo, messageRepo)
	listMessagesUC := usecase.NewListMessagesUseCase(messageRepo)
	getProfileUC := usecase.NewGetUserProfileUseCase(gotrueClient)
	updateProfileUC := usecase.NewUpdateUserProfileUseCase(gotrueClient)

	// 4. Handlers
	leadHandler := handlers.NewLeadHandler(listLeadsUC, createLeadUC, updateLeadUC, deleteLeadUC)
	messageHandler := handlers.NewMessageHandler(sendMessageUC, sendBulkUC, listMessagesUC,
		cfg.MessageRateLimit, cfg.MessageRateWindow)
	dashboardHandler := handlers.NewDashboardHandler(statsUC)
	userHandler := handlers.NewUserHandler(getProfileUC, updateProfileUC)
	healthHandler := handlers.NewHealthHandler(db, cfg.SupabaseURL)

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	r.Use(authMiddleware.Handler)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/leads", func(r chi.Router) {
		r.Get("/", leadHandler.HandleList)
		r.Post("/", leadHandler.HandleCreate)
		r.Get("/statuses", leadHandler.HandleStatuses)
		r.Put("/{id}", leadHandler.HandleUpdate)
		r.Delete("/{id}", leadHandler.HandleDelete)
	})

	r.Route("/messages", func(r chi.Router) {
		r.Get("/", messageHandler.HandleList)
		r.Post("/", messageHandler.HandleSend)
		r.Post("/bulk", messageHandler.HandleSendBulk)
	})

	r.Get("/dashboard/stats", dashboardHandler.HandleStats)
	r.Get("/me", userHandler.HandleGetProfile)
	r.Put("/me", userHandler.HandleUpdateProfile)

	addr := fmt.Sprintf(":%d", cfg.AppPort)
	logs.Logger.Infof("🔥 CRM API rodando na porta %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logs.Logger.Fatal(err)
	}
}
