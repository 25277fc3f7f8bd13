package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config é populada a partir das variáveis de ambiente (um .env em dev,
// o painel do host em produção).
type Config struct {
	AppPort int `env:"APP_PORT" envDefault:"8080"`

	// Postgres do Supabase
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Projeto Supabase (GoTrue)
	SupabaseURL       string `env:"SUPABASE_URL,required"`
	SupabaseAnonKey   string `env:"SUPABASE_ANON_KEY,required"`
	SupabaseJWTSecret string `env:"SUPABASE_JWT_SECRET,required"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	LogFile   string `env:"LOG_FILE" envDefault:""`

	// Limite de disparo de mensagens por usuário
	MessageRateLimit  int           `env:"MESSAGE_RATE_LIMIT" envDefault:"30"`
	MessageRateWindow time.Duration `env:"MESSAGE_RATE_WINDOW" envDefault:"1m"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração: %w", err)
	}
	return cfg, nil
}
