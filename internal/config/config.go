// Package config gerencia as configurações do aplicativo
// carregando variáveis de ambiente do arquivo .env
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// Produção
	PixURLProd   = "https://api.bb.com.br/pix/v2/"
	OAuthURLProd = "https://oauth.bb.com.br/oauth/token"

	// Homologação
	PixURLSandbox   = "https://api.hm.bb.com.br/pix/v2/"
	OAuthURLSandbox = "https://oauth.hm.bb.com.br/oauth/token"

	DefaultScope = "cob.write cob.read pix.write pix.read"
)

// Config armazena todas as configurações da aplicação
type Config struct {
	// Servidor
	Port     string
	Env      string
	LogLevel string

	// Banco do Brasil
	BB BBConfig
}

// BBConfig armazena configurações específicas da API PIX do Banco do Brasil
type BBConfig struct {
	ClientID        string
	ClientSecret    string
	DeveloperAppKey string // gw-dev-app-key do portal developers.bb.com.br

	PixURL   string
	OAuthURL string
	Scope    string

	Sandbox bool

	// mTLS é opcional: só é usado quando CertificatePath está preenchido
	CertificatePath     string
	CertificatePassword string

	Timeout time.Duration
}

// Load carrega as configurações do arquivo .env e variáveis de ambiente
// O arquivo .env é opcional - variáveis de ambiente têm prioridade
func Load() (*Config, error) {
	// Tenta carregar .env (ignora erro se não existir)
	_ = godotenv.Load()

	sandbox := getEnvBool("BB_SANDBOX", true)
	pixURL, oauthURL := PixURLProd, OAuthURLProd
	if sandbox {
		pixURL, oauthURL = PixURLSandbox, OAuthURLSandbox
	}

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		BB: BBConfig{
			ClientID:            getEnv("BB_CLIENT_ID", ""),
			ClientSecret:        getEnv("BB_CLIENT_SECRET", ""),
			DeveloperAppKey:     getEnv("BB_DEVELOPER_APP_KEY", ""),
			Sandbox:             sandbox,
			PixURL:              getEnv("BB_PIX_URL", pixURL),
			OAuthURL:            getEnv("BB_OAUTH_URL", oauthURL),
			Scope:               getEnv("BB_SCOPE", DefaultScope),
			CertificatePath:     getEnv("BB_CERTIFICATE_PATH", ""),
			CertificatePassword: getEnv("BB_CERTIFICATE_PASSWORD", ""),
			Timeout:             getEnvDuration("BB_TIMEOUT", 30*time.Second),
		},
	}

	// Validação básica
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate verifica se as configurações obrigatórias estão presentes
func (c *Config) validate() error {
	if c.BB.ClientID == "" {
		return fmt.Errorf("BB_CLIENT_ID é obrigatório")
	}
	if c.BB.ClientSecret == "" {
		return fmt.Errorf("BB_CLIENT_SECRET é obrigatório")
	}
	if c.BB.DeveloperAppKey == "" {
		return fmt.Errorf("BB_DEVELOPER_APP_KEY é obrigatório")
	}
	return nil
}

// IsDevelopment retorna true se estiver em ambiente de desenvolvimento
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction retorna true se estiver em ambiente de produção
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv obtém uma variável de ambiente ou retorna o valor padrão
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool obtém uma variável de ambiente como bool
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvDuration aceita tanto "30s" quanto um número puro de segundos
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
