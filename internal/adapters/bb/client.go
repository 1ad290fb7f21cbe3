package bb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Lillow/PixIntegration/internal/config"
	"github.com/Lillow/PixIntegration/internal/transport"
)

// Client é o cliente da API PIX v2 do Banco do Brasil.
// As chamadas são sequenciais; o único estado compartilhado é o token,
// protegido pelo TokenManager.
type Client struct {
	baseURL         string
	developerAppKey string
	httpClient      *http.Client
	tokenManager    *TokenManager
	logger          *slog.Logger
}

// Option configura o Client
type Option func(*Client)

// WithHTTPClient substitui o cliente HTTP (útil para testes e mTLS próprio)
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger define o logger usado pelo cliente
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient cria um cliente pronto para uso: valida as credenciais e já
// obtém o primeiro access token. Retorna *ConfigError se faltar credencial
// e *AuthError se o BB recusar a autenticação.
func NewClient(ctx context.Context, cfg *config.BBConfig, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, &ConfigError{Field: "config"}
	}
	if cfg.ClientID == "" {
		return nil, &ConfigError{Field: "clientId"}
	}
	if cfg.ClientSecret == "" {
		return nil, &ConfigError{Field: "clientSecret"}
	}
	if cfg.DeveloperAppKey == "" {
		return nil, &ConfigError{Field: "developerApplicationKey"}
	}

	c := &Client{
		baseURL:         strings.TrimRight(cfg.PixURL, "/"),
		developerAppKey: cfg.DeveloperAppKey,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		httpClient, err := transport.NewHTTPClient(transport.Options{
			Timeout:             cfg.Timeout,
			CertificatePath:     cfg.CertificatePath,
			CertificatePassword: cfg.CertificatePassword,
		})
		if err != nil {
			return nil, err
		}
		c.httpClient = httpClient
	}

	scope := cfg.Scope
	if scope == "" {
		scope = config.DefaultScope
	}
	c.tokenManager = NewTokenManager(cfg.ClientID, cfg.ClientSecret, cfg.DeveloperAppKey, cfg.OAuthURL, scope, c.httpClient, c.logger)

	// Token obtido já na construção
	if _, err := c.tokenManager.Token(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// doRequest executa uma requisição HTTP autenticada.
// Um 401 invalida o token e a requisição é refeita uma única vez com um token novo.
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar body: %w", err)
		}
	}

	token, err := c.tokenManager.Token(ctx)
	if err != nil {
		return nil, err
	}

	status, respBody, err := c.send(ctx, method, path, token, payload)
	if err != nil {
		return nil, err
	}

	if status == http.StatusUnauthorized {
		c.logger.Warn("token recusado pelo BB, autenticando novamente", "method", method, "path", path)
		token, err = c.tokenManager.Refresh(ctx)
		if err != nil {
			return nil, err
		}
		status, respBody, err = c.send(ctx, method, path, token, payload)
		if err != nil {
			return nil, err
		}
	}

	if status < 200 || status >= 300 {
		return nil, newAPIError(status, respBody)
	}

	return respBody, nil
}

// send faz uma única ida ao BB e devolve status e corpo
func (c *Client) send(ctx context.Context, method, path, token string, payload []byte) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, strings.TrimLeft(path, "/"))
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("erro ao criar requisição: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(headerAppKey, c.developerAppKey)
	req.Header.Set(headerRequestID, requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Op: method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &TransportError{Op: method, URL: url, Err: err}
	}

	c.logger.Debug("chamada PIX",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
	)

	return resp.StatusCode, respBody, nil
}
