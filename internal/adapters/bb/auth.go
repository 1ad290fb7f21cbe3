package bb

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
)

// TokenManager obtém e guarda o access token OAuth2 (client credentials).
// O token é considerado válido até o BB recusá-lo: não há renovação antecipada.
// É seguro para uso concorrente.
type TokenManager struct {
	clientID        string
	clientSecret    string
	developerAppKey string
	tokenURL        string
	scope           string
	httpClient      *http.Client
	logger          *slog.Logger

	mu    sync.Mutex
	token string
}

// NewTokenManager cria um novo gerenciador de tokens
func NewTokenManager(clientID, clientSecret, developerAppKey, tokenURL, scope string, httpClient *http.Client, logger *slog.Logger) *TokenManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &TokenManager{
		clientID:        clientID,
		clientSecret:    clientSecret,
		developerAppKey: developerAppKey,
		tokenURL:        tokenURL,
		scope:           scope,
		httpClient:      httpClient,
		logger:          logger,
	}
}

// Token retorna o token em cache ou busca um novo se o cache estiver vazio
func (tm *TokenManager) Token(ctx context.Context) (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.token != "" {
		return tm.token, nil
	}
	return tm.fetch(ctx)
}

// Refresh descarta o token atual e busca outro
func (tm *TokenManager) Refresh(ctx context.Context) (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.token = ""
	return tm.fetch(ctx)
}

// Invalidate força a renovação do token na próxima chamada
// Útil quando recebemos erro 401
func (tm *TokenManager) Invalidate() {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.token = ""
}

// fetch obtém um novo token da API. Deve ser chamado com mu travado.
func (tm *TokenManager) fetch(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("scope", tm.scope)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tm.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("erro ao criar requisição de auth: %w", err)
	}

	// Basic Auth com client_id:client_secret
	credentials := base64.StdEncoding.EncodeToString(
		[]byte(fmt.Sprintf("%s:%s", tm.clientID, tm.clientSecret)),
	)
	req.Header.Set("Authorization", "Basic "+credentials)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(headerDeveloperAppKey, tm.developerAppKey)

	resp, err := tm.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Op: http.MethodPost, URL: tm.tokenURL, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Op: http.MethodPost, URL: tm.tokenURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &AuthError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(respBody, &tokenResp); err != nil {
		return "", &AuthError{Status: resp.StatusCode, Body: string(respBody), Reason: "resposta de token inválida"}
	}
	if tokenResp.AccessToken == "" {
		return "", &AuthError{Status: resp.StatusCode, Body: string(respBody), Reason: "resposta sem access_token"}
	}

	tm.token = tokenResp.AccessToken
	tm.logger.Info("access token obtido", "expires_in", tokenResp.ExpiresIn)

	return tm.token, nil
}
