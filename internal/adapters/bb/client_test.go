package bb

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lillow/PixIntegration/internal/config"
)

// recordedCall é uma chamada recebida pelo BB falso
type recordedCall struct {
	Method string
	Path   string // relativo a /pix/v2/
	Body   []byte
	Header http.Header
}

// fakeBB simula o OAuth e a API PIX do Banco do Brasil
type fakeBB struct {
	srv *httptest.Server

	mu          sync.Mutex
	calls       []recordedCall
	tokenCalls  int
	tokenHeader http.Header
	tokenForm   map[string]string

	tokenHandler func(w http.ResponseWriter, n int)
	pixHandler   func(w http.ResponseWriter, call recordedCall)
}

func newFakeBB(t *testing.T, pixHandler func(w http.ResponseWriter, call recordedCall)) *fakeBB {
	t.Helper()

	f := &fakeBB{pixHandler: pixHandler}
	mux := http.NewServeMux()

	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()

		f.mu.Lock()
		f.tokenCalls++
		n := f.tokenCalls
		f.tokenHeader = r.Header.Clone()
		f.tokenForm = map[string]string{
			"grant_type": r.PostForm.Get("grant_type"),
			"scope":      r.PostForm.Get("scope"),
		}
		handler := f.tokenHandler
		f.mu.Unlock()

		if handler != nil {
			handler(w, n)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"access_token": "token-" + string(rune('0'+n)),
			"token_type":   "Bearer",
			"expires_in":   600,
		})
	})

	mux.HandleFunc("/pix/v2/", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		call := recordedCall{
			Method: r.Method,
			Path:   strings.TrimPrefix(r.URL.Path, "/pix/v2/"),
			Body:   body,
			Header: r.Header.Clone(),
		}

		f.mu.Lock()
		f.calls = append(f.calls, call)
		f.mu.Unlock()

		f.pixHandler(w, call)
	})

	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeBB) config() *config.BBConfig {
	return &config.BBConfig{
		ClientID:        "client-id",
		ClientSecret:    "client-secret",
		DeveloperAppKey: "app-key",
		PixURL:          f.srv.URL + "/pix/v2/",
		OAuthURL:        f.srv.URL + "/oauth/token",
		Scope:           config.DefaultScope,
	}
}

func (f *fakeBB) recorded() []recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedCall(nil), f.calls...)
}

func (f *fakeBB) tokenCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tokenCalls
}

func newTestClient(t *testing.T, f *fakeBB) *Client {
	t.Helper()
	client, err := NewClient(context.Background(), f.config(),
		WithHTTPClient(f.srv.Client()),
		WithLogger(discardLogger()),
	)
	require.NoError(t, err)
	return client
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func notExpected(t *testing.T) func(http.ResponseWriter, recordedCall) {
	return func(w http.ResponseWriter, call recordedCall) {
		t.Errorf("chamada inesperada: %s %s", call.Method, call.Path)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func TestNewClient_MissingCredentials(t *testing.T) {
	tests := []struct {
		name  string
		cfg   *config.BBConfig
		field string
	}{
		{
			name:  "nil config",
			cfg:   nil,
			field: "config",
		},
		{
			name:  "missing client id",
			cfg:   &config.BBConfig{ClientSecret: "s", DeveloperAppKey: "k"},
			field: "clientId",
		},
		{
			name:  "missing client secret",
			cfg:   &config.BBConfig{ClientID: "c", DeveloperAppKey: "k"},
			field: "clientSecret",
		},
		{
			name:  "missing developer app key",
			cfg:   &config.BBConfig{ClientID: "c", ClientSecret: "s"},
			field: "developerApplicationKey",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(context.Background(), tt.cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfiguration))

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestNewClient_FetchesTokenEagerly(t *testing.T) {
	f := newFakeBB(t, notExpected(t))
	newTestClient(t, f)

	assert.Equal(t, 1, f.tokenCount())

	f.mu.Lock()
	header, form := f.tokenHeader, f.tokenForm
	f.mu.Unlock()

	wantBasic := "Basic " + base64.StdEncoding.EncodeToString([]byte("client-id:client-secret"))
	assert.Equal(t, wantBasic, header.Get("Authorization"))
	assert.Equal(t, "app-key", header.Get("X-Developer-Application-Key"))
	assert.Equal(t, "application/x-www-form-urlencoded", header.Get("Content-Type"))
	assert.Equal(t, "client_credentials", form["grant_type"])
	assert.Equal(t, "cob.write cob.read pix.write pix.read", form["scope"])
}

func TestNewClient_AuthRejected(t *testing.T) {
	f := newFakeBB(t, notExpected(t))
	f.tokenHandler = func(w http.ResponseWriter, n int) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid_client"})
	}

	_, err := NewClient(context.Background(), f.config(), WithHTTPClient(f.srv.Client()), WithLogger(discardLogger()))
	require.Error(t, err)

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, http.StatusUnauthorized, authErr.Status)
	assert.Contains(t, authErr.Body, "invalid_client")
	assert.True(t, IsUnauthorized(err))
}

func TestNewClient_TokenResponseWithoutAccessToken(t *testing.T) {
	f := newFakeBB(t, notExpected(t))
	f.tokenHandler = func(w http.ResponseWriter, n int) {
		writeJSON(w, http.StatusOK, map[string]any{"token_type": "Bearer"})
	}

	_, err := NewClient(context.Background(), f.config(), WithHTTPClient(f.srv.Client()), WithLogger(discardLogger()))

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, "resposta sem access_token", authErr.Reason)
}

func TestDoRequest_SendsGatewayHeaders(t *testing.T) {
	f := newFakeBB(t, func(w http.ResponseWriter, call recordedCall) {
		writeJSON(w, http.StatusOK, map[string]any{"txid": "abc"})
	})
	client := newTestClient(t, f)

	_, err := client.doRequest(context.Background(), http.MethodGet, "cob/abc", nil)
	require.NoError(t, err)

	calls := f.recorded()
	require.Len(t, calls, 1)
	assert.Equal(t, "Bearer token-1", calls[0].Header.Get("Authorization"))
	assert.Equal(t, "app-key", calls[0].Header.Get("gw-dev-app-key"))
	assert.NotEmpty(t, calls[0].Header.Get("X-Request-ID"))
	assert.Empty(t, calls[0].Header.Get("Content-Type"))
}

func TestDoRequest_ReauthenticatesOnceOn401(t *testing.T) {
	var attempts int
	f := newFakeBB(t, func(w http.ResponseWriter, call recordedCall) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"txid": "abc"})
	})
	client := newTestClient(t, f)

	_, err := client.doRequest(context.Background(), http.MethodGet, "cob/abc", nil)
	require.NoError(t, err)

	calls := f.recorded()
	require.Len(t, calls, 2)
	assert.Equal(t, 2, f.tokenCount())
	assert.Equal(t, "Bearer token-1", calls[0].Header.Get("Authorization"))
	assert.Equal(t, "Bearer token-2", calls[1].Header.Get("Authorization"))
}

func TestDoRequest_Persistent401SurfacesAsAPIError(t *testing.T) {
	f := newFakeBB(t, func(w http.ResponseWriter, call recordedCall) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"title": "Não autorizado"})
	})
	client := newTestClient(t, f)

	_, err := client.doRequest(context.Background(), http.MethodGet, "cob/abc", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Len(t, f.recorded(), 2)
	assert.Equal(t, 2, f.tokenCount())
}

func TestDoRequest_TransportError(t *testing.T) {
	f := newFakeBB(t, notExpected(t))
	client := newTestClient(t, f)
	f.srv.Close()

	_, err := client.doRequest(context.Background(), http.MethodGet, "cob/abc", nil)
	require.Error(t, err)
	assert.True(t, IsTransport(err))

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestDoRequest_ContextCancelled(t *testing.T) {
	f := newFakeBB(t, notExpected(t))
	client := newTestClient(t, f)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.doRequest(ctx, http.MethodGet, "cob/abc", nil)
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.True(t, errors.Is(err, context.Canceled))
}
