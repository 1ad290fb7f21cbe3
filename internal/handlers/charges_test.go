package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Lillow/PixIntegration/internal/adapters/bb"
	"github.com/Lillow/PixIntegration/internal/handlers"
	"github.com/Lillow/PixIntegration/internal/ports/mocks"
)

const txid = "7978c0c97ea847e78e8849634473c1f1"

func newServer(t *testing.T) (*mocks.MockChargeProvider, *httptest.Server) {
	t.Helper()

	ctrl := gomock.NewController(t)
	provider := mocks.NewMockChargeProvider(ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := handlers.NewRouter(handlers.NewChargeHandler(provider, logger))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return provider, srv
}

func do(t *testing.T, method, url string, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, url, reader)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func result(charge *bb.Charge) *bb.ChargeResult {
	raw, _ := json.Marshal(charge)
	return &bb.ChargeResult{Charge: charge, Raw: raw}
}

const chargeBody = `{
	"calendario": {"expiracao": 3600},
	"devedor": {"cnpj": "12345678000195", "nome": "Empresa de Serviços SA"},
	"valor": {"original": "37.00"},
	"chave": "hmtestes2@bb.com.br"
}`

func TestCreateCharge(t *testing.T) {
	provider, srv := newServer(t)

	provider.EXPECT().
		CreateOrUpdateImmediateCharge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, charge *bb.Charge) (*bb.ChargeResult, error) {
			assert.Empty(t, charge.TxID)
			assert.Equal(t, "hmtestes2@bb.com.br", charge.PixKey)
			assert.Equal(t, bb.DefaultPayerRequest, charge.PayerRequest)
			assert.Equal(t, "37.00", charge.Amount.Original.String())

			created := charge.Clone()
			created.TxID = txid
			created.Status = bb.ChargeStatusActive
			return result(created), nil
		})

	resp := do(t, http.MethodPost, srv.URL+"/api/charges", chargeBody)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got bb.Charge
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, txid, got.TxID)
	assert.Equal(t, bb.ChargeStatusActive, got.Status)
}

func TestCreateCharge_InvalidJSON(t *testing.T) {
	_, srv := newServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/api/charges", "{")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateCharge_UsesPathTxID(t *testing.T) {
	provider, srv := newServer(t)

	provider.EXPECT().
		CreateOrUpdateImmediateCharge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, charge *bb.Charge) (*bb.ChargeResult, error) {
			assert.Equal(t, txid, charge.TxID)
			return result(charge), nil
		})

	resp := do(t, http.MethodPut, srv.URL+"/api/charges/"+txid, chargeBody)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateScheduledCharge(t *testing.T) {
	provider, srv := newServer(t)

	body := `{"calendario":{"expiracao":3600,"dataDeVencimento":"2025-04-10"},"valor":{"original":"10.00"},"chave":"hmtestes2@bb.com.br"}`

	provider.EXPECT().
		CreateOrUpdateScheduledCharge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, charge *bb.Charge) (*bb.ChargeResult, error) {
			due, ok := charge.Calendar.Deadline.(bb.DueDate)
			if assert.True(t, ok) {
				assert.Equal(t, "2025-04-10", due.Date.Format("2006-01-02"))
			}

			created := charge.Clone()
			created.TxID = txid
			return result(created), nil
		})

	resp := do(t, http.MethodPost, srv.URL+"/api/charges/scheduled", body)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestGetCharge_InvalidTxID(t *testing.T) {
	_, srv := newServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/charges/curto", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetCharge_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "not found",
			err:        bb.WrapAPIError("consultar cobrança", &bb.APIError{Status: http.StatusNotFound}),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "bad request passes through",
			err:        &bb.APIError{Status: http.StatusBadRequest, Body: `{"title":"Cobrança inválida."}`},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "server error",
			err:        &bb.APIError{Status: http.StatusServiceUnavailable},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "unauthorized",
			err:        &bb.APIError{Status: http.StatusUnauthorized},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "transport",
			err:        &bb.TransportError{Op: http.MethodGet, URL: "https://api.hm.bb.com.br", Err: errors.New("connection refused")},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "invariant",
			err:        &bb.InvariantError{Message: "não é possível cancelar uma cobrança sem expiração definida"},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, srv := newServer(t)
			provider.EXPECT().LookupCharge(gomock.Any(), txid).Return(nil, tt.err)

			resp := do(t, http.MethodGet, srv.URL+"/api/charges/"+txid, "")
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestCancelCharge(t *testing.T) {
	provider, srv := newServer(t)

	expiration := bb.CancelExpiration
	cancelled := &bb.Charge{TxID: txid, Calendar: bb.Calendar{Expiration: &expiration}}
	provider.EXPECT().CancelCharge(gomock.Any(), txid).Return(result(cancelled), nil)

	resp := do(t, http.MethodDelete, srv.URL+"/api/charges/"+txid, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got bb.Charge
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.NotNil(t, got.Calendar.Expiration)
	assert.Equal(t, int64(1), *got.Calendar.Expiration)
}

func TestGetCancellation(t *testing.T) {
	provider, srv := newServer(t)
	provider.EXPECT().VerifyCancellation(gomock.Any(), txid).Return(true, nil)

	resp := do(t, http.MethodGet, srv.URL+"/api/charges/"+txid+"/cancellation", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got handlers.CancellationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, handlers.CancellationResponse{TxID: txid, Cancelled: true}, got)
}

func TestGetQRCode(t *testing.T) {
	provider, srv := newServer(t)

	charge := &bb.Charge{TxID: txid, PixCopyPaste: "00020101021226830014br.gov.bcb.pix"}
	provider.EXPECT().LookupCharge(gomock.Any(), txid).Return(result(charge), nil)

	resp := do(t, http.MethodGet, srv.URL+"/api/charges/"+txid+"/qrcode?size=128", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	png, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestGetQRCode_InvalidSize(t *testing.T) {
	_, srv := newServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/charges/"+txid+"/qrcode?size=abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetQRCode_WithoutPayload(t *testing.T) {
	provider, srv := newServer(t)
	provider.EXPECT().LookupCharge(gomock.Any(), txid).Return(result(&bb.Charge{TxID: txid}), nil)

	resp := do(t, http.MethodGet, srv.URL+"/api/charges/"+txid+"/qrcode", "")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHealthCheck(t *testing.T) {
	_, srv := newServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "healthy", got["status"])
}
