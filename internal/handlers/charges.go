// Package handlers contém os handlers HTTP da aplicação
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Lillow/PixIntegration/internal/adapters/bb"
	"github.com/Lillow/PixIntegration/internal/ports"
)

const (
	defaultQRCodeSize = 256
	maxQRCodeSize     = 1024
)

// ChargeHandler expõe as operações de cobrança PIX via HTTP
type ChargeHandler struct {
	provider ports.ChargeProvider
	logger   *slog.Logger
}

// NewChargeHandler cria um novo handler de cobranças
func NewChargeHandler(provider ports.ChargeProvider, logger *slog.Logger) *ChargeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChargeHandler{
		provider: provider,
		logger:   logger,
	}
}

// CancellationResponse é a resposta de GET /api/charges/{txid}/cancellation
type CancellationResponse struct {
	TxID      string `json:"txid"`
	Cancelled bool   `json:"cancelled"`
}

// ErrorResponse é o corpo devolvido em caso de erro
type ErrorResponse struct {
	Error  string          `json:"error"`
	Status int             `json:"status,omitempty"`
	Detail json.RawMessage `json:"detail,omitempty"`
}

// CreateCharge cria uma cobrança imediata
// Endpoint: POST /api/charges
func (h *ChargeHandler) CreateCharge(w http.ResponseWriter, r *http.Request) {
	charge, ok := h.decodeCharge(w, r)
	if !ok {
		return
	}
	charge.TxID = ""

	result, err := h.provider.CreateOrUpdateImmediateCharge(r.Context(), charge)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.logger.Info("cobrança criada", "txid", result.Charge.TxID)
	writeResult(w, http.StatusCreated, result)
}

// UpdateCharge altera uma cobrança existente (cob ou cobv conforme o prazo)
// Endpoint: PUT /api/charges/{txid}
func (h *ChargeHandler) UpdateCharge(w http.ResponseWriter, r *http.Request) {
	txid, ok := txidParam(w, r)
	if !ok {
		return
	}

	charge, ok := h.decodeCharge(w, r)
	if !ok {
		return
	}
	charge.TxID = txid

	result, err := h.provider.CreateOrUpdateImmediateCharge(r.Context(), charge)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeResult(w, http.StatusOK, result)
}

// CreateScheduledCharge cria uma cobrança com vencimento
// Endpoint: POST /api/charges/scheduled
func (h *ChargeHandler) CreateScheduledCharge(w http.ResponseWriter, r *http.Request) {
	charge, ok := h.decodeCharge(w, r)
	if !ok {
		return
	}

	result, err := h.provider.CreateOrUpdateScheduledCharge(r.Context(), charge)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.logger.Info("cobrança com vencimento criada", "txid", result.Charge.TxID)
	writeResult(w, http.StatusCreated, result)
}

// GetCharge consulta uma cobrança
// Endpoint: GET /api/charges/{txid}
func (h *ChargeHandler) GetCharge(w http.ResponseWriter, r *http.Request) {
	txid, ok := txidParam(w, r)
	if !ok {
		return
	}

	result, err := h.provider.LookupCharge(r.Context(), txid)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeResult(w, http.StatusOK, result)
}

// CancelCharge cancela uma cobrança
// Endpoint: DELETE /api/charges/{txid}
func (h *ChargeHandler) CancelCharge(w http.ResponseWriter, r *http.Request) {
	txid, ok := txidParam(w, r)
	if !ok {
		return
	}

	result, err := h.provider.CancelCharge(r.Context(), txid)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.logger.Info("cobrança cancelada", "txid", txid)
	writeResult(w, http.StatusOK, result)
}

// GetCancellation informa se o cancelamento foi aplicado
// Endpoint: GET /api/charges/{txid}/cancellation
func (h *ChargeHandler) GetCancellation(w http.ResponseWriter, r *http.Request) {
	txid, ok := txidParam(w, r)
	if !ok {
		return
	}

	cancelled, err := h.provider.VerifyCancellation(r.Context(), txid)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, CancellationResponse{TxID: txid, Cancelled: cancelled})
}

// GetQRCode devolve o QR Code da cobrança em PNG
// Endpoint: GET /api/charges/{txid}/qrcode?size=256
func (h *ChargeHandler) GetQRCode(w http.ResponseWriter, r *http.Request) {
	txid, ok := txidParam(w, r)
	if !ok {
		return
	}

	size := defaultQRCodeSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxQRCodeSize {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "size inválido"})
			return
		}
		size = parsed
	}

	result, err := h.provider.LookupCharge(r.Context(), txid)
	if err != nil {
		h.writeError(w, err)
		return
	}

	png, err := bb.QRCodePNG(result.Charge, size)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(png)
}

// HealthCheck endpoint para verificar se o servidor está funcionando
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "pix-integration",
	})
}

func (h *ChargeHandler) decodeCharge(w http.ResponseWriter, r *http.Request) (*bb.Charge, bool) {
	var charge bb.Charge
	if err := json.NewDecoder(r.Body).Decode(&charge); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "json inválido"})
		return nil, false
	}
	if charge.PayerRequest == "" {
		charge.PayerRequest = bb.DefaultPayerRequest
	}
	return &charge, true
}

func txidParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	txid := chi.URLParam(r, "txid")
	if !bb.IsValidTxID(txid) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "txid inválido"})
		return "", false
	}
	return txid, true
}

// writeError converte os erros do adaptador em status HTTP
func (h *ChargeHandler) writeError(w http.ResponseWriter, err error) {
	var apiErr *bb.APIError

	switch {
	case bb.IsInvariant(err):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case bb.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "cobrança não encontrada"})
	case errors.As(err, &apiErr) && apiErr.Status < 500 && apiErr.Status != http.StatusUnauthorized:
		resp := ErrorResponse{Error: apiErr.Error(), Status: apiErr.Status}
		if json.Valid([]byte(apiErr.Body)) {
			resp.Detail = json.RawMessage(apiErr.Body)
		}
		writeJSON(w, apiErr.Status, resp)
	default:
		h.logger.Error("falha ao falar com o BB", "error", err)
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "falha ao falar com o Banco do Brasil"})
	}
}

func writeResult(w http.ResponseWriter, status int, result *bb.ChargeResult) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if len(result.Raw) > 0 {
		_, _ = w.Write(result.Raw)
		return
	}
	_ = json.NewEncoder(w).Encode(result.Charge)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
