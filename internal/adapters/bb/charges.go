package bb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// CreateOrUpdateImmediateCharge cria ou altera uma cobrança.
// Sem txid a cobrança é criada com POST cob e o BB atribui o txid;
// com txid ela é alterada com PUT cob/{txid}, ou cobv/{txid} se houver prazo.
func (c *Client) CreateOrUpdateImmediateCharge(ctx context.Context, charge *Charge) (*ChargeResult, error) {
	if charge == nil {
		return nil, NewValidationError("cobranca", "cobrança é obrigatória")
	}

	result, err := c.submit(ctx, charge)
	if err != nil {
		return nil, WrapAPIError("criar cobrança imediata", err)
	}
	return result, nil
}

// CreateOrUpdateScheduledCharge cria ou altera uma cobrança com vencimento.
// A cobrança é primeiro materializada em cob (para obter o txid) e, se houver
// dataDeVencimento ou validadeAposVencimento, reenviada para cobv/{txid}
// com o mesmo prazo e a mesma chave PIX.
func (c *Client) CreateOrUpdateScheduledCharge(ctx context.Context, charge *Charge) (*ChargeResult, error) {
	if charge == nil {
		return nil, NewValidationError("cobranca", "cobrança é obrigatória")
	}

	immediate := charge.Clone()
	immediate.Calendar.Deadline = nil

	result, err := c.submit(ctx, immediate)
	if err != nil {
		return nil, WrapAPIError("criar cobrança com vencimento", err)
	}

	if result.Charge.TxID == "" {
		return nil, &InvariantError{Message: "txid não pode ser nulo ou vazio"}
	}

	if !charge.Calendar.HasDeadline() {
		return result, nil
	}

	scheduled := result.Charge.Clone()
	scheduled.Calendar.Deadline = charge.Calendar.Deadline
	scheduled.PixKey = charge.PixKey

	result, err = c.submit(ctx, scheduled)
	if err != nil {
		return nil, WrapAPIError("criar cobrança com vencimento", err)
	}
	return result, nil
}

// LookupCharge consulta uma cobrança pelo txid.
// Se cob/{txid} responder 404, tenta uma única vez cobv/{txid}.
func (c *Client) LookupCharge(ctx context.Context, txid string) (*ChargeResult, error) {
	if txid == "" {
		return nil, NewValidationError("txid", "txid é obrigatório")
	}

	respBody, err := c.doRequest(ctx, http.MethodGet, chargePath(resourceCob, txid), nil)
	if IsNotFound(err) {
		c.logger.Debug("cobrança imediata não encontrada, consultando cobv", "txid", txid)
		respBody, err = c.doRequest(ctx, http.MethodGet, chargePath(resourceCobv, txid), nil)
	}
	if err != nil {
		return nil, WrapAPIError("consultar cobrança", err)
	}

	return decodeChargeResult(respBody)
}

// CancelCharge "cancela" uma cobrança.
//
// A API PIX do BB não tem um verbo de cancelamento: a cobrança é consultada,
// a expiração é reduzida para 1 segundo, o prazo é removido e ela é reenviada.
// O cancelamento é best-effort; use VerifyCancellation para confirmar.
func (c *Client) CancelCharge(ctx context.Context, txid string) (*ChargeResult, error) {
	current, err := c.LookupCharge(ctx, txid)
	if err != nil {
		return nil, err
	}

	charge := current.Charge.Clone()
	if charge.Calendar.Expiration == nil {
		return nil, &InvariantError{Message: "não é possível cancelar uma cobrança sem expiração definida"}
	}

	expiration := CancelExpiration
	charge.Calendar.Expiration = &expiration
	charge.Calendar.Deadline = nil
	if charge.TxID == "" {
		charge.TxID = txid
	}

	c.logger.Info("cancelando cobrança por expiração mínima", "txid", charge.TxID)

	result, err := c.submit(ctx, charge)
	if err != nil {
		return nil, WrapAPIError("cancelar cobrança", err)
	}
	return result, nil
}

// VerifyCancellation consulta a cobrança novamente e informa se o
// cancelamento por expiração mínima foi de fato aplicado pelo BB
func (c *Client) VerifyCancellation(ctx context.Context, txid string) (bool, error) {
	result, err := c.LookupCharge(ctx, txid)
	if err != nil {
		return false, err
	}

	cal := result.Charge.Calendar
	cancelled := cal.Expiration != nil && *cal.Expiration == CancelExpiration && !cal.HasDeadline()
	return cancelled, nil
}

// submit envia a cobrança para o recurso adequado e decodifica a resposta
func (c *Client) submit(ctx context.Context, charge *Charge) (*ChargeResult, error) {
	if err := ValidatePixKey(charge.PixKey); err != nil {
		return nil, err
	}

	method, path := route(charge)
	respBody, err := c.doRequest(ctx, method, path, newChargeRequest(charge))
	if err != nil {
		return nil, err
	}

	return decodeChargeResult(respBody)
}

// route escolhe método e caminho:
// sem txid é criação (POST cob); com txid é alteração,
// em cobv se a cobrança tiver prazo e em cob caso contrário
func route(charge *Charge) (method, path string) {
	if charge.TxID == "" {
		return http.MethodPost, resourceCob
	}
	if charge.Calendar.HasDeadline() {
		return http.MethodPut, chargePath(resourceCobv, charge.TxID)
	}
	return http.MethodPut, chargePath(resourceCob, charge.TxID)
}

func chargePath(resource, txid string) string {
	return fmt.Sprintf("%s/%s", resource, url.PathEscape(txid))
}

// decodeChargeResult decodifica a cobrança mantendo o corpo bruto
func decodeChargeResult(respBody []byte) (*ChargeResult, error) {
	var charge Charge
	if err := json.Unmarshal(respBody, &charge); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}
	return &ChargeResult{Charge: &charge, Raw: json.RawMessage(respBody)}, nil
}
