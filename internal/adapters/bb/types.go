package bb

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// ChargeStatus define os status possíveis de uma cobrança
type ChargeStatus string

const (
	ChargeStatusActive        ChargeStatus = "ATIVA"
	ChargeStatusCompleted     ChargeStatus = "CONCLUIDA"
	ChargeStatusRemovedByUser ChargeStatus = "REMOVIDA_PELO_USUARIO_RECEBEDOR"
	ChargeStatusRemovedByPSP  ChargeStatus = "REMOVIDA_PELO_PSP"
)

// TokenResponse representa a resposta do endpoint de autenticação OAuth2
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Charge representa uma cobrança PIX (imediata ou com vencimento).
// TxID vazio significa que a cobrança ainda não existe no BB.
type Charge struct {
	Calendar       Calendar         `json:"calendario"`
	TxID           string           `json:"txid,omitempty"`
	Revision       int              `json:"revisao,omitempty"`
	Loc            *Location        `json:"loc,omitempty"`
	Location       string           `json:"location,omitempty"`
	Status         ChargeStatus     `json:"status,omitempty"`
	Debtor         *Debtor          `json:"devedor,omitempty"`
	Amount         *Amount          `json:"valor,omitempty"`
	PixKey         string           `json:"chave,omitempty"`
	PayerRequest   string           `json:"solicitacaoPagador,omitempty"`
	AdditionalInfo []AdditionalInfo `json:"infoAdicionais,omitempty"`
	PixCopyPaste   string           `json:"pixCopiaECola,omitempty"`
}

// NewCharge cria uma cobrança nova (sem txid) com solicitacaoPagador padrão
func NewCharge(pixKey string, debtor Debtor, amount Amount, calendar Calendar) *Charge {
	return &Charge{
		Calendar:     calendar,
		Debtor:       &debtor,
		Amount:       &amount,
		PixKey:       pixKey,
		PayerRequest: DefaultPayerRequest,
	}
}

// Clone devolve uma cópia da cobrança que pode ser alterada sem afetar o original
func (c *Charge) Clone() *Charge {
	clone := *c
	if c.Calendar.Expiration != nil {
		exp := *c.Calendar.Expiration
		clone.Calendar.Expiration = &exp
	}
	if c.Loc != nil {
		loc := *c.Loc
		clone.Loc = &loc
	}
	if c.Debtor != nil {
		debtor := *c.Debtor
		clone.Debtor = &debtor
	}
	if c.Amount != nil {
		amount := *c.Amount
		clone.Amount = &amount
	}
	if c.AdditionalInfo != nil {
		clone.AdditionalInfo = append([]AdditionalInfo(nil), c.AdditionalInfo...)
	}
	return &clone
}

// Location representa o location (payload do QR Code) vinculado à cobrança
type Location struct {
	ID       *int64 `json:"id,omitempty"`
	Location string `json:"location,omitempty"`
	TipoCob  string `json:"tipoCob,omitempty"`
}

// Debtor representa os dados do devedor
type Debtor struct {
	CNPJ       string `json:"cnpj,omitempty"`
	CPF        string `json:"cpf,omitempty"`
	Nome       string `json:"nome,omitempty"`
	Logradouro string `json:"logradouro,omitempty"`
	Cidade     string `json:"cidade,omitempty"`
	UF         string `json:"uf,omitempty"`
	CEP        string `json:"cep,omitempty"`
}

// Amount representa o valor da cobrança.
// Multa, juros e desconto só se aplicam a cobranças com vencimento.
type Amount struct {
	Original Money     `json:"original"`
	Fine     *Fine     `json:"multa,omitempty"`
	Interest *Interest `json:"juros,omitempty"`
	Discount *Discount `json:"desconto,omitempty"`
}

// Fine representa a multa por atraso
type Fine struct {
	Modality  *int   `json:"modalidade,omitempty"`
	ValuePerc *Money `json:"valorPerc,omitempty"`
}

// Interest representa os juros por atraso
type Interest struct {
	Modality  *int   `json:"modalidade,omitempty"`
	ValuePerc *Money `json:"valorPerc,omitempty"`
}

// Discount representa o desconto por antecipação
type Discount struct {
	Modality   *int                `json:"modalidade,omitempty"`
	FixedDates []FixedDateDiscount `json:"descontoDataFixa,omitempty"`
}

// FixedDateDiscount é um desconto válido até uma data
type FixedDateDiscount struct {
	Date      *Date  `json:"data,omitempty"`
	ValuePerc *Money `json:"valorPerc,omitempty"`
}

// AdditionalInfo representa um par chave/valor de infoAdicionais
type AdditionalInfo struct {
	Nome  string `json:"nome"`
	Valor string `json:"valor"`
}

// ChargeResult é o resultado de uma chamada de cobrança:
// a cobrança decodificada e o corpo bruto devolvido pelo BB
type ChargeResult struct {
	Charge *Charge
	Raw    json.RawMessage
}

// Date é uma data no formato "2006-01-02"
type Date struct {
	time.Time
}

// NewDate cria uma Date sem componente de hora
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON implementa json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON implementa json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	parsed, err := parseDate(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}

// chargeRequest é o corpo enviado em PUT/POST de cob e cobv.
// Campos de resposta (txid, status, loc, revisao) nunca são enviados.
type chargeRequest struct {
	Calendar       Calendar         `json:"calendario"`
	Debtor         *Debtor          `json:"devedor,omitempty"`
	Amount         *Amount          `json:"valor,omitempty"`
	PixKey         string           `json:"chave,omitempty"`
	PayerRequest   string           `json:"solicitacaoPagador,omitempty"`
	AdditionalInfo []AdditionalInfo `json:"infoAdicionais,omitempty"`
}

// newChargeRequest monta o corpo da requisição a partir da cobrança.
// Cobranças ainda sem txid sempre nascem no recurso cob, então o prazo é descartado.
func newChargeRequest(c *Charge) chargeRequest {
	calendar := Calendar{Expiration: c.Calendar.Expiration, Deadline: c.Calendar.Deadline}
	if c.TxID == "" {
		calendar.Deadline = nil
	}

	return chargeRequest{
		Calendar:       calendar,
		Debtor:         c.Debtor,
		Amount:         c.Amount,
		PixKey:         c.PixKey,
		PayerRequest:   c.PayerRequest,
		AdditionalInfo: c.AdditionalInfo,
	}
}
