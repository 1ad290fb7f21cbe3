package bb

import (
	"encoding/json"
	"fmt"
	"time"
)

// dateLayout é o formato de data usado em dataDeVencimento
const dateLayout = "2006-01-02"

// Deadline é o prazo de uma cobrança com vencimento (cobv).
// Só existem duas variantes: DueDate e ValidityAfterDue.
// Uma cobrança imediata não tem Deadline (nil).
type Deadline interface {
	deadline()
}

// DueDate é uma cobrança com data de vencimento
type DueDate struct {
	Date time.Time
}

// ValidityAfterDue é uma cobrança válida por N dias após o vencimento
type ValidityAfterDue struct {
	Days int64
}

func (DueDate) deadline()          {}
func (ValidityAfterDue) deadline() {}

// Calendar representa o calendário de uma cobrança (calendario)
type Calendar struct {
	Creation   string   // criacao, preenchido apenas pelo BB
	Expiration *int64   // expiracao em segundos
	Deadline   Deadline // nil para cobrança imediata
}

// ImmediateCalendar cria o calendário de uma cobrança imediata
func ImmediateCalendar(expiration int64) Calendar {
	return Calendar{Expiration: &expiration}
}

// DueDateCalendar cria um calendário com data de vencimento
func DueDateCalendar(expiration int64, dueDate time.Time) Calendar {
	return Calendar{Expiration: &expiration, Deadline: DueDate{Date: dueDate}}
}

// ValidityCalendar cria um calendário com validade após o vencimento
func ValidityCalendar(expiration, days int64) Calendar {
	return Calendar{Expiration: &expiration, Deadline: ValidityAfterDue{Days: days}}
}

// HasDeadline indica se a cobrança deve ir para o recurso cobv
func (c Calendar) HasDeadline() bool {
	return c.Deadline != nil
}

type calendarWire struct {
	Criacao                string `json:"criacao,omitempty"`
	Expiracao              *int64 `json:"expiracao,omitempty"`
	DataDeVencimento       string `json:"dataDeVencimento,omitempty"`
	ValidadeAposVencimento *int64 `json:"validadeAposVencimento,omitempty"`
}

// MarshalJSON implementa json.Marshaler
func (c Calendar) MarshalJSON() ([]byte, error) {
	w := calendarWire{
		Criacao:   c.Creation,
		Expiracao: c.Expiration,
	}

	switch d := c.Deadline.(type) {
	case nil:
	case DueDate:
		w.DataDeVencimento = d.Date.Format(dateLayout)
	case ValidityAfterDue:
		days := d.Days
		w.ValidadeAposVencimento = &days
	default:
		return nil, fmt.Errorf("tipo de prazo desconhecido: %T", d)
	}

	return json.Marshal(w)
}

// UnmarshalJSON implementa json.Unmarshaler.
// Se o BB devolver dataDeVencimento e validadeAposVencimento juntos,
// a data de vencimento prevalece.
func (c *Calendar) UnmarshalJSON(data []byte) error {
	var w calendarWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	c.Creation = w.Criacao
	c.Expiration = w.Expiracao
	c.Deadline = nil

	switch {
	case w.DataDeVencimento != "":
		date, err := parseDate(w.DataDeVencimento)
		if err != nil {
			return err
		}
		c.Deadline = DueDate{Date: date}
	case w.ValidadeAposVencimento != nil:
		c.Deadline = ValidityAfterDue{Days: *w.ValidadeAposVencimento}
	}

	return nil
}

// parseDate aceita "2006-01-02" e também timestamps completos
func parseDate(value string) (time.Time, error) {
	if len(value) > len(dateLayout) {
		value = value[:len(dateLayout)]
	}
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("dataDeVencimento inválida %q: %w", value, err)
	}
	return date, nil
}
