package bb

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money é um valor monetário serializado como string com 2 casas ("100.00"),
// formato exigido pela API PIX
type Money struct {
	decimal.Decimal
}

// NewMoney cria um Money a partir de uma string decimal ("10.5", "100.00")
func NewMoney(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, fmt.Errorf("valor monetário inválido %q: %w", value, err)
	}
	return Money{Decimal: d}, nil
}

// MustMoney é como NewMoney mas entra em pânico se o valor for inválido
func MustMoney(value string) Money {
	m, err := NewMoney(value)
	if err != nil {
		panic(err)
	}
	return m
}

// MoneyFromCents converte centavos para Money
func MoneyFromCents(cents int64) Money {
	return Money{Decimal: decimal.New(cents, -2)}
}

// String retorna o valor com exatamente 2 casas decimais
func (m Money) String() string {
	return m.StringFixed(2)
}

// Equal compara dois valores monetários
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// MarshalJSON implementa json.Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}

// UnmarshalJSON aceita tanto "100.00" quanto 100.00
func (m *Money) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	return m.Decimal.UnmarshalJSON(data)
}
