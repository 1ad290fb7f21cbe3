package bb

import (
	"regexp"
	"strings"
)

var (
	emailKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	txidPattern     = regexp.MustCompile(`^[a-zA-Z0-9]{26,35}$`)
)

// ValidatePixKey verifica o formato da chave PIX.
// Apenas chaves do tipo e-mail são checadas; as demais são aceitas como vieram.
func ValidatePixKey(key string) error {
	if strings.Contains(key, "@") && !emailKeyPattern.MatchString(key) {
		return NewValidationError("chave", "chave PIX de e-mail inválida")
	}
	return nil
}

// IsValidTxID indica se o txid respeita o formato [a-zA-Z0-9]{26,35}
func IsValidTxID(txid string) bool {
	return txidPattern.MatchString(txid)
}
