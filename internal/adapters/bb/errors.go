package bb

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Erros sentinela para condições comuns
var (
	// ErrConfiguration indica credencial ausente na construção do cliente
	ErrConfiguration = errors.New("bb: configuração inválida")

	// ErrUnauthorized indica falha de autenticação
	ErrUnauthorized = errors.New("bb: não autorizado")

	// ErrTransport indica falha de rede ao falar com o BB
	ErrTransport = errors.New("bb: falha na comunicação")

	// ErrNotFound indica que a cobrança não foi encontrada
	ErrNotFound = errors.New("bb: recurso não encontrado")

	// ErrRateLimited indica rate limiting
	ErrRateLimited = errors.New("bb: rate limit atingido")

	// ErrServerError indica erro interno do servidor do BB
	ErrServerError = errors.New("bb: erro do servidor")

	// ErrInvariant indica uma pré-condição verificada pelo próprio cliente
	ErrInvariant = errors.New("bb: pré-condição violada")
)

// ConfigError indica que uma credencial obrigatória não foi informada
type ConfigError struct {
	Field string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("bb: %s é obrigatório", e.Field)
}

// Is permite errors.Is(err, ErrConfiguration)
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

// AuthError indica que o endpoint OAuth recusou as credenciais ou não devolveu token
type AuthError struct {
	Status int
	Body   string
	Reason string
}

func (e *AuthError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("falha ao obter o access token: %s", e.Reason)
	}
	return fmt.Sprintf("falha ao obter o access token: status %d - %s", e.Status, e.Body)
}

// Is permite errors.Is(err, ErrUnauthorized)
func (e *AuthError) Is(target error) bool {
	return target == ErrUnauthorized
}

// TransportError indica que a requisição HTTP não chegou a ser concluída
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("falha na comunicação (%s %s): %v", e.Op, e.URL, e.Err)
}

// Unwrap expõe o erro de rede original (context.DeadlineExceeded, *url.Error...)
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is permite errors.Is(err, ErrTransport)
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// Violation é uma violação de campo no formato de problema da API PIX
type Violation struct {
	Razao       string `json:"razao"`
	Propriedade string `json:"propriedade"`
	Valor       string `json:"valor,omitempty"`
}

// APIError representa uma resposta não-2xx de um endpoint de cobrança.
// Status e Body estão sempre presentes; os demais campos são preenchidos
// quando o corpo segue o formato de problema da API PIX.
type APIError struct {
	Status    int         `json:"-"`
	Body      string      `json:"-"`
	Type      string      `json:"type,omitempty"`
	Title     string      `json:"title,omitempty"`
	Detail    string      `json:"detail,omitempty"`
	Violacoes []Violation `json:"violacoes,omitempty"`
}

// newAPIError monta um APIError a partir da resposta
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{}
	_ = json.Unmarshal(body, apiErr)
	apiErr.Status = status
	apiErr.Body = string(body)
	return apiErr
}

// Error implementa a interface error
func (e *APIError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = e.Title
	}
	if msg == "" {
		msg = strings.TrimSpace(e.Body)
	}
	return fmt.Sprintf("erro da API: status %d - %s", e.Status, msg)
}

// Is mapeia o status HTTP para os erros sentinela
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrRateLimited:
		return e.Status == http.StatusTooManyRequests
	case ErrServerError:
		return e.Status >= 500
	}
	return false
}

// InvariantError indica que o cliente recusou seguir por uma pré-condição não atendida
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string {
	return e.Message
}

// Is permite errors.Is(err, ErrInvariant)
func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariant
}

// ValidationError representa um erro de validação com detalhes do campo
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("erro de validação no campo '%s': %s", e.Field, e.Message)
}

// Is permite errors.Is(err, ErrInvariant)
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvariant
}

// NewValidationError cria um novo ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsNotFound retorna true se o erro indica que o recurso não foi encontrado
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized retorna true se o erro indica falha de autenticação
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsRateLimited retorna true se o erro indica rate limiting
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsServerError retorna true se o erro é do servidor (5xx)
func IsServerError(err error) bool {
	return errors.Is(err, ErrServerError)
}

// IsTransport retorna true se a requisição não chegou ao BB
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsInvariant retorna true se o erro é uma pré-condição do próprio cliente
func IsInvariant(err error) bool {
	return errors.Is(err, ErrInvariant)
}

// WrapAPIError envolve um erro com contexto adicional
func WrapAPIError(operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("bb %s: %w", operation, err)
}
