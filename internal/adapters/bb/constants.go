package bb

const (
	// Recursos da API PIX v2
	resourceCob  = "cob"
	resourceCobv = "cobv"

	// Cabeçalhos exigidos pelo gateway do BB
	headerAppKey          = "gw-dev-app-key"
	headerDeveloperAppKey = "X-Developer-Application-Key"
	headerRequestID       = "X-Request-ID"

	// CancelExpiration é a expiração mínima usada para "cancelar" uma cobrança
	CancelExpiration int64 = 1

	// DefaultPayerRequest é o texto padrão de solicitacaoPagador
	DefaultPayerRequest = "Serviço realizado."
)
