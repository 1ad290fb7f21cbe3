// Package bb implementa o adaptador para a API PIX v2 do Banco do Brasil.
//
// Este pacote implementa:
//   - Cobrança imediata (cob): criação e alteração
//   - Cobrança com vencimento (cobv): criação e alteração
//   - Consulta de cobrança (cob com fallback para cobv)
//   - Cancelamento de cobrança por expiração mínima
//
// # Autenticação
//
// A API usa OAuth2 client credentials. Você precisa:
//   - Client ID e Client Secret (do portal developers.bb.com.br)
//   - Developer Application Key (enviada como gw-dev-app-key)
//
// O token é obtido na construção do cliente e reaproveitado até o BB recusá-lo;
// um 401 provoca uma nova autenticação e uma única repetição da chamada.
//
// # Início Rápido
//
// Criar o cliente:
//
//	client, err := bb.NewClient(ctx, &cfg.BB)
//
// Criar uma cobrança imediata (o BB atribui o txid):
//
//	charge := bb.NewCharge(
//	    "hmtestes2@bb.com.br",
//	    bb.Debtor{CNPJ: "12345678000195", Nome: "Devedor teste"},
//	    bb.Amount{Original: bb.MustMoney("100.00")},
//	    bb.ImmediateCalendar(3600),
//	)
//	res, err := client.CreateOrUpdateImmediateCharge(ctx, charge)
//
// Criar uma cobrança com vencimento:
//
//	charge.Calendar = bb.DueDateCalendar(3600, time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC))
//	res, err := client.CreateOrUpdateScheduledCharge(ctx, charge)
//
// # Cancelamento
//
// Não existe verbo de cancelamento na API: CancelCharge reenvia a cobrança
// com expiracao = 1 e sem prazo. Confirme com VerifyCancellation se precisar.
//
// # Tratamento de Erros
//
//	if bb.IsNotFound(err) {
//	    // Cobrança não existe em cob nem em cobv
//	}
//	if bb.IsInvariant(err) {
//	    // O cliente recusou a operação antes de chamar o BB
//	}
//	var apiErr *bb.APIError
//	if errors.As(err, &apiErr) {
//	    // apiErr.Status, apiErr.Body
//	}
package bb
