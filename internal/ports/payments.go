// Package ports define as interfaces (portas) para adaptadores externos
// Seguindo o padrão Hexagonal Architecture / Ports & Adapters
package ports

//go:generate mockgen -source=payments.go -destination=mocks/mock_payments.go -package=mocks

import (
	"context"

	"github.com/Lillow/PixIntegration/internal/adapters/bb"
)

// ChargeProvider define a interface para o gateway de cobranças PIX
type ChargeProvider interface {
	// CreateOrUpdateImmediateCharge cria (sem txid) ou altera (com txid) uma cobrança
	CreateOrUpdateImmediateCharge(ctx context.Context, charge *bb.Charge) (*bb.ChargeResult, error)

	// CreateOrUpdateScheduledCharge cria uma cobrança e, se houver prazo, a converte em cobv
	CreateOrUpdateScheduledCharge(ctx context.Context, charge *bb.Charge) (*bb.ChargeResult, error)

	// LookupCharge consulta uma cobrança pelo txid (cob, depois cobv)
	LookupCharge(ctx context.Context, txid string) (*bb.ChargeResult, error)

	// CancelCharge cancela a cobrança reduzindo a expiração ao mínimo
	CancelCharge(ctx context.Context, txid string) (*bb.ChargeResult, error)

	// VerifyCancellation informa se o cancelamento já foi aplicado
	VerifyCancellation(ctx context.Context, txid string) (bool, error)
}

var _ ChargeProvider = (*bb.Client)(nil)
