package ledger

import (
	"context"

	"github.com/mwsdigital/console-api/internal/domain/entity"
)

// ReceiptPDFGenerator produce la ricevuta di un payout completato.
// L'implementazione vive in infrastructure/pdf.
type ReceiptPDFGenerator interface {
	GeneratePayoutReceipt(ctx context.Context, tx *entity.Transaction, payee *entity.User) ([]byte, error)
}
