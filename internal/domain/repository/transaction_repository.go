package repository

import (
	"context"
	"time"

	"github.com/mwsdigital/console-api/internal/domain/entity"
)

// TransactionRepository porta di persistenza per i movimenti del registro.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Transaction, error)
	ListPending(ctx context.Context) ([]entity.Transaction, error)

	// Resolve chiude una transazione pending (completed o rejected).
	Resolve(ctx context.Context, id, status, resolvedBy string, at time.Time) error
}
