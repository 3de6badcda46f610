package repository

import (
	"context"
	"time"

	"github.com/mwsdigital/console-api/internal/domain/entity"
)

// SaleFilter criteri di lista per le vendite. I campi vuoti non filtrano.
type SaleFilter struct {
	AffiliateID string
	Status      string
	ProductID   string
	SubID       string
	From        *time.Time
	To          *time.Time
}

// SaleRepository porta di persistenza per le vendite.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context, filter SaleFilter) ([]entity.Sale, error)

	// UpdateStatus aggiorna stato, timestamp e tracking in un colpo solo.
	UpdateStatus(ctx context.Context, id, status, trackingCode string, at time.Time) error

	// StampContact registra l'ultimo contatto e accoda la voce di storico.
	StampContact(ctx context.Context, id string, item entity.ContactHistoryItem) error

	UpdateNotes(ctx context.Context, id, notes string) error
	UpdateCustomer(ctx context.Context, sale *entity.Sale) error

	// MarkDuplicates porta a Duplicato le vendite indicate.
	MarkDuplicates(ctx context.Context, ids []string, at time.Time) error
}
