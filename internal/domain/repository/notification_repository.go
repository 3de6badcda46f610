package repository

import (
	"context"

	"github.com/mwsdigital/console-api/internal/domain/entity"
)

// NotificationRepository porta di persistenza per gli avvisi in-app.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error

	// ListForRole ritorna gli avvisi destinati al ruolo, dal più recente.
	ListForRole(ctx context.Context, role entity.Role, limit int) ([]entity.Notification, error)

	// MarkRead aggiunge l'utente a ReadBy (idempotente).
	MarkRead(ctx context.Context, id, userID string) error

	Delete(ctx context.Context, id string) error
}
