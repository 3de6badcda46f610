package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mwsdigital/console-api/internal/domain"
	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo adattatore PostgreSQL per gli avvisi. I destinatari
// per ruolo e le prese visione sono array testuali della riga.
type NotificationRepo struct {
	q Querier
}

func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

func scanNotification(row pgx.Row) (*entity.Notification, error) {
	var n entity.Notification
	var roles []string
	err := row.Scan(&n.ID, &n.Title, &n.Message, &n.Link, &roles, &n.ReadBy, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	n.TargetRoles = make([]entity.Role, 0, len(roles))
	for _, r := range roles {
		n.TargetRoles = append(n.TargetRoles, entity.Role(r))
	}
	if n.ReadBy == nil {
		n.ReadBy = []string{}
	}
	return &n, nil
}

func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	roles := make([]string, 0, len(n.TargetRoles))
	for _, role := range n.TargetRoles {
		roles = append(roles, string(role))
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO notifications (id, title, message, link, target_roles, read_by, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		n.ID, n.Title, n.Message, n.Link, roles, n.ReadBy, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert avviso: %w", err)
	}
	return nil
}

func (r *NotificationRepo) ListForRole(ctx context.Context, role entity.Role, limit int) ([]entity.Notification, error) {
	query := `
		SELECT id, title, message, link, target_roles, read_by, created_at
		FROM notifications
		WHERE $1 = ANY(target_roles)
		ORDER BY created_at DESC`
	args := []any{string(role)}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list avvisi: %w", err)
	}
	defer rows.Close()

	var out []entity.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan avviso: %w", err)
		}
		out = append(out, *n)
	}
	return out, rows.Err()
}

// MarkRead aggiunge l'utente alle prese visione. Idempotente: se è già
// presente la riga non cambia.
func (r *NotificationRepo) MarkRead(ctx context.Context, id, userID string) error {
	// Zero righe toccate: già letto oppure id inesistente, entrambi ok.
	_, err := r.q.Exec(ctx, `
		UPDATE notifications
		SET read_by = array_append(read_by, $2)
		WHERE id = $1 AND NOT ($2 = ANY(read_by))`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("marca avviso letto: %w", err)
	}
	return nil
}

func (r *NotificationRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("elimina avviso: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
