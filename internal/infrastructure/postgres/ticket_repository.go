package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mwsdigital/console-api/internal/domain"
	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/repository"
)

var _ repository.TicketRepository = (*TicketRepo)(nil)

// TicketRepo adattatore PostgreSQL per i ticket. Il thread di risposte è
// un documento JSONB che cresce solo in append.
type TicketRepo struct {
	q Querier
}

func NewTicketRepository(q Querier) *TicketRepo {
	return &TicketRepo{q: q}
}

const ticketColumns = `id, user_id, user_name, role, subject, status, replies, created_at, updated_at`

func scanTicket(row pgx.Row) (*entity.Ticket, error) {
	var t entity.Ticket
	var replies []byte
	err := row.Scan(&t.ID, &t.UserID, &t.UserName, &t.Role, &t.Subject, &t.Status, &replies, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(replies) > 0 {
		if err := json.Unmarshal(replies, &t.Replies); err != nil {
			return nil, fmt.Errorf("decodifica risposte: %w", err)
		}
	}
	return &t, nil
}

func (r *TicketRepo) Create(ctx context.Context, t *entity.Ticket) error {
	replies, err := json.Marshal(t.Replies)
	if err != nil {
		return fmt.Errorf("codifica risposte: %w", err)
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO tickets (`+ticketColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		t.ID, t.UserID, t.UserName, t.Role, t.Subject, t.Status, replies, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

func (r *TicketRepo) GetByID(ctx context.Context, id string) (*entity.Ticket, error) {
	t, err := scanTicket(r.q.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return t, nil
}

func (r *TicketRepo) ListByUser(ctx context.Context, userID string) ([]entity.Ticket, error) {
	return r.list(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE user_id = $1 ORDER BY updated_at DESC`, userID)
}

func (r *TicketRepo) ListAll(ctx context.Context) ([]entity.Ticket, error) {
	return r.list(ctx, `SELECT `+ticketColumns+` FROM tickets ORDER BY updated_at DESC`)
}

func (r *TicketRepo) AppendReply(ctx context.Context, ticketID string, reply entity.TicketReply) error {
	entry, err := json.Marshal(reply)
	if err != nil {
		return fmt.Errorf("codifica risposta: %w", err)
	}
	tag, err := r.q.Exec(ctx, `
		UPDATE tickets
		SET replies = COALESCE(replies, '[]'::jsonb) || $2::jsonb, updated_at = $3
		WHERE id = $1`,
		ticketID, entry, reply.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("accoda risposta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TicketRepo) SetStatus(ctx context.Context, id, status string, at time.Time) error {
	tag, err := r.q.Exec(ctx, `UPDATE tickets SET status = $2, updated_at = $3 WHERE id = $1`, id, status, at)
	if err != nil {
		return fmt.Errorf("update stato ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TicketRepo) CountOpen(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM tickets WHERE status = 'Aperto'`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("conta ticket aperti: %w", err)
	}
	return n, nil
}

func (r *TicketRepo) list(ctx context.Context, query string, args ...any) ([]entity.Ticket, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ticket: %w", err)
	}
	defer rows.Close()

	var out []entity.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}
