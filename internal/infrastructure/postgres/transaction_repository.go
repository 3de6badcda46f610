package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mwsdigital/console-api/internal/domain"
	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo adattatore PostgreSQL per i movimenti del registro.
type TransactionRepo struct {
	q Querier
}

func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const transactionColumns = `
	id, type, status, user_id, from_user_id, from_user_name, to_user_id, to_user_name,
	amount, payment_method, payment_details, notes, created_at, resolved_at, resolved_by`

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	err := row.Scan(
		&t.ID, &t.Type, &t.Status, &t.UserID, &t.FromUserID, &t.FromUserName, &t.ToUserID, &t.ToUserName,
		&t.Amount, &t.PaymentMethod, &t.PaymentDetails, &t.Notes, &t.CreatedAt, &t.ResolvedAt, &t.ResolvedBy,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Type, t.Status, t.UserID, t.FromUserID, t.FromUserName, t.ToUserID, t.ToUserName,
		t.Amount, t.PaymentMethod, t.PaymentDetails, t.Notes, t.CreatedAt, t.ResolvedAt, t.ResolvedBy,
	)
	if err != nil {
		return fmt.Errorf("insert transazione: %w", err)
	}
	return nil
}

func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	t, err := scanTransaction(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transazione: %w", err)
	}
	return t, nil
}

// ListByUser ritorna i movimenti che toccano l'utente in qualunque ruolo
// (richiedente, mittente o destinatario).
func (r *TransactionRepo) ListByUser(ctx context.Context, userID string) ([]entity.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1 OR from_user_id = $1 OR to_user_id = $1
		ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *TransactionRepo) ListPending(ctx context.Context) ([]entity.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE status = 'Pending'
		ORDER BY created_at ASC`
	return r.list(ctx, query)
}

// Resolve chiude una transazione Pending con un update condizionato: se
// un altro operatore è arrivato prima, nessuna riga cambia e l'esito è
// un conflitto di stato, mai una doppia applicazione.
func (r *TransactionRepo) Resolve(ctx context.Context, id, status, resolvedBy string, at time.Time) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE transactions
		SET status = $2, resolved_by = $3, resolved_at = $4
		WHERE id = $1 AND status = 'Pending'`,
		id, status, resolvedBy, at,
	)
	if err != nil {
		return fmt.Errorf("risolvi transazione: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionState
	}
	return nil
}

func (r *TransactionRepo) list(ctx context.Context, query string, args ...any) ([]entity.Transaction, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transazioni: %w", err)
	}
	defer rows.Close()

	var out []entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transazione: %w", err)
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}
