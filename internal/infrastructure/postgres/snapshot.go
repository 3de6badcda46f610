package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/repository"
)

var _ repository.SnapshotLoader = (*SnapshotStore)(nil)

// SnapshotStore carica lo stato completo con cinque query piatte.
// I motori di saldo e di report sono riduttori puri: qui si legge
// tutto, si calcola in memoria, non si scrive mai.
type SnapshotStore struct {
	q Querier
}

func NewSnapshotStore(q Querier) *SnapshotStore {
	return &SnapshotStore{q: q}
}

func (s *SnapshotStore) Load(ctx context.Context) (*entity.Snapshot, error) {
	var snap entity.Snapshot

	if err := collect(ctx, s.q, `SELECT `+userColumns+` FROM users`, scanUser, &snap.Users); err != nil {
		return nil, fmt.Errorf("snapshot utenti: %w", err)
	}
	if err := collect(ctx, s.q, `SELECT `+productColumns+` FROM products`, scanProduct, &snap.Products); err != nil {
		return nil, fmt.Errorf("snapshot prodotti: %w", err)
	}
	if err := collect(ctx, s.q, `SELECT `+saleColumns+` FROM sales`, scanSale, &snap.Sales); err != nil {
		return nil, fmt.Errorf("snapshot vendite: %w", err)
	}
	if err := collect(ctx, s.q, `SELECT `+transactionColumns+` FROM transactions`, scanTransaction, &snap.Transactions); err != nil {
		return nil, fmt.Errorf("snapshot transazioni: %w", err)
	}
	if err := collect(ctx, s.q, `SELECT `+stockExpenseColumns+` FROM stock_expenses`, scanStockExpense, &snap.StockExpenses); err != nil {
		return nil, fmt.Errorf("snapshot spese stock: %w", err)
	}
	return &snap, nil
}

func collect[T any](ctx context.Context, q Querier, query string, scan func(pgx.Row) (*T, error), dst *[]T) error {
	rows, err := q.Query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return err
		}
		*dst = append(*dst, *v)
	}
	return rows.Err()
}
