package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mwsdigital/console-api/internal/domain"
	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/repository"
)

var _ repository.StockExpenseRepository = (*StockExpenseRepo)(nil)

// StockExpenseRepo adattatore PostgreSQL per acquisti stock e spese.
type StockExpenseRepo struct {
	q Querier
}

func NewStockExpenseRepository(q Querier) *StockExpenseRepo {
	return &StockExpenseRepo{q: q}
}

const stockExpenseColumns = `id, product_id, description, payer, quantity, unit_cost, total_cost, purchase_date, created_at`

func scanStockExpense(row pgx.Row) (*entity.StockExpense, error) {
	var e entity.StockExpense
	err := row.Scan(&e.ID, &e.ProductID, &e.Description, &e.Payer, &e.Quantity, &e.UnitCost, &e.TotalCost, &e.PurchaseDate, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *StockExpenseRepo) Create(ctx context.Context, e *entity.StockExpense) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock_expenses (`+stockExpenseColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		e.ID, e.ProductID, e.Description, e.Payer, e.Quantity, e.UnitCost, e.TotalCost, e.PurchaseDate, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert spesa stock: %w", err)
	}
	return nil
}

func (r *StockExpenseRepo) List(ctx context.Context) ([]entity.StockExpense, error) {
	return r.list(ctx, `SELECT `+stockExpenseColumns+` FROM stock_expenses ORDER BY purchase_date DESC`)
}

func (r *StockExpenseRepo) ListByProduct(ctx context.Context, productID string) ([]entity.StockExpense, error) {
	return r.list(ctx, `SELECT `+stockExpenseColumns+` FROM stock_expenses WHERE product_id = $1 ORDER BY purchase_date DESC`, productID)
}

func (r *StockExpenseRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM stock_expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete spesa stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *StockExpenseRepo) list(ctx context.Context, query string, args ...any) ([]entity.StockExpense, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list spese stock: %w", err)
	}
	defer rows.Close()

	var out []entity.StockExpense
	for rows.Next() {
		e, err := scanStockExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan spesa stock: %w", err)
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}
