package repository

import (
	"context"

	"github.com/mwsdigital/console-api/internal/domain/entity"
)

// StockExpenseRepository porta di persistenza per acquisti stock e spese.
type StockExpenseRepository interface {
	Create(ctx context.Context, expense *entity.StockExpense) error
	List(ctx context.Context) ([]entity.StockExpense, error)
	ListByProduct(ctx context.Context, productID string) ([]entity.StockExpense, error)
	Delete(ctx context.Context, id string) error
}
