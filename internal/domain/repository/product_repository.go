package repository

import (
	"context"

	"github.com/mwsdigital/console-api/internal/domain/entity"
)

// ProductRepository porta di persistenza per il catalogo.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, onlyActive bool) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateStock(ctx context.Context, id string, delta int) error
}
