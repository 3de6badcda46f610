package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mwsdigital/console-api/internal/application/dto"
	"github.com/mwsdigital/console-api/internal/domain"
	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/repository"
	"github.com/mwsdigital/console-api/pkg/logger"
)

// StockExpenseUseCase registro acquisti stock. Le spese con pagatore
// PLATFORM alimentano l'override del costo unitario nel report di
// piattaforma.
type StockExpenseUseCase struct {
	repo     repository.StockExpenseRepository
	products repository.ProductRepository
	log      *logger.Logger
}

// NewStockExpenseUseCase costruisce il caso d'uso.
func NewStockExpenseUseCase(repo repository.StockExpenseRepository, products repository.ProductRepository, log *logger.Logger) *StockExpenseUseCase {
	return &StockExpenseUseCase{repo: repo, products: products, log: log}
}

// Create registra un acquisto di stock.
func (uc *StockExpenseUseCase) Create(ctx context.Context, actor entity.User, in dto.StockExpenseRequest) (*entity.StockExpense, error) {
	if actor.Role != entity.RoleAdmin && actor.Role != entity.RoleManager {
		return nil, domain.ErrForbidden
	}
	if in.Payer != entity.PayerPlatform && in.Payer != entity.PayerSupplier {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	unitCost, err := decimal.NewFromString(in.UnitCost)
	if err != nil || unitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	purchaseDate, err := time.Parse("2006-01-02", in.PurchaseDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	expense := &entity.StockExpense{
		ID:           uuid.NewString(),
		ProductID:    product.ID,
		Description:  in.Description,
		Payer:        in.Payer,
		Quantity:     in.Quantity,
		UnitCost:     unitCost,
		TotalCost:    unitCost.Mul(decimal.NewFromInt(int64(in.Quantity))),
		PurchaseDate: purchaseDate,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(ctx, expense); err != nil {
		return nil, err
	}

	// L'acquisto alimenta anche la giacenza di catalogo.
	if err := uc.products.UpdateStock(ctx, product.ID, in.Quantity); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("product_id", product.ID).
		Str("payer", in.Payer).
		Int("quantity", in.Quantity).
		Msg("spesa stock registrata")
	return expense, nil
}

// List ritorna le spese, eventualmente filtrate per prodotto.
func (uc *StockExpenseUseCase) List(ctx context.Context, actor entity.User, productID string) ([]entity.StockExpense, error) {
	if actor.Role != entity.RoleAdmin && actor.Role != entity.RoleManager {
		return nil, domain.ErrForbidden
	}
	if productID != "" {
		return uc.repo.ListByProduct(ctx, productID)
	}
	return uc.repo.List(ctx)
}

// Delete elimina una spesa registrata per errore.
func (uc *StockExpenseUseCase) Delete(ctx context.Context, actor entity.User, id string) error {
	if actor.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(ctx, id)
}
