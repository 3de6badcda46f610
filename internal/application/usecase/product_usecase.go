package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mwsdigital/console-api/internal/application/dto"
	"github.com/mwsdigital/console-api/internal/domain"
	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/repository"
	"github.com/mwsdigital/console-api/pkg/logger"
)

// ProductUseCase gestione del catalogo. La scrittura è riservata ad
// admin e manager; gli altri ruoli vedono il listino senza i costi.
type ProductUseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
}

// NewProductUseCase costruisce il caso d'uso.
func NewProductUseCase(repo repository.ProductRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, log: log}
}

func canManageCatalog(actor entity.User) bool {
	return actor.Role == entity.RoleAdmin || actor.Role == entity.RoleManager
}

// productFromRequest valida il payload e lo converte in entità. Tutti
// gli importi devono essere decimali ben formati e non negativi.
func productFromRequest(in dto.ProductRequest) (*entity.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	parse := func(raw string, dst *decimal.Decimal) error {
		if raw == "" {
			*dst = decimal.Zero
			return nil
		}
		d, err := decimal.NewFromString(raw)
		if err != nil || d.IsNegative() {
			return domain.ErrInvalidInput
		}
		*dst = d
		return nil
	}

	p := &entity.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Stock:       in.Stock,
		IsActive:    in.IsActive,
	}
	fields := []struct {
		raw string
		dst *decimal.Decimal
	}{
		{in.Price, &p.Price},
		{in.Commission, &p.Commission},
		{in.ProductCost, &p.ProductCost},
		{in.ShippingCost, &p.ShippingCost},
		{in.FulfillmentCost, &p.FulfillmentCost},
		{in.CustomerCareCommission, &p.CustomerCareCommission},
		{in.PlatformFee, &p.PlatformFee},
	}
	for _, f := range fields {
		if err := parse(f.raw, f.dst); err != nil {
			return nil, err
		}
	}

	for _, b := range in.Bundles {
		if b.Quantity < 2 {
			return nil, domain.ErrInvalidInput
		}
		bundle := entity.BundleOption{ID: b.ID, Quantity: b.Quantity}
		if bundle.ID == "" {
			bundle.ID = uuid.NewString()
		}
		if err := parse(b.Price, &bundle.Price); err != nil {
			return nil, err
		}
		if err := parse(b.Commission, &bundle.Commission); err != nil {
			return nil, err
		}
		if err := parse(b.PlatformFee, &bundle.PlatformFee); err != nil {
			return nil, err
		}
		p.Bundles = append(p.Bundles, bundle)
	}
	for _, v := range in.Variants {
		if strings.TrimSpace(v.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		variant := entity.Variant{ID: v.ID, Name: v.Name, Stock: v.Stock}
		if variant.ID == "" {
			variant.ID = uuid.NewString()
		}
		p.Variants = append(p.Variants, variant)
	}
	return p, nil
}

// Create aggiunge un articolo a catalogo.
func (uc *ProductUseCase) Create(ctx context.Context, actor entity.User, in dto.ProductRequest) (*entity.Product, error) {
	if !canManageCatalog(actor) {
		return nil, domain.ErrForbidden
	}
	p, err := productFromRequest(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", p.ID).Str("name", p.Name).Msg("prodotto creato")
	return p, nil
}

// Update sostituisce i dati dell'articolo, conservando id e data di
// creazione.
func (uc *ProductUseCase) Update(ctx context.Context, actor entity.User, id string, in dto.ProductRequest) (*entity.Product, error) {
	if !canManageCatalog(actor) {
		return nil, domain.ErrForbidden
	}
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrProductNotFound
	}
	p, err := productFromRequest(in)
	if err != nil {
		return nil, err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// List ritorna il catalogo; per i ruoli non staff solo gli articoli
// attivi.
func (uc *ProductUseCase) List(ctx context.Context, actor entity.User) ([]entity.Product, error) {
	onlyActive := !canManageCatalog(actor)
	return uc.repo.List(ctx, onlyActive)
}

// Get ritorna un articolo per id.
func (uc *ProductUseCase) Get(ctx context.Context, id string) (*entity.Product, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

// AdjustStock applica un delta allo stock (mai sotto zero).
func (uc *ProductUseCase) AdjustStock(ctx context.Context, actor entity.User, id string, delta int) error {
	if !canManageCatalog(actor) {
		return domain.ErrForbidden
	}
	return uc.repo.UpdateStock(ctx, id, delta)
}
