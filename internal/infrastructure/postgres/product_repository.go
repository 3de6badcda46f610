package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mwsdigital/console-api/internal/domain"
	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo adattatore PostgreSQL per il catalogo. Bundle e varianti
// sono documenti JSONB della riga prodotto.
type ProductRepo struct {
	q Querier
}

func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	id, name, description, image_url, price, commission,
	product_cost, shipping_cost, fulfillment_cost, customer_care_commission, platform_fee,
	stock, is_active, bundles, variants, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var bundles, variants []byte
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.ImageURL, &p.Price, &p.Commission,
		&p.ProductCost, &p.ShippingCost, &p.FulfillmentCost, &p.CustomerCareCommission, &p.PlatformFee,
		&p.Stock, &p.IsActive, &bundles, &variants, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(bundles) > 0 {
		if err := json.Unmarshal(bundles, &p.Bundles); err != nil {
			return nil, fmt.Errorf("decodifica bundle: %w", err)
		}
	}
	if len(variants) > 0 {
		if err := json.Unmarshal(variants, &p.Variants); err != nil {
			return nil, fmt.Errorf("decodifica varianti: %w", err)
		}
	}
	return &p, nil
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	bundles, err := json.Marshal(p.Bundles)
	if err != nil {
		return fmt.Errorf("codifica bundle: %w", err)
	}
	variants, err := json.Marshal(p.Variants)
	if err != nil {
		return fmt.Errorf("codifica varianti: %w", err)
	}
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`
	_, err = r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.ImageURL, p.Price, p.Commission,
		p.ProductCost, p.ShippingCost, p.FulfillmentCost, p.CustomerCareCommission, p.PlatformFee,
		p.Stock, p.IsActive, bundles, variants, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert prodotto: %w", err)
	}
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get prodotto: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context, onlyActive bool) ([]entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list prodotti: %w", err)
	}
	defer rows.Close()

	var out []entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prodotto: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	bundles, err := json.Marshal(p.Bundles)
	if err != nil {
		return fmt.Errorf("codifica bundle: %w", err)
	}
	variants, err := json.Marshal(p.Variants)
	if err != nil {
		return fmt.Errorf("codifica varianti: %w", err)
	}
	tag, err := r.q.Exec(ctx, `
		UPDATE products
		SET name = $2, description = $3, image_url = $4, price = $5, commission = $6,
		    product_cost = $7, shipping_cost = $8, fulfillment_cost = $9,
		    customer_care_commission = $10, platform_fee = $11,
		    stock = $12, is_active = $13, bundles = $14, variants = $15, updated_at = $16
		WHERE id = $1`,
		p.ID, p.Name, p.Description, p.ImageURL, p.Price, p.Commission,
		p.ProductCost, p.ShippingCost, p.FulfillmentCost,
		p.CustomerCareCommission, p.PlatformFee,
		p.Stock, p.IsActive, bundles, variants, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update prodotto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// UpdateStock applica un delta allo stock, senza mai scendere sotto zero.
func (r *ProductRepo) UpdateStock(ctx context.Context, id string, delta int) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE products SET stock = GREATEST(stock + $2, 0) WHERE id = $1`,
		id, delta,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
