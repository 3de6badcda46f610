package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mwsdigital/console-api/internal/domain"
	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo adattatore PostgreSQL per le vendite. Lo storico contatti
// vive come JSONB nella stessa riga: cresce solo in append e si legge
// sempre insieme alla vendita.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository costruisce l'adattatore. Accetta pool o tx.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `
	id, product_id, product_name, affiliate_id, affiliate_name, bundle_id, variant_id,
	sale_amount, commission_amount, quantity, status, status_updated_at,
	last_contacted_by, last_contacted_by_name, is_bonus,
	customer_name, customer_phone, customer_email, customer_street_address,
	customer_house_number, customer_city, customer_province, customer_zip,
	sub_id, tracking_code, notes, contact_history, sale_date`

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var history []byte
	err := row.Scan(
		&s.ID, &s.ProductID, &s.ProductName, &s.AffiliateID, &s.AffiliateName, &s.BundleID, &s.VariantID,
		&s.SaleAmount, &s.CommissionAmount, &s.Quantity, &s.Status, &s.StatusUpdatedAt,
		&s.LastContactedBy, &s.LastContactedByName, &s.IsBonus,
		&s.CustomerName, &s.CustomerPhone, &s.CustomerEmail, &s.CustomerStreetAddress,
		&s.CustomerHouseNumber, &s.CustomerCity, &s.CustomerProvince, &s.CustomerZip,
		&s.SubID, &s.TrackingCode, &s.Notes, &history, &s.SaleDate,
	)
	if err != nil {
		return nil, err
	}
	if len(history) > 0 {
		if err := json.Unmarshal(history, &s.ContactHistory); err != nil {
			return nil, fmt.Errorf("decodifica storico contatti: %w", err)
		}
	}
	return &s, nil
}

// Create persiste una nuova vendita.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	history, err := json.Marshal(s.ContactHistory)
	if err != nil {
		return fmt.Errorf("codifica storico contatti: %w", err)
	}
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28)`
	_, err = r.q.Exec(ctx, query,
		s.ID, s.ProductID, s.ProductName, s.AffiliateID, s.AffiliateName, s.BundleID, s.VariantID,
		s.SaleAmount, s.CommissionAmount, s.Quantity, s.Status, s.StatusUpdatedAt,
		s.LastContactedBy, s.LastContactedByName, s.IsBonus,
		s.CustomerName, s.CustomerPhone, s.CustomerEmail, s.CustomerStreetAddress,
		s.CustomerHouseNumber, s.CustomerCity, s.CustomerProvince, s.CustomerZip,
		s.SubID, s.TrackingCode, s.Notes, history, s.SaleDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert vendita: %w", err)
	}
	return nil
}

// GetByID ritorna la vendita o nil se assente.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	s, err := scanSale(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendita: %w", err)
	}
	return s, nil
}

// List ritorna le vendite che soddisfano il filtro, dalla più recente.
func (r *SaleRepo) List(ctx context.Context, f repository.SaleFilter) ([]entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE 1=1`
	var args []any
	add := func(clause string, v any) {
		args = append(args, v)
		query += " AND " + clause + "$" + strconv.Itoa(len(args))
	}
	if f.AffiliateID != "" {
		add("affiliate_id = ", f.AffiliateID)
	}
	if f.Status != "" {
		add("status = ", f.Status)
	}
	if f.ProductID != "" {
		add("product_id = ", f.ProductID)
	}
	if f.SubID != "" {
		add("sub_id ILIKE ", "%"+f.SubID+"%")
	}
	if f.From != nil {
		add("sale_date >= ", *f.From)
	}
	if f.To != nil {
		add("sale_date <= ", *f.To)
	}
	query += " ORDER BY sale_date DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vendite: %w", err)
	}
	defer rows.Close()

	var out []entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vendita: %w", err)
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// UpdateStatus aggiorna stato, tracking e timestamp della transizione.
func (r *SaleRepo) UpdateStatus(ctx context.Context, id, status, trackingCode string, at time.Time) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE sales SET status = $2, tracking_code = $3, status_updated_at = $4 WHERE id = $1`,
		id, status, trackingCode, at,
	)
	if err != nil {
		return fmt.Errorf("update stato vendita: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// StampContact marca l'ultimo contatto e accoda la voce allo storico.
func (r *SaleRepo) StampContact(ctx context.Context, id string, item entity.ContactHistoryItem) error {
	entry, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("codifica contatto: %w", err)
	}
	tag, err := r.q.Exec(ctx, `
		UPDATE sales
		SET last_contacted_by = $2,
		    last_contacted_by_name = $3,
		    contact_history = COALESCE(contact_history, '[]'::jsonb) || $4::jsonb
		WHERE id = $1`,
		id, item.UserID, item.UserName, entry,
	)
	if err != nil {
		return fmt.Errorf("registra contatto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateNotes sostituisce le note operative.
func (r *SaleRepo) UpdateNotes(ctx context.Context, id, notes string) error {
	tag, err := r.q.Exec(ctx, `UPDATE sales SET notes = $2 WHERE id = $1`, id, notes)
	if err != nil {
		return fmt.Errorf("update note vendita: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateCustomer aggiorna i recapiti del cliente.
func (r *SaleRepo) UpdateCustomer(ctx context.Context, s *entity.Sale) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE sales
		SET customer_name = $2, customer_phone = $3, customer_email = $4,
		    customer_street_address = $5, customer_house_number = $6,
		    customer_city = $7, customer_province = $8, customer_zip = $9
		WHERE id = $1`,
		s.ID, s.CustomerName, s.CustomerPhone, s.CustomerEmail,
		s.CustomerStreetAddress, s.CustomerHouseNumber,
		s.CustomerCity, s.CustomerProvince, s.CustomerZip,
	)
	if err != nil {
		return fmt.Errorf("update cliente vendita: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkDuplicates porta a Duplicato le vendite indicate. Le righe già
// Duplicato non vengono riscritte.
func (r *SaleRepo) MarkDuplicates(ctx context.Context, ids []string, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.q.Exec(ctx, `
		UPDATE sales
		SET status = 'Duplicato', status_updated_at = $2
		WHERE id = ANY($1) AND status <> 'Duplicato'`,
		ids, at,
	)
	if err != nil {
		return fmt.Errorf("marca duplicati: %w", err)
	}
	return nil
}
