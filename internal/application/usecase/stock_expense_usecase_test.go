package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwsdigital/console-api/internal/application/dto"
	"github.com/mwsdigital/console-api/internal/domain"
	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/pkg/logger"
)

type memStockExpenseRepo struct {
	items []entity.StockExpense
}

func (m *memStockExpenseRepo) Create(_ context.Context, e *entity.StockExpense) error {
	m.items = append(m.items, *e)
	return nil
}

func (m *memStockExpenseRepo) List(_ context.Context) ([]entity.StockExpense, error) {
	return append([]entity.StockExpense(nil), m.items...), nil
}

func (m *memStockExpenseRepo) ListByProduct(_ context.Context, productID string) ([]entity.StockExpense, error) {
	var out []entity.StockExpense
	for _, e := range m.items {
		if e.ProductID == productID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memStockExpenseRepo) Delete(_ context.Context, id string) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func newStockExpenseUC(t *testing.T) (*StockExpenseUseCase, *memStockExpenseRepo, *entity.Product) {
	t.Helper()
	products := newMemProductRepo()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	pUC := NewProductUseCase(products, log)
	p, err := pUC.Create(context.Background(), adminUser, dto.ProductRequest{Name: "Siero viso", Price: "49.90", Stock: 10, IsActive: true})
	require.NoError(t, err)

	repo := &memStockExpenseRepo{}
	return NewStockExpenseUseCase(repo, products, log), repo, p
}

func TestStockExpenseCreateValidazione(t *testing.T) {
	uc, _, p := newStockExpenseUC(t)

	base := dto.StockExpenseRequest{
		ProductID:    p.ID,
		Payer:        entity.PayerPlatform,
		Quantity:     100,
		UnitCost:     "4.20",
		PurchaseDate: "2026-08-15",
	}

	cases := []struct {
		nome   string
		mutate func(*dto.StockExpenseRequest)
		want   error
	}{
		{"pagatore sconosciuto", func(r *dto.StockExpenseRequest) { r.Payer = "BANCA" }, domain.ErrInvalidInput},
		{"quantità nulla", func(r *dto.StockExpenseRequest) { r.Quantity = 0 }, domain.ErrInvalidInput},
		{"costo malformato", func(r *dto.StockExpenseRequest) { r.UnitCost = "4,20" }, domain.ErrInvalidInput},
		{"costo negativo", func(r *dto.StockExpenseRequest) { r.UnitCost = "-1" }, domain.ErrInvalidInput},
		{"data malformata", func(r *dto.StockExpenseRequest) { r.PurchaseDate = "15/08/2026" }, domain.ErrInvalidInput},
		{"prodotto inesistente", func(r *dto.StockExpenseRequest) { r.ProductID = "manca" }, domain.ErrProductNotFound},
	}
	for _, tc := range cases {
		in := base
		tc.mutate(&in)
		_, err := uc.Create(context.Background(), adminUser, in)
		assert.ErrorIs(t, err, tc.want, tc.nome)
	}

	_, err := uc.Create(context.Background(), logisticsUser, base)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestStockExpenseCreateAggiornaGiacenza(t *testing.T) {
	uc, repo, p := newStockExpenseUC(t)

	expense, err := uc.Create(context.Background(), adminUser, dto.StockExpenseRequest{
		ProductID:    p.ID,
		Description:  "Riassortimento estivo",
		Payer:        entity.PayerPlatform,
		Quantity:     100,
		UnitCost:     "4.20",
		PurchaseDate: "2026-08-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "420", expense.TotalCost.String(), "il totale è quantità per costo unitario")
	assert.Len(t, repo.items, 1)

	// 10 a catalogo più 100 acquistati.
	updated, err := uc.products.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 110, updated.Stock)
}

func TestStockExpenseListEDelete(t *testing.T) {
	uc, repo, p := newStockExpenseUC(t)

	_, err := uc.Create(context.Background(), adminUser, dto.StockExpenseRequest{
		ProductID: p.ID, Payer: entity.PayerSupplier, Quantity: 10, UnitCost: "3.00", PurchaseDate: "2026-07-01",
	})
	require.NoError(t, err)

	_, err = uc.List(context.Background(), affiliateUser, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	list, err := uc.List(context.Background(), adminUser, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	assert.ErrorIs(t, uc.Delete(context.Background(), logisticsUser, list[0].ID), domain.ErrForbidden)
	require.NoError(t, uc.Delete(context.Background(), adminUser, list[0].ID))
	assert.Empty(t, repo.items)
}
