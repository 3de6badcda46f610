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

type memProductRepo struct {
	byID map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{byID: map[string]*entity.Product{}}
}

func (m *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	m.byID[p.ID] = &cp
	return nil
}

func (m *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProductRepo) List(_ context.Context, onlyActive bool) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range m.byID {
		if onlyActive && !p.IsActive {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (m *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := m.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	m.byID[p.ID] = &cp
	return nil
}

func (m *memProductRepo) UpdateStock(_ context.Context, id string, delta int) error {
	p, ok := m.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock += delta
	if p.Stock < 0 {
		p.Stock = 0
	}
	return nil
}

func newProductUC() (*ProductUseCase, *memProductRepo) {
	repo := newMemProductRepo()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return NewProductUseCase(repo, log), repo
}

func TestProductCreateValidaImporti(t *testing.T) {
	uc, _ := newProductUC()

	cases := []struct {
		nome string
		in   dto.ProductRequest
	}{
		{"nome vuoto", dto.ProductRequest{Name: "  ", Price: "49.90"}},
		{"prezzo malformato", dto.ProductRequest{Name: "Siero viso", Price: "abc"}},
		{"prezzo negativo", dto.ProductRequest{Name: "Siero viso", Price: "-1"}},
		{"provvigione negativa", dto.ProductRequest{Name: "Siero viso", Price: "49.90", Commission: "-0.01"}},
	}
	for _, tc := range cases {
		_, err := uc.Create(context.Background(), adminUser, tc.in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, tc.nome)
	}

	p, err := uc.Create(context.Background(), adminUser, dto.ProductRequest{
		Name:       "Siero viso",
		Price:      "49.90",
		Commission: "12.00",
		Stock:      30,
		IsActive:   true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "49.9", p.Price.String())
	// Gli importi omessi valgono zero, non errore.
	assert.True(t, p.PlatformFee.IsZero())
}

func TestProductCreateBundleEVarianti(t *testing.T) {
	uc, _ := newProductUC()

	_, err := uc.Create(context.Background(), adminUser, dto.ProductRequest{
		Name:    "Siero viso",
		Price:   "49.90",
		Bundles: []dto.BundleOptionPayload{{Quantity: 1, Price: "49.90"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un bundle ha senso da due pezzi in su")

	_, err = uc.Create(context.Background(), adminUser, dto.ProductRequest{
		Name:     "Siero viso",
		Price:    "49.90",
		Variants: []dto.VariantPayload{{Name: " "}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la variante richiede un nome")

	p, err := uc.Create(context.Background(), adminUser, dto.ProductRequest{
		Name:     "Siero viso",
		Price:    "49.90",
		Bundles:  []dto.BundleOptionPayload{{Quantity: 3, Price: "129.00", Commission: "30.00"}},
		Variants: []dto.VariantPayload{{Name: "50ml", Stock: 10}},
	})
	require.NoError(t, err)
	require.Len(t, p.Bundles, 1)
	assert.NotEmpty(t, p.Bundles[0].ID, "l'id del bundle viene assegnato se assente")
	require.Len(t, p.Variants, 1)
	assert.NotEmpty(t, p.Variants[0].ID)
}

func TestProductScritturaRiservataAlloStaff(t *testing.T) {
	uc, repo := newProductUC()

	_, err := uc.Create(context.Background(), affiliateUser, dto.ProductRequest{Name: "Siero viso"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	p, err := uc.Create(context.Background(), adminUser, dto.ProductRequest{Name: "Siero viso", Price: "49.90", Stock: 5, IsActive: true})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), careUser, p.ID, dto.ProductRequest{Name: "Siero viso 2"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	assert.ErrorIs(t, uc.AdjustStock(context.Background(), affiliateUser, p.ID, 1), domain.ErrForbidden)
	require.NoError(t, uc.AdjustStock(context.Background(), adminUser, p.ID, -2))
	assert.Equal(t, 3, repo.byID[p.ID].Stock)
}

func TestProductUpdateConservaIdECreazione(t *testing.T) {
	uc, _ := newProductUC()

	p, err := uc.Create(context.Background(), adminUser, dto.ProductRequest{Name: "Siero viso", Price: "49.90"})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), adminUser, "manca", dto.ProductRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	updated, err := uc.Update(context.Background(), adminUser, p.ID, dto.ProductRequest{Name: "Siero viso notte", Price: "54.90"})
	require.NoError(t, err)
	assert.Equal(t, p.ID, updated.ID)
	assert.Equal(t, p.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Siero viso notte", updated.Name)
}

// Il listino visto da un ruolo operativo contiene solo gli attivi.
func TestProductListFiltraPerRuolo(t *testing.T) {
	uc, _ := newProductUC()

	_, err := uc.Create(context.Background(), adminUser, dto.ProductRequest{Name: "Attivo", Price: "10", IsActive: true})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), adminUser, dto.ProductRequest{Name: "Ritirato", Price: "10"})
	require.NoError(t, err)

	all, err := uc.List(context.Background(), adminUser)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	visible, err := uc.List(context.Background(), affiliateUser)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Attivo", visible[0].Name)
}
