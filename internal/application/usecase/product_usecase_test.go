package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-ventas/internal/application/dto"
	"github.com/tu-usuario/inventario-ventas/internal/domain"
	"github.com/tu-usuario/inventario-ventas/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	byID      map[string]*entity.Product
	lastQuery string
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range f.byID {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) ListByIDsForUpdate(_ context.Context, _ []string) ([]*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) UpdateQuantity(_ context.Context, _ string, _ int) error { return nil }

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProductRepo) List(_ context.Context, query string, _, _ int) ([]*entity.Product, error) {
	f.lastQuery = query
	var out []*entity.Product
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return &domain.NotFoundError{Resource: "producto", ID: id}
	}
	delete(f.byID, id)
	return nil
}

type fakeSupplierRepo struct {
	byID map[string]*entity.Supplier
}

func (f *fakeSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	f.byID[s.ID] = s
	return nil
}
func (f *fakeSupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	return f.byID[id], nil
}
func (f *fakeSupplierRepo) GetByEmail(_ context.Context, _ string) (*entity.Supplier, error) {
	return nil, nil
}
func (f *fakeSupplierRepo) Update(_ context.Context, _ *entity.Supplier) error { return nil }
func (f *fakeSupplierRepo) List(_ context.Context, _, _ int) ([]*entity.Supplier, error) {
	return nil, nil
}
func (f *fakeSupplierRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeCategoryRepo struct {
	byID map[string]*entity.Category
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	f.byID[c.ID] = c
	return nil
}
func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	return f.byID[id], nil
}
func (f *fakeCategoryRepo) GetByName(_ context.Context, _ string) (*entity.Category, error) {
	return nil, nil
}
func (f *fakeCategoryRepo) Update(_ context.Context, _ *entity.Category) error { return nil }
func (f *fakeCategoryRepo) List(_ context.Context, _, _ int) ([]*entity.Category, error) {
	return nil, nil
}
func (f *fakeCategoryRepo) Delete(_ context.Context, _ string) error { return nil }

func newProductEnv() (*ProductUseCase, *fakeProductRepo, *fakeSupplierRepo, *fakeCategoryRepo) {
	prodRepo := &fakeProductRepo{byID: map[string]*entity.Product{}}
	supRepo := &fakeSupplierRepo{byID: map[string]*entity.Supplier{}}
	catRepo := &fakeCategoryRepo{byID: map[string]*entity.Category{}}
	return NewProductUseCase(prodRepo, supRepo, catRepo), prodRepo, supRepo, catRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// ProductUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_SKUDuplicado(t *testing.T) {
	uc, prodRepo, _, _ := newProductEnv()
	prodRepo.byID["p1"] = &entity.Product{ID: "p1", SKU: "DUP-1", Name: "Existente"}

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{SKU: "DUP-1", Name: "Nuevo"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_ProveedorInexistente(t *testing.T) {
	uc, _, _, _ := newProductEnv()
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "A-1", Name: "Café", SupplierID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductCreate_ConReferenciasResueltas(t *testing.T) {
	uc, _, supRepo, catRepo := newProductEnv()
	supRepo.byID["s1"] = &entity.Supplier{ID: "s1", Name: "ACME", Email: "acme@x.co"}
	catRepo.byID["c1"] = &entity.Category{ID: "c1", Name: "Bebidas"}

	price := decimal.RequireFromString("9.99")
	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "A-1", Name: "Café", Quantity: 5, Price: &price,
		SupplierID: "s1", CategoryID: "c1",
	})
	require.NoError(t, err)
	require.NotNil(t, out.Supplier)
	require.NotNil(t, out.Category)
	assert.Equal(t, "ACME", out.Supplier.Name)
	assert.Equal(t, "Bebidas", out.Category.Name)
	assert.Equal(t, 5, out.Quantity)
}

func TestProductUpdate_SoloCamposPresentes(t *testing.T) {
	uc, prodRepo, _, _ := newProductEnv()
	price := decimal.RequireFromString("5.00")
	prodRepo.byID["p1"] = &entity.Product{ID: "p1", SKU: "A-1", Name: "Café", Description: "original", Quantity: 7, Price: &price}

	newName := "Café premium"
	out, err := uc.Update(context.Background(), "p1", dto.UpdateProductRequest{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Café premium", out.Name)
	assert.Equal(t, "original", out.Description, "los campos ausentes no deben tocarse")
	assert.Equal(t, "A-1", out.SKU)
	assert.Equal(t, 7, out.Quantity, "quantity nunca se actualiza por este camino")
}

func TestProductUpdate_SKUDuplicado(t *testing.T) {
	uc, prodRepo, _, _ := newProductEnv()
	prodRepo.byID["p1"] = &entity.Product{ID: "p1", SKU: "A-1", Name: "Uno"}
	prodRepo.byID["p2"] = &entity.Product{ID: "p2", SKU: "A-2", Name: "Dos"}

	dupSKU := "A-1"
	_, err := uc.Update(context.Background(), "p2", dto.UpdateProductRequest{SKU: &dupSKU})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductUpdate_Inexistente(t *testing.T) {
	uc, _, _, _ := newProductEnv()
	name := "x"
	_, err := uc.Update(context.Background(), "nope", dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductList_BusquedaPliegaAcentos(t *testing.T) {
	uc, prodRepo, _, _ := newProductEnv()

	_, err := uc.List(context.Background(), "Café", dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, "cafe", prodRepo.lastQuery, "el término debe ir sin acentos y en minúsculas")
}

func TestFoldAccents(t *testing.T) {
	cases := map[string]string{
		"Café":     "cafe",
		"AZÚCAR":   "azucar",
		"ñoño":     "nono",
		"sin-tato": "sin-tato",
		"":         "",
	}
	for in, want := range cases {
		assert.Equal(t, want, foldAccents(in), "foldAccents(%q)", in)
	}
}
