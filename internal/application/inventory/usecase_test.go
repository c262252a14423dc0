package inventory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-ventas/internal/application/dto"
	"github.com/tu-usuario/inventario-ventas/internal/domain"
	"github.com/tu-usuario/inventario-ventas/internal/domain/entity"
	"github.com/tu-usuario/inventario-ventas/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	byID map[string]*entity.Product
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

func (f *fakeProductRepo) GetBySKU(_ context.Context, _ string) (*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) ListByIDsForUpdate(_ context.Context, ids []string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range ids {
		if p, ok := f.byID[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) UpdateQuantity(_ context.Context, productID string, quantity int) error {
	p, ok := f.byID[productID]
	if !ok {
		return &domain.NotFoundError{Resource: "producto", ID: productID}
	}
	p.Quantity = quantity
	return nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProductRepo) List(_ context.Context, _ string, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

type fakeTransactionRepo struct {
	rows []*entity.InventoryTransaction
}

func (f *fakeTransactionRepo) Create(_ context.Context, tx *entity.InventoryTransaction) error {
	f.rows = append(f.rows, tx)
	return nil
}

func (f *fakeTransactionRepo) GetByID(_ context.Context, id string) (*entity.InventoryTransaction, error) {
	for _, tx := range f.rows {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, nil
}

func (f *fakeTransactionRepo) List(_ context.Context, _, _ int) ([]*entity.InventoryTransaction, error) {
	return f.rows, nil
}

func (f *fakeTransactionRepo) ListByProduct(_ context.Context, productID string, _, _ int) ([]*entity.InventoryTransaction, error) {
	var out []*entity.InventoryTransaction
	for _, tx := range f.rows {
		if tx.ProductID == productID {
			out = append(out, tx)
		}
	}
	return out, nil
}

// fakeTxRunner restaura el estado completo si fn falla (rollback).
type fakeTxRunner struct {
	products     *fakeProductRepo
	transactions *fakeTransactionRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repos TxRepos) error) error {
	prodSnap := make(map[string]*entity.Product, len(r.products.byID))
	for id, p := range r.products.byID {
		cp := *p
		prodSnap[id] = &cp
	}
	txSnap := append([]*entity.InventoryTransaction(nil), r.transactions.rows...)

	err := fn(TxRepos{Products: r.products, Transactions: r.transactions})
	if err != nil {
		r.products.byID = prodSnap
		r.transactions.rows = txSnap
		return err
	}
	return nil
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func newTestEnv(products ...*entity.Product) (*UseCase, *fakeProductRepo, *fakeTransactionRepo) {
	prodRepo := &fakeProductRepo{byID: map[string]*entity.Product{}}
	for _, p := range products {
		prodRepo.byID[p.ID] = p
	}
	txRepo := &fakeTransactionRepo{}
	runner := &fakeTxRunner{products: prodRepo, transactions: txRepo}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return NewUseCase(runner, txRepo, log), prodRepo, txRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordTransaction
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordTransaction_StockInSumaStock(t *testing.T) {
	uc, prodRepo, txRepo := newTestEnv(
		&entity.Product{ID: "p1", Name: "Café", Quantity: 10, Price: dec("5.00")},
	)

	out, err := uc.RecordTransaction(context.Background(), "u1", dto.CreateTransactionRequest{
		ProductID: "p1",
		Type:      entity.TransactionTypeStockIn,
		Quantity:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, 15, prodRepo.byID["p1"].Quantity)
	assert.Equal(t, entity.TransactionTypeStockIn, out.Type)
	assert.Equal(t, "u1", out.CreatedBy)
	require.Len(t, txRepo.rows, 1)
	// precio por defecto: el del producto; total = 5 * 5.00
	assert.True(t, out.UnitPrice.Equal(decimal.RequireFromString("5.00")))
	assert.True(t, out.TotalPrice.Equal(decimal.RequireFromString("25.00")))
}

func TestRecordTransaction_StockOutRestaStock(t *testing.T) {
	uc, prodRepo, _ := newTestEnv(
		&entity.Product{ID: "p1", Name: "Café", Quantity: 10, Price: dec("5.00")},
	)

	_, err := uc.RecordTransaction(context.Background(), "u1", dto.CreateTransactionRequest{
		ProductID: "p1",
		Type:      entity.TransactionTypeStockOut,
		Quantity:  4,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, prodRepo.byID["p1"].Quantity)
}

func TestRecordTransaction_ReturnSumaStock(t *testing.T) {
	uc, prodRepo, _ := newTestEnv(
		&entity.Product{ID: "p1", Name: "Café", Quantity: 3, Price: dec("5.00")},
	)

	_, err := uc.RecordTransaction(context.Background(), "u1", dto.CreateTransactionRequest{
		ProductID: "p1",
		Type:      entity.TransactionTypeReturn,
		Quantity:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, prodRepo.byID["p1"].Quantity)
}

func TestRecordTransaction_ReturnAceptaDeltaNegativo(t *testing.T) {
	uc, prodRepo, _ := newTestEnv(
		&entity.Product{ID: "p1", Name: "Café", Quantity: 5, Price: dec("5.00")},
	)

	// devolución al proveedor: el llamador pasa el signo
	out, err := uc.RecordTransaction(context.Background(), "u1", dto.CreateTransactionRequest{
		ProductID: "p1",
		Type:      entity.TransactionTypeReturn,
		Quantity:  -2,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, prodRepo.byID["p1"].Quantity)
	// total con signo: -2 * 5.00
	assert.True(t, out.TotalPrice.Equal(decimal.RequireFromString("-10.00")),
		"total_price = unit_price * quantity, con signo")
}

func TestRecordTransaction_AdjustmentAceptaDeltaNegativo(t *testing.T) {
	uc, prodRepo, _ := newTestEnv(
		&entity.Product{ID: "p1", Name: "Café", Quantity: 10, Price: dec("5.00")},
	)

	out, err := uc.RecordTransaction(context.Background(), "u1", dto.CreateTransactionRequest{
		ProductID: "p1",
		Type:      entity.TransactionTypeAdjustment,
		Quantity:  -3,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, prodRepo.byID["p1"].Quantity)
	// total con signo: -3 * 5.00
	assert.True(t, out.TotalPrice.Equal(decimal.RequireFromString("-15.00")))
}

func TestRecordTransaction_StockOutMayorAlDisponibleFalla(t *testing.T) {
	uc, prodRepo, txRepo := newTestEnv(
		&entity.Product{ID: "p1", Name: "Café", Quantity: 3, Price: dec("5.00")},
	)

	_, err := uc.RecordTransaction(context.Background(), "u1", dto.CreateTransactionRequest{
		ProductID: "p1",
		Type:      entity.TransactionTypeStockOut,
		Quantity:  5,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 5, stockErr.Requested)
	assert.Equal(t, 3, stockErr.Available)

	// rollback: ni stock ni registro
	assert.Equal(t, 3, prodRepo.byID["p1"].Quantity)
	assert.Empty(t, txRepo.rows)
}

func TestRecordTransaction_AdjustmentNoDejaStockNegativo(t *testing.T) {
	uc, prodRepo, _ := newTestEnv(
		&entity.Product{ID: "p1", Name: "Café", Quantity: 2, Price: dec("5.00")},
	)

	_, err := uc.RecordTransaction(context.Background(), "u1", dto.CreateTransactionRequest{
		ProductID: "p1",
		Type:      entity.TransactionTypeAdjustment,
		Quantity:  -5,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 2, prodRepo.byID["p1"].Quantity)
}

func TestRecordTransaction_TipoInvalido(t *testing.T) {
	uc, _, _ := newTestEnv(
		&entity.Product{ID: "p1", Name: "Café", Quantity: 10, Price: dec("5.00")},
	)
	_, err := uc.RecordTransaction(context.Background(), "u1", dto.CreateTransactionRequest{
		ProductID: "p1",
		Type:      "teleport",
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordTransaction_CantidadCeroEsInvalida(t *testing.T) {
	uc, _, _ := newTestEnv(
		&entity.Product{ID: "p1", Name: "Café", Quantity: 10, Price: dec("5.00")},
	)
	for _, typ := range []string{
		entity.TransactionTypeStockIn,
		entity.TransactionTypeStockOut,
		entity.TransactionTypeAdjustment,
		entity.TransactionTypeReturn,
	} {
		_, err := uc.RecordTransaction(context.Background(), "u1", dto.CreateTransactionRequest{
			ProductID: "p1",
			Type:      typ,
			Quantity:  0,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo %s con cantidad 0", typ)
	}
}

func TestRecordTransaction_ProductoInexistente(t *testing.T) {
	uc, _, _ := newTestEnv()
	_, err := uc.RecordTransaction(context.Background(), "u1", dto.CreateTransactionRequest{
		ProductID: "no-existe",
		Type:      entity.TransactionTypeStockIn,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordTransaction_PrecioExplicitoYTotalCalculado(t *testing.T) {
	uc, _, _ := newTestEnv(
		&entity.Product{ID: "p1", Name: "Café", Quantity: 10, Price: dec("5.00")},
	)

	out, err := uc.RecordTransaction(context.Background(), "u1", dto.CreateTransactionRequest{
		ProductID: "p1",
		Type:      entity.TransactionTypeStockIn,
		Quantity:  3,
		UnitPrice: dec("2.50"),
	})
	require.NoError(t, err)
	assert.True(t, out.UnitPrice.Equal(decimal.RequireFromString("2.50")))
	assert.True(t, out.TotalPrice.Equal(decimal.RequireFromString("7.50")))
}

func TestRecordTransaction_SinPrecioEnNingunLadoEsInvalido(t *testing.T) {
	uc, prodRepo, txRepo := newTestEnv(
		&entity.Product{ID: "p1", Name: "Sin precio", Quantity: 10},
	)

	// ni el request ni el producto traen precio: el movimiento no se registra
	_, err := uc.RecordTransaction(context.Background(), "u1", dto.CreateTransactionRequest{
		ProductID: "p1",
		Type:      entity.TransactionTypeStockIn,
		Quantity:  3,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 10, prodRepo.byID["p1"].Quantity, "el stock no debe cambiar")
	assert.Empty(t, txRepo.rows, "no debe quedar registro de auditoría")
}

func TestRecordTransaction_PrecioExplicitoCeroEsInvalido(t *testing.T) {
	uc, _, _ := newTestEnv(
		&entity.Product{ID: "p1", Name: "Café", Quantity: 10, Price: dec("5.00")},
	)

	_, err := uc.RecordTransaction(context.Background(), "u1", dto.CreateTransactionRequest{
		ProductID: "p1",
		Type:      entity.TransactionTypeStockIn,
		Quantity:  3,
		UnitPrice: dec("0"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
