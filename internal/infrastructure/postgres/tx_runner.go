package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/inventario-ventas/internal/application/inventory"
	"github.com/tu-usuario/inventario-ventas/internal/application/sales"
)

var _ sales.TxRunner = (*SaleTxRunner)(nil)
var _ inventory.TxRunner = (*InventoryTxRunner)(nil)

// SaleTxRunner ejecuta el caso de uso de ventas dentro de una transacción
// PostgreSQL: si fn devuelve error, Rollback; si no, Commit.
type SaleTxRunner struct {
	pool *pgxpool.Pool
}

// NewSaleTxRunner construye el runner con el pool.
func NewSaleTxRunner(pool *pgxpool.Pool) *SaleTxRunner {
	return &SaleTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *SaleTxRunner) Run(ctx context.Context, fn func(repos sales.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := sales.TxRepos{
		Products: NewProductRepository(tx),
		Sales:    NewSaleRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// InventoryTxRunner ejecuta el registro de movimientos dentro de una
// transacción PostgreSQL.
type InventoryTxRunner struct {
	pool *pgxpool.Pool
}

// NewInventoryTxRunner construye el runner con el pool.
func NewInventoryTxRunner(pool *pgxpool.Pool) *InventoryTxRunner {
	return &InventoryTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *InventoryTxRunner) Run(ctx context.Context, fn func(repos inventory.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := inventory.TxRepos{
		Products:     NewProductRepository(tx),
		Transactions: NewInventoryTransactionRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
