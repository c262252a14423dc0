package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/inventario-ventas/internal/domain/entity"
	"github.com/tu-usuario/inventario-ventas/internal/domain/repository"
)

var _ repository.InventoryTransactionRepository = (*InventoryTransactionRepo)(nil)

// InventoryTransactionRepo implementación del puerto sobre PostgreSQL. Los
// movimientos son inmutables: solo INSERT y lecturas.
type InventoryTransactionRepo struct {
	q Querier
}

// NewInventoryTransactionRepository construye el adaptador de persistencia para movimientos.
func NewInventoryTransactionRepository(q Querier) *InventoryTransactionRepo {
	return &InventoryTransactionRepo{q: q}
}

// Create persiste un movimiento de inventario.
func (r *InventoryTransactionRepo) Create(ctx context.Context, tx *entity.InventoryTransaction) error {
	query := `
		INSERT INTO inventory_transactions (id, product_id, transaction_type, quantity, unit_price, total_price, reference_number, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, '')::uuid, $10)`
	_, err := r.q.Exec(ctx, query,
		tx.ID, tx.ProductID, tx.Type, tx.Quantity, tx.UnitPrice, tx.TotalPrice,
		tx.ReferenceNumber, tx.Notes, tx.CreatedBy, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory transaction: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *InventoryTransactionRepo) GetByID(ctx context.Context, id string) (*entity.InventoryTransaction, error) {
	query := `
		SELECT id, product_id, transaction_type, quantity, unit_price, total_price, reference_number, notes, COALESCE(created_by::text, ''), created_at
		FROM inventory_transactions WHERE id = $1`
	var t entity.InventoryTransaction
	err := r.q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.ProductID, &t.Type, &t.Quantity, &t.UnitPrice, &t.TotalPrice,
		&t.ReferenceNumber, &t.Notes, &t.CreatedBy, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory transaction: %w", err)
	}
	return &t, nil
}

// List pagina movimientos, los más recientes primero. El JOIN descarta
// filas cuyo producto fue eliminado por fuera (datos históricos).
func (r *InventoryTransactionRepo) List(ctx context.Context, limit, offset int) ([]*entity.InventoryTransaction, error) {
	query := `
		SELECT t.id, t.product_id, t.transaction_type, t.quantity, t.unit_price, t.total_price, t.reference_number, t.notes, COALESCE(t.created_by::text, ''), t.created_at
		FROM inventory_transactions t
		JOIN products p ON p.id = t.product_id
		ORDER BY t.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory transactions: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// ListByProduct pagina los movimientos de un producto.
func (r *InventoryTransactionRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.InventoryTransaction, error) {
	query := `
		SELECT id, product_id, transaction_type, quantity, unit_price, total_price, reference_number, notes, COALESCE(created_by::text, ''), created_at
		FROM inventory_transactions WHERE product_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions by product: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *InventoryTransactionRepo) scanAll(rows pgx.Rows) ([]*entity.InventoryTransaction, error) {
	var list []*entity.InventoryTransaction
	for rows.Next() {
		var t entity.InventoryTransaction
		if err := rows.Scan(&t.ID, &t.ProductID, &t.Type, &t.Quantity, &t.UnitPrice, &t.TotalPrice,
			&t.ReferenceNumber, &t.Notes, &t.CreatedBy, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
