package repository

import (
	"context"

	"github.com/tu-usuario/inventario-ventas/internal/domain/entity"
)

// InventoryTransactionRepository define el puerto de persistencia para el
// registro de auditoría de movimientos de stock. Los registros son
// inmutables: no existe Update ni Delete.
type InventoryTransactionRepository interface {
	Create(ctx context.Context, tx *entity.InventoryTransaction) error
	GetByID(ctx context.Context, id string) (*entity.InventoryTransaction, error)
	// List pagina transacciones, filtrando filas huérfanas (product_id nulo)
	// que puedan existir por datos históricos inconsistentes.
	List(ctx context.Context, limit, offset int) ([]*entity.InventoryTransaction, error)
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.InventoryTransaction, error)
}
