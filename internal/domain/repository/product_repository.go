package repository

import (
	"context"

	"github.com/tu-usuario/inventario-ventas/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// ListByIDsForUpdate carga los productos indicados bloqueando sus filas
	// (SELECT FOR UPDATE) en orden ascendente de ID para evitar deadlocks
	// entre ventas concurrentes que comparten productos. Debe llamarse
	// dentro de una transacción; los IDs que no existan simplemente no
	// aparecen en el resultado.
	ListByIDsForUpdate(ctx context.Context, ids []string) ([]*entity.Product, error)
	// UpdateQuantity fija el stock del producto (usado por el motor de
	// ventas y el registrador de movimientos dentro de una transacción).
	UpdateQuantity(ctx context.Context, productID string, quantity int) error
	Update(ctx context.Context, product *entity.Product) error
	// List pagina productos; query opcional filtra por nombre o SKU (ILIKE).
	List(ctx context.Context, query string, limit, offset int) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
