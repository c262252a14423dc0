package repository

import (
	"context"

	"github.com/tu-usuario/inventario-ventas/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale y sus items.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	CreateItem(ctx context.Context, item *entity.SaleItem) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	GetItemsBySaleID(ctx context.Context, saleID string) ([]*entity.SaleItem, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Sale, error)
	// Count devuelve el total de ventas registradas; alimenta el
	// consecutivo del número de factura.
	Count(ctx context.Context) (int64, error)
}
