package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del inventario.
// Quantity es el stock actual; nunca queda negativo tras un commit
// (lo garantizan el motor de ventas y el registrador de movimientos).
// Price es el precio de venta por defecto; puede ser nil si el producto
// aún no tiene precio definido (en ese caso cada venta debe indicarlo).
type Product struct {
	ID           string
	SKU          string // código único
	Name         string
	Description  string
	Quantity     int
	Price        *decimal.Decimal
	ReorderLevel int
	SupplierID   string // vacío si no tiene proveedor asignado
	CategoryID   string // vacío si no tiene categoría asignada
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
