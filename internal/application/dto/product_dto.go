package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/v1/products.
type CreateProductRequest struct {
	SKU          string           `json:"sku" validate:"required,max=50"`
	Name         string           `json:"name" validate:"required,max=100"`
	Description  string           `json:"description,omitempty"`
	Quantity     int              `json:"quantity" validate:"min=0"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	ReorderLevel int              `json:"reorder_level,omitempty"`
	SupplierID   string           `json:"supplier_id,omitempty"`
	CategoryID   string           `json:"category_id,omitempty"`
}

// UpdateProductRequest patch explícito: solo los campos presentes (no nil)
// se aplican. Quantity no se actualiza por aquí; el stock se modifica
// únicamente vía transacciones de inventario o ventas.
type UpdateProductRequest struct {
	SKU          *string          `json:"sku,omitempty"`
	Name         *string          `json:"name,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	ReorderLevel *int             `json:"reorder_level,omitempty"`
	SupplierID   *string          `json:"supplier_id,omitempty"`
	CategoryID   *string          `json:"category_id,omitempty"`
}

// ProductResponse producto en respuestas, con referencias opcionales
// resueltas de forma explícita (no asignación ad hoc de atributos).
type ProductResponse struct {
	ID           string            `json:"id"`
	SKU          string            `json:"sku"`
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	Quantity     int               `json:"quantity"`
	Price        *decimal.Decimal  `json:"price,omitempty"`
	ReorderLevel int               `json:"reorder_level"`
	Supplier     *SupplierResponse `json:"supplier,omitempty"`
	Category     *CategoryResponse `json:"category,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
