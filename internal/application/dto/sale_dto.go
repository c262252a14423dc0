package dto

import "github.com/shopspring/decimal"

// SaleItemRequest línea de venta (producto, cantidad, precio unitario opcional).
// Si UnitPrice va vacío se usa el precio del producto; si viene debe ser > 0.
type SaleItemRequest struct {
	ProductID string           `json:"product_id" validate:"required"`
	Quantity  int              `json:"quantity" validate:"required,gt=0"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// CreateSaleRequest body para POST /api/v1/sales.
type CreateSaleRequest struct {
	CustomerName  string            `json:"customer_name,omitempty" validate:"omitempty,max=100"`
	CustomerEmail string            `json:"customer_email,omitempty" validate:"omitempty,email"`
	CustomerPhone string            `json:"customer_phone,omitempty" validate:"omitempty,max=20"`
	PaymentMethod string            `json:"payment_method,omitempty" validate:"omitempty,max=50"`
	Items         []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleSummaryResponse resumen devuelto tras crear una venta.
type SaleSummaryResponse struct {
	SaleID        string          `json:"sale_id"`
	InvoiceNumber string          `json:"invoice_number"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalItems    int             `json:"total_items"`
	CustomerName  string          `json:"customer_name,omitempty"`
	CreatedAt     string          `json:"created_at"` // ISO-8601
	Message       string          `json:"message"`
}

// SaleItemResponse línea de venta en respuestas.
type SaleItemResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// SaleResponse venta completa para GET /api/v1/sales/:id.
type SaleResponse struct {
	ID            string             `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	CustomerName  string             `json:"customer_name,omitempty"`
	CustomerEmail string             `json:"customer_email,omitempty"`
	CustomerPhone string             `json:"customer_phone,omitempty"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	UserID        string             `json:"user_id,omitempty"`
	CreatedAt     string             `json:"created_at"` // ISO-8601
	Items         []SaleItemResponse `json:"items"`
}

// SaleListResponse listado paginado de ventas (solo cabeceras).
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
