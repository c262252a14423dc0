package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest body para POST /api/v1/inventory-transactions.
// UnitPrice es opcional: si va vacío se usa el precio del producto (si el
// producto tampoco tiene, el movimiento es inválido); si viene debe ser > 0.
// TotalPrice es opcional: si va vacío se calcula como UnitPrice * Quantity
// (con signo).
type CreateTransactionRequest struct {
	ProductID       string           `json:"product_id" validate:"required"`
	Type            string           `json:"transaction_type" validate:"required,oneof=stock_in stock_out adjustment return"`
	Quantity        int              `json:"quantity" validate:"required"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	TotalPrice      *decimal.Decimal `json:"total_price,omitempty"`
	ReferenceNumber string           `json:"reference_number,omitempty" validate:"omitempty,max=100"`
	Notes           string           `json:"notes,omitempty" validate:"omitempty,max=255"`
}

// TransactionResponse movimiento de inventario en respuestas.
type TransactionResponse struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"product_id"`
	Type            string          `json:"transaction_type"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedBy       string          `json:"created_by,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TransactionListResponse listado paginado de movimientos.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
