package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa la cabecera de una venta. Se crea una vez dentro de la
// transacción de commit y no se modifica después.
// TotalAmount es derivado: siempre igual a la suma de TotalPrice de sus items.
type Sale struct {
	ID            string
	InvoiceNumber string // único, generado
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	PaymentMethod string
	TotalAmount   decimal.Decimal
	UserID        string // vacío para ventas anónimas/del sistema
	CreatedAt     time.Time
}

// SaleItem representa una línea de venta. Su ciclo de vida está atado a la
// venta: se crea junto con la cabecera y nunca se elimina de forma independiente.
type SaleItem struct {
	ID         string
	SaleID     string
	ProductID  string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal // Quantity * UnitPrice
}
