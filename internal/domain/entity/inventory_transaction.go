package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de inventario.
const (
	TransactionTypeStockIn    = "stock_in"   // entrada: suma al stock
	TransactionTypeStockOut   = "stock_out"  // salida: resta del stock (valida disponibilidad)
	TransactionTypeAdjustment = "adjustment" // ajuste: cantidad con signo, responsabilidad del caller
	TransactionTypeReturn     = "return"     // devolución: cantidad con signo, igual que ajuste
)

// ValidTransactionType verifica que el tipo sea uno de los cuatro soportados.
func ValidTransactionType(t string) bool {
	switch t {
	case TransactionTypeStockIn, TransactionTypeStockOut, TransactionTypeAdjustment, TransactionTypeReturn:
		return true
	}
	return false
}

// InventoryTransaction representa un movimiento de stock sobre un producto.
// Es un registro de auditoría inmutable: se crea una vez y nunca se actualiza.
type InventoryTransaction struct {
	ID              string
	ProductID       string
	Type            string
	Quantity        int // con signo para adjustment/return
	UnitPrice       decimal.Decimal
	TotalPrice      decimal.Decimal
	ReferenceNumber string // número de factura / orden de compra
	Notes           string
	CreatedBy       string // vacío si fue originado por el sistema
	CreatedAt       time.Time
}
