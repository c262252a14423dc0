package sales

import (
	"context"

	"github.com/tu-usuario/inventario-ventas/internal/domain/repository"
)

// TxRepos repositorios ligados a una misma transacción de base de datos.
type TxRepos struct {
	Products repository.ProductRepository
	Sales    repository.SaleRepository
}

// TxRunner ejecuta fn dentro de una transacción. Si fn devuelve error la
// transacción se revierte completa; si devuelve nil se confirma.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}

// ReceiptGenerator genera el comprobante PDF de una venta.
type ReceiptGenerator interface {
	Generate(sale *SaleDocument) ([]byte, error)
}

// SaleDocument datos planos para renderizar el comprobante.
type SaleDocument struct {
	InvoiceNumber string
	CustomerName  string
	PaymentMethod string
	CreatedAt     string
	TotalAmount   string
	Lines         []SaleDocumentLine
}

// SaleDocumentLine línea del comprobante.
type SaleDocumentLine struct {
	ProductName string
	Quantity    int
	UnitPrice   string
	TotalPrice  string
}
