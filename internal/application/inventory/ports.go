package inventory

import (
	"context"

	"github.com/tu-usuario/inventario-ventas/internal/domain/repository"
)

// TxRepos repositorios ligados a una misma transacción de base de datos.
type TxRepos struct {
	Products     repository.ProductRepository
	Transactions repository.InventoryTransactionRepository
}

// TxRunner ejecuta fn dentro de una transacción. Si fn devuelve error la
// transacción se revierte completa; si devuelve nil se confirma.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}
