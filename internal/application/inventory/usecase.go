package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-ventas/internal/application/dto"
	"github.com/tu-usuario/inventario-ventas/internal/domain"
	"github.com/tu-usuario/inventario-ventas/internal/domain/entity"
	"github.com/tu-usuario/inventario-ventas/internal/domain/repository"
	"github.com/tu-usuario/inventario-ventas/pkg/logger"
)

// UseCase registra movimientos de inventario (entradas, salidas, ajustes y
// devoluciones) ajustando el stock del producto en la misma transacción.
type UseCase struct {
	txRunner TxRunner
	txRepo   repository.InventoryTransactionRepository
	log      *logger.Logger
}

// NewUseCase construye el caso de uso de inventario.
func NewUseCase(txRunner TxRunner, txRepo repository.InventoryTransactionRepository, log *logger.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, txRepo: txRepo, log: log}
}

// stockDelta variación de stock que produce un movimiento según su tipo.
// adjustment y return llevan la cantidad con signo (el llamador decide la
// dirección); stock_in y stock_out exigen cantidad positiva.
func stockDelta(txType string, quantity int) (int, error) {
	switch txType {
	case entity.TransactionTypeStockIn:
		if quantity <= 0 {
			return 0, domain.ErrInvalidInput
		}
		return quantity, nil
	case entity.TransactionTypeStockOut:
		if quantity <= 0 {
			return 0, domain.ErrInvalidInput
		}
		return -quantity, nil
	case entity.TransactionTypeAdjustment, entity.TransactionTypeReturn:
		if quantity == 0 {
			return 0, domain.ErrInvalidInput
		}
		return quantity, nil
	default:
		return 0, domain.ErrInvalidInput
	}
}

// RecordTransaction registra un movimiento y ajusta el stock del producto de
// forma atómica. El producto se bloquea (FOR UPDATE) para que lecturas
// concurrentes no dejen el stock inconsistente; si el ajuste dejaría el
// stock en negativo, todo se revierte.
func (uc *UseCase) RecordTransaction(ctx context.Context, userID string, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	delta, err := stockDelta(in.Type, in.Quantity)
	if err != nil {
		return nil, err
	}
	if in.UnitPrice != nil && !in.UnitPrice.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	var resp *dto.TransactionResponse
	err = uc.txRunner.Run(ctx, func(repos TxRepos) error {
		locked, err := repos.Products.ListByIDsForUpdate(ctx, []string{in.ProductID})
		if err != nil {
			return err
		}
		if len(locked) == 0 {
			return &domain.NotFoundError{Resource: "producto", ID: in.ProductID}
		}
		product := locked[0]

		newQuantity := product.Quantity + delta
		if newQuantity < 0 {
			return &domain.InsufficientStockError{
				ProductID: product.ID,
				Requested: -delta,
				Available: product.Quantity,
			}
		}

		var unitPrice decimal.Decimal
		switch {
		case in.UnitPrice != nil:
			unitPrice = *in.UnitPrice
		case product.Price != nil:
			unitPrice = *product.Price
		default:
			return domain.ErrInvalidInput
		}
		// total con signo: una cantidad negativa produce un total negativo
		totalPrice := unitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
		if in.TotalPrice != nil {
			totalPrice = *in.TotalPrice
		}

		tx := &entity.InventoryTransaction{
			ID:              uuid.New().String(),
			ProductID:       product.ID,
			Type:            in.Type,
			Quantity:        in.Quantity,
			UnitPrice:       unitPrice,
			TotalPrice:      totalPrice,
			ReferenceNumber: in.ReferenceNumber,
			Notes:           in.Notes,
			CreatedBy:       userID,
			CreatedAt:       time.Now(),
		}
		if err := repos.Transactions.Create(ctx, tx); err != nil {
			return err
		}
		if err := repos.Products.UpdateQuantity(ctx, product.ID, newQuantity); err != nil {
			return err
		}
		resp = toTransactionResponse(tx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("transaction_id", resp.ID).
		Str("product_id", resp.ProductID).
		Str("type", resp.Type).
		Int("quantity", resp.Quantity).
		Msg("movimiento de inventario registrado")
	return resp, nil
}

// GetTransaction obtiene un movimiento por ID.
func (uc *UseCase) GetTransaction(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	tx, err := uc.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, &domain.NotFoundError{Resource: "movimiento", ID: id}
	}
	return toTransactionResponse(tx), nil
}

// ListTransactions lista movimientos, los más recientes primero. Los
// movimientos cuyo producto ya no existe se omiten en el listado.
func (uc *UseCase) ListTransactions(ctx context.Context, page dto.PageRequest) (*dto.TransactionListResponse, error) {
	page.DefaultPage()
	txs, err := uc.txRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toTransactionList(txs, page), nil
}

// ListByProduct lista los movimientos de un producto.
func (uc *UseCase) ListByProduct(ctx context.Context, productID string, page dto.PageRequest) (*dto.TransactionListResponse, error) {
	page.DefaultPage()
	txs, err := uc.txRepo.ListByProduct(ctx, productID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toTransactionList(txs, page), nil
}

func toTransactionList(txs []*entity.InventoryTransaction, page dto.PageRequest) *dto.TransactionListResponse {
	out := &dto.TransactionListResponse{
		Items: make([]dto.TransactionResponse, 0, len(txs)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, tx := range txs {
		out.Items = append(out.Items, *toTransactionResponse(tx))
	}
	return out
}

func toTransactionResponse(tx *entity.InventoryTransaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:              tx.ID,
		ProductID:       tx.ProductID,
		Type:            tx.Type,
		Quantity:        tx.Quantity,
		UnitPrice:       tx.UnitPrice,
		TotalPrice:      tx.TotalPrice,
		ReferenceNumber: tx.ReferenceNumber,
		Notes:           tx.Notes,
		CreatedBy:       tx.CreatedBy,
		CreatedAt:       tx.CreatedAt,
	}
}
