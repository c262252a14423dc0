package sales

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-ventas/internal/application/dto"
	"github.com/tu-usuario/inventario-ventas/internal/domain"
	"github.com/tu-usuario/inventario-ventas/internal/domain/entity"
	"github.com/tu-usuario/inventario-ventas/internal/domain/repository"
	"github.com/tu-usuario/inventario-ventas/pkg/logger"
)

// UseCase crea ventas multilinea y descuenta el inventario en una sola
// transacción: o se confirma todo (venta, líneas y descuentos) o nada.
type UseCase struct {
	txRunner    TxRunner
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	receipts    ReceiptGenerator
	log         *logger.Logger
}

// NewUseCase construye el caso de uso de ventas.
func NewUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	receipts ReceiptGenerator,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		saleRepo:    saleRepo,
		productRepo: productRepo,
		receipts:    receipts,
		log:         log,
	}
}

// resolvedLine línea ya validada: precio resuelto y total calculado.
type resolvedLine struct {
	productID string
	quantity  int
	unitPrice decimal.Decimal
	total     decimal.Decimal
}

// CreateSale valida y confirma una venta. Bloquea los productos implicados
// (FOR UPDATE, en orden ascendente de id para evitar deadlocks), resuelve el
// precio de cada línea, verifica stock y solo entonces escribe cabecera,
// líneas y descuentos. Cualquier error revierte la transacción completa.
func (uc *UseCase) CreateSale(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleSummaryResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for i := range in.Items {
		if in.Items[i].ProductID == "" || in.Items[i].Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if in.Items[i].UnitPrice != nil && !in.Items[i].UnitPrice.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
	}

	// IDs distintos, ordenados ascendente para el orden de bloqueo.
	seen := make(map[string]struct{}, len(in.Items))
	ids := make([]string, 0, len(in.Items))
	for i := range in.Items {
		if _, ok := seen[in.Items[i].ProductID]; ok {
			continue
		}
		seen[in.Items[i].ProductID] = struct{}{}
		ids = append(ids, in.Items[i].ProductID)
	}
	sort.Strings(ids)

	var summary *dto.SaleSummaryResponse
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		locked, err := repos.Products.ListByIDsForUpdate(ctx, ids)
		if err != nil {
			return err
		}
		productsByID := make(map[string]*entity.Product, len(locked))
		for _, p := range locked {
			productsByID[p.ID] = p
		}

		// Fase de validación: existencia, precio y stock por línea. No se
		// escribe nada todavía.
		lines := make([]resolvedLine, 0, len(in.Items))
		total := decimal.Zero
		for i := range in.Items {
			item := &in.Items[i]
			product, ok := productsByID[item.ProductID]
			if !ok {
				return &domain.NotFoundError{Resource: "producto", ID: item.ProductID}
			}
			unitPrice, err := resolveUnitPrice(item.UnitPrice, product)
			if err != nil {
				return err
			}
			if product.Quantity < item.Quantity {
				return &domain.InsufficientStockError{
					ProductID: product.ID,
					Requested: item.Quantity,
					Available: product.Quantity,
				}
			}
			lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
			lines = append(lines, resolvedLine{
				productID: item.ProductID,
				quantity:  item.Quantity,
				unitPrice: unitPrice,
				total:     lineTotal,
			})
			total = total.Add(lineTotal)
		}

		// Fase de confirmación: consecutivo, cabecera, líneas y descuentos.
		count, err := repos.Sales.Count(ctx)
		if err != nil {
			return err
		}
		now := time.Now()
		sale := &entity.Sale{
			ID:            uuid.New().String(),
			InvoiceNumber: invoiceNumber(now, count),
			CustomerName:  in.CustomerName,
			CustomerEmail: in.CustomerEmail,
			CustomerPhone: in.CustomerPhone,
			PaymentMethod: in.PaymentMethod,
			TotalAmount:   total,
			UserID:        userID,
			CreatedAt:     now,
		}
		if err := repos.Sales.Create(ctx, sale); err != nil {
			return err
		}

		totalItems := 0
		for _, line := range lines {
			item := &entity.SaleItem{
				ID:         uuid.New().String(),
				SaleID:     sale.ID,
				ProductID:  line.productID,
				Quantity:   line.quantity,
				UnitPrice:  line.unitPrice,
				TotalPrice: line.total,
			}
			if err := repos.Sales.CreateItem(ctx, item); err != nil {
				return err
			}
			product := productsByID[line.productID]
			// Reverifica tras descontar: líneas duplicadas del mismo
			// producto pasan la validación por separado pero no pueden
			// dejar el stock en negativo.
			newQuantity := product.Quantity - line.quantity
			if newQuantity < 0 {
				return &domain.InsufficientStockError{
					ProductID: product.ID,
					Requested: line.quantity,
					Available: product.Quantity,
				}
			}
			product.Quantity = newQuantity
			if err := repos.Products.UpdateQuantity(ctx, product.ID, newQuantity); err != nil {
				return err
			}
			totalItems += line.quantity
		}

		summary = &dto.SaleSummaryResponse{
			SaleID:        sale.ID,
			InvoiceNumber: sale.InvoiceNumber,
			TotalAmount:   sale.TotalAmount,
			TotalItems:    totalItems,
			CustomerName:  sale.CustomerName,
			CreatedAt:     sale.CreatedAt.Format(time.RFC3339),
			Message:       "venta registrada",
		}
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).Int("items", len(in.Items)).Msg("venta rechazada")
		return nil, err
	}

	uc.log.Info().
		Str("sale_id", summary.SaleID).
		Str("invoice_number", summary.InvoiceNumber).
		Str("total_amount", summary.TotalAmount.String()).
		Msg("venta registrada")
	return summary, nil
}

// resolveUnitPrice precio de línea: el del request si viene, si no el del
// producto. Sin ninguno de los dos la línea es inválida.
func resolveUnitPrice(override *decimal.Decimal, product *entity.Product) (decimal.Decimal, error) {
	if override != nil {
		return *override, nil
	}
	if product.Price != nil {
		return *product.Price, nil
	}
	return decimal.Zero, domain.ErrInvalidInput
}
