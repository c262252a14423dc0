package sales

import (
	"context"
	"time"

	"github.com/tu-usuario/inventario-ventas/internal/application/dto"
	"github.com/tu-usuario/inventario-ventas/internal/domain"
	"github.com/tu-usuario/inventario-ventas/internal/domain/entity"
)

// GetSale obtiene una venta por ID con sus líneas.
func (uc *UseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, &domain.NotFoundError{Resource: "venta", ID: id}
	}
	items, err := uc.saleRepo.GetItemsBySaleID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, items), nil
}

// ListSales lista cabeceras de venta, las más recientes primero.
func (uc *UseCase) ListSales(ctx context.Context, page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	sales, err := uc.saleRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.SaleListResponse{
		Items: make([]dto.SaleResponse, 0, len(sales)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, s := range sales {
		out.Items = append(out.Items, *toSaleResponse(s, nil))
	}
	return out, nil
}

// SaleReceiptPDF genera el comprobante PDF de una venta existente.
func (uc *UseCase) SaleReceiptPDF(ctx context.Context, id string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, &domain.NotFoundError{Resource: "venta", ID: id}
	}
	items, err := uc.saleRepo.GetItemsBySaleID(ctx, id)
	if err != nil {
		return nil, err
	}

	doc := &SaleDocument{
		InvoiceNumber: sale.InvoiceNumber,
		CustomerName:  sale.CustomerName,
		PaymentMethod: sale.PaymentMethod,
		CreatedAt:     sale.CreatedAt.Format("2006-01-02 15:04"),
		TotalAmount:   sale.TotalAmount.StringFixed(2),
		Lines:         make([]SaleDocumentLine, 0, len(items)),
	}
	for _, it := range items {
		name := it.ProductID
		if p, err := uc.productRepo.GetByID(ctx, it.ProductID); err == nil && p != nil {
			name = p.Name
		}
		doc.Lines = append(doc.Lines, SaleDocumentLine{
			ProductName: name,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.StringFixed(2),
			TotalPrice:  it.TotalPrice.StringFixed(2),
		})
	}
	return uc.receipts.Generate(doc)
}

func toSaleResponse(sale *entity.Sale, items []*entity.SaleItem) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            sale.ID,
		InvoiceNumber: sale.InvoiceNumber,
		CustomerName:  sale.CustomerName,
		CustomerEmail: sale.CustomerEmail,
		CustomerPhone: sale.CustomerPhone,
		PaymentMethod: sale.PaymentMethod,
		TotalAmount:   sale.TotalAmount,
		UserID:        sale.UserID,
		CreatedAt:     sale.CreatedAt.Format(time.RFC3339),
		Items:         make([]dto.SaleItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:         it.ID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		})
	}
	return resp
}
