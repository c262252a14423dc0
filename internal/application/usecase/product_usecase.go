package usecase

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tu-usuario/inventario-ventas/internal/application/dto"
	"github.com/tu-usuario/inventario-ventas/internal/domain"
	"github.com/tu-usuario/inventario-ventas/internal/domain/entity"
	"github.com/tu-usuario/inventario-ventas/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Quantity no se modifica
// por aquí: el stock cambia solo vía movimientos de inventario o ventas.
type ProductUseCase struct {
	repo         repository.ProductRepository
	supplierRepo repository.SupplierRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	categoryRepo repository.CategoryRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, supplierRepo: supplierRepo, categoryRepo: categoryRepo}
}

// Create crea un producto nuevo. SKU debe ser único; proveedor y categoría,
// si vienen, deben existir.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.checkReferences(ctx, in.SupplierID, in.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		SKU:          in.SKU,
		Name:         in.Name,
		Description:  in.Description,
		Quantity:     in.Quantity,
		Price:        in.Price,
		ReorderLevel: in.ReorderLevel,
		SupplierID:   in.SupplierID,
		CategoryID:   in.CategoryID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return uc.respond(ctx, product)
}

// GetByID obtiene un producto por ID con proveedor y categoría resueltos.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, &domain.NotFoundError{Resource: "producto", ID: id}
	}
	return uc.respond(ctx, product)
}

// Update actualiza un producto aplicando solo los campos presentes. No
// permite modificar Quantity.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, &domain.NotFoundError{Resource: "producto", ID: id}
	}
	if in.SKU != nil && *in.SKU != product.SKU {
		if *in.SKU == "" {
			return nil, domain.ErrInvalidInput
		}
		existing, err := uc.repo.GetBySKU(ctx, *in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		product.SKU = *in.SKU
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = in.Price
	}
	if in.ReorderLevel != nil {
		if *in.ReorderLevel < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.ReorderLevel = *in.ReorderLevel
	}
	supplierID, categoryID := "", ""
	if in.SupplierID != nil {
		supplierID = *in.SupplierID
	}
	if in.CategoryID != nil {
		categoryID = *in.CategoryID
	}
	if err := uc.checkReferences(ctx, supplierID, categoryID); err != nil {
		return nil, err
	}
	if in.SupplierID != nil {
		product.SupplierID = *in.SupplierID
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return uc.respond(ctx, product)
}

// List lista productos con paginación y búsqueda opcional por nombre o SKU.
// La búsqueda ignora acentos: "cafe" encuentra "Café".
func (uc *ProductUseCase) List(ctx context.Context, search string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, foldAccents(search), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		resp, err := uc.respond(ctx, p)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un producto. Si tiene movimientos o ventas asociadas la
// eliminación se rechaza con ErrConflict (histórico inmutable).
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// checkReferences valida que proveedor y categoría existan cuando vienen.
func (uc *ProductUseCase) checkReferences(ctx context.Context, supplierID, categoryID string) error {
	if supplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(ctx, supplierID)
		if err != nil {
			return err
		}
		if supplier == nil {
			return &domain.NotFoundError{Resource: "proveedor", ID: supplierID}
		}
	}
	if categoryID != "" {
		category, err := uc.categoryRepo.GetByID(ctx, categoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return &domain.NotFoundError{Resource: "categoría", ID: categoryID}
		}
	}
	return nil
}

func (uc *ProductUseCase) respond(ctx context.Context, p *entity.Product) (*dto.ProductResponse, error) {
	resp := &dto.ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  p.Description,
		Quantity:     p.Quantity,
		Price:        p.Price,
		ReorderLevel: p.ReorderLevel,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(ctx, p.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier != nil {
			resp.Supplier = &dto.SupplierResponse{
				ID:            supplier.ID,
				Name:          supplier.Name,
				ContactPerson: supplier.ContactPerson,
				Email:         supplier.Email,
				Phone:         supplier.Phone,
				Address:       supplier.Address,
				CreatedAt:     supplier.CreatedAt,
			}
		}
	}
	if p.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(ctx, p.CategoryID)
		if err != nil {
			return nil, err
		}
		if category != nil {
			resp.Category = &dto.CategoryResponse{
				ID:          category.ID,
				Name:        category.Name,
				Description: category.Description,
				CreatedAt:   category.CreatedAt,
			}
		}
	}
	return resp, nil
}

// foldAccents normaliza el término de búsqueda quitando marcas diacríticas
// (NFD + eliminación de combining marks) y pasando a minúsculas.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}
