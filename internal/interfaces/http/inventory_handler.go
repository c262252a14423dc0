package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-ventas/internal/application/dto"
	"github.com/tu-usuario/inventario-ventas/internal/application/inventory"
)

// InventoryHandler maneja movimientos de inventario (protegido).
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar movimiento de inventario
// @Description  stock_in/return suman, stock_out resta, adjustment aplica delta con signo. Atómico con el ajuste de stock.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "Movimiento"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/inventory-transactions [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if !bindBody(c, &in) {
		return nil
	}
	out, err := h.uc.RecordTransaction(c.Context(), GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un movimiento por ID.
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetTransaction(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// List lista movimientos (los huérfanos se omiten).
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.ListTransactions(c.Context(), page)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ListByProduct lista los movimientos de un producto.
func (h *InventoryHandler) ListByProduct(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.ListByProduct(c.Context(), c.Params("id"), page)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
