package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/venus-soft/venus-inventory-api/internal/application/dto"
	"github.com/venus-soft/venus-inventory-api/internal/application/ledger"
)

// SubtractionHandler maneja las salidas de stock (protegido).
type SubtractionHandler struct {
	uc *ledger.UseCase
}

// NewSubtractionHandler construye el handler de salidas.
func NewSubtractionHandler(uc *ledger.UseCase) *SubtractionHandler {
	return &SubtractionHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar una salida de stock
// @Description  Se rechaza atómicamente si la cantidad supera el stock disponible.
// @Tags         subtractions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "inventory_id, quantity, price, vendor, phone, date, remarks"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.InsufficientStockResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/subtractions [post]
func (h *SubtractionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "inventory_id, quantity positiva, vendor y phone son requeridos"})
	}
	sub, err := h.uc.RecordSubtraction(c.Context(), ledger.TransactionInput{
		InventoryID: in.InventoryID,
		Quantity:    in.Quantity,
		Price:       in.Price,
		Vendor:      in.Vendor,
		Phone:       in.Phone,
		Date:        in.Date,
		Remarks:     in.Remarks,
	})
	if err != nil {
		return ledgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToSubtractionResponse(sub))
}

// List godoc
// @Summary      Listar todas las salidas (más recientes primero)
// @Tags         subtractions
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/inventory/subtractions [get]
func (h *SubtractionHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListSubtractions(c.Context())
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(dto.ToSubtractionResponseList(list))
}

// ListByInventory godoc
// @Summary      Listar las salidas de un ítem
// @Tags         subtractions
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del ítem"
// @Success      200  {array}   dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/subtractions/inventory/{id} [get]
func (h *SubtractionHandler) ListByInventory(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ledgerError(c, err)
	}
	list, err := h.uc.ListSubtractionsByInventory(c.Context(), id)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(dto.ToSubtractionResponseList(list))
}

// GetByID godoc
// @Summary      Obtener una salida por ID
// @Tags         subtractions
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la salida"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/subtractions/{id} [get]
func (h *SubtractionHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ledgerError(c, err)
	}
	sub, err := h.uc.GetSubtraction(c.Context(), id)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(dto.ToSubtractionResponse(sub))
}

// Delete godoc
// @Summary      Eliminar una salida
// @Description  Quitar una salida solo sube el stock derivado, siempre es válido.
// @Tags         subtractions
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la salida"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/subtractions/{id} [delete]
func (h *SubtractionHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ledgerError(c, err)
	}
	if err := h.uc.DeleteSubtraction(c.Context(), id); err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(fiber.Map{"message": "salida eliminada"})
}
