package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/venus-soft/venus-inventory-api/internal/application/dto"
	"github.com/venus-soft/venus-inventory-api/internal/application/ledger"
)

// AdditionHandler maneja las altas de stock (protegido).
type AdditionHandler struct {
	uc *ledger.UseCase
}

// NewAdditionHandler construye el handler de altas.
func NewAdditionHandler(uc *ledger.UseCase) *AdditionHandler {
	return &AdditionHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar un alta de stock
// @Tags         additions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "inventory_id, quantity, price, vendor, phone, date, remarks"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/additions [post]
func (h *AdditionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "inventory_id, quantity positiva, vendor y phone son requeridos"})
	}
	add, err := h.uc.RecordAddition(c.Context(), ledger.TransactionInput{
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
	return c.Status(fiber.StatusCreated).JSON(dto.ToAdditionResponse(add))
}

// List godoc
// @Summary      Listar todas las altas (más recientes primero)
// @Tags         additions
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/inventory/additions [get]
func (h *AdditionHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListAdditions(c.Context())
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(dto.ToAdditionResponseList(list))
}

// ListByInventory godoc
// @Summary      Listar las altas de un ítem
// @Tags         additions
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del ítem"
// @Success      200  {array}   dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/additions/inventory/{id} [get]
func (h *AdditionHandler) ListByInventory(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ledgerError(c, err)
	}
	list, err := h.uc.ListAdditionsByInventory(c.Context(), id)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(dto.ToAdditionResponseList(list))
}

// GetByID godoc
// @Summary      Obtener un alta por ID
// @Tags         additions
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del alta"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/additions/{id} [get]
func (h *AdditionHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ledgerError(c, err)
	}
	add, err := h.uc.GetAddition(c.Context(), id)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(dto.ToAdditionResponse(add))
}

// Delete godoc
// @Summary      Eliminar un alta
// @Description  Se rechaza si quitar el alta dejaría el stock del ítem en negativo.
// @Tags         additions
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del alta"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.InsufficientStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/additions/{id} [delete]
func (h *AdditionHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ledgerError(c, err)
	}
	if err := h.uc.DeleteAddition(c.Context(), id); err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(fiber.Map{"message": "alta eliminada"})
}
