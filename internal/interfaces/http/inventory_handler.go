package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/venus-soft/venus-inventory-api/internal/application/dto"
	"github.com/venus-soft/venus-inventory-api/internal/application/ledger"
)

// InventoryHandler maneja las peticiones HTTP de los ítems de inventario (protegido).
type InventoryHandler struct {
	uc     *ledger.UseCase
	report *ledger.ReportUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *ledger.UseCase, report *ledger.ReportUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, report: report}
}

// Create godoc
// @Summary      Crear ítem de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "name, fno, pack, unit, remarks"
// @Success      201   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, fno, pack y unit son requeridos"})
	}
	item, err := h.uc.CreateInventory(c.Context(), ledger.ItemInput{
		Name:    in.Name,
		FNo:     in.FNo,
		Pack:    in.Pack,
		Unit:    in.Unit,
		Remarks: in.Remarks,
	})
	if err != nil {
		return ledgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToInventoryResponse(item))
}

// List godoc
// @Summary      Listar ítems con su stock actual
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.InventoryResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.ListInventory(c.Context())
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(dto.ToInventoryResponseList(items))
}

// GetByID godoc
// @Summary      Obtener ítem por ID con su stock actual
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del ítem"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ledgerError(c, err)
	}
	item, err := h.uc.GetInventory(c.Context(), id)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(dto.ToInventoryResponse(item))
}

// Update godoc
// @Summary      Actualizar campos descriptivos de un ítem
// @Description  El stock no se edita por esta vía: solo cambia vía altas y salidas.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del ítem"
// @Param        body  body  dto.UpdateInventoryRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ledgerError(c, err)
	}
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	item, err := h.uc.UpdateInventory(c.Context(), id, ledger.ItemUpdateInput{
		Name:    in.Name,
		FNo:     in.FNo,
		Pack:    in.Pack,
		Unit:    in.Unit,
		Remarks: in.Remarks,
	})
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(dto.ToInventoryResponse(item))
}

// Delete godoc
// @Summary      Eliminar ítem y su historial de transacciones
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del ítem"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ledgerError(c, err)
	}
	if err := h.uc.DeleteInventory(c.Context(), id); err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(fiber.Map{"message": "ítem eliminado"})
}

// StockReport godoc
// @Summary      Reporte PDF de existencias
// @Description  Genera un PDF con todos los ítems y su stock actual derivado.
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/report/pdf [get]
func (h *InventoryHandler) StockReport(c *fiber.Ctx) error {
	pdfBytes, err := h.report.StockReportPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("existencias-%s.pdf", time.Now().Format("20060102-1504"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}
