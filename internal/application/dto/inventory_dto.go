package dto

import (
	"time"

	"github.com/venus-soft/venus-inventory-api/internal/domain/entity"
)

// CreateInventoryRequest entrada para crear un ítem de inventario.
type CreateInventoryRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	FNo     string `json:"fno" validate:"required,min=1,max=100"`
	Pack    string `json:"pack" validate:"required,min=1,max=100"`
	Unit    string `json:"unit" validate:"required,min=1,max=50"`
	Remarks string `json:"remarks" validate:"omitempty,max=500"`
}

// UpdateInventoryRequest entrada para actualizar campos descriptivos de un ítem.
// Campos en nil se dejan como están; el stock nunca se edita por esta vía.
type UpdateInventoryRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	FNo     *string `json:"fno" validate:"omitempty,min=1,max=100"`
	Pack    *string `json:"pack" validate:"omitempty,min=1,max=100"`
	Unit    *string `json:"unit" validate:"omitempty,min=1,max=50"`
	Remarks *string `json:"remarks" validate:"omitempty,max=500"`
}

// InventoryResponse salida de un ítem con su stock actual derivado.
type InventoryResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	FNo          string    `json:"fno"`
	Pack         string    `json:"pack"`
	Unit         string    `json:"unit"`
	Remarks      string    `json:"remarks,omitempty"`
	CurrentStock int64     `json:"current_stock"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToInventoryResponse convierte la entidad a su representación HTTP.
func ToInventoryResponse(item *entity.Inventory) *InventoryResponse {
	if item == nil {
		return nil
	}
	return &InventoryResponse{
		ID:           item.ID,
		Name:         item.Name,
		FNo:          item.FNo,
		Pack:         item.Pack,
		Unit:         item.Unit,
		Remarks:      item.Remarks,
		CurrentStock: item.CurrentStock,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

// ToInventoryResponseList convierte una lista de entidades.
func ToInventoryResponseList(items []*entity.Inventory) []*InventoryResponse {
	out := make([]*InventoryResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ToInventoryResponse(it))
	}
	return out
}
