package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/venus-soft/venus-inventory-api/internal/domain/entity"
)

// CreateTransactionRequest entrada para registrar un alta o una salida de stock.
// La misma forma sirve para ambas (espejo de las tablas).
type CreateTransactionRequest struct {
	InventoryID int64           `json:"inventory_id" validate:"required,gt=0"`
	Quantity    int64           `json:"quantity" validate:"required,gt=0"`
	Price       decimal.Decimal `json:"price"`
	Vendor      string          `json:"vendor" validate:"required,min=1,max=200"`
	Phone       string          `json:"phone" validate:"required,min=1,max=50"`
	Date        *time.Time      `json:"date" validate:"omitempty"`
	Remarks     string          `json:"remarks" validate:"omitempty,max=500"`
}

// TransactionResponse salida de un alta o salida, con el ítem dueño embebido.
type TransactionResponse struct {
	ID          int64              `json:"id"`
	InventoryID int64              `json:"inventory_id"`
	Quantity    int64              `json:"quantity"`
	Price       decimal.Decimal    `json:"price"`
	Vendor      string             `json:"vendor"`
	Phone       string             `json:"phone"`
	Date        time.Time          `json:"date"`
	Remarks     string             `json:"remarks,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	Inventory   *InventoryResponse `json:"inventory,omitempty"`
}

// ToAdditionResponse convierte un alta a su representación HTTP.
func ToAdditionResponse(a *entity.Addition) *TransactionResponse {
	if a == nil {
		return nil
	}
	return &TransactionResponse{
		ID:          a.ID,
		InventoryID: a.InventoryID,
		Quantity:    a.Quantity,
		Price:       a.Price,
		Vendor:      a.Vendor,
		Phone:       a.Phone,
		Date:        a.Date,
		Remarks:     a.Remarks,
		CreatedAt:   a.CreatedAt,
		Inventory:   ToInventoryResponse(a.Inventory),
	}
}

// ToSubtractionResponse convierte una salida a su representación HTTP.
func ToSubtractionResponse(s *entity.Subtraction) *TransactionResponse {
	if s == nil {
		return nil
	}
	return &TransactionResponse{
		ID:          s.ID,
		InventoryID: s.InventoryID,
		Quantity:    s.Quantity,
		Price:       s.Price,
		Vendor:      s.Vendor,
		Phone:       s.Phone,
		Date:        s.Date,
		Remarks:     s.Remarks,
		CreatedAt:   s.CreatedAt,
		Inventory:   ToInventoryResponse(s.Inventory),
	}
}

// ToAdditionResponseList convierte una lista de altas.
func ToAdditionResponseList(list []*entity.Addition) []*TransactionResponse {
	out := make([]*TransactionResponse, 0, len(list))
	for _, a := range list {
		out = append(out, ToAdditionResponse(a))
	}
	return out
}

// ToSubtractionResponseList convierte una lista de salidas.
func ToSubtractionResponseList(list []*entity.Subtraction) []*TransactionResponse {
	out := make([]*TransactionResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToSubtractionResponse(s))
	}
	return out
}
