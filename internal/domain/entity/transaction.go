package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Addition es un evento de entrada de stock (alta). Inmutable una vez creado;
// solo se elimina, nunca se edita.
type Addition struct {
	ID          int64
	InventoryID int64
	Quantity    int64           // siempre > 0, en la unidad del ítem
	Price       decimal.Decimal // precio de esta transacción, no del ítem
	Vendor      string
	Phone       string
	Date        time.Time // por defecto el momento del registro
	Remarks     string    // opcional
	CreatedAt   time.Time

	// Inventory es el ítem dueño, adjunto en lecturas por conveniencia.
	Inventory *Inventory
}

// Subtraction es un evento de salida de stock. Misma forma que Addition;
// su registro se rechaza si dejaría el stock del ítem en negativo.
type Subtraction struct {
	ID          int64
	InventoryID int64
	Quantity    int64
	Price       decimal.Decimal
	Vendor      string
	Phone       string
	Date        time.Time
	Remarks     string
	CreatedAt   time.Time

	Inventory *Inventory
}
