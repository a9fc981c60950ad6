package entity

import "time"

// Inventory representa un ítem de inventario. No tiene campo de cantidad
// persistido: el stock se deriva siempre de las altas y salidas registradas.
type Inventory struct {
	ID        int64
	Name      string
	FNo       string // código de referencia / catálogo
	Pack      string
	Unit      string
	Remarks   string // opcional
	CreatedAt time.Time
	UpdatedAt time.Time

	// CurrentStock es un valor derivado (suma de altas menos suma de salidas).
	// Nunca se escribe en la base de datos; lo rellena el caso de uso en lecturas.
	CurrentStock int64
}
