package repository

import "github.com/venus-soft/venus-inventory-api/internal/domain/entity"

// AdditionRepository define el puerto de persistencia para las altas de stock.
// Las lecturas adjuntan el ítem dueño; GetByID devuelve (nil, nil) si no existe.
type AdditionRepository interface {
	Create(addition *entity.Addition) error
	GetByID(id int64) (*entity.Addition, error)
	List() ([]*entity.Addition, error)
	ListByInventory(inventoryID int64) ([]*entity.Addition, error)
	// SumQuantity devuelve la suma de cantidades del ítem; 0 si no hay filas.
	SumQuantity(inventoryID int64) (int64, error)
	Delete(id int64) error
	DeleteByInventory(inventoryID int64) error
}

// SubtractionRepository define el puerto de persistencia para las salidas de stock.
type SubtractionRepository interface {
	Create(subtraction *entity.Subtraction) error
	GetByID(id int64) (*entity.Subtraction, error)
	List() ([]*entity.Subtraction, error)
	ListByInventory(inventoryID int64) ([]*entity.Subtraction, error)
	SumQuantity(inventoryID int64) (int64, error)
	Delete(id int64) error
	DeleteByInventory(inventoryID int64) error
}
