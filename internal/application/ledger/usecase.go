package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/venus-soft/venus-inventory-api/internal/domain"
	"github.com/venus-soft/venus-inventory-api/internal/domain/entity"
	"github.com/venus-soft/venus-inventory-api/internal/domain/repository"
)

// UseCase es el libro de stock: registra altas y salidas de forma transaccional
// y deriva el stock actual de cada ítem como suma de altas menos suma de salidas.
// Una salida que dejaría el stock en negativo se rechaza dentro de la misma
// transacción que lee el balance, con la fila del ítem bloqueada, de modo que
// dos salidas concurrentes nunca pueden sobregirar el stock.
type UseCase struct {
	txRunner TxRunner
	invRepo  repository.InventoryRepository
	addRepo  repository.AdditionRepository
	subRepo  repository.SubtractionRepository
}

// NewUseCase construye el caso de uso. Los repositorios recibidos aquí van
// atados al pool (solo lecturas); las escrituras pasan por el TxRunner.
func NewUseCase(
	txRunner TxRunner,
	invRepo repository.InventoryRepository,
	addRepo repository.AdditionRepository,
	subRepo repository.SubtractionRepository,
) *UseCase {
	return &UseCase{txRunner: txRunner, invRepo: invRepo, addRepo: addRepo, subRepo: subRepo}
}

// ItemInput entrada para crear un ítem de inventario.
type ItemInput struct {
	Name    string
	FNo     string
	Pack    string
	Unit    string
	Remarks string
}

// ItemUpdateInput entrada para actualizar campos descriptivos; nil = sin cambio.
// El stock nunca se edita: solo existe derivado de las transacciones.
type ItemUpdateInput struct {
	Name    *string
	FNo     *string
	Pack    *string
	Unit    *string
	Remarks *string
}

// TransactionInput entrada para registrar un alta o una salida.
type TransactionInput struct {
	InventoryID int64
	Quantity    int64
	Price       decimal.Decimal
	Vendor      string
	Phone       string
	Date        *time.Time // nil = momento del registro
	Remarks     string
}

func (in TransactionInput) validate() error {
	if in.InventoryID <= 0 || in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.Vendor) == "" || strings.TrimSpace(in.Phone) == "" {
		return domain.ErrInvalidInput
	}
	if in.Price.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

// CurrentStock calcula el stock actual de un ítem: suma de altas menos suma de
// salidas, con agregado ausente tratado como 0. No verifica existencia del ítem
// (un ítem desconocido reporta 0); es una lectura pura sobre el historial
// persistido, sin caché, consistente con lo último confirmado al momento de leer.
func (uc *UseCase) CurrentStock(ctx context.Context, inventoryID int64) (int64, error) {
	return currentStock(uc.addRepo, uc.subRepo, inventoryID)
}

func currentStock(addRepo repository.AdditionRepository, subRepo repository.SubtractionRepository, inventoryID int64) (int64, error) {
	adds, err := addRepo.SumQuantity(inventoryID)
	if err != nil {
		return 0, err
	}
	subs, err := subRepo.SumQuantity(inventoryID)
	if err != nil {
		return 0, err
	}
	return adds - subs, nil
}

// RecordAddition registra un alta de stock de forma atómica: verifica que el
// ítem exista (con su fila bloqueada, por si un delete concurrente lo retira) e
// inserta el registro. Las altas no necesitan chequeo de stock.
func (uc *UseCase) RecordAddition(ctx context.Context, in TransactionInput) (*entity.Addition, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}

	var created *entity.Addition
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		addRepo repository.AdditionRepository,
		subRepo repository.SubtractionRepository,
	) error {
		item, err := invRepo.GetByIDForUpdate(in.InventoryID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		stock, err := currentStock(addRepo, subRepo, in.InventoryID)
		if err != nil {
			return err
		}
		add := &entity.Addition{
			InventoryID: in.InventoryID,
			Quantity:    in.Quantity,
			Price:       in.Price,
			Vendor:      in.Vendor,
			Phone:       in.Phone,
			Date:        date,
			Remarks:     in.Remarks,
			CreatedAt:   now,
		}
		if err := addRepo.Create(add); err != nil {
			return err
		}
		item.CurrentStock = stock + in.Quantity
		add.Inventory = item
		created = add
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RecordSubtraction registra una salida de stock. Dentro de una única
// transacción: bloquea la fila del ítem, recalcula el balance y rechaza con
// InsufficientStockError si la cantidad solicitada supera el stock disponible.
// El bloqueo por ítem serializa salidas concurrentes sobre el mismo inventory_id:
// la segunda espera a que la primera haga Commit y lee el balance ya descontado.
func (uc *UseCase) RecordSubtraction(ctx context.Context, in TransactionInput) (*entity.Subtraction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}

	var created *entity.Subtraction
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		addRepo repository.AdditionRepository,
		subRepo repository.SubtractionRepository,
	) error {
		item, err := invRepo.GetByIDForUpdate(in.InventoryID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		stock, err := currentStock(addRepo, subRepo, in.InventoryID)
		if err != nil {
			return err
		}
		if in.Quantity > stock {
			return &domain.InsufficientStockError{Available: stock, Requested: in.Quantity}
		}
		sub := &entity.Subtraction{
			InventoryID: in.InventoryID,
			Quantity:    in.Quantity,
			Price:       in.Price,
			Vendor:      in.Vendor,
			Phone:       in.Phone,
			Date:        date,
			Remarks:     in.Remarks,
			CreatedAt:   now,
		}
		if err := subRepo.Create(sub); err != nil {
			return err
		}
		item.CurrentStock = stock - in.Quantity
		sub.Inventory = item
		created = sub
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// CreateInventory crea un ítem. Nace con stock derivado 0 (sin transacciones).
func (uc *UseCase) CreateInventory(ctx context.Context, in ItemInput) (*entity.Inventory, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.FNo) == "" ||
		strings.TrimSpace(in.Pack) == "" || strings.TrimSpace(in.Unit) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.Inventory{
		Name:      in.Name,
		FNo:       in.FNo,
		Pack:      in.Pack,
		Unit:      in.Unit,
		Remarks:   in.Remarks,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.invRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetInventory devuelve un ítem con su stock actual, o ErrNotFound.
func (uc *UseCase) GetInventory(ctx context.Context, id int64) (*entity.Inventory, error) {
	item, err := uc.invRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	stock, err := uc.CurrentStock(ctx, id)
	if err != nil {
		return nil, err
	}
	item.CurrentStock = stock
	return item, nil
}

// ListInventory devuelve todos los ítems (más recientes primero) con su stock actual.
func (uc *UseCase) ListInventory(ctx context.Context) ([]*entity.Inventory, error) {
	items, err := uc.invRepo.List()
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		stock, err := uc.CurrentStock(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		item.CurrentStock = stock
	}
	return items, nil
}

// UpdateInventory actualiza campos descriptivos (nunca el stock) y devuelve el
// ítem con su stock actual.
func (uc *UseCase) UpdateInventory(ctx context.Context, id int64, in ItemUpdateInput) (*entity.Inventory, error) {
	item, err := uc.invRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.FNo != nil {
		item.FNo = *in.FNo
	}
	if in.Pack != nil {
		item.Pack = *in.Pack
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.Remarks != nil {
		item.Remarks = *in.Remarks
	}
	item.UpdatedAt = time.Now()
	if err := uc.invRepo.Update(item); err != nil {
		return nil, err
	}
	stock, err := uc.CurrentStock(ctx, id)
	if err != nil {
		return nil, err
	}
	item.CurrentStock = stock
	return item, nil
}

// DeleteInventory elimina un ítem y, en la misma transacción, todo su historial
// de altas y salidas. Política explícita: la eliminación no deja filas huérfanas
// que pudieran seguir sumando en el stock derivado.
func (uc *UseCase) DeleteInventory(ctx context.Context, id int64) error {
	return uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		addRepo repository.AdditionRepository,
		subRepo repository.SubtractionRepository,
	) error {
		item, err := invRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if err := addRepo.DeleteByInventory(id); err != nil {
			return err
		}
		if err := subRepo.DeleteByInventory(id); err != nil {
			return err
		}
		return invRepo.Delete(id)
	})
}

// GetAddition devuelve un alta con su ítem embebido, o ErrNotFound.
func (uc *UseCase) GetAddition(ctx context.Context, id int64) (*entity.Addition, error) {
	add, err := uc.addRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if add == nil {
		return nil, domain.ErrNotFound
	}
	return add, nil
}

// ListAdditions devuelve todas las altas (fecha descendente, ítem embebido).
func (uc *UseCase) ListAdditions(ctx context.Context) ([]*entity.Addition, error) {
	return uc.addRepo.List()
}

// ListAdditionsByInventory devuelve las altas de un ítem.
func (uc *UseCase) ListAdditionsByInventory(ctx context.Context, inventoryID int64) ([]*entity.Addition, error) {
	return uc.addRepo.ListByInventory(inventoryID)
}

// DeleteAddition elimina un alta. Quitar un alta reduce el stock derivado
// retroactivamente, así que se ejecuta como una salida: fila del ítem bloqueada,
// balance recalculado y rechazo con InsufficientStockError si el historial
// restante dejaría el stock en negativo.
func (uc *UseCase) DeleteAddition(ctx context.Context, id int64) error {
	return uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		addRepo repository.AdditionRepository,
		subRepo repository.SubtractionRepository,
	) error {
		add, err := addRepo.GetByID(id)
		if err != nil {
			return err
		}
		if add == nil {
			return domain.ErrNotFound
		}
		item, err := invRepo.GetByIDForUpdate(add.InventoryID)
		if err != nil {
			return err
		}
		if item != nil {
			stock, err := currentStock(addRepo, subRepo, add.InventoryID)
			if err != nil {
				return err
			}
			if add.Quantity > stock {
				return &domain.InsufficientStockError{Available: stock, Requested: add.Quantity}
			}
		}
		return addRepo.Delete(id)
	})
}

// GetSubtraction devuelve una salida con su ítem embebido, o ErrNotFound.
func (uc *UseCase) GetSubtraction(ctx context.Context, id int64) (*entity.Subtraction, error) {
	sub, err := uc.subRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	return sub, nil
}

// ListSubtractions devuelve todas las salidas (fecha descendente, ítem embebido).
func (uc *UseCase) ListSubtractions(ctx context.Context) ([]*entity.Subtraction, error) {
	return uc.subRepo.List()
}

// ListSubtractionsByInventory devuelve las salidas de un ítem.
func (uc *UseCase) ListSubtractionsByInventory(ctx context.Context, inventoryID int64) ([]*entity.Subtraction, error) {
	return uc.subRepo.ListByInventory(inventoryID)
}

// DeleteSubtraction elimina una salida. Quitar una salida solo sube el stock
// derivado, así que no necesita chequeo ni bloqueo.
func (uc *UseCase) DeleteSubtraction(ctx context.Context, id int64) error {
	sub, err := uc.subRepo.GetByID(id)
	if err != nil {
		return err
	}
	if sub == nil {
		return domain.ErrNotFound
	}
	return uc.subRepo.Delete(id)
}
