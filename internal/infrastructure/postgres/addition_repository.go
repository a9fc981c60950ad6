package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/venus-soft/venus-inventory-api/internal/domain"
	"github.com/venus-soft/venus-inventory-api/internal/domain/entity"
	"github.com/venus-soft/venus-inventory-api/internal/domain/repository"
)

var _ repository.AdditionRepository = (*AdditionRepo)(nil)

// AdditionRepo implementación sobre PostgreSQL (usable con pool o tx).
type AdditionRepo struct {
	q Querier
}

// NewAdditionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAdditionRepository(q Querier) *AdditionRepo {
	return &AdditionRepo{q: q}
}

const additionSelect = `
	SELECT a.id, a.inventory_id, a.quantity, a.price, a.vendor, a.phone, a.date, a.remarks, a.created_at,
	       i.id, i.name, i.fno, i.pack, i.unit, i.remarks, i.created_at, i.updated_at
	FROM inventory_additions a
	JOIN inventory i ON i.id = a.inventory_id`

// Create persiste un alta y rellena su ID.
func (r *AdditionRepo) Create(a *entity.Addition) error {
	query := `
		INSERT INTO inventory_additions (inventory_id, quantity, price, vendor, phone, date, remarks, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		a.InventoryID, a.Quantity, a.Price, a.Vendor, a.Phone, a.Date, nullable(a.Remarks), a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert addition: %w", err)
	}
	return nil
}

// GetByID obtiene un alta con su ítem embebido; (nil, nil) si no existe.
func (r *AdditionRepo) GetByID(id int64) (*entity.Addition, error) {
	row := r.q.QueryRow(context.Background(), additionSelect+` WHERE a.id = $1`, id)
	a, err := scanAddition(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get addition: %w", err)
	}
	return a, nil
}

// List devuelve todas las altas, fecha descendente, con el ítem embebido.
func (r *AdditionRepo) List() ([]*entity.Addition, error) {
	return r.list(additionSelect + ` ORDER BY a.date DESC`)
}

// ListByInventory devuelve las altas de un ítem, fecha descendente.
func (r *AdditionRepo) ListByInventory(inventoryID int64) ([]*entity.Addition, error) {
	return r.list(additionSelect+` WHERE a.inventory_id = $1 ORDER BY a.date DESC`, inventoryID)
}

func (r *AdditionRepo) list(query string, args ...any) ([]*entity.Addition, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list additions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Addition
	for rows.Next() {
		a, err := scanAddition(rows)
		if err != nil {
			return nil, fmt.Errorf("scan addition: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// SumQuantity suma las cantidades de las altas del ítem; agregado ausente = 0.
func (r *AdditionRepo) SumQuantity(inventoryID int64) (int64, error) {
	var sum int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM inventory_additions WHERE inventory_id = $1`,
		inventoryID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum additions: %w", err)
	}
	return sum, nil
}

// Delete elimina un alta por ID.
func (r *AdditionRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_additions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete addition: %w", err)
	}
	return nil
}

// DeleteByInventory elimina todas las altas de un ítem (cascada al borrar el ítem).
func (r *AdditionRepo) DeleteByInventory(inventoryID int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM inventory_additions WHERE inventory_id = $1`, inventoryID)
	if err != nil {
		return fmt.Errorf("delete additions by inventory: %w", err)
	}
	return nil
}

func scanAddition(row pgx.Row) (*entity.Addition, error) {
	var a entity.Addition
	var it entity.Inventory
	var aRemarks, iRemarks *string
	err := row.Scan(
		&a.ID, &a.InventoryID, &a.Quantity, &a.Price, &a.Vendor, &a.Phone, &a.Date, &aRemarks, &a.CreatedAt,
		&it.ID, &it.Name, &it.FNo, &it.Pack, &it.Unit, &iRemarks, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if aRemarks != nil {
		a.Remarks = *aRemarks
	}
	if iRemarks != nil {
		it.Remarks = *iRemarks
	}
	a.Inventory = &it
	return &a, nil
}
