package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/venus-soft/venus-inventory-api/internal/domain/entity"
	"github.com/venus-soft/venus-inventory-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL
// (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste un nuevo ítem y rellena su ID (BIGSERIAL).
func (r *InventoryRepo) Create(item *entity.Inventory) error {
	query := `
		INSERT INTO inventory (name, fno, pack, unit, remarks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.Name, item.FNo, item.Pack, item.Unit, nullable(item.Remarks),
		item.CreatedAt, item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID; (nil, nil) si no existe.
func (r *InventoryRepo) GetByID(id int64) (*entity.Inventory, error) {
	return r.get(id, false)
}

// GetByIDForUpdate obtiene el ítem y bloquea su fila (SELECT FOR UPDATE).
// El bloqueo serializa por inventory_id el chequeo de balance y el insert de
// las transacciones de stock.
func (r *InventoryRepo) GetByIDForUpdate(id int64) (*entity.Inventory, error) {
	return r.get(id, true)
}

func (r *InventoryRepo) get(id int64, forUpdate bool) (*entity.Inventory, error) {
	query := `
		SELECT id, name, fno, pack, unit, remarks, created_at, updated_at
		FROM inventory WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var it entity.Inventory
	var remarks *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.Name, &it.FNo, &it.Pack, &it.Unit, &remarks, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	if remarks != nil {
		it.Remarks = *remarks
	}
	return &it, nil
}

// List devuelve todos los ítems, más recientes primero.
func (r *InventoryRepo) List() ([]*entity.Inventory, error) {
	query := `
		SELECT id, name, fno, pack, unit, remarks, created_at, updated_at
		FROM inventory ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var it entity.Inventory
		var remarks *string
		if err := rows.Scan(&it.ID, &it.Name, &it.FNo, &it.Pack, &it.Unit, &remarks,
			&it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		if remarks != nil {
			it.Remarks = *remarks
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update actualiza los campos descriptivos de un ítem (nunca un stock: no existe tal columna).
func (r *InventoryRepo) Update(item *entity.Inventory) error {
	query := `
		UPDATE inventory SET name = $2, fno = $3, pack = $4, unit = $5, remarks = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.FNo, item.Pack, item.Unit, nullable(item.Remarks), item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	return nil
}

// Delete elimina un ítem por ID.
func (r *InventoryRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	return nil
}

// nullable convierte "" en NULL para columnas opcionales.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
