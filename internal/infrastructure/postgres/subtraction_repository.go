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

var _ repository.SubtractionRepository = (*SubtractionRepo)(nil)

// SubtractionRepo implementación sobre PostgreSQL (usable con pool o tx).
type SubtractionRepo struct {
	q Querier
}

// NewSubtractionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubtractionRepository(q Querier) *SubtractionRepo {
	return &SubtractionRepo{q: q}
}

const subtractionSelect = `
	SELECT s.id, s.inventory_id, s.quantity, s.price, s.vendor, s.phone, s.date, s.remarks, s.created_at,
	       i.id, i.name, i.fno, i.pack, i.unit, i.remarks, i.created_at, i.updated_at
	FROM inventory_subtractions s
	JOIN inventory i ON i.id = s.inventory_id`

// Create persiste una salida y rellena su ID. El chequeo de stock ocurre en el
// caso de uso, dentro de la misma transacción y con la fila del ítem bloqueada.
func (r *SubtractionRepo) Create(s *entity.Subtraction) error {
	query := `
		INSERT INTO inventory_subtractions (inventory_id, quantity, price, vendor, phone, date, remarks, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		s.InventoryID, s.Quantity, s.Price, s.Vendor, s.Phone, s.Date, nullable(s.Remarks), s.CreatedAt,
	).Scan(&s.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert subtraction: %w", err)
	}
	return nil
}

// GetByID obtiene una salida con su ítem embebido; (nil, nil) si no existe.
func (r *SubtractionRepo) GetByID(id int64) (*entity.Subtraction, error) {
	row := r.q.QueryRow(context.Background(), subtractionSelect+` WHERE s.id = $1`, id)
	s, err := scanSubtraction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subtraction: %w", err)
	}
	return s, nil
}

// List devuelve todas las salidas, fecha descendente, con el ítem embebido.
func (r *SubtractionRepo) List() ([]*entity.Subtraction, error) {
	return r.list(subtractionSelect + ` ORDER BY s.date DESC`)
}

// ListByInventory devuelve las salidas de un ítem, fecha descendente.
func (r *SubtractionRepo) ListByInventory(inventoryID int64) ([]*entity.Subtraction, error) {
	return r.list(subtractionSelect+` WHERE s.inventory_id = $1 ORDER BY s.date DESC`, inventoryID)
}

func (r *SubtractionRepo) list(query string, args ...any) ([]*entity.Subtraction, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subtractions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Subtraction
	for rows.Next() {
		s, err := scanSubtraction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subtraction: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// SumQuantity suma las cantidades de las salidas del ítem; agregado ausente = 0.
func (r *SubtractionRepo) SumQuantity(inventoryID int64) (int64, error) {
	var sum int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM inventory_subtractions WHERE inventory_id = $1`,
		inventoryID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum subtractions: %w", err)
	}
	return sum, nil
}

// Delete elimina una salida por ID.
func (r *SubtractionRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_subtractions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subtraction: %w", err)
	}
	return nil
}

// DeleteByInventory elimina todas las salidas de un ítem (cascada al borrar el ítem).
func (r *SubtractionRepo) DeleteByInventory(inventoryID int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM inventory_subtractions WHERE inventory_id = $1`, inventoryID)
	if err != nil {
		return fmt.Errorf("delete subtractions by inventory: %w", err)
	}
	return nil
}

func scanSubtraction(row pgx.Row) (*entity.Subtraction, error) {
	var s entity.Subtraction
	var it entity.Inventory
	var sRemarks, iRemarks *string
	err := row.Scan(
		&s.ID, &s.InventoryID, &s.Quantity, &s.Price, &s.Vendor, &s.Phone, &s.Date, &sRemarks, &s.CreatedAt,
		&it.ID, &it.Name, &it.FNo, &it.Pack, &it.Unit, &iRemarks, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if sRemarks != nil {
		s.Remarks = *sRemarks
	}
	if iRemarks != nil {
		it.Remarks = *iRemarks
	}
	s.Inventory = &it
	return &s, nil
}
