package ledger

import (
	"context"

	"github.com/venus-soft/venus-inventory-api/internal/domain/repository"
)

// TxRunner ejecuta un callback dentro de una transacción del almacén, con
// repositorios atados a esa transacción. Si fn devuelve error se hace Rollback;
// si no, Commit. Un fallo de serialización entre transacciones concurrentes se
// reporta como domain.ErrConflict y no se reintenta aquí: cada llamada se
// intenta exactamente una vez.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		addRepo repository.AdditionRepository,
		subRepo repository.SubtractionRepository,
	) error) error
}
