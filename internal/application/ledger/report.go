package ledger

import (
	"context"
	"time"

	"github.com/venus-soft/venus-inventory-api/internal/domain/entity"
)

// StockReportGenerator genera el PDF del reporte de existencias. Lo implementa
// la infraestructura (Maroto).
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, generatedAt time.Time, items []*entity.Inventory) ([]byte, error)
}

// ReportUseCase produce el reporte imprimible de existencias: todos los ítems
// con su stock actual derivado al momento de la generación.
type ReportUseCase struct {
	ledger *UseCase
	gen    StockReportGenerator
}

// NewReportUseCase construye el caso de uso del reporte.
func NewReportUseCase(ledger *UseCase, gen StockReportGenerator) *ReportUseCase {
	return &ReportUseCase{ledger: ledger, gen: gen}
}

// StockReportPDF devuelve los bytes del PDF con el inventario completo.
func (uc *ReportUseCase) StockReportPDF(ctx context.Context) ([]byte, error) {
	items, err := uc.ledger.ListInventory(ctx)
	if err != nil {
		return nil, err
	}
	return uc.gen.GenerateStockReport(ctx, time.Now(), items)
}
