package dashboard

import (
	"context"
	"time"

	"github.com/SantosRojas/inventory-api/internal/application/dto"
)

// OverdueReportGenerator puerto de exportación del resumen de mantenimientos
// vencidos a PDF. Lo implementa infrastructure/pdf.
type OverdueReportGenerator interface {
	GenerateOverdueReport(ctx context.Context, summary dto.OverdueMaintenanceSummaryDTO, requestedBy string, generatedAt time.Time) ([]byte, error)
}
