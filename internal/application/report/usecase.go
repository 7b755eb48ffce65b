package report

import (
	"context"
	"fmt"
	"time"

	"github.com/pedrolucasmota/obralog-api/internal/application/ledger"
	"github.com/pedrolucasmota/obralog-api/internal/domain"
	"github.com/pedrolucasmota/obralog-api/internal/domain/entity"
	"github.com/pedrolucasmota/obralog-api/internal/domain/repository"
)

// MovementsPDFGenerator puerto hacia el generador de PDF del reporte de movimientos.
type MovementsPDFGenerator interface {
	GenerateMovementsPDF(ctx context.Context, site *entity.ConstructionSite, movements []*entity.SiteMovement, generatedAt time.Time) ([]byte, error)
}

// MovementsReportUseCase genera el reporte PDF con todos los movimientos de una obra.
// Usa el agregado de GetAllSiteMovements, así que hereda su semántica: cada historial
// refleja el estado al momento de su propia lectura, no un snapshot entre ítems.
type MovementsReportUseCase struct {
	siteRepo  repository.SiteRepository
	history   *ledger.HistoryUseCase
	generator MovementsPDFGenerator
}

// NewMovementsReportUseCase construye el caso de uso.
func NewMovementsReportUseCase(
	siteRepo repository.SiteRepository,
	history *ledger.HistoryUseCase,
	generator MovementsPDFGenerator,
) *MovementsReportUseCase {
	return &MovementsReportUseCase{siteRepo: siteRepo, history: history, generator: generator}
}

// DownloadMovementsPDF arma el agregado de movimientos de la obra y genera el PDF.
// Retorna (pdfBytes, filename, nil) o domain.ErrNotFound si la obra no existe.
func (uc *MovementsReportUseCase) DownloadMovementsPDF(ctx context.Context, siteID string) ([]byte, string, error) {
	site, err := uc.siteRepo.GetByID(siteID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener obra: %w", err)
	}
	if site == nil {
		return nil, "", domain.ErrNotFound
	}

	movements, err := uc.history.GetAllSiteMovements(ctx, siteID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: agregar movimientos: %w", err)
	}

	now := time.Now()
	pdfBytes, err := uc.generator.GenerateMovementsPDF(ctx, site, movements, now)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("movimientos-%s-%s.pdf", site.ID, now.Format("20060102"))
	return pdfBytes, filename, nil
}
