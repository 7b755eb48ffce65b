package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pedrolucasmota/obralog-api/internal/application/report"
)

// ReportHandler maneja la descarga de reportes PDF (protegido).
type ReportHandler struct {
	uc *report.MovementsReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.MovementsReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// DownloadMovements godoc
// @Summary      Descargar PDF de movimientos de una obra
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        siteId  path  string  true  "ID de la obra"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sites/{siteId}/reports/movements [get]
func (h *ReportHandler) DownloadMovements(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.DownloadMovementsPDF(c.Context(), c.Params("siteId"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
