package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/service"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/pkg/response"
)

// ExportHandler candidate export endpoints.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates the ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Candidates streams the candidate export.
// GET /api/v1/admin/export/candidates?format=csv|xlsx
func (h *ExportHandler) Candidates(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	switch format {
	case "csv":
		buf, filename, err := h.exportSvc.ExportCandidatesCSV(c.Request.Context())
		if err != nil {
			response.InternalError(c)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())

	case "xlsx":
		buf, filename, err := h.exportSvc.ExportCandidatesXLSX(c.Request.Context())
		if err != nil {
			response.InternalError(c)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())

	default:
		response.BadRequest(c, 10001, "format must be csv or xlsx")
	}
}
