package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/maturitypath-backend/internal/http/response"
	"github.com/yungbote/maturitypath-backend/internal/pkg/ctxutil"
	"github.com/yungbote/maturitypath-backend/internal/services"
)

type ExportHandler struct {
	exportService   services.ExportService
	responseService services.ResponseService
}

func NewExportHandler(exportService services.ExportService, responseService services.ResponseService) *ExportHandler {
	return &ExportHandler{exportService: exportService, responseService: responseService}
}

func (h *ExportHandler) ExportResultsCSV(c *gin.Context) {
	responseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if _, err := h.responseService.GetResponse(c.Request.Context(), ctxutil.UserID(c.Request.Context()), responseID); err != nil {
		response.RespondError(c, submitStatus(err), "response_not_found", err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=results-%s.csv", responseID))
	if err := h.exportService.WriteResultsCSV(c.Request.Context(), c.Writer, responseID); err != nil {
		response.RespondError(c, resultsStatus(err), "export_failed", err)
		return
	}
	c.Status(http.StatusOK)
}
