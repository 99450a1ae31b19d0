package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/maturitypath-backend/internal/http/response"
	"github.com/yungbote/maturitypath-backend/internal/services"
)

type AssessmentHandler struct {
	catalogService services.CatalogService
}

func NewAssessmentHandler(catalogService services.CatalogService) *AssessmentHandler {
	return &AssessmentHandler{catalogService: catalogService}
}

func (h *AssessmentHandler) ListAssessments(c *gin.Context) {
	rows, err := h.catalogService.ListAssessments(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"assessments": rows})
}

func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	detail, err := h.catalogService.GetAssessment(c.Request.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrAssessmentNotFound) {
			status = http.StatusNotFound
		}
		response.RespondError(c, status, "assessment_not_found", err)
		return
	}
	response.RespondOK(c, detail)
}
