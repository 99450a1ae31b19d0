package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/maturitypath-backend/internal/http/response"
	"github.com/yungbote/maturitypath-backend/internal/pkg/ctxutil"
	"github.com/yungbote/maturitypath-backend/internal/services"
)

type ResponseHandler struct {
	responseService services.ResponseService
}

func NewResponseHandler(responseService services.ResponseService) *ResponseHandler {
	return &ResponseHandler{responseService: responseService}
}

func (h *ResponseHandler) StartResponse(c *gin.Context) {
	var req struct {
		AssessmentID string `json:"assessment_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	assessmentID, err := uuid.Parse(req.AssessmentID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_assessment_id", err)
		return
	}
	resp, err := h.responseService.StartResponse(c.Request.Context(), ctxutil.UserID(c.Request.Context()), assessmentID)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, services.ErrAssessmentNotFound) {
			status = http.StatusNotFound
		}
		response.RespondError(c, status, "start_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"response": resp})
}

func (h *ResponseHandler) SubmitAnswer(c *gin.Context) {
	responseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req services.SubmitAnswerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	err = h.responseService.SubmitAnswer(c.Request.Context(), ctxutil.UserID(c.Request.Context()), responseID, req)
	if err != nil {
		response.RespondError(c, submitStatus(err), "submit_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (h *ResponseHandler) Progress(c *gin.Context) {
	responseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	progress, err := h.responseService.Progress(c.Request.Context(), ctxutil.UserID(c.Request.Context()), responseID)
	if err != nil {
		response.RespondError(c, submitStatus(err), "progress_failed", err)
		return
	}
	response.RespondOK(c, progress)
}

func (h *ResponseHandler) ListResponses(c *gin.Context) {
	rows, err := h.responseService.ListForUser(c.Request.Context(), ctxutil.UserID(c.Request.Context()))
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"responses": rows})
}

func submitStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrResponseNotFound), errors.Is(err, services.ErrTopicNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrNotResponseOwner):
		return http.StatusForbidden
	case errors.Is(err, services.ErrResponseNotEditable):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
