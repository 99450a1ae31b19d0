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

type ResultsHandler struct {
	resultsService  services.ResultsService
	responseService services.ResponseService
}

func NewResultsHandler(resultsService services.ResultsService, responseService services.ResponseService) *ResultsHandler {
	return &ResultsHandler{resultsService: resultsService, responseService: responseService}
}

func (h *ResultsHandler) ComputeResults(c *gin.Context) {
	responseID, ok := h.ownedResponseID(c)
	if !ok {
		return
	}
	view, err := h.resultsService.ComputeResults(c.Request.Context(), responseID)
	if err != nil {
		response.RespondError(c, resultsStatus(err), "compute_failed", err)
		return
	}
	response.RespondOK(c, view)
}

func (h *ResultsHandler) GetResults(c *gin.Context) {
	responseID, ok := h.ownedResponseID(c)
	if !ok {
		return
	}
	view, err := h.resultsService.GetResults(c.Request.Context(), responseID)
	if err != nil {
		response.RespondError(c, resultsStatus(err), "results_failed", err)
		return
	}
	response.RespondOK(c, view)
}

func (h *ResultsHandler) ownedResponseID(c *gin.Context) (uuid.UUID, bool) {
	responseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return uuid.Nil, false
	}
	if _, err := h.responseService.GetResponse(c.Request.Context(), ctxutil.UserID(c.Request.Context()), responseID); err != nil {
		response.RespondError(c, submitStatus(err), "response_not_found", err)
		return uuid.Nil, false
	}
	return responseID, true
}

func resultsStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrResponseNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrResultsNotComputed):
		return http.StatusNotFound
	case errors.Is(err, services.ErrResponseIncomplete):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
