package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/yungbote/maturitypath-backend/internal/domain"
	"github.com/yungbote/maturitypath-backend/internal/http/response"
	"github.com/yungbote/maturitypath-backend/internal/services"
)

type RuleHandler struct {
	ruleService services.RuleService
}

func NewRuleHandler(ruleService services.RuleService) *RuleHandler {
	return &RuleHandler{ruleService: ruleService}
}

func (h *RuleHandler) CreateRule(c *gin.Context) {
	var rule types.RecommendationRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := h.ruleService.CreateRule(c.Request.Context(), &rule)
	if err != nil {
		response.RespondError(c, ruleStatus(err), "create_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"rule": created})
}

func (h *RuleHandler) UpdateRule(c *gin.Context) {
	ruleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var rule types.RecommendationRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	rule.ID = ruleID
	updated, err := h.ruleService.UpdateRule(c.Request.Context(), &rule)
	if err != nil {
		response.RespondError(c, ruleStatus(err), "update_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"rule": updated})
}

func (h *RuleHandler) GetRule(c *gin.Context) {
	ruleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	rule, err := h.ruleService.GetRule(c.Request.Context(), ruleID)
	if err != nil {
		response.RespondError(c, ruleStatus(err), "rule_not_found", err)
		return
	}
	response.RespondOK(c, gin.H{"rule": rule})
}

func (h *RuleHandler) ListTopicRules(c *gin.Context) {
	topicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	rules, err := h.ruleService.ListByTopic(c.Request.Context(), topicID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"rules": rules})
}

func (h *RuleHandler) DeleteRule(c *gin.Context) {
	ruleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := h.ruleService.DeleteRule(c.Request.Context(), ruleID); err != nil {
		response.RespondError(c, ruleStatus(err), "delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func ruleStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrRuleNotFound), errors.Is(err, services.ErrTopicNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
