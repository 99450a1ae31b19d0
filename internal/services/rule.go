package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/maturitypath-backend/internal/data/repos/assessment"
	types "github.com/yungbote/maturitypath-backend/internal/domain"
	"github.com/yungbote/maturitypath-backend/internal/pkg/dbctx"
	"github.com/yungbote/maturitypath-backend/internal/platform/logger"
)

var ErrRuleNotFound = fmt.Errorf("recommendation rule not found")

type RuleService interface {
	CreateRule(ctx context.Context, rule *types.RecommendationRule) (*types.RecommendationRule, error)
	UpdateRule(ctx context.Context, rule *types.RecommendationRule) (*types.RecommendationRule, error)
	GetRule(ctx context.Context, ruleID uuid.UUID) (*types.RecommendationRule, error)
	ListByTopic(ctx context.Context, topicID uuid.UUID) ([]*types.RecommendationRule, error)
	DeleteRule(ctx context.Context, ruleID uuid.UUID) error
}

type ruleService struct {
	db  *gorm.DB
	log *logger.Logger

	rules  assessment.RecommendationRuleRepo
	topics assessment.TopicRepo
}

func NewRuleService(
	db *gorm.DB,
	baseLog *logger.Logger,
	rules assessment.RecommendationRuleRepo,
	topics assessment.TopicRepo,
) RuleService {
	return &ruleService{
		db:     db,
		log:    baseLog.With("service", "RuleService"),
		rules:  rules,
		topics: topics,
	}
}

func (s *ruleService) CreateRule(ctx context.Context, rule *types.RecommendationRule) (*types.RecommendationRule, error) {
	if err := s.validate(ctx, rule); err != nil {
		return nil, err
	}
	rule.ID = uuid.New()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.rules.Create(dbctx.Context{Ctx: ctx, Tx: tx}, []*types.RecommendationRule{rule})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create rule: %w", err)
	}
	s.log.Info("created recommendation rule", "rule_id", rule.ID.String(), "topic_id", rule.TopicID.String())
	return rule, nil
}

func (s *ruleService) UpdateRule(ctx context.Context, rule *types.RecommendationRule) (*types.RecommendationRule, error) {
	if rule.ID == uuid.Nil {
		return nil, ErrRuleNotFound
	}
	if err := s.validate(ctx, rule); err != nil {
		return nil, err
	}
	existing, err := s.rules.GetByIDs(dbctx.Context{Ctx: ctx}, []uuid.UUID{rule.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to load rule: %w", err)
	}
	if len(existing) == 0 {
		return nil, ErrRuleNotFound
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.rules.Update(dbctx.Context{Ctx: ctx, Tx: tx}, rule)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update rule: %w", err)
	}
	return rule, nil
}

func (s *ruleService) GetRule(ctx context.Context, ruleID uuid.UUID) (*types.RecommendationRule, error) {
	rows, err := s.rules.GetByIDs(dbctx.Context{Ctx: ctx}, []uuid.UUID{ruleID})
	if err != nil {
		return nil, fmt.Errorf("failed to load rule: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrRuleNotFound
	}
	return rows[0], nil
}

func (s *ruleService) ListByTopic(ctx context.Context, topicID uuid.UUID) ([]*types.RecommendationRule, error) {
	return s.rules.GetByTopicID(dbctx.Context{Ctx: ctx}, topicID)
}

func (s *ruleService) DeleteRule(ctx context.Context, ruleID uuid.UUID) error {
	existing, err := s.rules.GetByIDs(dbctx.Context{Ctx: ctx}, []uuid.UUID{ruleID})
	if err != nil {
		return fmt.Errorf("failed to load rule: %w", err)
	}
	if len(existing) == 0 {
		return ErrRuleNotFound
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.rules.SoftDeleteByIDs(dbctx.Context{Ctx: ctx, Tx: tx}, []uuid.UUID{ruleID})
	})
}

func (s *ruleService) validate(ctx context.Context, rule *types.RecommendationRule) error {
	if strings.TrimSpace(rule.Title) == "" {
		return fmt.Errorf("title is required")
	}
	switch rule.Category {
	case types.RuleCategoryQuickWin, types.RuleCategoryProject, types.RuleCategoryBigBet:
	default:
		return fmt.Errorf("category must be one of quick_win, project, big_bet")
	}
	if rule.Priority < 0 {
		return fmt.Errorf("priority must not be negative")
	}
	if err := boundPair("score", rule.ScoreMin, rule.ScoreMax); err != nil {
		return err
	}
	if err := boundPair("target", rule.TargetMin, rule.TargetMax); err != nil {
		return err
	}
	if err := boundPair("gap", rule.GapMin, rule.GapMax); err != nil {
		return err
	}

	topicRows, err := s.topics.GetByIDs(dbctx.Context{Ctx: ctx}, []uuid.UUID{rule.TopicID})
	if err != nil {
		return fmt.Errorf("failed to load topic: %w", err)
	}
	if len(topicRows) == 0 {
		return ErrTopicNotFound
	}
	return nil
}

func boundPair(name string, min, max *float64) error {
	if min != nil && max != nil && *min > *max {
		return fmt.Errorf("%s_min must not exceed %s_max", name, name)
	}
	return nil
}
