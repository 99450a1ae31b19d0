package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/yungbote/maturitypath-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  "pw",
		FirstName: "A",
		LastName:  "B",
		Role:      types.RoleMember,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedAssessment(tb testing.TB, ctx context.Context, tx *gorm.DB, key string) *types.Assessment {
	tb.Helper()
	a := &types.Assessment{
		ID:    uuid.New(),
		Key:   key,
		Title: "assessment",
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed assessment: %v", err)
	}
	return a
}

func SeedDimension(tb testing.TB, ctx context.Context, tx *gorm.DB, assessmentID uuid.UUID, key string, orderIndex int) *types.Dimension {
	tb.Helper()
	d := &types.Dimension{
		ID:           uuid.New(),
		AssessmentID: assessmentID,
		Key:          key,
		Title:        "dimension",
		OrderIndex:   orderIndex,
	}
	if err := tx.WithContext(ctx).Create(d).Error; err != nil {
		tb.Fatalf("seed dimension: %v", err)
	}
	return d
}

func SeedTopic(tb testing.TB, ctx context.Context, tx *gorm.DB, dimensionID uuid.UUID, key string, orderIndex int) *types.Topic {
	tb.Helper()
	tp := &types.Topic{
		ID:          uuid.New(),
		DimensionID: dimensionID,
		Key:         key,
		Title:       "topic",
		OrderIndex:  orderIndex,
	}
	if err := tx.WithContext(ctx).Create(tp).Error; err != nil {
		tb.Fatalf("seed topic: %v", err)
	}
	return tp
}

func SeedResponse(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, assessmentID uuid.UUID) *types.AssessmentResponse {
	tb.Helper()
	resp := &types.AssessmentResponse{
		ID:           uuid.New(),
		UserID:       userID,
		AssessmentID: assessmentID,
		Status:       types.ResponseStatusInProgress,
	}
	if err := tx.WithContext(ctx).Create(resp).Error; err != nil {
		tb.Fatalf("seed response: %v", err)
	}
	return resp
}

func SeedTopicResponse(tb testing.TB, ctx context.Context, tx *gorm.DB, responseID, topicID uuid.UUID, current, target float64) *types.TopicResponse {
	tb.Helper()
	tr := &types.TopicResponse{
		ID:            uuid.New(),
		ResponseID:    responseID,
		TopicID:       topicID,
		CurrentRating: current,
		TargetRating:  target,
	}
	if err := tx.WithContext(ctx).Create(tr).Error; err != nil {
		tb.Fatalf("seed topic response: %v", err)
	}
	return tr
}

func SeedRule(tb testing.TB, ctx context.Context, tx *gorm.DB, topicID uuid.UUID, priority int, mut func(*types.RecommendationRule)) *types.RecommendationRule {
	tb.Helper()
	r := &types.RecommendationRule{
		ID:          uuid.New(),
		TopicID:     topicID,
		Title:       "rule",
		ActionItems: datatypes.JSON([]byte(`[]`)),
		Category:    types.RuleCategoryProject,
		Priority:    priority,
		Active:      true,
	}
	if mut != nil {
		mut(r)
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed rule: %v", err)
	}
	return r
}

func Ptr(v float64) *float64 { return &v }
