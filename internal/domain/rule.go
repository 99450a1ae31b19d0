package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RuleCategoryQuickWin = "quick_win"
	RuleCategoryProject  = "project"
	RuleCategoryBigBet   = "big_bet"
)

// RecommendationRule is a conditional suggestion keyed to a topic. Each of the
// six bounds is optional; a nil bound never excludes a match. Bounds are
// inclusive on both ends.
type RecommendationRule struct {
	ID      uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TopicID uuid.UUID `gorm:"type:uuid;not null;index" json:"topic_id"`
	Topic   *Topic    `gorm:"constraint:OnDelete:CASCADE;foreignKey:TopicID;references:ID" json:"topic,omitempty"`

	ScoreMin  *float64 `gorm:"column:score_min" json:"score_min,omitempty"`
	ScoreMax  *float64 `gorm:"column:score_max" json:"score_max,omitempty"`
	TargetMin *float64 `gorm:"column:target_min" json:"target_min,omitempty"`
	TargetMax *float64 `gorm:"column:target_max" json:"target_max,omitempty"`
	GapMin    *float64 `gorm:"column:gap_min" json:"gap_min,omitempty"`
	GapMax    *float64 `gorm:"column:gap_max" json:"gap_max,omitempty"`

	Title       string `gorm:"column:title;not null" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description,omitempty"`
	Why         string `gorm:"column:why;type:text" json:"why,omitempty"`
	What        string `gorm:"column:what;type:text" json:"what,omitempty"`
	How         string `gorm:"column:how;type:text" json:"how,omitempty"`

	ActionItems datatypes.JSON `gorm:"column:action_items;type:jsonb" json:"action_items"`
	Category    string         `gorm:"column:category;not null;default:'project'" json:"category"`
	Priority    int            `gorm:"column:priority;not null;default:0" json:"priority"`
	Tags        datatypes.JSON `gorm:"column:tags;type:jsonb" json:"tags,omitempty"`
	Active      bool           `gorm:"column:active;not null;default:true;index" json:"active"`
	OrderIndex  int            `gorm:"column:order_index;not null;default:0" json:"order_index"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (RecommendationRule) TableName() string { return "recommendation_rule" }
