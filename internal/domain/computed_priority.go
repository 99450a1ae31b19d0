package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ComputedPriority is the persisted result of scoring one dimension for one
// response: aggregate score/gap, the dimension's rank among its siblings, and a
// snapshot of the matched recommendations materialized at computation time.
// Exactly one row per (response, dimension); recomputation upserts by that key.
//
// No DeletedAt: rows are replaced wholesale on every recompute, never
// soft-deleted.
type ComputedPriority struct {
	ID          uuid.UUID           `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ResponseID  uuid.UUID           `gorm:"type:uuid;not null;index;index:idx_computed_priority_key,unique,priority:1" json:"response_id"`
	Response    *AssessmentResponse `gorm:"constraint:OnDelete:CASCADE;foreignKey:ResponseID;references:ID" json:"response,omitempty"`
	DimensionID uuid.UUID           `gorm:"type:uuid;not null;index;index:idx_computed_priority_key,unique,priority:2" json:"dimension_id"`
	Dimension   *Dimension          `gorm:"constraint:OnDelete:CASCADE;foreignKey:DimensionID;references:ID" json:"dimension,omitempty"`

	DimensionScore float64 `gorm:"column:dimension_score;not null;default:0" json:"dimension_score"`
	DimensionGap   float64 `gorm:"column:dimension_gap;not null;default:0" json:"dimension_gap"`
	PriorityScore  float64 `gorm:"column:priority_score;not null;default:0" json:"priority_score"`
	RankOrder      int     `gorm:"column:rank_order;not null;default:0" json:"rank_order"`

	// Serialized []scoring.RecommendationSnapshot, written only by the persister.
	Recommendations datatypes.JSON `gorm:"column:recommendations;type:jsonb" json:"recommendations"`

	ComputedAt time.Time `gorm:"column:computed_at;not null;default:now()" json:"computed_at"`
	CreatedAt  time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (ComputedPriority) TableName() string { return "computed_priority" }
