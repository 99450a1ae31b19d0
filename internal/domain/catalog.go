package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Assessment is the root of the catalog hierarchy: an ordered set of dimensions,
// each an ordered set of topics. The catalog is read-only to the scoring engine.
type Assessment struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Key         string    `gorm:"column:key;not null;uniqueIndex" json:"key"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description,omitempty"`
	OrderIndex  int       `gorm:"column:order_index;not null;default:0" json:"order_index"`

	Dimensions []*Dimension `gorm:"foreignKey:AssessmentID;references:ID" json:"dimensions,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Assessment) TableName() string { return "assessment" }

type Dimension struct {
	ID           uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AssessmentID uuid.UUID   `gorm:"type:uuid;not null;index;index:idx_dimension_assessment_key,unique,priority:1" json:"assessment_id"`
	Assessment   *Assessment `gorm:"constraint:OnDelete:CASCADE;foreignKey:AssessmentID;references:ID" json:"assessment,omitempty"`
	Key          string      `gorm:"column:key;not null;index:idx_dimension_assessment_key,unique,priority:2" json:"key"`
	Title        string      `gorm:"column:title;not null" json:"title"`
	Category     string      `gorm:"column:category" json:"category,omitempty"`
	OrderIndex   int         `gorm:"column:order_index;not null;default:0" json:"order_index"`

	Topics []*Topic `gorm:"foreignKey:DimensionID;references:ID" json:"topics,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Dimension) TableName() string { return "dimension" }

type Topic struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	DimensionID uuid.UUID  `gorm:"type:uuid;not null;index;index:idx_topic_dimension_key,unique,priority:1" json:"dimension_id"`
	Dimension   *Dimension `gorm:"constraint:OnDelete:CASCADE;foreignKey:DimensionID;references:ID" json:"dimension,omitempty"`
	Key         string     `gorm:"column:key;not null;index:idx_topic_dimension_key,unique,priority:2" json:"key"`
	Title       string     `gorm:"column:title;not null" json:"title"`
	OrderIndex  int        `gorm:"column:order_index;not null;default:0" json:"order_index"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Topic) TableName() string { return "topic" }
