package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ResponseStatusInProgress = "in_progress"
	ResponseStatusCompleted  = "completed"
)

// AssessmentResponse is one user's run through an assessment. The scoring
// engine owns its status and overall-score fields; everything else is written
// by the capture flow.
type AssessmentResponse struct {
	ID           uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	User         *User       `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	AssessmentID uuid.UUID   `gorm:"type:uuid;not null;index" json:"assessment_id"`
	Assessment   *Assessment `gorm:"constraint:OnDelete:CASCADE;foreignKey:AssessmentID;references:ID" json:"assessment,omitempty"`

	Status       string     `gorm:"column:status;not null;default:'in_progress';index" json:"status"`
	OverallScore float64    `gorm:"column:overall_score;not null;default:0" json:"overall_score"`
	OverallGap   float64    `gorm:"column:overall_gap;not null;default:0" json:"overall_gap"`
	StartedAt    time.Time  `gorm:"column:started_at;not null;default:now()" json:"started_at"`
	CompletedAt  *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (AssessmentResponse) TableName() string { return "assessment_response" }

// TopicResponse holds the validated current/target ratings for one topic of one
// response. Ratings live in [1,5] at 0.5 increments; the gap is derived at
// scoring time, never stored.
type TopicResponse struct {
	ID         uuid.UUID           `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ResponseID uuid.UUID           `gorm:"type:uuid;not null;index;index:idx_topic_response_key,unique,priority:1" json:"response_id"`
	Response   *AssessmentResponse `gorm:"constraint:OnDelete:CASCADE;foreignKey:ResponseID;references:ID" json:"response,omitempty"`
	TopicID    uuid.UUID           `gorm:"type:uuid;not null;index;index:idx_topic_response_key,unique,priority:2" json:"topic_id"`
	Topic      *Topic              `gorm:"constraint:OnDelete:CASCADE;foreignKey:TopicID;references:ID" json:"topic,omitempty"`

	CurrentRating    float64 `gorm:"column:current_rating;not null" json:"current_rating"`
	TargetRating     float64 `gorm:"column:target_rating;not null" json:"target_rating"`
	TimeSpentSeconds int     `gorm:"column:time_spent_seconds;not null;default:0" json:"time_spent_seconds"`
	Notes            string  `gorm:"column:notes;type:text" json:"notes,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (TopicResponse) TableName() string { return "topic_response" }
