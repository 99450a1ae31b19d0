package db

import (
	"gorm.io/gorm"

	types "github.com/yungbote/maturitypath-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(

		// Identity + auth
		&types.User{},
		&types.UserToken{},

		// Catalog hierarchy (read-only to the engine)
		&types.Assessment{},
		&types.Dimension{},
		&types.Topic{},
		&types.RecommendationRule{},

		// Per-user responses + engine output
		&types.AssessmentResponse{},
		&types.TopicResponse{},
		&types.ComputedPriority{},
	)
}
