package app

import (
	"gorm.io/gorm"

	assessmentrepo "github.com/yungbote/maturitypath-backend/internal/data/repos/assessment"
	userrepo "github.com/yungbote/maturitypath-backend/internal/data/repos/user"
	"github.com/yungbote/maturitypath-backend/internal/platform/logger"
)

type Repos struct {
	User      userrepo.UserRepo
	UserToken userrepo.UserTokenRepo

	Assessment       assessmentrepo.AssessmentRepo
	Dimension        assessmentrepo.DimensionRepo
	Topic            assessmentrepo.TopicRepo
	Response         assessmentrepo.AssessmentResponseRepo
	TopicResponse    assessmentrepo.TopicResponseRepo
	Rule             assessmentrepo.RecommendationRuleRepo
	ComputedPriority assessmentrepo.ComputedPriorityRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("wiring repos")
	return Repos{
		User:      userrepo.NewUserRepo(db, log),
		UserToken: userrepo.NewUserTokenRepo(db, log),

		Assessment:       assessmentrepo.NewAssessmentRepo(db, log),
		Dimension:        assessmentrepo.NewDimensionRepo(db, log),
		Topic:            assessmentrepo.NewTopicRepo(db, log),
		Response:         assessmentrepo.NewAssessmentResponseRepo(db, log),
		TopicResponse:    assessmentrepo.NewTopicResponseRepo(db, log),
		Rule:             assessmentrepo.NewRecommendationRuleRepo(db, log),
		ComputedPriority: assessmentrepo.NewComputedPriorityRepo(db, log),
	}
}
