package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/maturitypath-backend/internal/platform/logger"
	"github.com/yungbote/maturitypath-backend/internal/services"
)

type Services struct {
	Auth     services.AuthService
	User     services.UserService
	Catalog  services.CatalogService
	Response services.ResponseService
	Results  services.ResultsService
	Export   services.ExportService
	Rule     services.RuleService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos) Services {
	log.Info("wiring services")

	authService := services.NewAuthService(
		db, log,
		repos.User,
		repos.UserToken,
		cfg.JWTSecretKey,
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
	)
	userService := services.NewUserService(db, log, repos.User)
	catalogService := services.NewCatalogService(db, log, repos.Assessment, repos.Dimension, repos.Topic)
	responseService := services.NewResponseService(db, log, repos.Assessment, repos.Topic, repos.Response, repos.TopicResponse)
	resultsService := services.NewResultsService(
		db, log,
		repos.Response,
		repos.TopicResponse,
		repos.Dimension,
		repos.Topic,
		repos.Rule,
		repos.ComputedPriority,
	)
	exportService := services.NewExportService(log, resultsService)
	ruleService := services.NewRuleService(db, log, repos.Rule, repos.Topic)

	return Services{
		Auth:     authService,
		User:     userService,
		Catalog:  catalogService,
		Response: responseService,
		Results:  resultsService,
		Export:   exportService,
		Rule:     ruleService,
	}
}
