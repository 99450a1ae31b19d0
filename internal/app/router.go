package app

import (
	apphttp "github.com/yungbote/maturitypath-backend/internal/http"
	"github.com/yungbote/maturitypath-backend/internal/platform/logger"
)

func wireServer(log *logger.Logger, handlers Handlers, mw Middleware) *apphttp.Server {
	return apphttp.NewServer(apphttp.RouterConfig{
		Log: log,

		AuthHandler:    handlers.Auth,
		AuthMiddleware: mw.Auth,

		UserHandler:       handlers.User,
		AssessmentHandler: handlers.Assessment,
		ResponseHandler:   handlers.Response,
		ResultsHandler:    handlers.Results,
		ExportHandler:     handlers.Export,
		RuleHandler:       handlers.Rule,

		HealthHandler: handlers.Health,
	})
}
