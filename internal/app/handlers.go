package app

import (
	httpH "github.com/yungbote/maturitypath-backend/internal/http/handlers"
	"github.com/yungbote/maturitypath-backend/internal/platform/logger"
)

type Handlers struct {
	Health     *httpH.HealthHandler
	Auth       *httpH.AuthHandler
	User       *httpH.UserHandler
	Assessment *httpH.AssessmentHandler
	Response   *httpH.ResponseHandler
	Results    *httpH.ResultsHandler
	Export     *httpH.ExportHandler
	Rule       *httpH.RuleHandler
}

func wireHandlers(log *logger.Logger, svcs Services) Handlers {
	log.Info("wiring handlers")
	return Handlers{
		Health:     httpH.NewHealthHandler(),
		Auth:       httpH.NewAuthHandler(svcs.Auth),
		User:       httpH.NewUserHandler(svcs.User),
		Assessment: httpH.NewAssessmentHandler(svcs.Catalog),
		Response:   httpH.NewResponseHandler(svcs.Response),
		Results:    httpH.NewResultsHandler(svcs.Results, svcs.Response),
		Export:     httpH.NewExportHandler(svcs.Export, svcs.Response),
		Rule:       httpH.NewRuleHandler(svcs.Rule),
	}
}
