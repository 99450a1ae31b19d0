package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/maturitypath-backend/internal/http/handlers"
	httpMW "github.com/yungbote/maturitypath-backend/internal/http/middleware"
	"github.com/yungbote/maturitypath-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthHandler    *httpH.AuthHandler
	AuthMiddleware *httpMW.AuthMiddleware

	UserHandler       *httpH.UserHandler
	AssessmentHandler *httpH.AssessmentHandler
	ResponseHandler   *httpH.ResponseHandler
	ResultsHandler    *httpH.ResultsHandler
	ExportHandler     *httpH.ExportHandler
	RuleHandler       *httpH.RuleHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("maturitypath"))
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/register", cfg.AuthHandler.Register)
			api.POST("/login", cfg.AuthHandler.Login)
			api.POST("/refresh", cfg.AuthHandler.Refresh)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Auth (protected)
		if cfg.AuthHandler != nil {
			protected.POST("/logout", cfg.AuthHandler.Logout)
		}

		// User (Me)
		if cfg.UserHandler != nil {
			protected.GET("/me", cfg.UserHandler.GetMe)
			protected.PATCH("/me", cfg.UserHandler.UpdateName)
		}

		// Assessment catalog
		if cfg.AssessmentHandler != nil {
			protected.GET("/assessments", cfg.AssessmentHandler.ListAssessments)
			protected.GET("/assessments/:id", cfg.AssessmentHandler.GetAssessment)
		}

		// Response capture
		if cfg.ResponseHandler != nil {
			protected.POST("/responses", cfg.ResponseHandler.StartResponse)
			protected.GET("/responses", cfg.ResponseHandler.ListResponses)
			protected.PUT("/responses/:id/answers", cfg.ResponseHandler.SubmitAnswer)
			protected.GET("/responses/:id/progress", cfg.ResponseHandler.Progress)
		}

		// Results
		if cfg.ResultsHandler != nil {
			protected.POST("/responses/:id/results", cfg.ResultsHandler.ComputeResults)
			protected.GET("/responses/:id/results", cfg.ResultsHandler.GetResults)
		}
		if cfg.ExportHandler != nil {
			protected.GET("/responses/:id/results.csv", cfg.ExportHandler.ExportResultsCSV)
		}

		// Rule catalog (read for all authenticated users)
		if cfg.RuleHandler != nil {
			protected.GET("/topics/:id/rules", cfg.RuleHandler.ListTopicRules)
			protected.GET("/rules/:id", cfg.RuleHandler.GetRule)
		}

		// Rule catalog management (admin)
		if cfg.RuleHandler != nil && cfg.AuthMiddleware != nil {
			admin := protected.Group("/")
			admin.Use(cfg.AuthMiddleware.RequireAdmin())
			admin.POST("/rules", cfg.RuleHandler.CreateRule)
			admin.PUT("/rules/:id", cfg.RuleHandler.UpdateRule)
			admin.DELETE("/rules/:id", cfg.RuleHandler.DeleteRule)
		}
	}

	return r
}
