package app

import (
	httpMW "github.com/yungbote/maturitypath-backend/internal/http/middleware"
	"github.com/yungbote/maturitypath-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

func wireMiddleware(log *logger.Logger, svcs Services) Middleware {
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, svcs.Auth),
	}
}
