package app

import (
	"github.com/claon/claon-admin/internal/http"
	httpH "github.com/claon/claon-admin/internal/http/handlers"
	httpMW "github.com/claon/claon-admin/internal/http/middleware"
	"github.com/claon/claon-admin/internal/platform/logger"
	"github.com/claon/claon-admin/internal/platform/pagination"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health   *httpH.HealthHandler
	Auth     *httpH.AuthHandler
	Center   *httpH.CenterHandler
	Post     *httpH.PostHandler
	Review   *httpH.ReviewHandler
	Schedule *httpH.ScheduleHandler
}

func wireHandlers(log *logger.Logger, cfg Config, services Services, pinger httpH.Pinger) Handlers {
	log.Info("Wiring handlers...")
	pages := pagination.NewFactory(cfg.DefaultPageSize, cfg.MaxPageSize)
	return Handlers{
		Health:   httpH.NewHealthHandler(pinger),
		Auth:     httpH.NewAuthHandler(services.User),
		Center:   httpH.NewCenterHandler(services.Center, services.Upload, pages),
		Post:     httpH.NewPostHandler(services.Post, pages),
		Review:   httpH.NewReviewHandler(services.Review, pages),
		Schedule: httpH.NewScheduleHandler(services.Schedule, pages),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware) *http.Server {
	return http.NewServer(http.RouterConfig{
		Log:             log,
		ServiceName:     cfg.tracingServiceName(),
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		AuthMiddleware:  middleware.Auth,
		HealthHandler:   handlers.Health,
		AuthHandler:     handlers.Auth,
		CenterHandler:   handlers.Center,
		PostHandler:     handlers.Post,
		ReviewHandler:   handlers.Review,
		ScheduleHandler: handlers.Schedule,
	})
}
