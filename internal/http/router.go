package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/claon/claon-admin/internal/http/handlers"
	httpMW "github.com/claon/claon-admin/internal/http/middleware"
	"github.com/claon/claon-admin/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	ServiceName    string
	AllowedOrigins []string

	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler   *httpH.HealthHandler
	AuthHandler     *httpH.AuthHandler
	CenterHandler   *httpH.CenterHandler
	PostHandler     *httpH.PostHandler
	ReviewHandler   *httpH.ReviewHandler
	ScheduleHandler *httpH.ScheduleHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api/v1")

	// Public
	if cfg.AuthHandler != nil {
		api.GET("/auth/nickname/:nickname/is-duplicated", cfg.AuthHandler.IsDuplicatedNickname)
	}
	if cfg.CenterHandler != nil {
		api.GET("/centers/name/:name", cfg.CenterHandler.FindCentersByName)
	}

	if cfg.AuthMiddleware == nil {
		return r
	}

	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	if cfg.AuthHandler != nil {
		protected.POST("/auth/center/sign-up", cfg.AuthHandler.CenterSignUp)
	}

	admin := protected.Group("/centers")
	admin.Use(cfg.AuthMiddleware.RequireCenterAdmin())
	{
		if cfg.CenterHandler != nil {
			admin.GET("", cfg.CenterHandler.FindCenters)
			admin.POST("", cfg.CenterHandler.Create)
			admin.POST("/upload/:purpose", cfg.CenterHandler.Upload)
			admin.GET("/:center_id", cfg.CenterHandler.FindByID)
			admin.PUT("/:center_id", cfg.CenterHandler.Update)
			admin.DELETE("/:center_id", cfg.CenterHandler.Delete)
			admin.GET("/:center_id/fees", cfg.CenterHandler.FindCenterFees)
			admin.PUT("/:center_id/fees", cfg.CenterHandler.UpdateCenterFees)
		}

		if cfg.PostHandler != nil {
			admin.GET("/:center_id/posts", cfg.PostHandler.FindPostsByCenter)
			admin.GET("/:center_id/posts/summary", cfg.PostHandler.FindPostsSummaryByCenter)
		}

		if cfg.ReviewHandler != nil {
			admin.GET("/:center_id/reviews", cfg.ReviewHandler.FindReviewsByCenter)
			admin.GET("/:center_id/reviews/summary", cfg.ReviewHandler.FindReviewsSummaryByCenter)
			admin.POST("/:center_id/reviews/:review_id/answer", cfg.ReviewHandler.CreateReviewAnswer)
			admin.PUT("/:center_id/reviews/:review_id/answer", cfg.ReviewHandler.UpdateReviewAnswer)
			admin.DELETE("/:center_id/reviews/:review_id/answer", cfg.ReviewHandler.DeleteReviewAnswer)
		}

		if cfg.ScheduleHandler != nil {
			admin.GET("/:center_id/schedules", cfg.ScheduleHandler.FindSchedulesByCenter)
			admin.POST("/:center_id/schedules", cfg.ScheduleHandler.CreateSchedule)
			admin.GET("/:center_id/schedules/:schedule_id", cfg.ScheduleHandler.FindSchedule)
			admin.PUT("/:center_id/schedules/:schedule_id", cfg.ScheduleHandler.UpdateSchedule)
			admin.DELETE("/:center_id/schedules/:schedule_id", cfg.ScheduleHandler.DeleteSchedule)
		}
	}

	return r
}
