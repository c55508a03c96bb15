package app

import (
	"gorm.io/gorm"

	"github.com/claon/claon-admin/internal/data/aggregates"
	"github.com/claon/claon-admin/internal/platform/cache"
	"github.com/claon/claon-admin/internal/platform/gcp"
	"github.com/claon/claon-admin/internal/platform/logger"
	"github.com/claon/claon-admin/internal/services"
)

type Services struct {
	Auth     services.AuthService
	User     services.UserService
	Center   services.CenterService
	Upload   services.UploadService
	Post     services.PostService
	Review   services.ReviewService
	Schedule services.ScheduleService
}

// Clients holds the optional backends. A nil Cache disables the center-name
// cache; a nil Bucket makes uploads answer 503.
type Clients struct {
	Cache  cache.Store
	Bucket gcp.BucketService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, clients Clients) Services {
	log.Info("Wiring services...")

	centerAggregate := aggregates.NewCenterAggregate(aggregates.CenterAggregateDeps{
		Base: aggregates.BaseDeps{
			DB:     db,
			Log:    log,
			Runner: aggregates.NewGormTxRunner(db),
			Hooks:  aggregates.NewLogHooks(log),
		},
		Users:         reposet.User,
		Centers:       reposet.Center,
		Holds:         reposet.CenterHold,
		Walls:         reposet.CenterWall,
		ApprovedFiles: reposet.ApprovedFile,
		Schedules:     reposet.Schedule,
	})

	return Services{
		Auth:     services.NewAuthService(log, cfg.JWTSecretKey, cfg.AccessTokenTTL),
		User:     services.NewUserService(log, reposet.User, centerAggregate),
		Center:   services.NewCenterService(log, reposet.Center, centerAggregate, clients.Cache, cfg.CenterNameCacheTTL),
		Upload:   services.NewUploadService(log, clients.Bucket),
		Post:     services.NewPostService(reposet.Center, reposet.Post),
		Review:   services.NewReviewService(log, reposet.Center, reposet.Review, reposet.ReviewAnswer),
		Schedule: services.NewScheduleService(log, reposet.Center, reposet.Schedule),
	}
}
