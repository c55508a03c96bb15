package app

import (
	"gorm.io/gorm"

	"github.com/claon/claon-admin/internal/data/repos"
	"github.com/claon/claon-admin/internal/platform/logger"
)

type Repos struct {
	User         repos.UserRepo
	Center       repos.CenterRepo
	CenterHold   repos.CenterHoldRepo
	CenterWall   repos.CenterWallRepo
	ApprovedFile repos.CenterApprovedFileRepo
	Post         repos.PostRepo
	Review       repos.ReviewRepo
	ReviewAnswer repos.ReviewAnswerRepo
	Schedule     repos.ScheduleRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:         repos.NewUserRepo(db, log),
		Center:       repos.NewCenterRepo(db, log),
		CenterHold:   repos.NewCenterHoldRepo(db, log),
		CenterWall:   repos.NewCenterWallRepo(db, log),
		ApprovedFile: repos.NewCenterApprovedFileRepo(db, log),
		Post:         repos.NewPostRepo(db, log),
		Review:       repos.NewReviewRepo(db, log),
		ReviewAnswer: repos.NewReviewAnswerRepo(db, log),
		Schedule:     repos.NewScheduleRepo(db, log),
	}
}
