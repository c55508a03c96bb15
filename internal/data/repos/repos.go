package repos

import (
	"gorm.io/gorm"

	"github.com/claon/claon-admin/internal/data/repos/center"
	"github.com/claon/claon-admin/internal/data/repos/post"
	"github.com/claon/claon-admin/internal/data/repos/review"
	"github.com/claon/claon-admin/internal/data/repos/schedule"
	"github.com/claon/claon-admin/internal/data/repos/user"
	"github.com/claon/claon-admin/internal/platform/logger"
)

type UserRepo = user.UserRepo

type CenterRepo = center.CenterRepo
type CenterHoldRepo = center.CenterHoldRepo
type CenterWallRepo = center.CenterWallRepo
type CenterApprovedFileRepo = center.CenterApprovedFileRepo

type PostRepo = post.PostRepo
type CenterPostQuery = post.CenterPostQuery

type ReviewRepo = review.ReviewRepo
type ReviewAnswerRepo = review.ReviewAnswerRepo
type CenterReviewQuery = review.CenterReviewQuery
type ReviewCounts = review.ReviewCounts
type TagCount = review.TagCount

type ScheduleRepo = schedule.ScheduleRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return user.NewUserRepo(db, baseLog)
}

func NewCenterRepo(db *gorm.DB, baseLog *logger.Logger) CenterRepo {
	return center.NewCenterRepo(db, baseLog)
}

func NewCenterHoldRepo(db *gorm.DB, baseLog *logger.Logger) CenterHoldRepo {
	return center.NewCenterHoldRepo(db, baseLog)
}

func NewCenterWallRepo(db *gorm.DB, baseLog *logger.Logger) CenterWallRepo {
	return center.NewCenterWallRepo(db, baseLog)
}

func NewCenterApprovedFileRepo(db *gorm.DB, baseLog *logger.Logger) CenterApprovedFileRepo {
	return center.NewCenterApprovedFileRepo(db, baseLog)
}

func NewPostRepo(db *gorm.DB, baseLog *logger.Logger) PostRepo {
	return post.NewPostRepo(db, baseLog)
}

func NewReviewRepo(db *gorm.DB, baseLog *logger.Logger) ReviewRepo {
	return review.NewReviewRepo(db, baseLog)
}

func NewReviewAnswerRepo(db *gorm.DB, baseLog *logger.Logger) ReviewAnswerRepo {
	return review.NewReviewAnswerRepo(db, baseLog)
}

func NewScheduleRepo(db *gorm.DB, baseLog *logger.Logger) ScheduleRepo {
	return schedule.NewScheduleRepo(db, baseLog)
}
