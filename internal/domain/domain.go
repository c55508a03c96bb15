package domain

import (
	"github.com/claon/claon-admin/internal/domain/center"
	"github.com/claon/claon-admin/internal/domain/post"
	"github.com/claon/claon-admin/internal/domain/review"
	"github.com/claon/claon-admin/internal/domain/schedule"
	"github.com/claon/claon-admin/internal/domain/user"
)

type Role = user.Role

const (
	RolePending     = user.RolePending
	RoleUser        = user.RoleUser
	RoleLector      = user.RoleLector
	RoleCenterAdmin = user.RoleCenterAdmin
	RoleAdmin       = user.RoleAdmin
)

type User = user.User

type Center = center.Center
type CenterProfile = center.Profile
type OperatingTime = center.OperatingTime
type CenterImage = center.CenterImage
type Utility = center.Utility
type CenterFee = center.CenterFee
type CenterFeeImage = center.CenterFeeImage
type CenterHold = center.CenterHold
type CenterWall = center.CenterWall
type WallType = center.WallType
type CenterApprovedFile = center.CenterApprovedFile

const (
	WallTypeEndurance  = center.WallTypeEndurance
	WallTypeBouldering = center.WallTypeBouldering
)

type Post = post.Post
type ClimbingHistory = post.ClimbingHistory

type Review = review.Review
type ReviewTag = review.ReviewTag
type ReviewAnswer = review.ReviewAnswer

type Schedule = schedule.Schedule

var ErrInvalidSchedulePeriod = schedule.ErrInvalidPeriod
