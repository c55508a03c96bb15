package services

import (
	"errors"
	"strings"
	"time"

	"github.com/claon/claon-admin/internal/data/repos"
	types "github.com/claon/claon-admin/internal/domain"
	"github.com/claon/claon-admin/internal/platform/apierr"
	"github.com/claon/claon-admin/internal/platform/dbctx"
	"github.com/claon/claon-admin/internal/platform/logger"
	"github.com/claon/claon-admin/internal/platform/pagination"
)

type ScheduleInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
}

type ScheduleService interface {
	FindSchedulesByCenter(dbc dbctx.Context, subject Subject, centerID string, params pagination.Params) (pagination.Pagination[*types.Schedule], error)
	FindSchedule(dbc dbctx.Context, subject Subject, centerID, scheduleID string) (*types.Schedule, error)
	CreateSchedule(dbc dbctx.Context, subject Subject, centerID string, in ScheduleInput) (*types.Schedule, error)
	UpdateSchedule(dbc dbctx.Context, subject Subject, centerID, scheduleID string, in ScheduleInput) (*types.Schedule, error)
	DeleteSchedule(dbc dbctx.Context, subject Subject, centerID, scheduleID string) error
}

type scheduleService struct {
	log       *logger.Logger
	centers   CenterLoader
	schedules repos.ScheduleRepo
}

func NewScheduleService(log *logger.Logger, centers CenterLoader, schedules repos.ScheduleRepo) ScheduleService {
	return &scheduleService{
		log:       log.With("service", "ScheduleService"),
		centers:   centers,
		schedules: schedules,
	}
}

func (ss *scheduleService) FindSchedulesByCenter(dbc dbctx.Context, subject Subject, centerID string, params pagination.Params) (pagination.Pagination[*types.Schedule], error) {
	if _, err := loadOwnedCenter(dbc, ss.centers, subject, centerID); err != nil {
		return pagination.Pagination[*types.Schedule]{}, err
	}
	page, err := ss.schedules.ListByCenter(dbc, centerID, params)
	if err != nil {
		return pagination.Pagination[*types.Schedule]{}, err
	}
	return pagination.Wrap(page, func(s *types.Schedule) *types.Schedule { return s }), nil
}

func (ss *scheduleService) FindSchedule(dbc dbctx.Context, subject Subject, centerID, scheduleID string) (*types.Schedule, error) {
	if _, err := loadOwnedCenter(dbc, ss.centers, subject, centerID); err != nil {
		return nil, err
	}
	return ss.scheduleInCenter(dbc, centerID, scheduleID)
}

func (ss *scheduleService) scheduleInCenter(dbc dbctx.Context, centerID, scheduleID string) (*types.Schedule, error) {
	s, err := ss.schedules.GetInCenter(dbc, centerID, scheduleID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, apierr.NotFound(apierr.CodeDataDoesNotExist, "schedule does not exist")
	}
	return s, nil
}

func applyScheduleInput(s *types.Schedule, in ScheduleInput) error {
	s.Title = strings.TrimSpace(in.Title)
	s.Description = strings.TrimSpace(in.Description)
	s.StartAt = in.StartAt.UTC()
	s.EndAt = in.EndAt.UTC()
	if err := s.Validate(); err != nil {
		if errors.Is(err, types.ErrInvalidSchedulePeriod) {
			return apierr.BadRequest(apierr.CodeInvalidRequest, "schedule must start before it ends")
		}
		return apierr.BadRequest(apierr.CodeInvalidRequest, err.Error())
	}
	return nil
}

func (ss *scheduleService) CreateSchedule(dbc dbctx.Context, subject Subject, centerID string, in ScheduleInput) (*types.Schedule, error) {
	c, err := loadOwnedCenter(dbc, ss.centers, subject, centerID)
	if err != nil {
		return nil, err
	}
	s := &types.Schedule{CenterID: c.ID}
	if err := applyScheduleInput(s, in); err != nil {
		return nil, err
	}
	return ss.schedules.Create(dbc, s)
}

func (ss *scheduleService) UpdateSchedule(dbc dbctx.Context, subject Subject, centerID, scheduleID string, in ScheduleInput) (*types.Schedule, error) {
	if _, err := loadOwnedCenter(dbc, ss.centers, subject, centerID); err != nil {
		return nil, err
	}
	s, err := ss.scheduleInCenter(dbc, centerID, scheduleID)
	if err != nil {
		return nil, err
	}
	if err := applyScheduleInput(s, in); err != nil {
		return nil, err
	}
	if err := ss.schedules.Save(dbc, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (ss *scheduleService) DeleteSchedule(dbc dbctx.Context, subject Subject, centerID, scheduleID string) error {
	if _, err := loadOwnedCenter(dbc, ss.centers, subject, centerID); err != nil {
		return err
	}
	s, err := ss.scheduleInCenter(dbc, centerID, scheduleID)
	if err != nil {
		return err
	}
	return ss.schedules.Delete(dbc, s.ID)
}
