package schedule

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidPeriod = errors.New("start_at must be before end_at")

type Schedule struct {
	ID          string    `gorm:"type:varchar(255);primaryKey" json:"id"`
	CenterID    string    `gorm:"type:varchar(255);not null;index;column:center_id" json:"center_id"`
	Title       string    `gorm:"type:varchar(50);not null;column:title" json:"title"`
	Description string    `gorm:"type:varchar(500);column:description" json:"description"`
	StartAt     time.Time `gorm:"not null;index;column:start_at" json:"start_at"`
	EndAt       time.Time `gorm:"not null;column:end_at" json:"end_at"`
	CreatedAt   time.Time `gorm:"not null;default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:current_timestamp" json:"updated_at"`
}

func (Schedule) TableName() string { return "tb_schedule" }

func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Validate checks the title and the period ordering.
func (s *Schedule) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return errors.New("title is required")
	}
	if !s.StartAt.Before(s.EndAt) {
		return ErrInvalidPeriod
	}
	return nil
}
