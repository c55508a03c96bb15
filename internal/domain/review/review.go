package review

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/claon/claon-admin/internal/domain/user"
)

type Review struct {
	ID        string        `gorm:"type:varchar(255);primaryKey" json:"id"`
	UserID    string        `gorm:"type:varchar(255);not null;index;column:user_id" json:"user_id"`
	User      *user.User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CenterID  string        `gorm:"type:varchar(255);not null;index;column:center_id" json:"center_id"`
	Content   string        `gorm:"type:varchar(500);column:content" json:"content"`
	Tags      []ReviewTag   `gorm:"foreignKey:ReviewID" json:"tags"`
	Answer    *ReviewAnswer `gorm:"foreignKey:ReviewID" json:"answer,omitempty"`
	CreatedAt time.Time     `gorm:"not null;default:current_timestamp;index" json:"created_at"`
	UpdatedAt time.Time     `gorm:"not null;default:current_timestamp" json:"updated_at"`
}

func (Review) TableName() string { return "tb_review" }

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (r *Review) IsAnswered() bool { return r != nil && r.Answer != nil }

func (r *Review) TagWords() []string {
	out := make([]string, 0, len(r.Tags))
	for _, t := range r.Tags {
		out = append(out, t.Word)
	}
	return out
}

type ReviewTag struct {
	ID       string `gorm:"type:varchar(255);primaryKey" json:"id"`
	ReviewID string `gorm:"type:varchar(255);not null;index;column:review_id" json:"review_id"`
	Word     string `gorm:"type:varchar(50);not null;index;column:word" json:"word"`
}

func (ReviewTag) TableName() string { return "tb_review_tag" }

func (t *ReviewTag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// ReviewAnswer is the center's single reply to a review.
type ReviewAnswer struct {
	ID        string    `gorm:"type:varchar(255);primaryKey" json:"id"`
	ReviewID  string    `gorm:"type:varchar(255);not null;uniqueIndex;column:review_id" json:"review_id"`
	Content   string    `gorm:"type:varchar(500);not null;column:content" json:"content"`
	CreatedAt time.Time `gorm:"not null;default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:current_timestamp" json:"updated_at"`
}

func (ReviewAnswer) TableName() string { return "tb_review_answer" }

func (a *ReviewAnswer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
