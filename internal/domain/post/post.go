package post

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/claon/claon-admin/internal/domain/user"
)

type Post struct {
	ID        string                      `gorm:"type:varchar(255);primaryKey" json:"id"`
	UserID    string                      `gorm:"type:varchar(255);not null;index;column:user_id" json:"user_id"`
	User      *user.User                  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CenterID  string                      `gorm:"type:varchar(255);not null;index;column:center_id" json:"center_id"`
	Content   string                      `gorm:"type:varchar(500);column:content" json:"content"`
	ImageURLs datatypes.JSONSlice[string] `gorm:"column:image_urls" json:"image_urls"`
	IsDeleted bool                        `gorm:"not null;default:false;column:is_deleted" json:"-"`
	Histories []ClimbingHistory           `gorm:"foreignKey:PostID" json:"climbing_history,omitempty"`
	CreatedAt time.Time                   `gorm:"not null;default:current_timestamp;index" json:"created_at"`
	UpdatedAt time.Time                   `gorm:"not null;default:current_timestamp" json:"updated_at"`
}

func (Post) TableName() string { return "tb_post" }

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ClimbingHistory records how many times a hold was climbed in one post.
type ClimbingHistory struct {
	ID            string `gorm:"type:varchar(255);primaryKey" json:"id"`
	PostID        string `gorm:"type:varchar(255);not null;index;column:post_id" json:"post_id"`
	HoldID        string `gorm:"type:varchar(255);not null;index;column:hold_id" json:"hold_id"`
	ClimbingCount int    `gorm:"not null;default:0;column:climbing_count" json:"climbing_count"`
}

func (ClimbingHistory) TableName() string { return "tb_climbing_history" }

func (h *ClimbingHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
