package center

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/claon/claon-admin/internal/domain/user"
)

type WallType string

const (
	WallTypeEndurance  WallType = "ENDURANCE"
	WallTypeBouldering WallType = "BOULDERING"
)

type CenterHold struct {
	ID         string `gorm:"type:varchar(255);primaryKey" json:"id"`
	Name       string `gorm:"type:varchar(10);column:name" json:"name"`
	Difficulty string `gorm:"type:varchar(10);column:difficulty" json:"difficulty"`
	IsColor    bool   `gorm:"not null;default:false;column:is_color" json:"is_color"`
	CenterID   string `gorm:"type:varchar(255);not null;index;column:center_id" json:"center_id"`
}

func (CenterHold) TableName() string { return "tb_center_hold" }

func (h *CenterHold) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

type CenterWall struct {
	ID       string   `gorm:"type:varchar(255);primaryKey" json:"id"`
	Name     string   `gorm:"type:varchar(20);column:name" json:"name"`
	Type     WallType `gorm:"type:varchar(20);column:type" json:"type"`
	CenterID string   `gorm:"type:varchar(255);not null;index;column:center_id" json:"center_id"`
}

func (CenterWall) TableName() string { return "tb_center_wall" }

func (w *CenterWall) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

// CenterApprovedFile links a center to the user who submitted the document
// proving its ownership.
type CenterApprovedFile struct {
	ID       string     `gorm:"type:varchar(255);primaryKey" json:"id"`
	URL      string     `gorm:"type:varchar(255);column:url" json:"url"`
	UserID   string     `gorm:"type:varchar(255);not null;index;column:user_id" json:"user_id"`
	User     *user.User `gorm:"foreignKey:UserID" json:"-"`
	CenterID string     `gorm:"type:varchar(255);not null;index;column:center_id" json:"center_id"`
}

func (CenterApprovedFile) TableName() string { return "tb_center_approved_file" }

func (f *CenterApprovedFile) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
