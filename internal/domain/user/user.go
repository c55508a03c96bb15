package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RolePending     Role = "PENDING"
	RoleUser        Role = "USER"
	RoleLector      Role = "LECTOR"
	RoleCenterAdmin Role = "CENTER_ADMIN"
	RoleAdmin       Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RolePending, RoleUser, RoleLector, RoleCenterAdmin, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID            string    `gorm:"type:varchar(255);primaryKey" json:"id"`
	Email         string    `gorm:"type:varchar(255);column:email" json:"email"`
	Nickname      string    `gorm:"type:varchar(20);uniqueIndex;not null;column:nickname" json:"nickname"`
	ProfileImage  string    `gorm:"type:text;column:profile_img" json:"profile_image"`
	InstagramName string    `gorm:"type:varchar(255);column:instagram_name" json:"instagram_name"`
	Role          Role      `gorm:"type:varchar(20);not null;default:PENDING;column:role" json:"role"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string { return "tb_user" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = RolePending
	}
	return nil
}

func (u *User) IsCenterAdmin() bool {
	return u != nil && u.Role == RoleCenterAdmin
}
