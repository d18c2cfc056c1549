package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a platform user (student)
type User struct {
	ID                 string         `gorm:"primaryKey;size:36" json:"id"`
	Email              string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password           string         `gorm:"size:255" json:"-"` // bcrypt hash
	Name               string         `gorm:"size:100;not null" json:"name"`
	Bio                string         `gorm:"size:1000" json:"bio"`
	Avatar             string         `gorm:"size:500" json:"avatar"`
	GithubProfile      string         `gorm:"size:500" json:"github_profile"`
	LinkedinProfile    string         `gorm:"size:500" json:"linkedin_profile"`
	AvailabilityStatus string         `gorm:"size:50;default:AVAILABLE" json:"availability_status"` // AVAILABLE, BUSY, NOT_AVAILABLE
	IsActive           bool           `gorm:"default:true" json:"is_active"`
	LastLogin          *time.Time     `json:"last_login"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }
