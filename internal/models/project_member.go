package models

import (
	"time"
)

// ProjectMember is an explicit membership row. The project lead does not
// have one; lead membership is carried by Project.LeadID.
type ProjectMember struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	ProjectID string      `gorm:"size:36;uniqueIndex:idx_team_project_user;not null" json:"project_id"`
	Project   *Project    `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	UserID    string      `gorm:"size:36;uniqueIndex:idx_team_project_user;not null" json:"user_id"`
	User      *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Role      ProjectRole `gorm:"size:20;not null;default:MEMBER" json:"role"`
	JoinedAt  time.Time   `gorm:"autoCreateTime" json:"joined_at"`
}

func (ProjectMember) TableName() string { return "project_members" }
