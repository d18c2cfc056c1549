package models

import (
	"time"
)

// ProjectInvitation is a lead-initiated proposal to add a user to a team.
// At most one PENDING invitation exists per (project, invited user) pair.
type ProjectInvitation struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	ProjectID     string         `gorm:"size:36;index;not null" json:"project_id"`
	Project       *Project       `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	InvitedByID   string         `gorm:"size:36;not null" json:"invited_by_id"`
	InvitedBy     *User          `gorm:"foreignKey:InvitedByID" json:"invited_by,omitempty"`
	InvitedUserID string         `gorm:"size:36;index;not null" json:"invited_user_id"`
	InvitedUser   *User          `gorm:"foreignKey:InvitedUserID" json:"invited_user,omitempty"`
	Role          ProjectRole    `gorm:"size:20;not null;default:MEMBER" json:"role"` // role granted on acceptance
	Message       string         `gorm:"size:1000" json:"message"`
	Status        ProposalStatus `gorm:"size:20;index;not null;default:PENDING" json:"status"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	RespondedAt   *time.Time     `json:"responded_at"`
}

func (ProjectInvitation) TableName() string { return "project_invitations" }
