package models

import (
	"time"
)

// ProjectJoinRequest is an applicant-initiated proposal to join a team,
// resolved by the project lead. At most one PENDING request exists per
// (project, user) pair. Cancelled requests are kept with status CANCELLED.
type ProjectJoinRequest struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	ProjectID   string         `gorm:"size:36;index;not null" json:"project_id"`
	Project     *Project       `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	UserID      string         `gorm:"size:36;index;not null" json:"user_id"`
	User        *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Message     string         `gorm:"size:1000" json:"message"`
	Status      ProposalStatus `gorm:"size:20;index;not null;default:PENDING" json:"status"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	RespondedAt *time.Time     `json:"responded_at"`
}

func (ProjectJoinRequest) TableName() string { return "project_join_requests" }
