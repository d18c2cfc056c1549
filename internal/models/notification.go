package models

import (
	"time"
)

// Notification types produced by the team formation flows.
const (
	NotifyInvitationReceived  = "INVITATION_RECEIVED"
	NotifyInvitationAccepted  = "INVITATION_ACCEPTED"
	NotifyInvitationRejected  = "INVITATION_REJECTED"
	NotifyJoinRequestReceived = "JOIN_REQUEST_RECEIVED"
	NotifyJoinRequestAccepted = "JOIN_REQUEST_ACCEPTED"
	NotifyJoinRequestRejected = "JOIN_REQUEST_REJECTED"
	NotifyMemberRemoved       = "MEMBER_REMOVED"
	NotifyMemberLeft          = "MEMBER_LEFT"
)

// Notification is a stored, fire-and-forget message for a user. Creation
// happens outside the core transaction; a failed notification never rolls
// back a membership change.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"size:36;index;not null" json:"user_id"`
	Type      string    `gorm:"size:50;index;not null" json:"type"`
	Message   string    `gorm:"size:1000;not null" json:"message"`
	ProjectID string    `gorm:"size:36;index" json:"project_id"`
	IsRead    bool      `gorm:"default:false;index" json:"is_read"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
