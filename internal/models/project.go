package models

import (
	"time"

	"gorm.io/gorm"
)

// Project represents a student project recruiting a team.
// The lead's membership is implicit via LeadID; additional members are
// explicit ProjectMember rows.
type Project struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"` // uuid, assigned at creation
	Title       string         `gorm:"size:100;not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	MaxTeamSize int            `gorm:"not null" json:"max_team_size"` // 2..20, includes the lead
	Status      ProjectStatus  `gorm:"size:20;index;not null;default:RECRUITING" json:"status"`
	LeadID      string         `gorm:"size:36;index;not null" json:"lead_id"`
	Lead        *User          `gorm:"foreignKey:LeadID" json:"lead,omitempty"`
	TechStack   string         `gorm:"size:1000" json:"tech_stack"` // comma separated
	GithubRepo  string         `gorm:"size:500" json:"github_repo"`
	DemoURL     string         `gorm:"size:500" json:"demo_url"`
	Goals       string         `gorm:"type:text" json:"goals"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Skills []ProjectSkill `gorm:"foreignKey:ProjectID" json:"skills,omitempty"`
}

func (Project) TableName() string { return "projects" }

// IsLead reports whether userID created this project.
func (p *Project) IsLead(userID string) bool { return p.LeadID == userID }

// CanDelete reports whether the project may be deleted in its current status.
func (p *Project) CanDelete() bool {
	return p.Status != ProjectInProgress && p.Status != ProjectCompleted
}
