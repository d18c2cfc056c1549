package models

import (
	"time"
)

// ProjectSkill links a project to a skill it needs.
type ProjectSkill struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProjectID  string    `gorm:"size:36;uniqueIndex:idx_project_skill;not null" json:"project_id"`
	SkillID    int64     `gorm:"uniqueIndex:idx_project_skill;not null" json:"skill_id"`
	Skill      *Skill    `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
	IsRequired bool      `gorm:"default:true" json:"is_required"`
	CreatedAt  time.Time `json:"created_at"`
}

func (ProjectSkill) TableName() string { return "project_skills" }
