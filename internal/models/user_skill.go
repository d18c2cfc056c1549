package models

import (
	"time"
)

// UserSkill links a user to a skill they advertise.
type UserSkill struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          string    `gorm:"size:36;uniqueIndex:idx_user_skill;not null" json:"user_id"`
	User            *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	SkillID         int64     `gorm:"uniqueIndex:idx_user_skill;not null" json:"skill_id"`
	Skill           *Skill    `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
	Level           string    `gorm:"size:20;default:BEGINNER" json:"level"` // BEGINNER, INTERMEDIATE, ADVANCED, EXPERT
	YearsExperience int       `gorm:"default:0" json:"years_experience"`
	CreatedAt       time.Time `json:"created_at"`
}

func (UserSkill) TableName() string { return "user_skills" }
