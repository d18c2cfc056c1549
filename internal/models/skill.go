package models

import (
	"crypto/md5"
	"encoding/binary"
	"errors"
	"strings"
	"time"
)

// ErrBlankSkillName is returned when a skill name is empty after trimming.
var ErrBlankSkillName = errors.New("skill name cannot be blank")

// Skill is a canonical skill record. The ID is content-addressed: it is
// derived from the normalized name, so two independently created references
// to "Java" always resolve to the same row. There is no auto-increment key.
type Skill struct {
	ID             int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name           string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	NormalizedName string    `gorm:"uniqueIndex;size:100;not null" json:"normalized_name"`
	Category       string    `gorm:"size:50;index" json:"category"`
	IsPredefined   bool      `gorm:"default:false;index" json:"is_predefined"`
	UsersCount     int       `gorm:"default:0;index" json:"users_count"`    // denormalized UserSkill count
	ProjectsCount  int       `gorm:"default:0;index" json:"projects_count"` // denormalized ProjectSkill count
	CreatedAt      time.Time `json:"created_at"`
}

func (Skill) TableName() string { return "skills" }

// NormalizeSkillName lowercases, trims, and collapses internal whitespace so
// that "Java", " java " and "JAVA" compare equal.
func NormalizeSkillName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrBlankSkillName
	}
	return strings.Join(strings.Fields(strings.ToLower(trimmed)), " "), nil
}

// SkillIDFromName derives the deterministic skill id from a normalized name:
// the first 8 bytes of the MD5 digest interpreted as a non-negative integer.
func SkillIDFromName(normalizedName string) int64 {
	sum := md5.Sum([]byte(normalizedName))
	id := int64(binary.BigEndian.Uint64(sum[:8]))
	if id < 0 {
		id = -id
	}
	return id
}

// NewSkill builds a Skill with its content-addressed id. The category
// defaults to "General" when unspecified.
func NewSkill(name, category string) (*Skill, error) {
	normalized, err := NormalizeSkillName(name)
	if err != nil {
		return nil, err
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = "General"
	}
	return &Skill{
		ID:             SkillIDFromName(normalized),
		Name:           strings.TrimSpace(name),
		NormalizedName: normalized,
		Category:       category,
	}, nil
}
