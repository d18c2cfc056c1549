package services

import (
	"errors"

	"github.com/RasuriVIGNESH/peerconnect/internal/models"
	"github.com/RasuriVIGNESH/peerconnect/pkg/response"
	"gorm.io/gorm"
)

// UserSkillService links users to the skill catalog and keeps the per-skill
// user counters in step.
type UserSkillService struct {
	db     *gorm.DB
	skills *SkillService
}

func NewUserSkillService(db *gorm.DB, skills *SkillService) *UserSkillService {
	return &UserSkillService{db: db, skills: skills}
}

type AddUserSkillRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	Category        string `json:"category" binding:"max=50"`
	Level           string `json:"level"`
	YearsExperience int    `json:"years_experience" binding:"min=0,max=50"`
}

// Add attaches a skill to the user's profile, creating the catalog entry on
// first reference.
func (s *UserSkillService) Add(userID string, req *AddUserSkillRequest) (*models.UserSkill, error) {
	level := req.Level
	if level == "" {
		level = "BEGINNER"
	}
	switch level {
	case "BEGINNER", "INTERMEDIATE", "ADVANCED", "EXPERT":
	default:
		return nil, response.NewBadRequest("invalid skill level")
	}

	skill, err := s.skills.FindOrCreate(req.Name, req.Category)
	if err != nil {
		return nil, err
	}

	var existing int64
	if err := s.db.Model(&models.UserSkill{}).
		Where("user_id = ? AND skill_id = ?", userID, skill.ID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, response.NewConflict("skill already on your profile")
	}

	link := models.UserSkill{
		UserID:          userID,
		SkillID:         skill.ID,
		Level:           level,
		YearsExperience: req.YearsExperience,
	}
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
		return s.skills.incrementCounter(tx, skill.ID, "users_count")
	})
	if txErr != nil {
		return nil, txErr
	}

	link.Skill = skill
	return &link, nil
}

type UpdateUserSkillRequest struct {
	Level           *string `json:"level"`
	YearsExperience *int    `json:"years_experience"`
}

// Update changes the level or experience recorded for a profile skill.
func (s *UserSkillService) Update(userID string, skillID int64, req *UpdateUserSkillRequest) (*models.UserSkill, error) {
	var link models.UserSkill
	if err := s.db.Where("user_id = ? AND skill_id = ?", userID, skillID).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("skill not on your profile")
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Level != nil {
		switch *req.Level {
		case "BEGINNER", "INTERMEDIATE", "ADVANCED", "EXPERT":
			updates["level"] = *req.Level
		default:
			return nil, response.NewBadRequest("invalid skill level")
		}
	}
	if req.YearsExperience != nil {
		if *req.YearsExperience < 0 || *req.YearsExperience > 50 {
			return nil, response.NewBadRequest("years of experience out of range")
		}
		updates["years_experience"] = *req.YearsExperience
	}

	if len(updates) > 0 {
		if err := s.db.Model(&link).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &link, nil
}

// Remove detaches a skill from the user's profile.
func (s *UserSkillService) Remove(userID string, skillID int64) error {
	var link models.UserSkill
	if err := s.db.Where("user_id = ? AND skill_id = ?", userID, skillID).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("skill not on your profile")
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&link).Error; err != nil {
			return err
		}
		return s.skills.decrementCounter(tx, skillID, "users_count")
	})
}

// List returns the skills on a user's profile.
func (s *UserSkillService) List(userID string) ([]models.UserSkill, error) {
	var links []models.UserSkill
	if err := s.db.Preload("Skill").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}
