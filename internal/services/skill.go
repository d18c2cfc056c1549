package services

import (
	"errors"
	"strings"

	"github.com/RasuriVIGNESH/peerconnect/internal/models"
	"github.com/RasuriVIGNESH/peerconnect/pkg/response"
	"gorm.io/gorm"
)

// SkillService owns the canonical skill catalog. Skill ids are derived from
// the normalized name (see models.SkillIDFromName), so resolving the same
// name from two different places always lands on the same row.
type SkillService struct {
	db *gorm.DB
}

func NewSkillService(db *gorm.DB) *SkillService {
	return &SkillService{db: db}
}

type SkillListRequest struct {
	Page       int    `form:"page" binding:"min=0"`
	PageSize   int    `form:"page_size" binding:"min=0,max=100"`
	Search     string `form:"search"`
	Category   string `form:"category"`
	Predefined *bool  `form:"predefined"`
}

type SkillListResponse struct {
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
	Items    []models.Skill `json:"items"`
}

// FindOrCreate resolves a skill name to its canonical row, creating the row
// on first reference. A blank name is a bad request, never silently skipped.
// When the stored category is empty or "General" and a more specific one is
// supplied, the category is upgraded.
func (s *SkillService) FindOrCreate(name, category string) (*models.Skill, error) {
	return s.findOrCreate(s.db, name, category)
}

// findOrCreate is the db-parameterized form so callers already inside a
// transaction resolve skills through their tx instead of grabbing a second
// pool connection.
func (s *SkillService) findOrCreate(db *gorm.DB, name, category string) (*models.Skill, error) {
	normalized, err := models.NormalizeSkillName(name)
	if err != nil {
		if errors.Is(err, models.ErrBlankSkillName) {
			return nil, response.NewBadRequest("skill name cannot be blank")
		}
		return nil, err
	}
	id := models.SkillIDFromName(normalized)

	var skill models.Skill
	err = db.First(&skill, "id = ?", id).Error
	if err == nil {
		category = strings.TrimSpace(category)
		if category != "" && !strings.EqualFold(category, "General") &&
			(skill.Category == "" || strings.EqualFold(skill.Category, "General")) {
			skill.Category = category
			if err := db.Model(&skill).Update("category", category).Error; err != nil {
				return nil, err
			}
		}
		return &skill, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created, err := models.NewSkill(name, category)
	if err != nil {
		return nil, err
	}
	if err := db.Create(created).Error; err != nil {
		// Lost a create race: the row exists now, fetch it.
		var existing models.Skill
		if ferr := db.First(&existing, "id = ?", id).Error; ferr == nil {
			return &existing, nil
		}
		return nil, err
	}
	return created, nil
}

// Create adds a new skill and fails Conflict when the name already resolves
// to an existing row.
func (s *SkillService) Create(name, category string) (*models.Skill, error) {
	normalized, err := models.NormalizeSkillName(name)
	if err != nil {
		return nil, response.NewBadRequest("skill name cannot be blank")
	}

	var count int64
	if err := s.db.Model(&models.Skill{}).Where("id = ?", models.SkillIDFromName(normalized)).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, response.NewConflict("skill with this name already exists")
	}

	skill, err := models.NewSkill(name, category)
	if err != nil {
		return nil, err
	}
	if err := s.db.Create(skill).Error; err != nil {
		return nil, err
	}
	return skill, nil
}

// GetByID returns a skill by its deterministic id.
func (s *SkillService) GetByID(id int64) (*models.Skill, error) {
	var skill models.Skill
	if err := s.db.First(&skill, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("skill not found")
		}
		return nil, err
	}
	return &skill, nil
}

// ResolveByName returns the skill a name resolves to, without creating it.
func (s *SkillService) ResolveByName(name string) (*models.Skill, error) {
	normalized, err := models.NormalizeSkillName(name)
	if err != nil {
		return nil, response.NewBadRequest("skill name cannot be blank")
	}
	return s.GetByID(models.SkillIDFromName(normalized))
}

// List returns skills filtered by search text, category and predefined flag.
func (s *SkillService) List(req *SkillListRequest) (*SkillListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	query := s.db.Model(&models.Skill{})
	if req.Search != "" {
		query = query.Where("normalized_name LIKE ?", "%"+strings.ToLower(strings.TrimSpace(req.Search))+"%")
	}
	if req.Category != "" {
		query = query.Where("category = ?", req.Category)
	}
	if req.Predefined != nil {
		query = query.Where("is_predefined = ?", *req.Predefined)
	}

	var total int64
	query.Count(&total)

	var skills []models.Skill
	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("name ASC").Find(&skills).Error; err != nil {
		return nil, err
	}

	return &SkillListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    skills,
	}, nil
}

// Popular returns the most-used skills by user count.
func (s *SkillService) Popular(limit int) ([]models.Skill, error) {
	if limit <= 0 {
		limit = 10
	}
	var skills []models.Skill
	if err := s.db.Order("users_count DESC, projects_count DESC").Limit(limit).Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

// Delete removes a user-created skill. Predefined skills cannot be deleted.
func (s *SkillService) Delete(id int64) error {
	skill, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if skill.IsPredefined {
		return response.NewConflict("cannot delete predefined skills")
	}
	return s.db.Delete(skill).Error
}

// counter maintenance, called by the user-skill and project-skill link paths

func (s *SkillService) incrementCounter(db *gorm.DB, skillID int64, column string) error {
	return db.Model(&models.Skill{}).Where("id = ?", skillID).
		UpdateColumn(column, gorm.Expr(column+" + 1")).Error
}

func (s *SkillService) decrementCounter(db *gorm.DB, skillID int64, column string) error {
	return db.Model(&models.Skill{}).Where("id = ? AND "+column+" > 0", skillID).
		UpdateColumn(column, gorm.Expr(column+" - 1")).Error
}
