package services

import (
	"errors"
	"strings"

	"github.com/RasuriVIGNESH/peerconnect/internal/models"
	"github.com/RasuriVIGNESH/peerconnect/pkg/response"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinTeamSize = 2
	MaxTeamSize = 20
)

// ProjectService manages project lifecycle: creation, updates, discovery and
// deletion. The creator becomes the project lead and occupies one capacity
// slot without a membership row.
type ProjectService struct {
	db     *gorm.DB
	skills *SkillService
	teams  *TeamService
}

func NewProjectService(db *gorm.DB, skills *SkillService, teams *TeamService) *ProjectService {
	return &ProjectService{db: db, skills: skills, teams: teams}
}

type CreateProjectRequest struct {
	Title       string   `json:"title" binding:"required,max=100"`
	Description string   `json:"description" binding:"required"`
	MaxTeamSize int      `json:"max_team_size" binding:"required"`
	Skills      []string `json:"skills" binding:"required,min=1"`
	TechStack   []string `json:"tech_stack"`
	GithubRepo  string   `json:"github_repo" binding:"max=500"`
	Goals       string   `json:"goals"`
}

type UpdateProjectRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	MaxTeamSize *int     `json:"max_team_size"`
	Status      *string  `json:"status"`
	Skills      []string `json:"skills"`
	TechStack   []string `json:"tech_stack"`
	GithubRepo  *string  `json:"github_repo"`
	DemoURL     *string  `json:"demo_url"`
	Goals       *string  `json:"goals"`
}

type ProjectListRequest struct {
	Page     int    `form:"page" binding:"min=0"`
	PageSize int    `form:"page_size" binding:"min=0,max=100"`
	Status   string `form:"status"`
	Search   string `form:"search"`
	Skill    string `form:"skill"`
}

type ProjectListResponse struct {
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Items    []models.Project `json:"items"`
}

// Create creates a project with the caller as lead. At least one skill is
// required and the team size must fit the platform bounds.
func (s *ProjectService) Create(leadID string, req *CreateProjectRequest) (*models.Project, error) {
	if req.MaxTeamSize < MinTeamSize || req.MaxTeamSize > MaxTeamSize {
		return nil, response.NewBadRequest("max team size must be between 2 and 20")
	}

	project := models.Project{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		MaxTeamSize: req.MaxTeamSize,
		Status:      models.ProjectRecruiting,
		LeadID:      leadID,
		TechStack:   strings.Join(req.TechStack, ","),
		GithubRepo:  req.GithubRepo,
		Goals:       req.Goals,
	}
	if project.Title == "" {
		return nil, response.NewBadRequest("title cannot be blank")
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		return s.replaceSkills(tx, &project, req.Skills)
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.GetByID(project.ID)
}

// GetByID returns a project with lead and skills preloaded.
func (s *ProjectService) GetByID(projectID string) (*models.Project, error) {
	var project models.Project
	err := s.db.Preload("Lead").Preload("Skills.Skill").
		First(&project, "id = ?", projectID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}
	return &project, nil
}

// Update modifies a project. Lead only. Skills, when supplied, replace the
// existing skill set and must not become empty.
func (s *ProjectService) Update(projectID, byUserID string, req *UpdateProjectRequest) (*models.Project, error) {
	project, err := s.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if !project.IsLead(byUserID) {
		return nil, response.NewForbidden("only the project lead can update the project")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, response.NewBadRequest("title cannot be blank")
		}
		updates["title"] = title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.MaxTeamSize != nil {
		if *req.MaxTeamSize < MinTeamSize || *req.MaxTeamSize > MaxTeamSize {
			return nil, response.NewBadRequest("max team size must be between 2 and 20")
		}
		size, err := s.teams.CountMembers(s.db, projectID)
		if err != nil {
			return nil, err
		}
		if *req.MaxTeamSize < size {
			return nil, response.NewConflict("max team size cannot be lower than the current team size")
		}
		updates["max_team_size"] = *req.MaxTeamSize
	}
	if req.Status != nil {
		status := models.ProjectStatus(*req.Status)
		if !status.Valid() {
			return nil, response.NewBadRequest("invalid project status")
		}
		updates["status"] = status
	}
	if req.TechStack != nil {
		updates["tech_stack"] = strings.Join(req.TechStack, ",")
	}
	if req.GithubRepo != nil {
		updates["github_repo"] = *req.GithubRepo
	}
	if req.DemoURL != nil {
		updates["demo_url"] = *req.DemoURL
	}
	if req.Goals != nil {
		updates["goals"] = *req.Goals
	}
	if req.Skills != nil && len(req.Skills) == 0 {
		return nil, response.NewBadRequest("a project must keep at least one skill")
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(project).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.Skills != nil {
			if err := s.unlinkSkills(tx, projectID); err != nil {
				return err
			}
			return s.replaceSkills(tx, project, req.Skills)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.GetByID(projectID)
}

// Delete removes a project and its dependent rows. Lead only; in-progress
// and completed projects cannot be deleted.
func (s *ProjectService) Delete(projectID, byUserID string) error {
	project, err := s.teams.getProject(projectID)
	if err != nil {
		return err
	}
	if !project.IsLead(byUserID) {
		return response.NewForbidden("only the project lead can delete the project")
	}
	if !project.CanDelete() {
		return response.NewConflict("cannot delete a project that is in progress or completed")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectInvitation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectJoinRequest{}).Error; err != nil {
			return err
		}
		if err := s.unlinkSkills(tx, projectID); err != nil {
			return err
		}
		return tx.Delete(project).Error
	})
}

// List returns projects filtered by status, search text and skill name.
func (s *ProjectService) List(req *ProjectListRequest) (*ProjectListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	query := s.db.Model(&models.Project{})
	if req.Status != "" {
		status := models.ProjectStatus(req.Status)
		if !status.Valid() {
			return nil, response.NewBadRequest("invalid project status filter")
		}
		query = query.Where("status = ?", status)
	}
	if req.Search != "" {
		like := "%" + strings.TrimSpace(req.Search) + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if req.Skill != "" {
		normalized, err := models.NormalizeSkillName(req.Skill)
		if err != nil {
			return nil, response.NewBadRequest("invalid skill filter")
		}
		query = query.Where("id IN (?)",
			s.db.Model(&models.ProjectSkill{}).Select("project_id").
				Where("skill_id = ?", models.SkillIDFromName(normalized)))
	}

	var total int64
	query.Count(&total)

	var projects []models.Project
	offset := (req.Page - 1) * req.PageSize
	if err := query.Preload("Lead").Preload("Skills.Skill").
		Offset(offset).Limit(req.PageSize).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}

	return &ProjectListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    projects,
	}, nil
}

// Discover lists recruiting projects the user could join: not their own,
// not one they are already a member of, and not full.
func (s *ProjectService) Discover(userID string, limit int) ([]models.Project, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var projects []models.Project
	err := s.db.Preload("Lead").Preload("Skills.Skill").
		Where("status = ?", models.ProjectRecruiting).
		Where("lead_id <> ?", userID).
		Where("id NOT IN (?)",
			s.db.Model(&models.ProjectMember{}).Select("project_id").Where("user_id = ?", userID)).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}

	// Capacity is derived, not stored, so the full-team filter happens here.
	open := make([]models.Project, 0, len(projects))
	for i := range projects {
		full, err := s.teams.IsFull(s.db, &projects[i])
		if err != nil {
			return nil, err
		}
		if !full {
			open = append(open, projects[i])
		}
		if len(open) == limit {
			break
		}
	}
	return open, nil
}

// ListForUser returns projects the user leads or is a member of.
func (s *ProjectService) ListForUser(userID string) ([]models.Project, error) {
	var projects []models.Project
	err := s.db.Preload("Lead").Preload("Skills.Skill").
		Where("lead_id = ? OR id IN (?)", userID,
			s.db.Model(&models.ProjectMember{}).Select("project_id").Where("user_id = ?", userID)).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// unlinkSkills removes a project's skill links and rolls the per-skill
// project counters back down.
func (s *ProjectService) unlinkSkills(tx *gorm.DB, projectID string) error {
	var links []models.ProjectSkill
	if err := tx.Where("project_id = ?", projectID).Find(&links).Error; err != nil {
		return err
	}
	for _, link := range links {
		if err := s.skills.decrementCounter(tx, link.SkillID, "projects_count"); err != nil {
			return err
		}
	}
	return tx.Where("project_id = ?", projectID).Delete(&models.ProjectSkill{}).Error
}

// replaceSkills resolves skill names through the catalog and links them to
// the project, keeping the per-skill project counters in step.
func (s *ProjectService) replaceSkills(tx *gorm.DB, project *models.Project, names []string) error {
	if len(names) == 0 {
		return response.NewBadRequest("at least one skill is required")
	}

	seen := map[int64]bool{}
	for _, name := range names {
		skill, err := s.skills.findOrCreate(tx, name, "")
		if err != nil {
			return err
		}
		if seen[skill.ID] {
			continue
		}
		seen[skill.ID] = true

		link := models.ProjectSkill{ProjectID: project.ID, SkillID: skill.ID}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
		if err := s.skills.incrementCounter(tx, skill.ID, "projects_count"); err != nil {
			return err
		}
	}
	return nil
}
