package services

import (
	"errors"

	"github.com/RasuriVIGNESH/peerconnect/internal/models"
	"github.com/RasuriVIGNESH/peerconnect/pkg/response"
	"gorm.io/gorm"
)

// TeamService is the single owner of team membership: it counts capacity,
// converts accepted proposals into membership rows, and handles member
// administration. The lead occupies one capacity slot but has no membership
// row; every count in this file accounts for that.
type TeamService struct {
	db       *gorm.DB
	notifier *NotificationService
}

func NewTeamService(db *gorm.DB, notifier *NotificationService) *TeamService {
	return &TeamService{db: db, notifier: notifier}
}

// CountMembers returns the team size for capacity purposes: explicit
// membership rows plus one implicit slot for the lead.
func (s *TeamService) CountMembers(db *gorm.DB, projectID string) (int, error) {
	var rows int64
	if err := db.Model(&models.ProjectMember{}).Where("project_id = ?", projectID).Count(&rows).Error; err != nil {
		return 0, err
	}
	return int(rows) + 1, nil
}

// IsFull reports whether the project has no capacity left.
func (s *TeamService) IsFull(db *gorm.DB, project *models.Project) (bool, error) {
	size, err := s.CountMembers(db, project.ID)
	if err != nil {
		return false, err
	}
	return size >= project.MaxTeamSize, nil
}

// IsMember reports whether userID is on the team, counting the lead.
func (s *TeamService) IsMember(db *gorm.DB, project *models.Project, userID string) (bool, error) {
	if project.IsLead(userID) {
		return true, nil
	}
	var count int64
	if err := db.Model(&models.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", project.ID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// convertToMember inserts a membership row inside tx and then re-checks
// capacity. Inserting first and verifying after means two concurrent
// conversions racing for the last slot cannot both commit: the loser sees
// the count over the limit and its transaction rolls back.
func (s *TeamService) convertToMember(tx *gorm.DB, project *models.Project, userID string, role models.ProjectRole) error {
	var existing int64
	if err := tx.Model(&models.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", project.ID, userID).
		Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 || project.IsLead(userID) {
		return response.NewConflict("user is already a member of this project")
	}

	member := models.ProjectMember{
		ProjectID: project.ID,
		UserID:    userID,
		Role:      role,
	}
	if err := tx.Create(&member).Error; err != nil {
		return err
	}

	size, err := s.CountMembers(tx, project.ID)
	if err != nil {
		return err
	}
	if size > project.MaxTeamSize {
		return response.NewConflict("project team is now full")
	}
	return nil
}

// AddMember directly adds a user to the team. Lead only.
func (s *TeamService) AddMember(projectID, userID string, role models.ProjectRole, byUserID string) (*models.ProjectMember, error) {
	if !role.Valid() {
		return nil, response.NewBadRequest("invalid role, must be LEAD or MEMBER")
	}

	project, err := s.getProject(projectID)
	if err != nil {
		return nil, err
	}
	if !project.IsLead(byUserID) {
		return nil, response.NewForbidden("only the project lead can add members")
	}
	if err := s.userExists(userID); err != nil {
		return nil, err
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		full, err := s.IsFull(tx, project)
		if err != nil {
			return err
		}
		if full {
			return response.NewConflict("project team is already full")
		}
		return s.convertToMember(tx, project, userID, role)
	})
	if txErr != nil {
		return nil, txErr
	}

	var member models.ProjectMember
	if err := s.db.Preload("User").
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// RemoveMember removes a member from the team. Lead only; members holding
// the LEAD role cannot be removed through this path.
func (s *TeamService) RemoveMember(projectID, memberUserID, byUserID string) error {
	project, err := s.getProject(projectID)
	if err != nil {
		return err
	}
	if !project.IsLead(byUserID) {
		return response.NewForbidden("only the project lead can remove members")
	}

	var member models.ProjectMember
	if err := s.db.Where("project_id = ? AND user_id = ?", projectID, memberUserID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("member not found in this project")
		}
		return err
	}
	if member.Role == models.RoleLead {
		return response.NewConflict("cannot remove a project lead")
	}

	if err := s.db.Delete(&member).Error; err != nil {
		return err
	}

	s.notifier.Notify(memberUserID, models.NotifyMemberRemoved,
		"You have been removed from the project "+project.Title, project.ID)
	return nil
}

// UpdateMemberRole changes a member's role. Lead only. Lead-role
// reassignment is out of scope: neither the current nor the new role may be
// LEAD.
func (s *TeamService) UpdateMemberRole(projectID, memberUserID string, newRole models.ProjectRole, byUserID string) (*models.ProjectMember, error) {
	if !newRole.Valid() {
		return nil, response.NewBadRequest("invalid role, must be LEAD or MEMBER")
	}

	project, err := s.getProject(projectID)
	if err != nil {
		return nil, err
	}
	if !project.IsLead(byUserID) {
		return nil, response.NewForbidden("only the project lead can update member roles")
	}

	var member models.ProjectMember
	if err := s.db.Where("project_id = ? AND user_id = ?", projectID, memberUserID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("member not found in this project")
		}
		return nil, err
	}
	if member.Role == models.RoleLead || newRole == models.RoleLead {
		return nil, response.NewConflict("cannot change the lead role through this endpoint")
	}

	member.Role = newRole
	if err := s.db.Save(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// LeaveProject removes the caller's own membership. The lead cannot leave;
// they must transfer leadership or delete the project.
func (s *TeamService) LeaveProject(projectID, userID string) error {
	project, err := s.getProject(projectID)
	if err != nil {
		return err
	}
	if project.IsLead(userID) {
		return response.NewConflict("the project lead cannot leave; transfer leadership or delete the project first")
	}

	var member models.ProjectMember
	if err := s.db.Where("project_id = ? AND user_id = ?", projectID, userID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("you are not a member of this project")
		}
		return err
	}

	if err := s.db.Delete(&member).Error; err != nil {
		return err
	}

	s.notifier.Notify(project.LeadID, models.NotifyMemberLeft,
		"A member left your project "+project.Title, project.ID)
	return nil
}

// GetProjectMembers lists the team. Only members (including the lead) may
// view the member list.
func (s *TeamService) GetProjectMembers(projectID, byUserID string) ([]models.ProjectMember, error) {
	project, err := s.getProject(projectID)
	if err != nil {
		return nil, err
	}
	isMember, err := s.IsMember(s.db, project, byUserID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, response.NewForbidden("only project members can view the member list")
	}

	var members []models.ProjectMember
	if err := s.db.Preload("User").
		Where("project_id = ?", projectID).
		Order("joined_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// GetUserMemberships lists all explicit memberships for a user.
func (s *TeamService) GetUserMemberships(userID string) ([]models.ProjectMember, error) {
	var members []models.ProjectMember
	if err := s.db.Preload("Project").
		Where("user_id = ?", userID).
		Order("joined_at DESC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (s *TeamService) getProject(projectID string) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}
	return &project, nil
}

func (s *TeamService) userExists(userID string) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return response.NewNotFound("user not found")
	}
	return nil
}
