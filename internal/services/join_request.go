package services

import (
	"errors"
	"time"

	"github.com/RasuriVIGNESH/peerconnect/internal/models"
	"github.com/RasuriVIGNESH/peerconnect/pkg/response"
	"gorm.io/gorm"
)

// JoinRequestService owns the user-to-project join request flow, the mirror
// image of invitations: the requester asks, the lead decides. Accepting a
// request converts it into membership atomically with the status change.
type JoinRequestService struct {
	db       *gorm.DB
	teams    *TeamService
	notifier *NotificationService
}

func NewJoinRequestService(db *gorm.DB, teams *TeamService, notifier *NotificationService) *JoinRequestService {
	return &JoinRequestService{db: db, teams: teams, notifier: notifier}
}

type SendJoinRequestRequest struct {
	Message string `json:"message" binding:"max=500"`
}

// Send creates a PENDING join request from the caller to a project. The
// project must be accepting members, the caller must not already be on the
// team, and at most one PENDING request may exist per (project, user).
func (s *JoinRequestService) Send(projectID, byUserID string, req *SendJoinRequestRequest) (*models.ProjectJoinRequest, error) {
	project, err := s.teams.getProject(projectID)
	if err != nil {
		return nil, err
	}
	if !project.Status.CanAcceptMembers() {
		return nil, response.NewConflict("project is not recruiting")
	}

	isMember, err := s.teams.IsMember(s.db, project, byUserID)
	if err != nil {
		return nil, err
	}
	if isMember {
		return nil, response.NewConflict("you are already a member of this project")
	}

	var pending int64
	if err := s.db.Model(&models.ProjectJoinRequest{}).
		Where("project_id = ? AND user_id = ? AND status = ?",
			projectID, byUserID, models.StatusPending).
		Count(&pending).Error; err != nil {
		return nil, err
	}
	if pending > 0 {
		return nil, response.NewConflict("you already have a pending request for this project")
	}

	full, err := s.teams.IsFull(s.db, project)
	if err != nil {
		return nil, err
	}
	if full {
		return nil, response.NewConflict("project team is already full")
	}

	request := models.ProjectJoinRequest{
		ProjectID: projectID,
		UserID:    byUserID,
		Message:   req.Message,
		Status:    models.StatusPending,
	}
	if err := s.db.Create(&request).Error; err != nil {
		return nil, err
	}

	s.notifier.Notify(project.LeadID, models.NotifyJoinRequestReceived,
		"New join request for your project "+project.Title, project.ID)
	return &request, nil
}

// Accept approves a PENDING join request. Lead only. The status change and
// the membership insert happen in one transaction; if the team filled up,
// the whole acceptance rolls back with a Conflict and the request stays
// PENDING.
func (s *JoinRequestService) Accept(requestID uint, byUserID string) (*models.ProjectJoinRequest, error) {
	request, err := s.getRequest(requestID)
	if err != nil {
		return nil, err
	}

	project, err := s.teams.getProject(request.ProjectID)
	if err != nil {
		return nil, err
	}
	if !project.IsLead(byUserID) {
		return nil, response.NewForbidden("only the project lead can accept join requests")
	}
	if request.Status != models.StatusPending {
		return nil, response.NewConflict("join request has already been " + string(request.Status))
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.transition(tx, request, models.StatusAccepted); err != nil {
			return err
		}
		if !project.Status.CanAcceptMembers() {
			return response.NewConflict("project is no longer recruiting")
		}
		return s.teams.convertToMember(tx, project, request.UserID, models.RoleMember)
	})
	if txErr != nil {
		return nil, txErr
	}

	s.notifier.Notify(request.UserID, models.NotifyJoinRequestAccepted,
		"Your request to join "+project.Title+" was accepted", project.ID)
	return request, nil
}

// Reject declines a PENDING join request. Lead only.
func (s *JoinRequestService) Reject(requestID uint, byUserID string) (*models.ProjectJoinRequest, error) {
	request, err := s.getRequest(requestID)
	if err != nil {
		return nil, err
	}

	project, err := s.teams.getProject(request.ProjectID)
	if err != nil {
		return nil, err
	}
	if !project.IsLead(byUserID) {
		return nil, response.NewForbidden("only the project lead can reject join requests")
	}
	if request.Status != models.StatusPending {
		return nil, response.NewConflict("join request has already been " + string(request.Status))
	}

	if err := s.transition(s.db, request, models.StatusRejected); err != nil {
		return nil, err
	}

	s.notifier.Notify(request.UserID, models.NotifyJoinRequestRejected,
		"Your request to join "+project.Title+" was declined", project.ID)
	return request, nil
}

// Cancel withdraws a PENDING join request. Only the requester may cancel;
// the request moves to CANCELLED.
func (s *JoinRequestService) Cancel(requestID uint, byUserID string) (*models.ProjectJoinRequest, error) {
	request, err := s.getRequest(requestID)
	if err != nil {
		return nil, err
	}
	if request.UserID != byUserID {
		return nil, response.NewForbidden("only the requester can cancel a join request")
	}
	if request.Status != models.StatusPending {
		return nil, response.NewConflict("join request has already been " + string(request.Status))
	}

	if err := s.transition(s.db, request, models.StatusCancelled); err != nil {
		return nil, err
	}
	return request, nil
}

// ListForProject lists a project's join requests. Lead only.
func (s *JoinRequestService) ListForProject(projectID, byUserID string) ([]models.ProjectJoinRequest, error) {
	project, err := s.teams.getProject(projectID)
	if err != nil {
		return nil, err
	}
	if !project.IsLead(byUserID) {
		return nil, response.NewForbidden("only the project lead can view join requests")
	}

	var requests []models.ProjectJoinRequest
	if err := s.db.Preload("User").
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// ListForUser lists all join requests the user has sent.
func (s *JoinRequestService) ListForUser(userID string) ([]models.ProjectJoinRequest, error) {
	var requests []models.ProjectJoinRequest
	if err := s.db.Preload("Project").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// transition applies a guarded status update requiring the row to still be
// PENDING at update time.
func (s *JoinRequestService) transition(db *gorm.DB, request *models.ProjectJoinRequest, target models.ProposalStatus) error {
	if !request.Status.CanTransition(target) {
		return response.NewConflict("join request has already been " + string(request.Status))
	}
	now := time.Now()
	result := db.Model(&models.ProjectJoinRequest{}).
		Where("id = ? AND status = ?", request.ID, models.StatusPending).
		Updates(map[string]interface{}{
			"status":       target,
			"responded_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return response.NewConflict("join request is no longer pending")
	}
	request.Status = target
	request.RespondedAt = &now
	return nil
}

func (s *JoinRequestService) getRequest(id uint) (*models.ProjectJoinRequest, error) {
	var request models.ProjectJoinRequest
	if err := s.db.First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("join request not found")
		}
		return nil, err
	}
	return &request, nil
}
