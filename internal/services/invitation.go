package services

import (
	"errors"
	"time"

	"github.com/RasuriVIGNESH/peerconnect/internal/models"
	"github.com/RasuriVIGNESH/peerconnect/pkg/logger"
	"github.com/RasuriVIGNESH/peerconnect/pkg/response"
	"gorm.io/gorm"
)

// InvitationService owns the lead-to-user invitation flow. An invitation is
// a PENDING proposal until the invited user responds, the sender cancels it,
// or the expiry sweep times it out. Accepting converts it into a membership
// row atomically with the status change.
type InvitationService struct {
	db       *gorm.DB
	teams    *TeamService
	notifier *NotificationService
}

func NewInvitationService(db *gorm.DB, teams *TeamService, notifier *NotificationService) *InvitationService {
	return &InvitationService{db: db, teams: teams, notifier: notifier}
}

type SendInvitationRequest struct {
	InvitedUserID string `json:"invited_user_id" binding:"required"`
	Role          string `json:"role"`
	Message       string `json:"message" binding:"max=500"`
}

// Send creates a PENDING invitation. Only the project lead can invite, the
// project must be accepting members, the target must not already be on the
// team, and at most one PENDING invitation may exist per (project, user).
func (s *InvitationService) Send(projectID, byUserID string, req *SendInvitationRequest) (*models.ProjectInvitation, error) {
	role := models.ProjectRole(req.Role)
	if req.Role == "" {
		role = models.RoleMember
	}
	if !role.Valid() || role == models.RoleLead {
		return nil, response.NewBadRequest("invitations can only offer the MEMBER role")
	}

	project, err := s.teams.getProject(projectID)
	if err != nil {
		return nil, err
	}
	if !project.IsLead(byUserID) {
		return nil, response.NewForbidden("only the project lead can send invitations")
	}
	if !project.Status.CanAcceptMembers() {
		return nil, response.NewConflict("project is not recruiting")
	}
	if err := s.teams.userExists(req.InvitedUserID); err != nil {
		return nil, err
	}

	isMember, err := s.teams.IsMember(s.db, project, req.InvitedUserID)
	if err != nil {
		return nil, err
	}
	if isMember {
		return nil, response.NewConflict("user is already a member of this project")
	}

	var pending int64
	if err := s.db.Model(&models.ProjectInvitation{}).
		Where("project_id = ? AND invited_user_id = ? AND status = ?",
			projectID, req.InvitedUserID, models.StatusPending).
		Count(&pending).Error; err != nil {
		return nil, err
	}
	if pending > 0 {
		return nil, response.NewConflict("a pending invitation for this user already exists")
	}

	full, err := s.teams.IsFull(s.db, project)
	if err != nil {
		return nil, err
	}
	if full {
		return nil, response.NewConflict("project team is already full")
	}

	invitation := models.ProjectInvitation{
		ProjectID:     projectID,
		InvitedByID:   byUserID,
		InvitedUserID: req.InvitedUserID,
		Role:          role,
		Message:       req.Message,
		Status:        models.StatusPending,
	}
	if err := s.db.Create(&invitation).Error; err != nil {
		return nil, err
	}

	s.notifier.Notify(req.InvitedUserID, models.NotifyInvitationReceived,
		"You have been invited to join the project "+project.Title, project.ID)
	return &invitation, nil
}

// Respond accepts or rejects a PENDING invitation. Only the invited user may
// respond. Accepting converts the invitation into membership in the same
// transaction as the status change; if the team filled up in the meantime
// the whole response rolls back with a Conflict and the invitation stays
// PENDING.
func (s *InvitationService) Respond(invitationID uint, byUserID string, accept bool) (*models.ProjectInvitation, error) {
	invitation, err := s.getInvitation(invitationID)
	if err != nil {
		return nil, err
	}
	if invitation.InvitedUserID != byUserID {
		return nil, response.NewForbidden("only the invited user can respond to this invitation")
	}
	if invitation.Status != models.StatusPending {
		return nil, response.NewConflict("invitation has already been " + string(invitation.Status))
	}

	project, err := s.teams.getProject(invitation.ProjectID)
	if err != nil {
		return nil, err
	}

	target := models.StatusRejected
	if accept {
		target = models.StatusAccepted
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.transition(tx, invitation, target); err != nil {
			return err
		}
		if !accept {
			return nil
		}
		if !project.Status.CanAcceptMembers() {
			return response.NewConflict("project is no longer recruiting")
		}
		return s.teams.convertToMember(tx, project, invitation.InvitedUserID, invitation.Role)
	})
	if txErr != nil {
		return nil, txErr
	}

	if accept {
		s.notifier.Notify(invitation.InvitedByID, models.NotifyInvitationAccepted,
			"Your invitation to "+project.Title+" was accepted", project.ID)
	} else {
		s.notifier.Notify(invitation.InvitedByID, models.NotifyInvitationRejected,
			"Your invitation to "+project.Title+" was declined", project.ID)
	}
	return invitation, nil
}

// Cancel withdraws a PENDING invitation. The sender or the project lead may
// cancel. The invitation moves to CANCELLED, a terminal state distinct from
// rejection.
func (s *InvitationService) Cancel(invitationID uint, byUserID string) (*models.ProjectInvitation, error) {
	invitation, err := s.getInvitation(invitationID)
	if err != nil {
		return nil, err
	}

	project, err := s.teams.getProject(invitation.ProjectID)
	if err != nil {
		return nil, err
	}
	if invitation.InvitedByID != byUserID && !project.IsLead(byUserID) {
		return nil, response.NewForbidden("only the sender or the project lead can cancel an invitation")
	}
	if invitation.Status != models.StatusPending {
		return nil, response.NewConflict("invitation has already been " + string(invitation.Status))
	}

	if err := s.transition(s.db, invitation, models.StatusCancelled); err != nil {
		return nil, err
	}
	return invitation, nil
}

// ListForProject lists a project's invitations. Lead only.
func (s *InvitationService) ListForProject(projectID, byUserID string) ([]models.ProjectInvitation, error) {
	project, err := s.teams.getProject(projectID)
	if err != nil {
		return nil, err
	}
	if !project.IsLead(byUserID) {
		return nil, response.NewForbidden("only the project lead can view project invitations")
	}

	var invitations []models.ProjectInvitation
	if err := s.db.Preload("InvitedUser").
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&invitations).Error; err != nil {
		return nil, err
	}
	return invitations, nil
}

// ListForUser lists all invitations addressed to a user.
func (s *InvitationService) ListForUser(userID string) ([]models.ProjectInvitation, error) {
	var invitations []models.ProjectInvitation
	if err := s.db.Preload("Project").Preload("InvitedBy").
		Where("invited_user_id = ?", userID).
		Order("created_at DESC").
		Find(&invitations).Error; err != nil {
		return nil, err
	}
	return invitations, nil
}

// ListPendingForUser lists only the PENDING invitations for a user.
func (s *InvitationService) ListPendingForUser(userID string) ([]models.ProjectInvitation, error) {
	var invitations []models.ProjectInvitation
	if err := s.db.Preload("Project").Preload("InvitedBy").
		Where("invited_user_id = ? AND status = ?", userID, models.StatusPending).
		Order("created_at DESC").
		Find(&invitations).Error; err != nil {
		return nil, err
	}
	return invitations, nil
}

// ExpireStale moves PENDING invitations older than ttl to EXPIRED. Run by
// the scheduler; returns the number of invitations expired.
func (s *InvitationService) ExpireStale(ttl time.Duration) (int64, error) {
	cutoff := time.Now().Add(-ttl)
	now := time.Now()
	result := s.db.Model(&models.ProjectInvitation{}).
		Where("status = ? AND created_at < ?", models.StatusPending, cutoff).
		Updates(map[string]interface{}{
			"status":       models.StatusExpired,
			"responded_at": now,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected > 0 {
		logger.Infof("[Invitation] expired %d stale invitations", result.RowsAffected)
	}
	return result.RowsAffected, nil
}

// transition applies a guarded status update: the row must still be PENDING
// at update time, so two concurrent responders cannot both win.
func (s *InvitationService) transition(db *gorm.DB, invitation *models.ProjectInvitation, target models.ProposalStatus) error {
	if !invitation.Status.CanTransition(target) {
		return response.NewConflict("invitation has already been " + string(invitation.Status))
	}
	now := time.Now()
	result := db.Model(&models.ProjectInvitation{}).
		Where("id = ? AND status = ?", invitation.ID, models.StatusPending).
		Updates(map[string]interface{}{
			"status":       target,
			"responded_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return response.NewConflict("invitation is no longer pending")
	}
	invitation.Status = target
	invitation.RespondedAt = &now
	return nil
}

func (s *InvitationService) getInvitation(id uint) (*models.ProjectInvitation, error) {
	var invitation models.ProjectInvitation
	if err := s.db.First(&invitation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("invitation not found")
		}
		return nil, err
	}
	return &invitation, nil
}
