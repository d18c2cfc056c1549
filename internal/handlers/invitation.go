package handlers

import (
	"strconv"

	"github.com/RasuriVIGNESH/peerconnect/internal/middleware"
	"github.com/RasuriVIGNESH/peerconnect/internal/services"
	"github.com/RasuriVIGNESH/peerconnect/pkg/response"
	"github.com/gin-gonic/gin"
)

type InvitationHandler struct {
	invitationService *services.InvitationService
}

func NewInvitationHandler(invitationService *services.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitationService: invitationService}
}

type respondInvitationRequest struct {
	Accept *bool `json:"accept" binding:"required"`
}

// Send invites a user to a project (lead only)
// POST /api/projects/:id/invitations
func (h *InvitationHandler) Send(c *gin.Context) {
	var req services.SendInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	invitation, err := h.invitationService.Send(c.Param("id"), middleware.GetUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, invitation)
}

// ListForProject lists a project's invitations (lead only)
// GET /api/projects/:id/invitations
func (h *InvitationHandler) ListForProject(c *gin.Context) {
	invitations, err := h.invitationService.ListForProject(c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, invitations)
}

// ListMine lists invitations addressed to the caller
// GET /api/invitations?pending=true
func (h *InvitationHandler) ListMine(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var err error
	var invitations interface{}
	if c.Query("pending") == "true" {
		invitations, err = h.invitationService.ListPendingForUser(userID)
	} else {
		invitations, err = h.invitationService.ListForUser(userID)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, invitations)
}

// Respond accepts or rejects an invitation (invited user only)
// POST /api/invitations/:id/respond
func (h *InvitationHandler) Respond(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid invitation id")
		return
	}

	var req respondInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	invitation, err := h.invitationService.Respond(uint(id), middleware.GetUserID(c), *req.Accept)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, invitation)
}

// Cancel withdraws a pending invitation (sender or lead)
// POST /api/invitations/:id/cancel
func (h *InvitationHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid invitation id")
		return
	}

	invitation, err := h.invitationService.Cancel(uint(id), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, invitation)
}
