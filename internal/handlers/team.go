package handlers

import (
	"github.com/RasuriVIGNESH/peerconnect/internal/middleware"
	"github.com/RasuriVIGNESH/peerconnect/internal/models"
	"github.com/RasuriVIGNESH/peerconnect/internal/services"
	"github.com/RasuriVIGNESH/peerconnect/pkg/response"
	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

type addMemberRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Role   string `json:"role"`
}

type updateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// ListMembers returns the project's team members
// GET /api/projects/:id/members
func (h *TeamHandler) ListMembers(c *gin.Context) {
	members, err := h.teamService.GetProjectMembers(c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, members)
}

// AddMember adds a user to the team directly (lead only)
// POST /api/projects/:id/members
func (h *TeamHandler) AddMember(c *gin.Context) {
	var req addMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	role := models.ProjectRole(req.Role)
	if req.Role == "" {
		role = models.RoleMember
	}

	member, err := h.teamService.AddMember(c.Param("id"), req.UserID, role, middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, member)
}

// RemoveMember removes a member from the team (lead only)
// DELETE /api/projects/:id/members/:userId
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	err := h.teamService.RemoveMember(c.Param("id"), c.Param("userId"), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"removed": true})
}

// UpdateMemberRole changes a member's role (lead only)
// PUT /api/projects/:id/members/:userId
func (h *TeamHandler) UpdateMemberRole(c *gin.Context) {
	var req updateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	member, err := h.teamService.UpdateMemberRole(
		c.Param("id"), c.Param("userId"), models.ProjectRole(req.Role), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, member)
}

// Leave removes the caller from the team
// POST /api/projects/:id/leave
func (h *TeamHandler) Leave(c *gin.Context) {
	if err := h.teamService.LeaveProject(c.Param("id"), middleware.GetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"left": true})
}

// MyMemberships lists the caller's memberships across projects
// GET /api/memberships
func (h *TeamHandler) MyMemberships(c *gin.Context) {
	members, err := h.teamService.GetUserMemberships(middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, members)
}
