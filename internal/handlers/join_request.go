package handlers

import (
	"strconv"

	"github.com/RasuriVIGNESH/peerconnect/internal/middleware"
	"github.com/RasuriVIGNESH/peerconnect/internal/services"
	"github.com/RasuriVIGNESH/peerconnect/pkg/response"
	"github.com/gin-gonic/gin"
)

type JoinRequestHandler struct {
	joinRequestService *services.JoinRequestService
}

func NewJoinRequestHandler(joinRequestService *services.JoinRequestService) *JoinRequestHandler {
	return &JoinRequestHandler{joinRequestService: joinRequestService}
}

// Send asks to join a project
// POST /api/projects/:id/join-requests
func (h *JoinRequestHandler) Send(c *gin.Context) {
	var req services.SendJoinRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	request, err := h.joinRequestService.Send(c.Param("id"), middleware.GetUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, request)
}

// ListForProject lists a project's join requests (lead only)
// GET /api/projects/:id/join-requests
func (h *JoinRequestHandler) ListForProject(c *gin.Context) {
	requests, err := h.joinRequestService.ListForProject(c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, requests)
}

// ListMine lists join requests the caller has sent
// GET /api/join-requests
func (h *JoinRequestHandler) ListMine(c *gin.Context) {
	requests, err := h.joinRequestService.ListForUser(middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, requests)
}

// Accept approves a join request (lead only)
// POST /api/join-requests/:id/accept
func (h *JoinRequestHandler) Accept(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid join request id")
		return
	}

	request, err := h.joinRequestService.Accept(uint(id), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, request)
}

// Reject declines a join request (lead only)
// POST /api/join-requests/:id/reject
func (h *JoinRequestHandler) Reject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid join request id")
		return
	}

	request, err := h.joinRequestService.Reject(uint(id), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, request)
}

// Cancel withdraws a pending join request (requester only)
// POST /api/join-requests/:id/cancel
func (h *JoinRequestHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid join request id")
		return
	}

	request, err := h.joinRequestService.Cancel(uint(id), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, request)
}
