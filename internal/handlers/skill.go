package handlers

import (
	"strconv"

	"github.com/RasuriVIGNESH/peerconnect/internal/middleware"
	"github.com/RasuriVIGNESH/peerconnect/internal/services"
	"github.com/RasuriVIGNESH/peerconnect/pkg/response"
	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillService     *services.SkillService
	userSkillService *services.UserSkillService
}

func NewSkillHandler(skillService *services.SkillService, userSkillService *services.UserSkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService, userSkillService: userSkillService}
}

type createSkillRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Category string `json:"category" binding:"max=50"`
}

// List returns the skill catalog
// GET /api/skills
func (h *SkillHandler) List(c *gin.Context) {
	var req services.SkillListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.skillService.List(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, resp)
}

// Popular returns the most-used skills
// GET /api/skills/popular
func (h *SkillHandler) Popular(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	skills, err := h.skillService.Popular(limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, skills)
}

// GetByID returns a skill by its id
// GET /api/skills/:id
func (h *SkillHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid skill id")
		return
	}

	skill, err := h.skillService.GetByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, skill)
}

// Create adds a new skill to the catalog
// POST /api/skills
func (h *SkillHandler) Create(c *gin.Context) {
	var req createSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	skill, err := h.skillService.Create(req.Name, req.Category)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, skill)
}

// AddToProfile attaches a skill to the caller's profile
// POST /api/users/me/skills
func (h *SkillHandler) AddToProfile(c *gin.Context) {
	var req services.AddUserSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	link, err := h.userSkillService.Add(middleware.GetUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, link)
}

// UpdateOnProfile changes a profile skill's level or experience
// PUT /api/users/me/skills/:id
func (h *SkillHandler) UpdateOnProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid skill id")
		return
	}

	var req services.UpdateUserSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	link, err := h.userSkillService.Update(middleware.GetUserID(c), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, link)
}

// RemoveFromProfile detaches a skill from the caller's profile
// DELETE /api/users/me/skills/:id
func (h *SkillHandler) RemoveFromProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid skill id")
		return
	}

	if err := h.userSkillService.Remove(middleware.GetUserID(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"removed": true})
}

// MySkills lists the caller's profile skills
// GET /api/users/me/skills
func (h *SkillHandler) MySkills(c *gin.Context) {
	links, err := h.userSkillService.List(middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, links)
}
