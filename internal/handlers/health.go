package handlers

import (
	"github.com/RasuriVIGNESH/peerconnect/internal/models"
	"github.com/RasuriVIGNESH/peerconnect/internal/services"
	"github.com/gin-gonic/gin"
)

// HealthHandler provides health check endpoints.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// CheckHealth returns the health status of all subsystems.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	overall := "healthy"

	// Database check
	dbStatus := "ok"
	sqlDB, err := models.GetDB().DB()
	if err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	}

	// Queue mode
	taskQueue := services.GetTaskQueue()
	queueMode := "sync"
	if taskQueue != nil && taskQueue.IsAsync() {
		queueMode = "async (Redis)"
	}

	// Pending proposal counts
	var pendingInvitations, pendingRequests int64
	models.GetDB().Model(&models.ProjectInvitation{}).
		Where("status = ?", models.StatusPending).
		Count(&pendingInvitations)
	models.GetDB().Model(&models.ProjectJoinRequest{}).
		Where("status = ?", models.StatusPending).
		Count(&pendingRequests)

	c.JSON(200, gin.H{
		"status":  overall,
		"service": "peerconnect",
		"components": gin.H{
			"database":            dbStatus,
			"queue_mode":          queueMode,
			"pending_invitations": pendingInvitations,
			"pending_requests":    pendingRequests,
		},
	})
}
