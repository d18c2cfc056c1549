package main

import (
	"github.com/RasuriVIGNESH/peerconnect/internal/middleware"
	"github.com/RasuriVIGNESH/peerconnect/pkg/logger"
	"github.com/gin-gonic/gin"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Rate limiter for the public auth routes
	authLimiter := middleware.NewRateLimiter(5, 10)

	// Health check
	r.GET("/health", svc.healthHandler.CheckHealth)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth", authLimiter.Middleware())
		{
			auth.POST("/register", svc.authHandler.Register)
			auth.POST("/login", svc.authHandler.Login)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		{
			// Current user
			protected.GET("/auth/me", svc.authHandler.Me)
			protected.PUT("/auth/me", svc.authHandler.UpdateProfile)

			// Profile skills
			protected.GET("/users/me/skills", svc.skillHandler.MySkills)
			protected.POST("/users/me/skills", svc.skillHandler.AddToProfile)
			protected.PUT("/users/me/skills/:id", svc.skillHandler.UpdateOnProfile)
			protected.DELETE("/users/me/skills/:id", svc.skillHandler.RemoveFromProfile)

			// Skill catalog
			protected.GET("/skills", svc.skillHandler.List)
			protected.GET("/skills/popular", svc.skillHandler.Popular)
			protected.GET("/skills/:id", svc.skillHandler.GetByID)
			protected.POST("/skills", svc.skillHandler.Create)

			// Projects
			protected.GET("/projects", svc.projectHandler.List)
			protected.GET("/projects/discover", svc.projectHandler.Discover)
			protected.GET("/projects/mine", svc.projectHandler.Mine)
			protected.GET("/projects/:id", svc.projectHandler.GetByID)
			protected.POST("/projects", svc.projectHandler.Create)
			protected.PUT("/projects/:id", svc.projectHandler.Update)
			protected.DELETE("/projects/:id", svc.projectHandler.Delete)

			// Team members
			protected.GET("/projects/:id/members", svc.teamHandler.ListMembers)
			protected.POST("/projects/:id/members", svc.teamHandler.AddMember)
			protected.PUT("/projects/:id/members/:userId", svc.teamHandler.UpdateMemberRole)
			protected.DELETE("/projects/:id/members/:userId", svc.teamHandler.RemoveMember)
			protected.POST("/projects/:id/leave", svc.teamHandler.Leave)
			protected.GET("/memberships", svc.teamHandler.MyMemberships)

			// Invitations
			protected.POST("/projects/:id/invitations", svc.invitationHandler.Send)
			protected.GET("/projects/:id/invitations", svc.invitationHandler.ListForProject)
			protected.GET("/invitations", svc.invitationHandler.ListMine)
			protected.POST("/invitations/:id/respond", svc.invitationHandler.Respond)
			protected.POST("/invitations/:id/cancel", svc.invitationHandler.Cancel)

			// Join requests
			protected.POST("/projects/:id/join-requests", svc.joinRequestHandler.Send)
			protected.GET("/projects/:id/join-requests", svc.joinRequestHandler.ListForProject)
			protected.GET("/join-requests", svc.joinRequestHandler.ListMine)
			protected.POST("/join-requests/:id/accept", svc.joinRequestHandler.Accept)
			protected.POST("/join-requests/:id/reject", svc.joinRequestHandler.Reject)
			protected.POST("/join-requests/:id/cancel", svc.joinRequestHandler.Cancel)

			// Notifications
			protected.GET("/notifications", svc.notificationHandler.List)
			protected.GET("/notifications/unread-count", svc.notificationHandler.UnreadCount)
			protected.PUT("/notifications/read-all", svc.notificationHandler.MarkAllRead)
			protected.PUT("/notifications/:id/read", svc.notificationHandler.MarkRead)
		}
	}
}
