package main

import (
	"github.com/agora-dev/teko-board/backend/internal/config"
	"github.com/agora-dev/teko-board/backend/internal/handlers"
	"github.com/agora-dev/teko-board/backend/internal/middleware"
	"github.com/agora-dev/teko-board/backend/internal/models"
	"github.com/agora-dev/teko-board/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Rate limiter for credential endpoints
	authLimiter := middleware.NewRateLimiter(5, 10)

	// Health check
	healthHandler := handlers.NewHealthHandler()
	r.GET("/health", healthHandler.CheckHealth)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public, rate limited)
		auth := api.Group("/auth", authLimiter.Middleware())
		{
			auth.POST("/login", svc.authHandler.Login)
			auth.POST("/refresh", svc.authHandler.Refresh)
			auth.GET("/config", svc.authHandler.GetAuthConfig)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired(), middleware.AuditLog())
		{
			// Auth
			protected.GET("/auth/me", svc.authHandler.GetCurrentUser)
			protected.POST("/auth/logout", svc.authHandler.Logout)
			protected.POST("/auth/change-password", svc.authHandler.ChangePassword)

			// Roster (the main daily view)
			rosterHandler := handlers.NewRosterHandler(models.GetDB())
			protected.GET("/roster", rosterHandler.GetDay)

			// Dashboard
			dashboardHandler := handlers.NewDashboardHandler(models.GetDB())
			protected.GET("/dashboard/stats", dashboardHandler.GetStats)

			// Assignments
			assignmentHandler := handlers.NewAssignmentHandler(models.GetDB())
			protected.GET("/assignments", assignmentHandler.ListByDate)
			protected.GET("/assignments/:id", assignmentHandler.GetByID)
			protected.POST("/assignments", assignmentHandler.Create)
			protected.PUT("/assignments/:id", assignmentHandler.Update)
			protected.PATCH("/assignments/:id/status", assignmentHandler.UpdateStatus)
			protected.DELETE("/assignments/:id", assignmentHandler.Delete)

			// Workers
			workerHandler := handlers.NewWorkerHandler(models.GetDB())
			protected.GET("/workers", workerHandler.List)
			protected.GET("/workers/:id", workerHandler.GetByID)
			protected.GET("/workers/:id/assignments", assignmentHandler.ListByWorker)
			protected.POST("/workers", workerHandler.Create)

			// Projects (read only, owned by AGORA)
			projectHandler := handlers.NewProjectHandler(models.GetDB(), config.GlobalConfig.Agora.BaseURL)
			protected.GET("/projects", projectHandler.List)
			protected.GET("/projects/assignable", projectHandler.ListAssignable)
			protected.GET("/projects/:id", projectHandler.GetByID)
			protected.GET("/projects/:id/assignments", assignmentHandler.ListByProject)

			// Partners (read only, owned by AGORA)
			partnerHandler := handlers.NewPartnerHandler(models.GetDB())
			protected.GET("/partners", partnerHandler.List)
			protected.GET("/partners/:id", partnerHandler.GetByID)
		}

		// Admin only routes
		admin := api.Group("")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired(), middleware.AuditLog())
		{
			// System Logs
			systemLogHandler := handlers.NewSystemLogHandler(models.GetDB())
			admin.GET("/system-logs", systemLogHandler.List)
			admin.GET("/system-logs/modules", systemLogHandler.GetModules)
			admin.GET("/system-logs/retention", systemLogHandler.GetRetention)
			admin.PUT("/system-logs/retention", systemLogHandler.SetRetention)

			// System Config
			systemConfigHandler := handlers.NewSystemConfigHandler(models.GetDB())
			admin.GET("/system-config", systemConfigHandler.GetByGroup)
			admin.PUT("/system-config", systemConfigHandler.Set)
		}
	}
}
