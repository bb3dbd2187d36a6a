package handler

import (
	"net/http"

	"portfoliohub/internal/config"
	"portfoliohub/internal/httpapi/middleware"
	"portfoliohub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every handler for route registration.
type Handlers struct {
	Auth         *AuthHandler
	Project      *ProjectHandler
	Comment      *CommentHandler
	Like         *LikeHandler
	About        *AboutHandler
	Notification *NotificationHandler
	Dashboard    *DashboardHandler
}

// RegisterRoutes wires the full HTTP surface onto the engine.
func RegisterRoutes(r *gin.Engine, h Handlers, authService service.AuthService, cfg *config.Config) {
	authRequired := middleware.Auth(authService)
	identity := middleware.OptionalAuth(authService)
	authLimit := middleware.RateLimit(cfg.AuthRatePerMinute, cfg.AuthRateBurst)

	r.GET("/check-conn", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public pages
	r.GET("/", h.Project.Home)
	r.GET("/about", h.About.Show)
	r.GET("/projects", h.Project.List)
	r.GET("/project/:id", identity, h.Project.Detail)
	r.GET("/project/:id/comments", identity, h.Comment.List)
	r.GET("/share_linkedin/:id", h.Project.Share)

	// Uploaded project images
	r.Static("/uploads", cfg.UploadDir)

	// Identity lifecycle
	r.POST("/register", authLimit, h.Auth.Register)
	r.POST("/login", authLimit, h.Auth.Login)
	r.POST("/logout", authRequired, h.Auth.Logout)

	// Interactions
	r.POST("/project/:id/comment", authRequired, h.Comment.Create)
	r.POST("/like_project/:id", authRequired, h.Like.Toggle)

	// Back office
	admin := r.Group("/admin", authRequired, middleware.RequireAdmin())
	{
		admin.GET("", h.Dashboard.Stats)
		admin.GET("/projects", h.Project.AdminList)
		admin.POST("/project/new", h.Project.Create)
		admin.POST("/project/:id/edit", h.Project.Update)
		admin.POST("/project/:id/delete", h.Project.Delete)
		admin.GET("/about", h.About.Show)
		admin.POST("/about", h.About.Update)
		admin.GET("/notifications", h.Notification.List)
		admin.POST("/notification/:id/delete", h.Notification.Delete)
	}
}
