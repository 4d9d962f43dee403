package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"portfolio/database"
	"portfolio/handlers"
	"portfolio/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func corsOrigins() []string {
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		parts := strings.Split(raw, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		return origins
	}
	return []string{"http://localhost:3000", "http://localhost:5173"}
}

func SetupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	// Public routes, rate limited per client IP
	public := router.Group("/api")
	public.Use(middleware.RateLimitMiddleware(100, time.Minute))

	public.GET("/profile", handlers.GetProfile)
	public.GET("/profile/resume", handlers.DownloadResume)
	public.GET("/projects", handlers.GetProjects)
	public.GET("/projects/:id", handlers.GetProject)
	public.GET("/blogs", handlers.GetBlogs)
	public.GET("/blogs/:slug", handlers.GetBlogBySlug)
	public.GET("/skills", handlers.GetSkills)
	public.GET("/experience", handlers.GetExperience)
	public.GET("/showcase", handlers.GetShowcase)
	public.POST("/contact", handlers.SendMessage)

	// Auth
	auth := router.Group("/api/auth")
	auth.Use(middleware.RateLimitMiddleware(20, time.Minute))
	auth.POST("/login", handlers.Login)
	auth.POST("/logout", handlers.Logout)
	auth.GET("/profile", middleware.JWTAuthMiddleware(), handlers.GetAuthProfile)
	auth.PUT("/profile", middleware.JWTAuthMiddleware(), handlers.UpdateAuthProfile)

	// Admin routes
	admin := router.Group("/api/admin")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.RequireAdmin())

	// Projects
	admin.GET("/projects", handlers.GetAdminProjects)
	admin.GET("/projects/:id", handlers.GetAdminProject)
	admin.POST("/projects", handlers.CreateProject)
	admin.PUT("/projects/:id", handlers.UpdateProject)
	admin.DELETE("/projects/:id", handlers.DeleteProject)
	admin.POST("/projects/:id/images", handlers.UploadProjectImages)
	admin.POST("/projects/thumbnail", handlers.UploadProjectThumbnail)
	admin.POST("/projects/reorder", handlers.ReorderHandler(func() *mongo.Collection { return database.Projects }, "Projects"))

	// Blogs
	admin.GET("/blogs", handlers.GetAdminBlogs)
	admin.GET("/blogs/:id", handlers.GetAdminBlog)
	admin.POST("/blogs", handlers.CreateBlog)
	admin.PUT("/blogs/:id", handlers.UpdateBlog)
	admin.DELETE("/blogs/:id", handlers.DeleteBlog)
	admin.POST("/blogs/:id/publish", handlers.PublishBlog)
	admin.POST("/blogs/image", handlers.UploadBlogImage)

	// Skills
	admin.GET("/skills", handlers.GetAdminSkills)
	admin.POST("/skills", handlers.CreateSkill)
	admin.PUT("/skills/:id", handlers.UpdateSkill)
	admin.DELETE("/skills/:id", handlers.DeleteSkill)
	admin.POST("/skills/reorder", handlers.ReorderHandler(func() *mongo.Collection { return database.Skills }, "Skills"))

	// Experience
	admin.GET("/experience", handlers.GetAdminExperience)
	admin.POST("/experience", handlers.CreateExperience)
	admin.PUT("/experience/:id", handlers.UpdateExperience)
	admin.DELETE("/experience/:id", handlers.DeleteExperience)
	admin.POST("/experience/reorder", handlers.ReorderHandler(func() *mongo.Collection { return database.Experience }, "Experience"))

	// Showcase
	admin.GET("/showcase", handlers.GetAdminShowcase)
	admin.POST("/showcase", handlers.CreateShowcase)
	admin.PUT("/showcase/:id", handlers.UpdateShowcase)
	admin.DELETE("/showcase/:id", handlers.DeleteShowcase)
	admin.POST("/showcase/:id/media", handlers.UploadShowcaseMedia)
	admin.POST("/showcase/:id/thumbnail", handlers.UploadShowcaseThumbnail)
	admin.POST("/showcase/reorder", handlers.ReorderHandler(func() *mongo.Collection { return database.Showcase }, "Showcase"))

	// Profile and settings singletons
	admin.GET("/profile", handlers.GetAdminProfile)
	admin.PUT("/profile", handlers.UpdateProfile)
	admin.POST("/profile/resume", handlers.UploadResume)
	admin.GET("/settings", handlers.GetSettings)
	admin.PUT("/settings", handlers.UpdateSettings)

	// Messages
	admin.GET("/messages", handlers.GetMessages)
	admin.POST("/messages/:id/read", handlers.MarkMessageRead)
	admin.POST("/messages/:id/reply", handlers.ReplyToMessage)
	admin.DELETE("/messages/:id", handlers.DeleteMessage)

	// Analytics
	admin.GET("/analytics/overview", handlers.GetAnalyticsOverview)
	admin.GET("/analytics/recent", handlers.GetRecentActivity)
	admin.GET("/analytics/blogs", handlers.GetBlogAnalytics)
	admin.GET("/analytics/projects", handlers.GetProjectAnalytics)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	return router
}
