package routes

import (
	adminapi "remcua-backend/internal/api/admin"
	authapi "remcua-backend/internal/api/auth"
	"remcua-backend/internal/api/banners"
	"remcua-backend/internal/api/categories"
	"remcua-backend/internal/api/colors"
	contactsapi "remcua-backend/internal/api/contacts"
	"remcua-backend/internal/api/curtains"
	imagesapi "remcua-backend/internal/api/images"
	"remcua-backend/internal/api/posts"
	"remcua-backend/internal/api/projects"
	"remcua-backend/internal/api/upload"
	"remcua-backend/internal/api/users"
	"remcua-backend/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Storefront reads, no auth
	r.GET("/curtains", curtains.ListCurtains)
	r.GET("/curtains/:id", curtains.GetCurtain)
	r.GET("/categories", categories.ListCategories)
	r.GET("/categories/:id", categories.GetCategory)
	r.GET("/colors", colors.ListColors)
	r.GET("/colors/:id", colors.GetColor)
	r.GET("/banners", banners.ListBanners)
	r.GET("/banners/:id", banners.GetBanner)
	r.GET("/projects", projects.ListProjects)
	r.GET("/projects/type/:type", projects.ListProjectsByType)
	r.GET("/projects/:id", projects.GetProject)
	r.GET("/posts", posts.ListPosts)
	r.GET("/posts/:id", posts.GetPost)
	r.GET("/images/curtain/:curtainId", imagesapi.ListCurtainImages)

	// Public writes go through input sanitizing
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.POST("/contacts", contactsapi.CreateContact)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	authed := r.Group("/")
	authed.Use(middleware.AuthMiddleware())
	authed.GET("/me", users.GetCurrentUser)
	authed.POST("/change-password", authapi.ChangePassword)

	// Back-office writes, lead handling and uploads are admin-only; staff
	// accounts (self-registered or Google-created) stop here.
	auth := authed.Group("/")
	auth.Use(middleware.RequireRole("admin"))

	auth.POST("/curtains", curtains.CreateCurtain)
	auth.PUT("/curtains/:id", curtains.UpdateCurtain)
	auth.DELETE("/curtains/:id", curtains.DeleteCurtain)

	auth.POST("/categories", categories.CreateCategory)
	auth.PUT("/categories/:id", categories.UpdateCategory)
	auth.DELETE("/categories/:id", categories.DeleteCategory)

	auth.POST("/colors", colors.CreateColor)
	auth.PUT("/colors/:id", colors.UpdateColor)
	auth.DELETE("/colors/:id", colors.DeleteColor)

	auth.POST("/banners", banners.CreateBanner)
	auth.PUT("/banners/:id", banners.UpdateBanner)
	auth.DELETE("/banners/:id", banners.DeleteBanner)

	auth.POST("/projects", projects.CreateProject)
	auth.PUT("/projects/:id", projects.UpdateProject)
	auth.DELETE("/projects/:id", projects.DeleteProject)

	auth.POST("/posts", posts.CreatePost)
	auth.PUT("/posts/:id", posts.UpdatePost)
	auth.DELETE("/posts/:id", posts.DeletePost)

	auth.GET("/contacts", contactsapi.ListContacts)
	auth.GET("/contacts/:id", contactsapi.GetContact)
	auth.PUT("/contacts/:id/status", contactsapi.UpdateContactStatus)
	auth.DELETE("/contacts/:id", contactsapi.DeleteContact)

	auth.POST("/images/curtain/:curtainId", imagesapi.AddCurtainImage)
	auth.DELETE("/images/:id", imagesapi.DeleteImage)

	auth.POST("/upload/from-device", upload.FromDevice)
	auth.POST("/upload/video", upload.Video)
	auth.POST("/upload/multiple-from-device", upload.MultipleFromDevice)
	auth.POST("/upload/from-url", upload.FromURL)
	auth.POST("/upload/editor", upload.Editor)

	// Admin console
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.PUT("/users/:id/role", adminapi.UpdateUserRole)
}
