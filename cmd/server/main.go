package main

import (
	"log"

	"github.com/avasseur/portfolio-builder/internal/config"
	"github.com/avasseur/portfolio-builder/internal/constants"
	"github.com/avasseur/portfolio-builder/internal/database"
	"github.com/avasseur/portfolio-builder/internal/email"
	"github.com/avasseur/portfolio-builder/internal/handlers"
	"github.com/avasseur/portfolio-builder/internal/middleware"
	"github.com/avasseur/portfolio-builder/internal/render"
	"github.com/avasseur/portfolio-builder/internal/repository"
	"github.com/avasseur/portfolio-builder/internal/services"
	"github.com/avasseur/portfolio-builder/internal/uploads"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup cookie session middleware
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize supporting infrastructure
	uploadStore := uploads.NewStore(cfg.UploadRoot)
	mailer := email.NewSMTPSender(cfg)
	renderer, err := render.NewHTMLRenderer()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	portfolioRepo := repository.NewPortfolioRepository(db)
	contentRepo := repository.NewContentRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, mailer)
	portfolioService := services.NewPortfolioService(userRepo, portfolioRepo, contentRepo, uploadStore)
	contentService := services.NewContentService(portfolioService, contentRepo)
	publicService := services.NewPublicService(portfolioRepo, contentRepo, uploadStore)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService, publicService, authService, renderer)
	contentHandler := handlers.NewContentHandler(contentService)
	publicHandler := handlers.NewPublicHandler(publicService, renderer)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Portfolio Builder API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
			auth.GET("/verify/:token", authHandler.VerifyEmail)
			auth.POST("/reset-password", authHandler.RequestPasswordReset)
			auth.POST("/reset-password/:token", authHandler.ResetPassword)
		}

		// Portfolio routes (protected)
		portfolio := api.Group("/portfolio")
		portfolio.Use(middleware.RequireAuth())
		{
			portfolio.GET("/dashboard", portfolioHandler.Dashboard)
			portfolio.PUT("/profile", portfolioHandler.UpdateProfile)
			portfolio.POST("/profile/image", portfolioHandler.UploadProfileImage)
			portfolio.PUT("/visibility", portfolioHandler.UpdateVisibility)
			portfolio.PUT("/theme", portfolioHandler.UpdateTheme)
			portfolio.POST("/cv", portfolioHandler.UploadCV)
			portfolio.POST("/cv/import", portfolioHandler.ImportCV)
			portfolio.GET("/preview", portfolioHandler.Preview)
			portfolio.GET("/analytics", portfolioHandler.Analytics)

			portfolio.GET("/projects", contentHandler.ListProjects)
			portfolio.POST("/projects", contentHandler.AddProject)
			portfolio.PUT("/projects/:id", contentHandler.UpdateProject)
			portfolio.DELETE("/projects/:id", contentHandler.DeleteProject)

			portfolio.GET("/experiences", contentHandler.ListExperiences)
			portfolio.POST("/experiences", contentHandler.AddExperience)
			portfolio.PUT("/experiences/:id", contentHandler.UpdateExperience)
			portfolio.DELETE("/experiences/:id", contentHandler.DeleteExperience)

			portfolio.GET("/education", contentHandler.ListEducation)
			portfolio.POST("/education", contentHandler.AddEducation)
			portfolio.PUT("/education/:id", contentHandler.UpdateEducation)
			portfolio.DELETE("/education/:id", contentHandler.DeleteEducation)

			portfolio.GET("/skills", contentHandler.ListSkills)
			portfolio.POST("/skills", contentHandler.AddSkill)
			portfolio.PUT("/skills/:id", contentHandler.UpdateSkill)
			portfolio.DELETE("/skills/:id", contentHandler.DeleteSkill)
		}

		// Search (public)
		api.GET("/search", portfolioHandler.Search)
	}

	// Public portfolio routes
	r.GET("/p/:slug", publicHandler.ViewPortfolio)
	r.GET("/p/:slug/api", publicHandler.ViewPortfolioJSON)
	r.GET("/p/:slug/embed", publicHandler.ViewPortfolioEmbed)
	r.GET("/p/:slug/cv", publicHandler.DownloadCV)

	// Uploaded profile images
	r.Static("/uploads/images", uploadStore.ImagesDir())

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
