package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"picboard/config"
	"picboard/handlers"
	"picboard/middleware"
	"picboard/repositories"
	"picboard/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	poolRepo := repositories.NewPoolRepository(db)
	settingRepo := repositories.NewSettingRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	searchService := services.NewSearchService(postRepo)
	tagService := services.NewTagService(tagRepo)
	poolService := services.NewPoolService(poolRepo, postRepo)
	postService := services.NewPostService(postRepo, tagRepo, tagService, poolService, filesDir())
	settingsService, err := services.NewSettingsService(settingRepo)
	if err != nil {
		log.Fatal("Failed to load settings: ", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	postHandler := handlers.NewPostHandler(postService, searchService)
	poolHandler := handlers.NewPoolHandler(poolService)
	tagHandler := handlers.NewTagHandler(tagService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	// Setup router
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.SanitizeInputMiddleware())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public reads; a bearer token widens what the caller can see
		public := v1.Group("/")
		public.Use(middleware.OptionalAuthMiddleware())
		{
			public.GET("/posts", postHandler.SearchPosts)
			public.GET("/posts/:id", postHandler.GetPost)
			public.GET("/pools", poolHandler.GetPools)
			public.GET("/pools/:id", poolHandler.GetPool)
			public.POST("/tags/suggest", tagHandler.SuggestTags)
			public.GET("/settings", settingsHandler.GetSettings)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Posts
			posts := protected.Group("/posts")
			{
				posts.POST("", postHandler.CreatePost)
				posts.PUT("/:id", postHandler.UpdatePost)
				posts.DELETE("/:id", postHandler.DeletePost)
			}

			// Pools
			pools := protected.Group("/pools")
			{
				pools.POST("", poolHandler.CreatePool)
				pools.PUT("/:id", poolHandler.RenamePool)
				pools.PUT("/:id/visibility", poolHandler.SetPoolVisibility)
				pools.DELETE("/:id", poolHandler.DeletePool)
				pools.POST("/:id/posts", poolHandler.AddPoolPost)
				pools.PUT("/:id/sort", poolHandler.SortPool)
				pools.DELETE("/:id/posts/:poolPostId", poolHandler.RemovePoolPost)
			}

			// Admin routes
			admin := protected.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.PUT("/tags", tagHandler.EditTag)
				admin.POST("/tags/clean", tagHandler.CleanTags)
				admin.PUT("/settings", settingsHandler.UpdateSettings)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

func filesDir() string {
	if dir := os.Getenv("FILES_DIR"); dir != "" {
		return dir
	}
	return "files"
}
