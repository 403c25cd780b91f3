package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calltrack/internal/auth"
	"calltrack/internal/config"
	"calltrack/internal/db"
	"calltrack/internal/handler"
	"calltrack/internal/middleware"
	"calltrack/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	gdb, err := db.Connect(cfg)
	if err != nil {
		return nil, err
	}
	log.Println("✅ Connected to database")

	if err := db.Migrate(gdb); err != nil {
		return nil, err
	}
	log.Println("✅ Migrations applied")

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Initialize repositories
	userRepo := repository.NewUserRepository(gdb)
	tagRepo := repository.NewTagRepository(gdb)
	callRepo := repository.NewCallRepository(gdb)
	taskRepo := repository.NewTaskRepository(gdb)

	// Initialize auth and handlers
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)
	authHandler := handler.NewAuthHandler(userRepo, tokens, cfg.CookieMaxAge, cfg.CookieSecure)
	callHandler := handler.NewCallHandler(callRepo, tagRepo)
	tagHandler := handler.NewTagHandler(tagRepo)
	taskHandler := handler.NewTaskHandler(taskRepo, callRepo)

	// Public routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/logout", authHandler.Logout)

	// Protected routes - require a valid session
	session := r.Group("/")
	session.Use(middleware.SessionRequired(tokens))
	{
		session.GET("/auth/profile", middleware.RequireOperation(middleware.OpProfileRead), authHandler.Profile)

		// Call routes
		calls := session.Group("/calls")
		{
			calls.GET("", middleware.RequireOperation(middleware.OpCallsRead), callHandler.GetAll)
			calls.GET("/:id", middleware.RequireOperation(middleware.OpCallsRead), callHandler.GetByID)
			calls.POST("", middleware.RequireOperation(middleware.OpCallsWrite), callHandler.Create)
			calls.PUT("/:id", middleware.RequireOperation(middleware.OpCallsWrite), callHandler.Update)
			calls.DELETE("/:id", middleware.RequireOperation(middleware.OpCallsWrite), callHandler.Delete)
			calls.POST("/:id/tags", middleware.RequireOperation(middleware.OpCallsWrite), callHandler.AddTags)
			calls.DELETE("/:id/tags", middleware.RequireOperation(middleware.OpCallsWrite), callHandler.RemoveTags)
			calls.GET("/:id/tasks", middleware.RequireOperation(middleware.OpTasksRead), taskHandler.GetByCall)
		}

		// Tag routes - mutation is admin-only
		tags := session.Group("/tags")
		{
			tags.GET("", middleware.RequireOperation(middleware.OpTagsRead), tagHandler.GetAll)
			tags.GET("/:id", middleware.RequireOperation(middleware.OpTagsRead), tagHandler.GetByID)
			tags.POST("", middleware.RequireOperation(middleware.OpTagsCreate), tagHandler.Create)
			tags.PUT("/:id", middleware.RequireOperation(middleware.OpTagsUpdate), tagHandler.Update)
			tags.DELETE("/:id", middleware.RequireOperation(middleware.OpTagsDelete), tagHandler.Delete)
		}

		// Task routes
		tasks := session.Group("/tasks")
		{
			tasks.GET("", middleware.RequireOperation(middleware.OpTasksRead), taskHandler.GetAll)
			tasks.GET("/:id", middleware.RequireOperation(middleware.OpTasksRead), taskHandler.GetByID)
			tasks.POST("", middleware.RequireOperation(middleware.OpTasksWrite), taskHandler.Create)
			tasks.PUT("/:id", middleware.RequireOperation(middleware.OpTasksWrite), taskHandler.Update)
			tasks.DELETE("/:id", middleware.RequireOperation(middleware.OpTasksWrite), taskHandler.Delete)
		}
	}

	return &Server{
		Engine: r,
		DB:     gdb,
		Config: cfg,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
