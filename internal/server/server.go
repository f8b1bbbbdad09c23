package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/planhub/planhub/internal/config"
	"github.com/planhub/planhub/internal/database"
	"github.com/planhub/planhub/internal/email"
	"github.com/planhub/planhub/internal/handlers"
	"github.com/planhub/planhub/internal/logging"
	"github.com/planhub/planhub/internal/repositories"
	"github.com/planhub/planhub/internal/routes"
	"github.com/planhub/planhub/internal/services"
)

var log = logging.C("server")

// New connects to Postgres and Redis, wires every layer together and
// returns a ready-to-run HTTP server.
func New(cfg *config.Config) (*http.Server, error) {
	pool, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(pool); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
	})

	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis at %s:%s: %w", cfg.RedisHost, cfg.RedisPort, err)
		}
		log.Info("Connected to Redis successfully")
	}

	// Dependency injection
	userRepo := repositories.NewUserRepository(pool)
	sessionRepo := repositories.NewSessionRepository(pool)
	redisRepo := repositories.NewRedisRepository(rdb)
	orgRepo := repositories.NewOrganizationRepository(pool)
	workspaceRepo := repositories.NewWorkspaceRepository(pool)
	workflowRepo := repositories.NewWorkflowRepository(pool)
	projectRepo := repositories.NewProjectRepository(pool)
	sprintRepo := repositories.NewSprintRepository(pool)
	taskRepo := repositories.NewTaskRepository(pool)
	commentRepo := repositories.NewCommentRepository(pool)
	labelRepo := repositories.NewLabelRepository(pool)
	timeEntryRepo := repositories.NewTimeEntryRepository(pool)

	mailer := email.NewLogMailer()
	access := services.NewAccessService(orgRepo, workspaceRepo, projectRepo, taskRepo)

	userService := services.NewUserService(userRepo, sessionRepo, redisRepo, mailer)
	orgService := services.NewOrganizationService(orgRepo, workflowRepo, userRepo, access, mailer)
	workspaceService := services.NewWorkspaceService(workspaceRepo, access)
	workflowService := services.NewWorkflowService(workflowRepo, access)
	projectService := services.NewProjectService(projectRepo, workflowRepo, taskRepo, labelRepo, access)
	sprintService := services.NewSprintService(sprintRepo, access)
	taskService := services.NewTaskService(
		taskRepo, workflowRepo, sprintRepo, commentRepo, labelRepo, timeEntryRepo, userRepo, access, mailer,
	)

	authHandler := handlers.NewAuthHandler(userService)
	orgHandler := handlers.NewOrganizationHandler(orgService)
	workspaceHandler := handlers.NewWorkspaceHandler(workspaceService)
	workflowHandler := handlers.NewWorkflowHandler(workflowService)
	projectHandler := handlers.NewProjectHandler(projectService)
	sprintHandler := handlers.NewSprintHandler(sprintService)
	taskHandler := handlers.NewTaskHandler(taskService)

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(router, authHandler, orgHandler, workspaceHandler, workflowHandler, projectHandler, sprintHandler, taskHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return srv, nil
}
