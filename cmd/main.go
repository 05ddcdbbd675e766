package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/vamshigadde09/GWG/config"
	"github.com/vamshigadde09/GWG/database"
	_ "github.com/vamshigadde09/GWG/docs" // Swagger docs - auto-generated
	"github.com/vamshigadde09/GWG/internal/cache"
	"github.com/vamshigadde09/GWG/internal/controller/authctrl"
	studentctrl "github.com/vamshigadde09/GWG/internal/controller/student"
	teacherctrl "github.com/vamshigadde09/GWG/internal/controller/teacher"
	"github.com/vamshigadde09/GWG/internal/jobs"
	"github.com/vamshigadde09/GWG/internal/logger"
	"github.com/vamshigadde09/GWG/internal/middleware"
	"github.com/vamshigadde09/GWG/internal/model"
	"github.com/vamshigadde09/GWG/internal/repository"
	"github.com/vamshigadde09/GWG/internal/service"
)

// @title Mock Interview Scheduling API
// @version 1.0
// @description API for scheduling mock interviews between students and teachers, with notification fan-out and post-interview feedback.
// @contact.name API Support
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			cache.NewRedisClient,
			NewGinEngine, // Provides *gin.Engine
		),

		// Repositories layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewTeacherRepository,
			repository.NewInterviewRequestRepository,
			repository.NewFeedbackRepository,
			repository.NewEventRepository,
		),

		// Services layer
		fx.Provide(
			service.NewAuthService,
			service.NewTeacherService,
			service.NewNotificationService,
			service.NewInterviewService,
			service.NewFeedbackService,
		),

		// API controllers layer
		fx.Provide(
			authctrl.NewAuthController,
			studentctrl.NewInterviewController,
			teacherctrl.NewTeacherController,
		),

		// Background jobs
		fx.Provide(jobs.NewOutboxReplayJob),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(jobs.Register),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	redisClient *redis.Client,
	authCtrl *authctrl.AuthController,
	interviewCtrl *studentctrl.InterviewController,
	teacherCtrl *teacherctrl.TeacherController,
) {
	limiter := middleware.NewRedisLimiter(redisClient)

	api := router.Group("/api/v1")

	authGroup := api.Group("/user")
	{
		// Brute-force protection on the credential endpoints.
		authGroup.POST("/register", middleware.RateLimit(limiter, 10, time.Minute), authCtrl.Register)
		authGroup.POST("/login", middleware.RateLimit(limiter, 20, time.Minute), authCtrl.Login)
		authGroup.GET("/me", middleware.RequireAuth(cfg.JWT.Secret), authCtrl.Me)
	}

	interviewGroup := api.Group("/interview", middleware.RequireAuth(cfg.JWT.Secret))
	{
		// Student side of the lifecycle.
		interviewGroup.POST("/create", middleware.RequireRole(model.RoleStudent), interviewCtrl.CreateRequest)
		interviewGroup.GET("/studentRequests", middleware.RequireRole(model.RoleStudent), interviewCtrl.StudentRequests)
		interviewGroup.GET("/feedback", middleware.RequireRole(model.RoleStudent), interviewCtrl.Feedback)
		interviewGroup.DELETE("/:id", middleware.RequireRole(model.RoleStudent), interviewCtrl.Withdraw)

		// Teacher side of the lifecycle.
		interviewGroup.POST("/accept", middleware.RequireRole(model.RoleTeacher), teacherCtrl.Accept)
		interviewGroup.POST("/reject", middleware.RequireRole(model.RoleTeacher), teacherCtrl.Reject)
		interviewGroup.GET("/acceptedRequests", middleware.RequireRole(model.RoleTeacher), teacherCtrl.AcceptedRequests)
		interviewGroup.PUT("/attendance", middleware.RequireRole(model.RoleTeacher), teacherCtrl.Attendance)
		interviewGroup.POST("/submitFeedback", middleware.RequireRole(model.RoleTeacher), teacherCtrl.SubmitFeedback)
	}

	teacherGroup := api.Group("/teacher", middleware.RequireAuth(cfg.JWT.Secret))
	{
		teacherGroup.GET("/notifications", middleware.RequireRole(model.RoleTeacher), teacherCtrl.Notifications)
		teacherGroup.PUT("/notifications/:applicationNumber/status", middleware.RequireRole(model.RoleTeacher), teacherCtrl.UpdateNotificationStatus)
		teacherGroup.PUT("/profile", middleware.RequireRole(model.RoleTeacher), teacherCtrl.UpdateProfile)
		teacherGroup.GET("/availability", middleware.RequireRole(model.RoleTeacher), teacherCtrl.Availability)
		teacherGroup.PUT("/availability", middleware.RequireRole(model.RoleTeacher), teacherCtrl.UpdateAvailability)
		teacherGroup.GET("/search", teacherCtrl.Search)
		teacherGroup.GET("/:id", teacherCtrl.Details)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Interview scheduling API listening on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.StudentProfile{},
		&model.TeacherProfile{},
		&model.InterviewRequest{},
		&model.TeacherAssignment{},
		&model.Notification{},
		&model.Feedback{},
		&model.LifecycleEvent{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
