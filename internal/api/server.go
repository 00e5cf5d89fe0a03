package api

import (
	"fmt"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/athletix/club-api/docs"
	v1 "github.com/athletix/club-api/internal/api/handler/v1"
	"github.com/athletix/club-api/internal/api/middleware"
	"github.com/athletix/club-api/internal/config"
	"github.com/athletix/club-api/internal/repository"
	"github.com/athletix/club-api/internal/repository/dao"
	"github.com/athletix/club-api/internal/service"
)

type Server struct {
	Config      *config.AppConfig
	Router      *gin.Engine
	maintenance *service.MaintenanceService
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	athleteHandler := s.initAthleteHandler(db)
	eventHandler := s.initEventHandler(db)
	resultHandler := s.initResultHandler(db)
	timelineHandler := s.initTimelineHandler(db)
	referenceHandler := s.initReferenceHandler(db)
	s.MountHandlers(authHandler, userHandler, athleteHandler, eventHandler, resultHandler, timelineHandler, referenceHandler)

	s.maintenance = service.NewMaintenanceService(
		repository.NewSubmissionRepository(dao.NewSubmissionDAO(db)),
		time.Duration(conf.Maintenance.SubmissionTTLHours)*time.Hour,
	)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initAthleteHandler(db *gorm.DB) *v1.AthleteHandler {
	repo := repository.NewAthleteRepository(dao.NewAthleteDAO(db))
	categoryRepo := repository.NewCategoryRepository(dao.NewCategoryDAO(db))
	svc := service.NewAthleteService(repo, categoryRepo)
	handler := v1.NewAthleteHandler(svc)

	return handler
}

func (s *Server) initEventHandler(db *gorm.DB) *v1.EventHandler {
	repo := repository.NewEventRepository(dao.NewEventDAO(db))
	svc := service.NewEventService(repo)
	handler := v1.NewEventHandler(svc)

	return handler
}

func (s *Server) initResultHandler(db *gorm.DB) *v1.ResultHandler {
	repo := repository.NewResultRepository(dao.NewResultDAO(db))
	athleteRepo := repository.NewAthleteRepository(dao.NewAthleteDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	disciplineRepo := repository.NewDisciplineRepository(dao.NewDisciplineDAO(db))
	svc := service.NewResultService(repo, athleteRepo, eventRepo, disciplineRepo)
	handler := v1.NewResultHandler(svc)

	return handler
}

func (s *Server) initTimelineHandler(db *gorm.DB) *v1.TimelineHandler {
	repo := repository.NewActivityRepository(dao.NewActivityDAO(db))
	svc := service.NewTimelineService(repo)
	handler := v1.NewTimelineHandler(s.Config.Timeline, svc)

	return handler
}

func (s *Server) initReferenceHandler(db *gorm.DB) *v1.ReferenceHandler {
	categoryRepo := repository.NewCategoryRepository(dao.NewCategoryDAO(db))
	disciplineRepo := repository.NewDisciplineRepository(dao.NewDisciplineDAO(db))
	svc := service.NewReferenceService(categoryRepo, disciplineRepo)
	handler := v1.NewReferenceHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	athleteHandler *v1.AthleteHandler,
	eventHandler *v1.EventHandler,
	resultHandler *v1.ResultHandler,
	timelineHandler *v1.TimelineHandler,
	referenceHandler *v1.ReferenceHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	// Club data is readable without an account.
	public := s.Router.Group(basePath)
	{
		public.GET("/athletes", athleteHandler.HandleListAthletes)
		public.GET("/athletes/:athleteID", athleteHandler.HandleGetAthlete)
		public.GET("/events", eventHandler.HandleListEvents)
		public.GET("/events/:eventID", eventHandler.HandleGetEvent)
		public.GET("/events/:eventID/results", resultHandler.HandleListEventResults)
		public.GET("/results/:resultID", resultHandler.HandleGetResult)
		public.GET("/timeline", timelineHandler.HandleGetTimeline)
		public.GET("/categories", referenceHandler.HandleListCategories)
		public.GET("/disciplines", referenceHandler.HandleListDisciplines)
	}

	// Mutations require an organizer token and are rate limited.
	verifyJWT := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()
	protected := s.Router.Group(basePath, verifyJWT, middleware.RateLimit(10, 20))
	{
		protected.GET("/users/:userID", userHandler.HandleGetUser)
		protected.POST("/athletes", athleteHandler.HandleCreateAthlete)
		protected.PUT("/athletes/:athleteID", athleteHandler.HandleUpdateAthlete)
		protected.POST("/events", eventHandler.HandleCreateEvent)
		protected.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)
		protected.POST("/results", resultHandler.HandleCreateResult)
		protected.PUT("/results/:resultID", resultHandler.HandleUpdateResult)
		protected.POST("/timeline/:activityID/like", timelineHandler.HandleLikeActivity)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Athletix Club API"
	docs.SwaggerInfo.Description = "Athletes, events, results and the club activity feed."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

// StartMaintenanceJobs starts the background scheduler. Call once after
// NewServer; jobs keep running until StopMaintenanceJobs.
func (s *Server) StartMaintenanceJobs() error {
	if err := s.maintenance.Start(); err != nil {
		return fmt.Errorf("s.maintenance.Start -> %w", err)
	}

	return nil
}

func (s *Server) StopMaintenanceJobs() error {
	return s.maintenance.Stop()
}
