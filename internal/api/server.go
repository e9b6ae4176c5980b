package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	v1 "github.com/baileyhood/smashbash/internal/api/handler/v1"
	"github.com/baileyhood/smashbash/internal/api/middleware"
	"github.com/baileyhood/smashbash/internal/config"
	"github.com/baileyhood/smashbash/internal/repository"
	"github.com/baileyhood/smashbash/internal/repository/dao"
	"github.com/baileyhood/smashbash/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
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
	accountHandler := s.initAccountHandler(db)
	eventHandler := s.initEventHandler(db)
	attendanceHandler := s.initAttendanceHandler(db)
	s.MountHandlers(authHandler, accountHandler, eventHandler, attendanceHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	accountDAO := dao.NewAccountDAO(db)
	repo := repository.NewAccountRepository(accountDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initAccountHandler(db *gorm.DB) *v1.AccountHandler {
	accountDAO := dao.NewAccountDAO(db)
	repo := repository.NewAccountRepository(accountDAO)
	svc := service.NewAccountService(repo)
	handler := v1.NewAccountHandler(svc)

	return handler
}

func (s *Server) initEventHandler(db *gorm.DB) *v1.EventHandler {
	eventDAO := dao.NewEventDAO(db)
	repo := repository.NewEventRepository(eventDAO)
	svc := service.NewEventService(repo, s.Config.API.UpcomingWindowMonths)
	aSvc := service.NewAccountService(repository.NewAccountRepository(dao.NewAccountDAO(db)))
	handler := v1.NewEventHandler(svc, aSvc)

	return handler
}

func (s *Server) initAttendanceHandler(db *gorm.DB) *v1.AttendanceHandler {
	accountRepo := repository.NewAccountRepository(dao.NewAccountDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	repo := repository.NewAttendanceRepository(dao.NewAttendanceDAO(db), accountRepo, eventRepo)
	svc := service.NewAttendanceService(repo)
	aSvc := service.NewAccountService(accountRepo)
	handler := v1.NewAttendanceHandler(svc, aSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, accountHandler *v1.AccountHandler, eventHandler *v1.EventHandler, attendanceHandler *v1.AttendanceHandler) {
	public := s.Router.Group("")
	{
		public.GET("/events", eventHandler.HandleListUpcomingEvents)
		public.GET("/event", eventHandler.HandleGetEvent)
		public.GET("/searchEvents", eventHandler.HandleSearchEvents)
		public.GET("/accounts", accountHandler.HandleListAccounts)
		public.POST("/login", authHandler.HandleLogin)
		public.POST("/editEvent", eventHandler.HandleEditEvent)
		public.POST("/deleteEvent", eventHandler.HandleDeleteEvent)
	}

	session := s.Router.Group("", middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		session.GET("/accountEventsCreated", eventHandler.HandleListCreatedEvents)
		session.GET("/accountEventsAttending", attendanceHandler.HandleListAttendingEvents)
		session.POST("/createEvent", eventHandler.HandleCreateEvent)
		session.POST("/addEventAttending", attendanceHandler.HandleAttendEvent)
		session.POST("/logout", authHandler.HandleLogout)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
