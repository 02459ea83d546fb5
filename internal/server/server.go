package server

import (
	"net/http"

	"hrms/internal/config"
	"hrms/internal/handler"
	"hrms/internal/middleware"
	"hrms/internal/repository"
	"hrms/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	cfg    *config.Config
	log    *logrus.Logger
	zlog   *zap.Logger
}

func NewServer(db *sqlx.DB, cfg *config.Config, log *logrus.Logger, zlog *zap.Logger) (*Server, error) {
	router := gin.Default()

	s := &Server{
		router: router,
		db:     db,
		cfg:    cfg,
		log:    log,
		zlog:   zlog,
	}

	if err := s.setupRoutes(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Server) setupRoutes() error {
	tokens, err := service.NewTokenService(s.cfg.JWT.Secret, s.cfg.JWT.Algorithm, s.cfg.JWT.ExpireMinutes)
	if err != nil {
		return err
	}
	hasher := service.NewPasswordHasher()

	// Repositories
	userRepo := repository.NewUserRepository(s.db, s.zlog)
	departmentRepo := repository.NewDepartmentRepository(s.db, s.zlog)
	positionRepo := repository.NewPositionRepository(s.db, s.zlog)
	salaryGradeRepo := repository.NewSalaryGradeRepository(s.db, s.zlog)
	employeeRepo := repository.NewEmployeeRepository(s.db, s.zlog)
	contractRepo := repository.NewContractRepository(s.db, s.zlog)
	payrollRepo := repository.NewPayrollRepository(s.db, s.zlog)
	rewardRepo := repository.NewRewardRepository(s.db, s.zlog)
	timesheetRepo := repository.NewTimesheetRepository(s.db, s.zlog)

	// Handlers
	authService := service.NewAuthService(userRepo, tokens, hasher, s.zlog)
	authHandler := handler.NewAuthHandler(authService, s.log)
	userHandler := handler.NewUserHandler(userRepo, hasher, s.log)
	departmentHandler := handler.NewDepartmentHandler(departmentRepo, s.log)
	positionHandler := handler.NewPositionHandler(positionRepo, s.log)
	salaryGradeHandler := handler.NewSalaryGradeHandler(salaryGradeRepo, s.log)
	employeeHandler := handler.NewEmployeeHandler(employeeRepo, s.log)
	contractHandler := handler.NewContractHandler(contractRepo, s.log)
	payrollHandler := handler.NewPayrollHandler(payrollRepo, s.log)
	rewardHandler := handler.NewRewardHandler(rewardRepo, s.log)
	timesheetHandler := handler.NewTimesheetHandler(timesheetRepo, s.log)

	// Ping route for health check
	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Authentication routes
	authGroup := s.router.Group("/api/auth")
	authGroup.POST("/login", authHandler.Login)

	// Authenticated routes
	api := s.router.Group("/api")
	api.Use(middleware.AuthMiddleware(tokens, s.zlog))
	{
		registerCRUD(api.Group("/departments"), departmentHandler)
		registerCRUD(api.Group("/positions"), positionHandler)
		registerCRUD(api.Group("/salary-grades"), salaryGradeHandler)
		registerCRUD(api.Group("/employees"), employeeHandler)
		registerCRUD(api.Group("/contracts"), contractHandler)
		registerCRUD(api.Group("/rewards"), rewardHandler)

		users := api.Group("/users")
		registerCRUD(users, userHandler)
		users.PUT("/:id/password", userHandler.UpdatePassword)

		payrolls := api.Group("/payrolls")
		payrolls.GET("/export", payrollHandler.Export)
		registerCRUD(payrolls, payrollHandler)

		timesheets := api.Group("/timesheets")
		timesheets.GET("/export", timesheetHandler.Export)
		registerCRUD(timesheets, timesheetHandler)
	}

	return nil
}

// crudHandler is the route surface every resource handler shares.
type crudHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func registerCRUD(group *gin.RouterGroup, h crudHandler) {
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

func (s *Server) Run(addr string) {
	s.log.Infof("Server starting on port %s...", addr)
	if err := s.router.Run(addr); err != nil {
		s.log.Fatalf("Server failed to start: %v", err)
	}
}
