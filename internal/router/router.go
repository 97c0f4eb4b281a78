package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/smp-pelanggaran-api/internal/handler"
	"github.com/noah-isme/smp-pelanggaran-api/internal/middleware"
	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
	"github.com/noah-isme/smp-pelanggaran-api/pkg/config"
	"github.com/noah-isme/smp-pelanggaran-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/smp-pelanggaran-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/smp-pelanggaran-api/pkg/middleware/requestid"
)

// Handlers groups every handler mounted by the router.
type Handlers struct {
	Health        *handler.HealthHandler
	Auth          *handler.AuthHandler
	Class         *handler.ClassHandler
	Teacher       *handler.TeacherHandler
	Student       *handler.StudentHandler
	ViolationType *handler.ViolationTypeHandler
	Violation     *handler.ViolationHandler
	User          *handler.UserHandler
	Institution   *handler.InstitutionHandler
	Dashboard     *handler.DashboardHandler
}

// Deps carries the cross-cutting collaborators of the router.
type Deps struct {
	Config  *config.Config
	Logger  *zap.Logger
	Tokens  middleware.TokenValidator
	Metrics middleware.RequestObserver
}

// New builds the gin engine with global middleware and all routes.
func New(deps Deps, h Handlers) *gin.Engine {
	cfg := deps.Config
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(deps.Logger))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	r.GET("/health", h.Health.Health)
	r.GET("/ready", h.Health.Ready)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", h.Health.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/auth/login", h.Auth.Login)

	// Every route below is public unless auth is switched on.
	secured := api.Group("")
	adminOnly := []gin.HandlerFunc{}
	if cfg.Auth.Enabled {
		secured.Use(middleware.JWT(deps.Tokens))
		adminOnly = append(adminOnly, middleware.RequireRoles(models.RoleAdministrator))
		secured.GET("/auth/me", h.Auth.Me)
	}

	classes := secured.Group("/classes")
	{
		classes.GET("", h.Class.List)
		classes.POST("", h.Class.Create)
		classes.GET("/:id", h.Class.Get)
		classes.PUT("/:id", h.Class.Update)
		classes.DELETE("/:id", h.Class.Delete)
	}

	teachers := secured.Group("/teachers")
	{
		teachers.GET("", h.Teacher.List)
		teachers.POST("", h.Teacher.Create)
		teachers.GET("/:id", h.Teacher.Get)
		teachers.PUT("/:id", h.Teacher.Update)
		teachers.DELETE("/:id", h.Teacher.Delete)
	}

	students := secured.Group("/students")
	{
		students.GET("", h.Student.List)
		students.GET("/search", h.Student.Search)
		students.POST("", h.Student.Create)
		students.GET("/:id", h.Student.Get)
		students.PUT("/:id", h.Student.Update)
		students.DELETE("/:id", h.Student.Delete)
	}

	violationTypes := secured.Group("/violation-types")
	{
		violationTypes.GET("", h.ViolationType.List)
		violationTypes.POST("", h.ViolationType.Create)
		violationTypes.GET("/:id", h.ViolationType.Get)
		violationTypes.PUT("/:id", h.ViolationType.Update)
		violationTypes.DELETE("/:id", h.ViolationType.Delete)
	}

	violations := secured.Group("/violations")
	{
		violations.GET("", h.Violation.List)
		violations.POST("", h.Violation.Create)
		violations.GET("/:id", h.Violation.Get)
		violations.PUT("/:id", h.Violation.Update)
		violations.DELETE("/:id", h.Violation.Delete)
	}

	users := secured.Group("/users", adminOnly...)
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}

	settings := secured.Group("/settings")
	{
		settings.GET("/institution", h.Institution.Get)
		settings.PUT("/institution", append(adminOnly, h.Institution.Update)...)
	}

	dashboard := secured.Group("/dashboard")
	{
		dashboard.GET("/summary", h.Dashboard.Summary)
		dashboard.GET("/export", h.Dashboard.Export)
	}

	return r
}
