package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/noah-isme/smp-pelanggaran-api/api/swagger"
	"github.com/noah-isme/smp-pelanggaran-api/internal/handler"
	"github.com/noah-isme/smp-pelanggaran-api/internal/repository"
	"github.com/noah-isme/smp-pelanggaran-api/internal/router"
	"github.com/noah-isme/smp-pelanggaran-api/internal/service"
	"github.com/noah-isme/smp-pelanggaran-api/pkg/cache"
	"github.com/noah-isme/smp-pelanggaran-api/pkg/config"
	"github.com/noah-isme/smp-pelanggaran-api/pkg/database"
	"github.com/noah-isme/smp-pelanggaran-api/pkg/logger"
	"github.com/noah-isme/smp-pelanggaran-api/pkg/validation"
)

// @title SMP Pelanggaran API
// @version 1.0.0
// @description Student violation records, master data and dashboard for a junior high school.
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Migrations.AutoApply {
		if err := database.MigrateUp(cfg.Database); err != nil {
			logr.Fatal("failed to apply migrations", zap.Error(err))
		}
		logr.Info("migrations applied")
	}

	db, err := database.NewPostgres(context.Background(), cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	metrics := service.NewMetricsService()

	var cacheRepo *repository.CacheRepository
	if cfg.Settings.CacheEnabled {
		client, err := cache.NewRedis(context.Background(), cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, settings cache disabled", zap.Error(err))
		} else {
			cacheRepo = repository.NewCacheRepository(client, cfg.Redis.KeyPrefix)
			defer cacheRepo.Close() //nolint:errcheck
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Settings.CacheTTL, logr, cacheRepo != nil)

	validate := validation.New()

	classRepo := repository.NewClassRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	violationTypeRepo := repository.NewViolationTypeRepository(db)
	violationRepo := repository.NewViolationRecordRepository(db)
	userRepo := repository.NewUserRepository(db)
	institutionRepo := repository.NewInstitutionRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db, metrics)

	classSvc := service.NewClassService(classRepo, validate, logr)
	teacherSvc := service.NewTeacherService(teacherRepo, validate, logr)
	studentSvc := service.NewStudentService(studentRepo, classRepo, validate, logr)
	violationTypeSvc := service.NewViolationTypeService(violationTypeRepo, validate, logr)
	violationSvc := service.NewViolationRecordService(violationRepo, studentRepo, violationTypeRepo, teacherRepo, validate, logr)
	userSvc := service.NewUserService(userRepo, validate, logr)
	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})
	institutionSvc := service.NewInstitutionService(institutionRepo, cacheSvc, validate, logr)
	dashboardSvc := service.NewDashboardService(dashboardRepo, validate, logr)
	exportSvc := service.NewExportService(dashboardSvc, institutionSvc, logr, nil, nil)

	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		metricsHandler = metrics.Handler()
	}

	r := router.New(router.Deps{
		Config:  cfg,
		Logger:  logr,
		Tokens:  authSvc,
		Metrics: metrics,
	}, router.Handlers{
		Health:        handler.NewHealthHandler(db, metricsHandler, logr),
		Auth:          handler.NewAuthHandler(authSvc),
		Class:         handler.NewClassHandler(classSvc),
		Teacher:       handler.NewTeacherHandler(teacherSvc),
		Student:       handler.NewStudentHandler(studentSvc),
		ViolationType: handler.NewViolationTypeHandler(violationTypeSvc),
		Violation:     handler.NewViolationHandler(violationSvc),
		User:          handler.NewUserHandler(userSvc),
		Institution:   handler.NewInstitutionHandler(institutionSvc),
		Dashboard:     handler.NewDashboardHandler(dashboardSvc, exportSvc),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Env),
			zap.Bool("auth_enabled", cfg.Auth.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logr.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Error("server shutdown failed", zap.Error(err))
	}
	logr.Info("shutdown complete")
}
