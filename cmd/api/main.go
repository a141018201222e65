package main

import (
	"taskboard/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "taskboard/internal/adapter/db"
	httpadapter "taskboard/internal/adapter/http"
	"taskboard/internal/adapter/http/handlers"
	httpmiddleware "taskboard/internal/adapter/http/middleware"
	"taskboard/internal/app/service"
	"taskboard/internal/config"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to open database", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database", zap.Error(err))
		}
	}()

	if err := dbadapter.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	projectRepository := dbadapter.NewProjectRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	notificationRepository := dbadapter.NewNotificationRepository(db)

	projectService := service.NewProjectService(projectRepository, notificationRepository)
	taskService := service.NewTaskService(taskRepository, projectRepository, notificationRepository)
	notificationService := service.NewNotificationService(notificationRepository)
	dashboardService := service.NewDashboardService(projectRepository, taskRepository, notificationRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	healthHandler := handlers.NewHealthHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService, projectService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	httpadapter.RegisterRoutes(r, healthHandler, dashboardHandler, projectHandler, taskHandler, notificationHandler)

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
