package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/mooosty/bckndmstr/internal/adapter/db"
	httpadapter "github.com/mooosty/bckndmstr/internal/adapter/http"
	"github.com/mooosty/bckndmstr/internal/adapter/http/handlers"
	httpmiddleware "github.com/mooosty/bckndmstr/internal/adapter/http/middleware"
	appservice "github.com/mooosty/bckndmstr/internal/app/service"
	"github.com/mooosty/bckndmstr/internal/config"
	"github.com/mooosty/bckndmstr/pkg/translator"
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
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	projectRepository := dbadapter.NewProjectRepository(db)
	progressRepository := dbadapter.NewProgressRepository(db)
	applicationRepository := dbadapter.NewApplicationRepository(db)

	submissionService := appservice.NewSubmissionService(projectRepository, progressRepository)
	approvalService := appservice.NewApprovalService(projectRepository, progressRepository)
	progressAggregator := appservice.NewProgressAggregator(projectRepository, progressRepository)
	applicationService := appservice.NewApplicationService(applicationRepository, projectRepository)
	projectService := appservice.NewProjectService(projectRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:      handlers.NewHealthHandler(db),
		Project:     handlers.NewProjectHandler(projectService),
		Progress:    handlers.NewProgressHandler(submissionService, progressAggregator, approvalService),
		Review:      handlers.NewReviewHandler(approvalService),
		Application: handlers.NewApplicationHandler(applicationService),
	}, cfg.AdminEmail)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
