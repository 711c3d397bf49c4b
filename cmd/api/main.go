package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/AErenK/site-yonetim/internal/adapter/db"
	httpadapter "github.com/AErenK/site-yonetim/internal/adapter/http"
	"github.com/AErenK/site-yonetim/internal/adapter/http/handlers"
	httpmiddleware "github.com/AErenK/site-yonetim/internal/adapter/http/middleware"
	pushadapter "github.com/AErenK/site-yonetim/internal/adapter/push"
	appservice "github.com/AErenK/site-yonetim/internal/app/service"
	"github.com/AErenK/site-yonetim/internal/config"
	"github.com/AErenK/site-yonetim/pkg/translator"
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
		SupportedLanguages: []string{translator.LanguageTr, translator.LanguageEn},
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

	userRepository := dbadapter.NewUserRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	notificationRepository := dbadapter.NewNotificationRepository(db)
	subscriptionRepository := dbadapter.NewPushSubscriptionRepository(db)

	pushChannel := pushadapter.NewWebPushChannel(cfg.VapidSubscriber, cfg.VapidPublicKey, cfg.VapidPrivateKey)

	authService := appservice.NewAuthService(userRepository)
	notificationService := appservice.NewNotificationService(notificationRepository, subscriptionRepository, pushChannel)
	taskService := appservice.NewTaskService(taskRepository, userRepository, notificationService)
	pushService := appservice.NewPushService(subscriptionRepository)
	userService := appservice.NewUserService(userRepository)
	adminService := appservice.NewAdminService(taskRepository, notificationRepository, subscriptionRepository, userRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if cfg.TrustedProxies != nil {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:       handlers.NewHealthHandler(db),
		Auth:         handlers.NewAuthHandler(authService, cfg.SessionSecret),
		Task:         handlers.NewTaskHandler(taskService),
		Notification: handlers.NewNotificationHandler(notificationService),
		Push:         handlers.NewPushHandler(pushService),
		User:         handlers.NewUserHandler(userService),
		Admin:        handlers.NewAdminHandler(adminService),
	}, httpmiddleware.AuthMiddleware(cfg.SessionSecret, authService))

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
