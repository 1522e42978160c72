package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/feedguard/feedguard/pkg/app/feed"
	"github.com/feedguard/feedguard/pkg/app/moderation"
	"github.com/feedguard/feedguard/pkg/common"
	"github.com/feedguard/feedguard/pkg/config"
	handlers "github.com/feedguard/feedguard/pkg/handlers/http"
	infraCache "github.com/feedguard/feedguard/pkg/infra/cache"
	"github.com/feedguard/feedguard/pkg/infra/cache/channel"
	"github.com/feedguard/feedguard/pkg/infra/cache/event"
	"github.com/feedguard/feedguard/pkg/infra/cache/subscriber"
	"github.com/feedguard/feedguard/pkg/infra/classifier"
	"github.com/feedguard/feedguard/pkg/infra/database"
	"github.com/feedguard/feedguard/pkg/infra/httpx"
	"github.com/feedguard/feedguard/pkg/infra/jwt"
	infraLogger "github.com/feedguard/feedguard/pkg/infra/logger"
	_ "github.com/feedguard/feedguard/pkg/infra/migrations"
	"github.com/feedguard/feedguard/pkg/infra/prometheus"
	"github.com/feedguard/feedguard/pkg/infra/repository"
	"github.com/feedguard/feedguard/pkg/middleware"
	"github.com/feedguard/feedguard/pkg/server"
	"github.com/joho/godotenv"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger("feedguard")

	if err := config.Load("./config"); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	if cfg.Metrics.Enabled {
		prometheus.Initialize()
	}

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	cacheInstance, err := infraCache.NewClient(infraCache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TLS:      cfg.Redis.TLS,
	}, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize cache: %v", err)
	}

	initializeMemoryCache(cacheInstance)

	// repository
	postRepository := repository.NewPostRepository(db.DB)
	commentRepository := repository.NewCommentRepository(db.DB)
	notificationRepository := repository.NewNotificationRepository(db.DB)

	// moderation pipeline (shared verdict cache, fail-open classifier)
	moderationSettings, err := moderation.DecodeSettings(cfg.Moderation.Settings)
	if err != nil {
		logger.Fatalf("Failed to decode moderation settings: %v", err)
	}
	classifierClient := classifier.NewFailOpen(
		classifier.NewHTTPClient(
			httpx.NewFastHTTPClient(httpx.WithTimeout(cfg.Classifier.ClassifyTimeout)),
			logger,
			httpx.NewCircuitBreaker("classifier", cfg.Classifier.BreakerTimeout, cfg.Classifier.BreakerMaxFailures),
			classifier.Config{
				BaseURL:            cfg.Classifier.BaseURL,
				Token:              cfg.Classifier.Token,
				DetectionThreshold: cfg.Classifier.DetectionThreshold,
				ClassifyTimeout:    cfg.Classifier.ClassifyTimeout,
				CensorTimeout:      cfg.Classifier.CensorTimeout,
			},
		),
		logger,
	)
	pipeline := moderation.NewPipeline(classifierClient, nil, nil, logger, moderationSettings)
	defer pipeline.Close()

	// redis publisher and listener
	redisPublisher := infraCache.NewRedisEventPublisher(cacheInstance)
	redisListener := infraCache.NewRedisEventListener(logger, cacheInstance, event.Registry)

	// subscribers
	invalidateFeedSubscriber := subscriber.NewInvalidateFeedCacheEventSubscriber(logger, cacheInstance)
	invalidateCommentsSubscriber := subscriber.NewInvalidateCommentsCacheEventSubscriber(logger, cacheInstance)
	commentNotificationSubscriber := subscriber.NewCommentNotificationEventSubscriber(logger, notificationRepository)
	flaggedContentSubscriber := subscriber.NewFlaggedContentEventSubscriber(logger, notificationRepository)

	infraCache.RegisterEventSubscriber[event.PostCreatedEvent](redisListener, invalidateFeedSubscriber)
	infraCache.RegisterEventSubscriber[event.CommentCreatedEvent](redisListener, invalidateCommentsSubscriber)
	infraCache.RegisterEventSubscriber[event.CommentCreatedEvent](redisListener, commentNotificationSubscriber)
	infraCache.RegisterEventSubscriber[event.ContentFlaggedEvent](redisListener, flaggedContentSubscriber)

	// service
	postCreator := feed.NewPostCreator(logger, postRepository, pipeline, cacheInstance, redisPublisher)
	commentCreator := feed.NewCommentCreator(logger, commentRepository, postRepository, pipeline, redisPublisher)
	feedLister := feed.NewFeedLister(logger, postRepository, cacheInstance)
	commentLister := feed.NewCommentLister(logger, commentRepository, postRepository)

	jwtManager := jwt.NewJwtManager(&cfg.Server)

	// middleware
	middlewareTransport := middleware.Transport{
		AuthMiddleware:         middleware.NewAuthMiddleware(logger, jwtManager),
		MetricsMiddleware:      middleware.NewMetricsMiddleware(logger),
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
	}

	// Handler Transport
	handlerTransport := handlers.HandlerTransport{
		// Posts
		CreatePostHandler: handlers.NewCreatePostHandler(logger, postCreator),
		ListPostsHandler:  handlers.NewListPostsHandler(logger, feedLister),
		GetPostHandler:    handlers.NewGetPostHandler(logger, postRepository, cacheInstance),
		DeletePostHandler: handlers.NewDeletePostHandler(logger, postRepository, cacheInstance),
		// Comments
		CreateCommentHandler: handlers.NewCreateCommentHandler(logger, commentCreator),
		ListCommentsHandler:  handlers.NewListCommentsHandler(logger, commentLister),
		// Moderation
		ModerationPreviewHandler: handlers.NewModerationPreviewHandler(logger, pipeline),
		// Notifications
		ListNotificationsHandler:    handlers.NewListNotificationsHandler(logger, notificationRepository),
		MarkNotificationReadHandler: handlers.NewMarkNotificationReadHandler(logger, notificationRepository),
		// Misc
		GetVersionHandler: handlers.NewGetVersionHandler(logger),
	}

	go func() {
		fmt.Println("starting listening redis events...")
		redisListener.Listen(ctx, channel.FeedEventsChannel)
	}()

	srv := server.NewApiServer(server.ApiServerDI{
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		Config:              cfg,
		Logger:              logger,
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		fmt.Println("error shutting down server:", err)
		os.Exit(1)
	}
	fmt.Println("server gracefully stopped")
}

func initializeMemoryCache(cacheInstance infraCache.Client) {
	_ = cacheInstance.CreateTTLMap(infraCache.PostTTLName, common.PostCacheTTL)
	_ = cacheInstance.CreateTTLMap(infraCache.FeedTTLName, common.FeedCacheTTL)
	_ = cacheInstance.CreateTTLMap(infraCache.VerdictTTLName, common.VerdictCacheTTL)
}
