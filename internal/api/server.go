package api

import (
	"context"

	_ "licensehub/docs"
	"licensehub/internal/app/config"
	"licensehub/internal/app/dsn"
	"licensehub/internal/app/handler"
	"licensehub/internal/app/middleware"
	"licensehub/internal/app/notify"
	"licensehub/internal/app/redis"
	"licensehub/internal/app/repository"
	"licensehub/internal/app/storage"
	"licensehub/internal/app/syncer"
	"licensehub/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StartServer собирает все зависимости и запускает HTTP-сервер
func StartServer() {
	logrus.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal("Error loading config: ", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatal("Error connecting to database: ", err)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logrus.Fatal("Error connecting to redis: ", err)
	}

	minioClient, err := storage.NewMinIOClient(
		cfg.Minio.Endpoint,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.Bucket,
		cfg.Minio.UseSSL,
	)
	if err != nil {
		logrus.Fatal("Error connecting to minio: ", err)
	}

	slackClient := notify.NewSlackClient()
	sync := syncer.NewSyncer(repo)
	scheduler := syncer.NewScheduler(sync, repo, slackClient)

	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	apiHandler := handler.NewAPIHandler(repo, minioClient, slackClient, sync, authHandler)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	application := pkg.NewApp(cfg, router, apiHandler, authMiddleware, scheduler)
	application.RunApp()
}
