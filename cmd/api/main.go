package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"workerconnect/internal/config"
	"workerconnect/internal/database"
	"workerconnect/internal/domain"
	"workerconnect/internal/middleware"
	"workerconnect/internal/modules/auth"
	"workerconnect/internal/modules/catalog"
	"workerconnect/internal/modules/profile"
	"workerconnect/internal/modules/review"
	jwtsvc "workerconnect/internal/pkg/jwt"
	"workerconnect/internal/pkg/mailer"
	"workerconnect/internal/pkg/response"
	"workerconnect/internal/pkg/storage"
	"workerconnect/internal/repository"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}

	if err := db.AutoMigrate(&domain.Customer{}, &domain.Worker{}, &domain.Review{}); err != nil {
		log.WithError(err).Fatal("migration failed")
	}

	customerRepo := repository.NewCustomerRepository(db)
	workerRepo := repository.NewWorkerRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	var store storage.Store
	switch cfg.StorageDriver {
	case "s3":
		store, err = storage.NewS3Store(context.Background(), storage.S3Config{
			Region:     cfg.S3Region,
			Bucket:     cfg.S3Bucket,
			Endpoint:   cfg.S3Endpoint,
			AccessKey:  cfg.S3AccessKey,
			SecretKey:  cfg.S3SecretKey,
			PublicBase: cfg.S3PublicBase,
		})
		if err != nil {
			log.WithError(err).Fatal("s3 store init failed")
		}
	default:
		store = storage.NewLocalStore(cfg.UploadDir, cfg.StaticBase)
	}

	var mail mailer.Mailer
	if cfg.SendGridAPIKey != "" {
		mail = mailer.NewSendGridMailer(cfg.SendGridAPIKey, cfg.MailFromName, cfg.MailFromAddress, cfg.SendGridSandbox)
	} else {
		log.Warn("SENDGRID_API_KEY not set, OTP codes go to the console")
		mail = mailer.NewDevConsoleMailer()
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(customerRepo, workerRepo, j, mail, store, cfg.OTPPepper, cfg.OTPTTL)
	authHandler := auth.NewHandler(authService)

	profileService := profile.NewService(workerRepo, customerRepo, store)
	profileHandler := profile.NewHandler(profileService)

	catalogService := catalog.NewService(workerRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	reviewService := review.NewService(reviewRepo, workerRepo, customerRepo)
	reviewHandler := review.NewHandler(reviewService)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())

	if cfg.StorageDriver == "local" {
		r.Static(cfg.StaticBase, cfg.UploadDir)
	}

	r.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)

		// protected
		authed := v1.Group("/")
		authed.Use(middleware.JWTAuth(j))
		{
			profileHandler.RegisterRoutes(authed)
			reviewHandler.RegisterRoutes(authed)
		}
	}

	log.WithField("port", cfg.Port).Info("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
