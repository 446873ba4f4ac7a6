package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/dtroode/portfolio-server/internal/api/http/handler"
	"github.com/dtroode/portfolio-server/internal/api/http/middleware"
	"github.com/dtroode/portfolio-server/internal/api/http/router"
	httpServer "github.com/dtroode/portfolio-server/internal/api/http/server"
	"github.com/dtroode/portfolio-server/internal/config"
	"github.com/dtroode/portfolio-server/internal/hasher"
	"github.com/dtroode/portfolio-server/internal/logger"
	"github.com/dtroode/portfolio-server/internal/mailer"
	"github.com/dtroode/portfolio-server/internal/model"
	"github.com/dtroode/portfolio-server/internal/repository/postgres"
	"github.com/dtroode/portfolio-server/internal/server"
	"github.com/dtroode/portfolio-server/internal/service"
	storage "github.com/dtroode/portfolio-server/internal/storage/minio"
	"github.com/dtroode/portfolio-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	projectRepo := postgres.NewProjectRepository(db)
	skillRepo := postgres.NewSkillRepository(db)
	timelineRepo := postgres.NewTimelineRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	messageRepo := postgres.NewMessageRepository(db)

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	resetTokenManager := token.NewReset()
	passwordHasher := hasher.NewBcrypt()

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket, cfg.Storage.PublicURL)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	smtpMailer, err := mailer.NewSMTP(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
	if err != nil {
		logger.Fatal("failed to initialize mailer", "error", err)
	}

	authService := service.NewAuth(userRepo, passwordHasher, tokenManager, resetTokenManager, storageClient, smtpMailer, cfg.Reset.URLBase, logger)
	projectService := service.NewProject(projectRepo, storageClient, logger)
	skillService := service.NewSkill(skillRepo, storageClient, logger)
	timelineService := service.NewTimeline(timelineRepo, logger)
	applicationService := service.NewApplication(applicationRepo, storageClient, logger)
	messageService := service.NewMessage(messageRepo, logger)

	r := router.New(
		handler.NewAuth(authService, cfg.Owner.Email, cfg.JWT.TTL, logger),
		handler.NewProject(projectService, logger),
		handler.NewSkill(skillService, logger),
		handler.NewTimeline(timelineService, logger),
		handler.NewApplication(applicationService, logger),
		handler.NewMessage(messageService, logger),
		middleware.NewAuthenticate(tokenManager, logger),
		cfg.HTTP.AllowedOrigins,
		logger,
	)

	apiServer := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(apiServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := apiServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", apiServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
