package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"mamacare-api/internal/config"
	"mamacare-api/internal/db"
	"mamacare-api/internal/email"
	apihttp "mamacare-api/internal/http"
	"mamacare-api/internal/repository"
	"mamacare-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if !cfg.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	accountRepo := repository.NewPgAccountRepository(pool)

	var sender email.Sender = email.NewLogSender(logger)
	if cfg.SMTPHost != "" {
		smtpSender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			sender = smtpSender
		}
	}

	tokenSvc := service.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	accountSvc := service.NewAccountService(logger, accountRepo)
	bookingSvc := service.NewBookingService(logger, sender, cfg.OperatorEmail)

	accountHandler := apihttp.NewAccountHandler(logger, accountSvc, tokenSvc)
	bookingHandler := apihttp.NewBookingHandler(logger, bookingSvc)
	router := apihttp.NewRouter(logger, accountHandler, bookingHandler, tokenSvc, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort), zap.String("env", cfg.AppEnv))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
