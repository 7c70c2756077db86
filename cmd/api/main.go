package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Dan9191/auth-service/internal/auth"
	"github.com/Dan9191/auth-service/internal/config"
	"github.com/Dan9191/auth-service/internal/handler"
	"github.com/Dan9191/auth-service/internal/middleware"
	"github.com/Dan9191/auth-service/internal/repository"
	"github.com/Dan9191/auth-service/internal/service"
	"github.com/Dan9191/auth-service/internal/utils/email"
	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize user store
	repo := repository.NewRepository(cfg.StorePath)
	if err := repo.Init(); err != nil {
		logger.Fatalf("Failed to initialize user store: %v", err)
	}

	// Initialize layers
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	var mailer service.Mailer
	if cfg.SMTPHost != "" {
		mailer = email.NewSender(cfg, logger)
	}
	svc := service.NewService(repo, tokens, mailer, logger)
	h := handler.NewHandler(svc)

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/", h.Home).Methods("GET")
	r.HandleFunc("/user", h.ListUsers).Methods("GET")
	r.HandleFunc("/signup", h.Signup).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	// Protected routes
	authRouter := r.PathPrefix("/protected").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(tokens))
	authRouter.HandleFunc("", h.Protected).Methods("GET")

	// Periodic store backup
	if cfg.BackupDir != "" {
		c := cron.New()
		_, err := c.AddFunc(cfg.BackupSchedule, func() {
			path, err := repo.Backup(cfg.BackupDir)
			if err != nil {
				logger.Errorf("Store backup failed: %v", err)
				return
			}
			logger.Infof("Store backed up to %s", path)
		})
		if err != nil {
			logger.Fatalf("Invalid backup schedule %q: %v", cfg.BackupSchedule, err)
		}
		c.Start()
		defer c.Stop()
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
