package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	firebase "firebase.google.com/go/v4"
	_ "github.com/lib/pq"
	"google.golang.org/api/option"

	api "locmaq-backend/internal/api/http"
	"locmaq-backend/internal/config"
	"locmaq-backend/internal/logger"
	"locmaq-backend/internal/repository/postgres"
	"locmaq-backend/internal/security"
	"locmaq-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Locmaq Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	// Firebase app backs both token verification and push delivery
	ctx := context.Background()
	var opts []option.ClientOption
	if cfg.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		logger.Error("Failed to initialize Firebase app", "error", err)
		log.Fatalf("Failed to initialize Firebase app: %v", err)
	}

	verifier, err := security.NewTokenVerifier(ctx, app)
	if err != nil {
		logger.Error("Failed to initialize token verifier", "error", err)
		log.Fatalf("Failed to initialize token verifier: %v", err)
	}

	pushService, err := service.NewPushService(ctx, app)
	if err != nil {
		logger.Error("Failed to initialize push service", "error", err)
		log.Fatalf("Failed to initialize push service: %v", err)
	}

	emailService := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)

	quoteService := service.NewQuoteService(
		store.QuoteRepository,
		store.MachineRepository,
		store.AddressRepository,
		store.UserRepository,
		store.NotificationRepository,
		store.RetryRepository,
		emailService,
		pushService,
	)
	machineService := service.NewMachineService(store.MachineRepository)
	addressService := service.NewAddressService(store.AddressRepository)
	notificationService := service.NewNotificationService(store.NotificationRepository)
	userService := service.NewUserService(store.UserRepository)
	adminService := service.NewAdminService(store.QuoteRepository, store.MachineRepository, store.RetryRepository)

	handlers := api.NewHandlers(quoteService, machineService, addressService, notificationService, userService, adminService)
	router := api.NewRouter(handlers, verifier)

	addr := cfg.GetServerAddress()
	logger.Info("HTTP server listening", "address", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("HTTP server stopped: %v", err)
	}
}
