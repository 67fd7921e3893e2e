// File: app/app.go
package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sifundo-B/BankApi/config"
	"github.com/Sifundo-B/BankApi/db"
	"github.com/Sifundo-B/BankApi/handler"
	"github.com/Sifundo-B/BankApi/logger"
	"github.com/Sifundo-B/BankApi/repository"
	"github.com/Sifundo-B/BankApi/router"
	"github.com/Sifundo-B/BankApi/service"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations("file://db/migrations"); err != nil {
		logger.Log.Fatalf("Error running migrations: %v", err)
	}

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer redisClient.Close()

	// --- Wiring All Layers Together ---
	accountRepo := repository.NewAccountRepository(database)
	withdrawalRepo := repository.NewWithdrawalRepository(database)
	auditRepo := repository.NewAuditRepository(database)
	userRepo := repository.NewUserRepository(database)
	tokenRepo := repository.NewTokenRepository(database)

	if err := db.Seed(database, accountRepo, userRepo, auditRepo); err != nil {
		logger.Log.Fatalf("Error seeding the database: %v", err)
	}

	authService := service.NewAuthService(database, userRepo, tokenRepo, auditRepo)
	accountService := service.NewAccountService(accountRepo, redisClient)
	withdrawalService := service.NewWithdrawalService(database, accountRepo, withdrawalRepo, auditRepo, redisClient)
	auditService := service.NewAuditService(auditRepo)

	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	withdrawalHandler := handler.NewWithdrawalHandler(withdrawalService)
	auditHandler := handler.NewAuditHandler(auditService)

	r := router.NewRouter(authHandler, accountHandler, withdrawalHandler, auditHandler)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
