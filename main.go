package main

//go:generate swag init --output docs --outputTypes go

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"employee-attendance/config"
	"employee-attendance/config/middleware"
	_ "employee-attendance/docs" // swagger docs
	"employee-attendance/pkg/paseto"
	util "employee-attendance/pkg/utils"
	"employee-attendance/repository"
	"employee-attendance/router"
	"employee-attendance/seeder"
	"employee-attendance/services"
	_ "time/tzdata"
)

// @title Employee Attendance API
// @version 1.0
// @description Check-in/check-out tracking with per-day and monthly attendance reporting
//
// @contact.name API Support
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the PASETO token.
//
// @tag.name Auth
// @tag.description Authentication endpoints
//
// @tag.name Users
// @tag.description Own profile and badge
//
// @tag.name Attendance
// @tag.description Check-in, check-out and own attendance history
//
// @tag.name Admin
// @tag.description Admin only endpoints
func main() {
	if len(os.Args) > 1 && os.Args[1] == "genkey" {
		key, err := util.GenerateBase64Key()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(key)
		return
	}

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	clock, err := util.NewClock(cfg.Timezone)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	client, err := config.MongoConnect(ctx, cfg.MongoString)
	if err != nil {
		log.Fatal(err)
	}
	defer config.DisconnectDB(client)

	db := client.Database(cfg.DBName)
	if err := config.InitDatabase(ctx, db); err != nil {
		log.Fatal(err)
	}

	tokenMaker, err := paseto.NewPasetoMaker(cfg.PasetoSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db, clock)
	credentialRepo := repository.NewCredentialRepository(db)

	authService := services.NewAuthService(credentialRepo, userRepo)
	provisioning := services.NewProvisioningService(authService, userRepo)

	admin := seeder.AdminAccount{Email: cfg.SeedAdminEmail, Password: cfg.SeedAdminPassword, Name: cfg.SeedAdminName}
	if err := seeder.SeedAdmin(ctx, provisioning, userRepo, admin); err != nil {
		log.Printf("Warning: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "Employee Attendance API",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})

	app.Use(middleware.RecoveryMiddleware())
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(cfg.Timezone))
	config.SetupCORS(app, cfg.AllowedOrigins)

	router.SetupRoutes(app, router.Dependencies{
		Attendance:  attendanceRepo,
		Users:       userRepo,
		Auth:        authService,
		Provisioner: provisioning,
		Tokens:      tokenMaker,
		Clock:       clock,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Printf("Health Check: http://localhost:%s/", cfg.Port)
	log.Printf("CORS enabled for origins: %v", cfg.AllowedOrigins)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
