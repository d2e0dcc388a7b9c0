package router

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"employee-attendance/config/middleware"
	"employee-attendance/handlers"
	util "employee-attendance/pkg/utils"
	"employee-attendance/repository"
)

const (
	loginAttempts = 10
	loginWindow   = time.Minute
)

// Dependencies carries everything the routes need. main builds it from Mongo,
// tests build it from the in-memory repositories.
type Dependencies struct {
	Attendance  repository.AttendanceRepository
	Users       repository.UserRepository
	Auth        handlers.Authenticator
	Provisioner handlers.EmployeeProvisioner
	Tokens      interface {
		handlers.TokenIssuer
		middleware.TokenValidator
	}
	Clock util.Clock

	// DisableLoginLimit turns the login rate limiter off.
	DisableLoginLimit bool
}

func SetupRoutes(app *fiber.App, deps Dependencies) {
	authHandler := handlers.NewAuthHandler(deps.Auth, deps.Tokens)
	userHandler := handlers.NewUserHandler(deps.Users)
	attendanceHandler := handlers.NewAttendanceHandler(deps.Attendance, deps.Users, deps.Clock)
	adminHandler := handlers.NewAdminHandler(deps.Attendance, deps.Users, deps.Provisioner, deps.Clock)

	requireAuth := middleware.AuthMiddleware(deps.Tokens)

	// Health check & Docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Employee Attendance API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	api := app.Group("/api/v1")

	authGroup := api.Group("/auth")
	if deps.DisableLoginLimit {
		authGroup.Post("/login", authHandler.Login)
	} else {
		authGroup.Post("/login", middleware.LoginRateLimiter(loginAttempts, loginWindow), authHandler.Login)
	}
	authGroup.Post("/logout", requireAuth, authHandler.Logout)

	userGroup := api.Group("/users", requireAuth)
	userGroup.Get("/me", userHandler.GetMe)
	userGroup.Get("/me/badge", userHandler.GetBadge)

	attendanceGroup := api.Group("/attendance", requireAuth)
	attendanceGroup.Get("/today", attendanceHandler.GetToday)
	attendanceGroup.Post("/check-in", attendanceHandler.CheckIn)
	attendanceGroup.Post("/check-out", attendanceHandler.CheckOut)
	attendanceGroup.Post("/toggle", attendanceHandler.Toggle)
	attendanceGroup.Get("/my-history", attendanceHandler.GetMyHistory)
	attendanceGroup.Get("/my-summary", attendanceHandler.GetMySummary)

	adminGroup := api.Group("/admin", requireAuth, middleware.AdminMiddleware())
	adminGroup.Get("/dashboard-stats", adminHandler.GetDashboardStats)
	adminGroup.Get("/attendance", adminHandler.GetAllAttendance)
	adminGroup.Get("/attendance/export", adminHandler.ExportAttendance)
	adminGroup.Get("/employees", adminHandler.GetAllEmployees)
	adminGroup.Post("/employees", adminHandler.CreateEmployee)

	log.Println("All routes registered. Swagger documentation: /docs/index.html")
}
