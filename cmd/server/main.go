package main

import (
	"log"
	"net/http"
	"os"

	_ "learnbridge/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"learnbridge/internal/auth"
	"learnbridge/internal/cache"
	"learnbridge/internal/config"
	"learnbridge/internal/db"
	"learnbridge/internal/handler"
	"learnbridge/internal/model"
	"learnbridge/internal/payments"
	"learnbridge/internal/repository"
	"learnbridge/internal/router"
	"learnbridge/internal/service"
)

// @title LearnBridge API
// @version 1.0
// @description Study-session marketplace backend with tutors, bookings, events and JWT authentication.
// @host localhost:5000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Payment{},
			&model.Event{},
			&model.Note{},
			&model.Material{},
			&model.BookedSession{},
			&model.Review{},
			&model.Tutor{},
			&model.StudySession{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.StudySession{},
		&model.Tutor{},
		&model.Review{},
		&model.BookedSession{},
		&model.Material{},
		&model.Note{},
		&model.Event{},
		&model.Payment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	stripeClient := payments.New(cfg.StripeSecret)
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	sessionRepo := repository.NewSessionRepository(gormDB)
	tutorRepo := repository.NewTutorRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	bookingRepo := repository.NewBookingRepository(gormDB)
	materialRepo := repository.NewMaterialRepository(gormDB)
	noteRepo := repository.NewNoteRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)
	paymentRepo := repository.NewPaymentRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	sessionService := service.NewSessionService(sessionRepo, cacheClient)
	userService := service.NewUserService(userRepo)
	tutorService := service.NewTutorService(tutorRepo)
	reviewService := service.NewReviewService(reviewRepo)
	bookingService := service.NewBookingService(bookingRepo)
	materialService := service.NewMaterialService(materialRepo)
	noteService := service.NewNoteService(noteRepo)
	eventService := service.NewEventService(eventRepo)
	paymentService := service.NewPaymentService(paymentRepo, stripeClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, jwtService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	userHandler := handler.NewUserHandler(userService)
	catalogHandler := handler.NewCatalogHandler(tutorService, reviewService, bookingService)
	materialHandler := handler.NewMaterialHandler(materialService)
	noteHandler := handler.NewNoteHandler(noteService)
	eventHandler := handler.NewEventHandler(eventService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		sessionHandler,
		userHandler,
		catalogHandler,
		materialHandler,
		noteHandler,
		eventHandler,
		paymentHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
