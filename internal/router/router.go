package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"learnbridge/internal/auth"
	"learnbridge/internal/config"
	"learnbridge/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	sessionHandler *handler.SessionHandler,
	userHandler *handler.UserHandler,
	catalogHandler *handler.CatalogHandler,
	materialHandler *handler.MaterialHandler,
	noteHandler *handler.NoteHandler,
	eventHandler *handler.EventHandler,
	paymentHandler *handler.PaymentHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	// Token gate for protected routes. Missing, malformed, badly signed and
	// expired tokens all collapse into the same unauthorized response.
	authenticated := echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized access"})
		},
	})

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "LearnBridge server running")
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Legacy token issuance (1-hour class)
	e.POST("/jwt", authHandler.IssueToken)

	// Auth
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.PUT("/auth/change-password", authHandler.ChangePassword, authenticated)
	e.GET("/auth/profile", authHandler.Profile, authenticated)
	e.POST("/auth/logout", authHandler.Logout, authenticated)

	// Study sessions
	e.GET("/studysessions", sessionHandler.List)
	e.POST("/studysessions", sessionHandler.Create)
	e.GET("/studysessions/tutor/:email", sessionHandler.ListByTutor)
	e.PUT("/studysessions/resubmit/:id", sessionHandler.Resubmit)
	e.PUT("/studysessions/approve/:id", sessionHandler.Approve)
	e.PUT("/studysessions/reject/:id", sessionHandler.Reject)
	e.PUT("/studysessions/update/:id", sessionHandler.Update)
	e.DELETE("/studysessions/:id", sessionHandler.Delete)
	e.GET("/sessions/:id", sessionHandler.Get)

	// Tutors, reviews, bookings
	e.GET("/tutors", catalogHandler.ListTutors)
	e.POST("/tutors", catalogHandler.CreateTutor)
	e.GET("/reviews", catalogHandler.ListReviews)
	e.POST("/reviews", catalogHandler.CreateReview)
	e.GET("/bookSession", catalogHandler.ListBookings)
	e.POST("/bookSession", catalogHandler.CreateBooking)
	e.GET("/bookedSessions/:email", catalogHandler.ListBookingsByStudent)

	// Users
	e.GET("/users", userHandler.Search)
	e.GET("/users/email", userHandler.GetByEmail)
	e.POST("/users", userHandler.CreateLegacy)
	e.PUT("/users/update-role/:id", userHandler.UpdateRole)

	// Materials
	e.GET("/materials", materialHandler.List)
	e.GET("/materials/:sessionId", materialHandler.ListBySession)
	e.GET("/materials/tutor/:email", materialHandler.ListByTutor)
	e.POST("/materials", materialHandler.Create)
	e.PUT("/materials/:id", materialHandler.Update)
	e.DELETE("/materials/:id", materialHandler.Delete)

	// Notes
	e.POST("/createNote", noteHandler.Create)
	e.GET("/notes/:email", noteHandler.ListByEmail)
	e.PUT("/notes/update/:id", noteHandler.Update)
	e.DELETE("/notes/delete/:id", noteHandler.Delete)

	// Events
	e.GET("/events", eventHandler.List)
	e.POST("/events", eventHandler.Create)
	e.PATCH("/events/:id/join", eventHandler.Join)
	e.GET("/events/creator/:email", eventHandler.ListByCreator)
	e.GET("/events/joined/:userId", eventHandler.ListJoined)
	e.PUT("/events/:id", eventHandler.Update)
	e.DELETE("/events/:id", eventHandler.Delete)

	// Payments
	e.POST("/create-payment-intent", paymentHandler.CreateIntent)
	e.POST("/payments", paymentHandler.Record, authenticated)
	e.GET("/payments/:email", paymentHandler.History, authenticated)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
