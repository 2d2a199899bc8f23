package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/contactsphere/contacts-system/internal/api/handler"
	"github.com/contactsphere/contacts-system/internal/api/middleware"
	"github.com/contactsphere/contacts-system/internal/core/ports"
	"github.com/contactsphere/contacts-system/internal/core/service"
	"github.com/contactsphere/contacts-system/internal/core/token"
	"github.com/contactsphere/contacts-system/internal/infrastructure/config"
	mongodb "github.com/contactsphere/contacts-system/internal/infrastructure/db/mongo"
	redisdb "github.com/contactsphere/contacts-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, mailQueue ports.MailQueue, avatars ports.AvatarStorage, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.AgentBan())

	// --- Dependencies ---
	codec := token.NewCodec(cfg.JWT.Secret)
	issuer := token.NewIssuer(codec, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL, cfg.JWT.ConfirmTTL)

	userRepo := mongodb.NewUserRepository(db)
	contactRepo := mongodb.NewContactRepository(db)

	authService := service.NewAuthService(userRepo, codec, issuer, mailQueue, log)
	contactService := service.NewContactService(contactRepo)
	userService := service.NewUserService(userRepo, avatars)

	authHandler := handler.NewAuthHandler(authService)
	contactHandler := handler.NewContactHandler(contactService)
	userHandler := handler.NewUserHandler(userService)

	// Auth gates every protected route; the limiter runs ahead of the
	// flows so an over-limit client never reaches the store.
	authGate := middleware.Auth(codec, userRepo)
	limiter := redisdb.NewFixedWindowLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)
	rateLimit := middleware.RateLimit(limiter, log)

	// --- Auth routes ---
	auth := e.Group("/auth", rateLimit)
	auth.POST("/register", authHandler.Register)
	auth.POST("/token", authHandler.Token)
	auth.POST("/refresh", authHandler.Refresh)
	auth.GET("/confirmed_email/:token", authHandler.ConfirmEmail)

	// --- Contact routes (protected) ---
	contacts := e.Group("/contacts", rateLimit, authGate)
	contacts.POST("", contactHandler.Create)
	contacts.GET("", contactHandler.List)
	contacts.GET("/search", contactHandler.Search)
	contacts.GET("/birthdays", contactHandler.Birthdays)
	contacts.GET("/:id", contactHandler.Get)
	contacts.PUT("/:id", contactHandler.Update)
	contacts.DELETE("/:id", contactHandler.Delete)

	// --- User routes (protected) ---
	users := e.Group("/users", rateLimit, authGate)
	users.PATCH("/avatar", userHandler.UpdateAvatar)

	// --- Root / health / observability (no auth required) ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Contacts Application"})
	})

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
