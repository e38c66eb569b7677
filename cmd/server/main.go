package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/ruok-app/ruok-api/internal/config"
	"github.com/ruok-app/ruok-api/internal/database"
	"github.com/ruok-app/ruok-api/internal/handlers"
	"github.com/ruok-app/ruok-api/internal/middleware"
	"github.com/ruok-app/ruok-api/internal/services"
	"github.com/ruok-app/ruok-api/internal/types"

	_ "github.com/ruok-app/ruok-api/docs/api" // Swagger docs
)

// @title RUOK API
// @version 1.0.0
// @description Student mental health support service: emotional check-ins, therapist booking, Sage chat
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/ruok-app/ruok-api

// @host localhost:8000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name token

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := config.InitLogger("logs/ruok-api.log"); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		config.Logger.Fatalw("failed to connect to database", "error", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		config.Logger.Fatalw("failed to run migrations", "error", err)
	}

	// Seed the emotion taxonomy on first boot
	if err := database.SeedEmotions(db); err != nil {
		config.Logger.Fatalw("failed to seed emotions", "error", err)
	}

	// Redis is optional; chat history falls back to the request payload.
	redisClient, err := database.ConnectRedis(cfg)
	if err != nil {
		config.Logger.Fatalw("failed to connect to redis", "error", err)
	}

	chatService, err := services.NewChatService(context.Background(), cfg, redisClient)
	if err != nil {
		config.Logger.Fatalw("failed to initialize chat service", "error", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowCredentials: true,
	}))

	// Prometheus metrics
	prometheus := fiberprometheus.New("ruok")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Create handlers
	healthHandler := &handlers.HealthHandler{DB: db, Cfg: cfg}
	authHandler := &handlers.AuthHandler{DB: db, Cfg: cfg}
	profileHandler := &handlers.ProfileHandler{DB: db}
	emotionHandler := &handlers.EmotionHandler{DB: db}
	tagHandler := &handlers.TagHandler{DB: db}
	checkInHandler := &handlers.CheckInHandler{DB: db}
	feedbackHandler := &handlers.FeedbackHandler{DB: db}
	bookingHandler := &handlers.BookingHandler{DB: db}
	ghqHandler := &handlers.GHQHandler{DB: db}
	chatHandler := &handlers.ChatHandler{DB: db, Service: chatService}
	forumHandler := &handlers.ForumHandler{DB: db}

	app.Get("/health", healthHandler.Check)

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.ClientVersion())

	// Auth routes (no session required)
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/google", authHandler.GoogleAuth)
	auth.Post("/guest", authHandler.GuestLogin)
	auth.Post("/logout", authHandler.Logout)

	// Everything below needs a valid session cookie.
	userAuth := middleware.UserAuth(db, cfg.JWTKey)

	auth.Delete("/guest", userAuth, authHandler.DeleteGuest)

	profile := api.Group("/profile", userAuth)
	profile.Get("/", profileHandler.Get)
	profile.Patch("/edit", profileHandler.Update)

	emotion := api.Group("/emotion", userAuth)
	emotion.Get("/getAll", emotionHandler.List)
	emotion.Post("/new", emotionHandler.Create)

	tags := api.Group("/tags", userAuth)
	tags.Get("/activity", tagHandler.ListActivity)
	tags.Get("/place", tagHandler.ListPlace)
	tags.Get("/people", tagHandler.ListPeople)

	checkin := api.Group("/checkin", userAuth)
	checkin.Get("/getAll", checkInHandler.List)
	checkin.Post("/new", checkInHandler.Create)
	checkin.Patch("/update/:id", checkInHandler.Update)
	checkin.Delete("/delete/:id", checkInHandler.Delete)

	feedback := api.Group("/feedback", userAuth)
	feedback.Post("/new", feedbackHandler.Create)
	feedback.Get("/getAll", feedbackHandler.List)

	api.Get("/therapists", userAuth, bookingHandler.ListTherapists)
	api.Get("/therapists/:therapistId/availability", userAuth, bookingHandler.Availability)
	api.Post("/bookings", userAuth, bookingHandler.Create)
	api.Get("/bookings", userAuth, bookingHandler.ListMine)
	api.Patch("/bookings/:id/cancel", userAuth, bookingHandler.Cancel)

	ghq := api.Group("/ghq", userAuth)
	ghq.Post("/new", ghqHandler.Submit)
	ghq.Get("/getAll", ghqHandler.List)

	api.Post("/chat", userAuth, chatHandler.Chat)

	forum := api.Group("/forum", userAuth)
	forum.Get("/posts", forumHandler.ListPosts)
	forum.Post("/posts", forumHandler.CreatePost)
	forum.Get("/posts/:id", forumHandler.GetPost)
	forum.Patch("/posts/:id", forumHandler.UpdatePost)
	forum.Delete("/posts/:id", forumHandler.DeletePost)
	forum.Patch("/posts/:id/like", forumHandler.ToggleLike)
	forum.Patch("/posts/:id/bookmark", forumHandler.ToggleBookmark)
	forum.Get("/posts/:id/comments", forumHandler.ListComments)
	forum.Post("/comments", forumHandler.CreateComment)
	forum.Patch("/comments/:id/like", forumHandler.ToggleCommentLike)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Nightly guest account sweep
	sweeper := services.StartGuestSweep(db)
	defer sweeper.Stop()

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		config.Logger.Infow("gracefully shutting down")
		_ = app.Shutdown()
	}()

	config.Logger.Infow("starting server", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		config.Logger.Fatalw("failed to start server", "error", err)
	}

	config.Logger.Infow("server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	if custom, ok := types.AsCustomError(err); ok {
		code = custom.Code
		message = custom.Message
		errorType = custom.Type
	} else if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
