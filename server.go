package main

import (
	"log"
	"net/http"

	"github.com/Eursukkul/meetapp-service/config"
	"github.com/Eursukkul/meetapp-service/internal/auth"
	"github.com/Eursukkul/meetapp-service/internal/handler"
	"github.com/Eursukkul/meetapp-service/internal/middleware"
	"github.com/Eursukkul/meetapp-service/internal/repository"
	"github.com/Eursukkul/meetapp-service/internal/service"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// newServer builds the HTTP API on top of db. publisher may be nil.
func newServer(cfg *config.Config, db *gorm.DB, publisher service.Publisher) *echo.Echo {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	fileRepo := repository.NewFileRepository(db)
	meetappRepo := repository.NewMeetappRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)

	// Services
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL)
	userSvc := service.NewUserService(userRepo, tokens)
	fileSvc := service.NewFileService(fileRepo, cfg.UploadDir, cfg.AppURL)
	meetappSvc := service.NewMeetappService(meetappRepo, fileRepo)
	subscriptionSvc := service.NewSubscriptionService(subscriptionRepo, meetappRepo, userRepo, publisher)

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	// rate limit buckets key on the peer address, not on client-sent headers
	e.IPExtractor = echo.ExtractIPDirect()
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "meetapp-service"})
	})
	e.Static("/files", cfg.UploadDir)

	userHandler := handler.NewUserHandler(userSvc)
	limiter := middleware.NewRateLimiter(5, 10)
	e.Server.RegisterOnShutdown(limiter.Close)
	userHandler.RegisterPublicRoutes(e.Group("", middleware.RateLimit(limiter)))

	private := e.Group("", middleware.Auth(tokens))
	userHandler.RegisterRoutes(private)
	handler.NewFileHandler(fileSvc).RegisterRoutes(private)
	handler.NewMeetappHandler(meetappSvc).RegisterRoutes(private)
	handler.NewSubscriptionHandler(subscriptionSvc).RegisterRoutes(private)

	return e
}
