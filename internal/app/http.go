package app

import (
	"context"
	"net/http"

	"github.com/Souvik9205/KomyuLink/internal/auth/handler"
	"github.com/Souvik9205/KomyuLink/internal/auth/mailer"
	"github.com/Souvik9205/KomyuLink/internal/auth/otp"
	"github.com/Souvik9205/KomyuLink/internal/auth/service"
	"github.com/Souvik9205/KomyuLink/internal/auth/token"
	"github.com/Souvik9205/KomyuLink/internal/auth/user"
	"github.com/Souvik9205/KomyuLink/internal/config"
	"github.com/Souvik9205/KomyuLink/internal/logger"
	"github.com/Souvik9205/KomyuLink/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	userDirectory := user.NewPostgresDirectory(infra.DB)
	otpStore := otp.NewRedisStore(infra.Redis.Client)

	issuer, err := token.NewIssuer(cfg.JWTSecret, token.DefaultValidity)
	if err != nil {
		return nil, nil, err
	}

	var sender mailer.Sender
	if cfg.SMTPHost != "" {
		sender, err = mailer.NewSMTPSender(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.SMTPFrom,
		)
		if err != nil {
			return nil, nil, err
		}
	} else {
		logger.Warn("smtp not configured, otp codes are logged to stdout", nil)
		sender = mailer.ConsoleSender{}
	}

	authService := service.New(userDirectory, otpStore, sender, issuer)
	authHandler := handler.NewHandler(authService, cfg.CookieDomain)
	authMiddleware := middleware.NewAuthMiddleware(issuer)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected API Routes
	// ----------------------------

	api := router.Group("/api")
	api.Use(middleware.GinRequireAuth(authMiddleware))

	api.GET("/me", func(c *gin.Context) {
		userID, ok := middleware.UserIDFromContext(c.Request.Context())
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user_id": userID,
		})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		if err := infra.Redis.Close(); err != nil {
			return err
		}
		return infra.DB.Close()
	}, nil
}
