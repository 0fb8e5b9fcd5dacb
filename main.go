package main

import (
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/printmate/storefront-backend/config"
	"github.com/printmate/storefront-backend/controllers"
	"github.com/printmate/storefront-backend/database"
	apperrors "github.com/printmate/storefront-backend/errors"
	"github.com/printmate/storefront-backend/kafka"
	"github.com/printmate/storefront-backend/logger"
	"github.com/printmate/storefront-backend/models"
	"github.com/printmate/storefront-backend/repository"
	"github.com/printmate/storefront-backend/routes"
	"github.com/printmate/storefront-backend/services"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	// Storage
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Log.Fatal("Could not connect to PostgreSQL", zap.Error(err))
	}
	if err := models.Migrate(db); err != nil {
		logger.Log.Fatal("Migration failed", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		logger.Log.Fatal("Could not connect to Redis", zap.Error(err))
	}

	mongoDB, err := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Log.Fatal("Could not connect to MongoDB", zap.Error(err))
	}

	producer := kafka.NewProducer(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic)
	defer producer.Close()

	// Repositories
	cartRepo := repository.NewCartRepository(redisClient, cfg.CartTTL)
	otpRepo := repository.NewOTPRepository(redisClient)
	checkoutRepo := repository.NewCheckoutRepository(redisClient, cfg.CheckoutTTL)
	productRepo := repository.NewProductRepository(mongoDB)
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	tokenService := services.NewTokenService(cfg.JWTSecret)
	sender, err := services.NewSMTPSender(cfg)
	if err != nil {
		logger.Log.Fatal("Could not configure SMTP sender", zap.Error(err))
	}
	authService := services.NewAuthService(userRepo, otpRepo, tokenService, sender, services.AuthOptions{
		OTPTTL:             cfg.OTPTTL,
		OTPInitialCooldown: cfg.OTPInitialCooldown,
		OTPResendCooldown:  cfg.OTPResendCooldown,
	})
	cartService := services.NewCartService(cartRepo)
	catalogService := services.NewCatalogService(productRepo)
	checkoutService := services.NewCheckoutService(checkoutRepo, cartRepo, orderRepo, producer)

	// HTTP
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(apperrors.ErrorMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Register(r,
		tokenService,
		controllers.NewAuthController(authService),
		controllers.NewProductController(catalogService),
		controllers.NewCartController(cartService),
		controllers.NewCheckoutController(checkoutService),
	)

	logger.Log.Info("Storefront backend started", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Error starting server", zap.Error(err))
	}
}
