package main

import (
	"log"
	"strings"

	"ticketing-service/config"
	"ticketing-service/controllers"
	"ticketing-service/database"
	"ticketing-service/errors"
	"ticketing-service/kafka"
	"ticketing-service/logger"
	"ticketing-service/repository"
	"ticketing-service/routes"
	"ticketing-service/sender"
	"ticketing-service/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("[TicketingService] ❌ Failed to load config:", err)
	}

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	if err := database.Connect(cfg.MongoURL, cfg.MongoDB); err != nil {
		log.Fatal("[TicketingService] ❌ Failed to connect to DB:", err)
	}
	defer database.Close()

	eventRepo := repository.NewMongoEventRepository(database.DB)
	orderRepo := repository.NewMongoOrderRepository(database.DB)

	var guard repository.RedirectGuard
	if cfg.RedisURL != "" {
		guard = repository.NewRedisRedirectGuard(database.NewRedisClient(cfg.RedisURL))
	}

	var publisher services.OrderEventPublisher
	if cfg.KafkaBrokers != "" {
		producer := kafka.NewProducer(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic)
		defer producer.Close()
		publisher = producer
	}

	smtpSender, err := sender.NewSMTPSender()
	if err != nil {
		log.Fatal("[TicketingService] ❌ Failed to configure SMTP sender:", err)
	}
	mailer, err := services.NewOrderMailer(smtpSender, cfg.OrderNotifyEmail)
	if err != nil {
		log.Fatal("[TicketingService] ❌ Failed to build order mailer:", err)
	}

	stripeSvc := services.NewStripeCheckoutService(cfg.StripeSecretKey, cfg.ServerURL)
	checkoutSvc := services.NewCheckoutService(eventRepo, orderRepo, stripeSvc, mailer, publisher, guard)
	orderSvc := services.NewOrderService(orderRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(errors.ErrorMiddleware())

	cc := controllers.NewCheckoutController(checkoutSvc, eventRepo)
	oc := controllers.NewOrderController(orderSvc)
	routes.RegisterRoutes(r, cc, oc, cfg.JWTSecret)

	log.Println("[TicketingService] ✅ Running on port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("[TicketingService] ❌ Server failed:", err)
	}
}
