package main

import (
	"log"
	"time"

	"booking-service/internal/config"
	httpctrl "booking-service/internal/controllers/http"
	"booking-service/internal/infra/mysql"
	"booking-service/internal/infra/rabbitmq"
	"booking-service/internal/infra/telegram"
	mysqlrepo "booking-service/internal/repository/mysql"
	"booking-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := mysql.New(cfg)
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	catalogRepo := mysqlrepo.NewCatalogRepository(db)
	bookingRepo := mysqlrepo.NewBookingRepository(db)

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange)
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	notifier := telegram.NewNotifier(cfg.TelegramBotToken, 2*time.Second)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisHost + ":6379",
		DB:           0,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	catalog := services.NewCatalogService(catalogRepo)
	booking := services.NewBookingService(bookingRepo, notifier, publisher, cfg.TelegramChatID)

	handler := httpctrl.NewHandler(catalog, booking, redisClient)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	log.Printf("Starting booking service on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
