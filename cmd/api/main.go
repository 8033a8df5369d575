package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RyanNgWH/WhichCard-backend/api/routes"
	"github.com/RyanNgWH/WhichCard-backend/internal/config"
	"github.com/RyanNgWH/WhichCard-backend/internal/handlers"
	"github.com/RyanNgWH/WhichCard-backend/internal/repositories"
	"github.com/RyanNgWH/WhichCard-backend/internal/repositories/cache"
	mongorepo "github.com/RyanNgWH/WhichCard-backend/internal/repositories/mongodb"
	"github.com/RyanNgWH/WhichCard-backend/internal/services"
	"github.com/RyanNgWH/WhichCard-backend/pkg/mongodb"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load .env before viper reads the environment. A missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	var userRepo repositories.UserRepository = mongorepo.NewUserRepository(db)
	var cardRepo repositories.CardRepository = mongorepo.NewCardRepository(db)
	var merchantRepo repositories.MerchantRepository = mongorepo.NewMerchantRepository(db)
	var transactionRepo repositories.TransactionRepository = mongorepo.NewTransactionRepository(db)

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		cardRepo = cache.NewCardCache(cardRepo, redisClient)
		log.Printf("Card catalogue cache enabled (redis at %s)", cfg.Redis.Addr)
	}

	userService := services.NewUserService(userRepo, cardRepo, cfg)
	cardService := services.NewCardService(cardRepo)
	merchantService := services.NewMerchantService(merchantRepo)
	transactionService := services.NewTransactionService(transactionRepo, userRepo, cardRepo, merchantRepo)
	recommendationService := services.NewRecommendationService(userRepo, cardRepo, merchantRepo, transactionRepo)

	deps := routes.HandlerDependencies{
		UserHandler:        handlers.NewUserHandler(userService),
		CardHandler:        handlers.NewCardHandler(cardService),
		MerchantHandler:    handlers.NewMerchantHandler(merchantService),
		TransactionHandler: handlers.NewTransactionHandler(transactionService, recommendationService),
	}

	router := routes.SetupRouter(cfg, deps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
