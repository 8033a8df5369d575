package routes

import (
	"net/http"

	"github.com/RyanNgWH/WhichCard-backend/internal/config"
	"github.com/RyanNgWH/WhichCard-backend/internal/handlers"
	"github.com/RyanNgWH/WhichCard-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies carries the handlers the router wires up
type HandlerDependencies struct {
	UserHandler        *handlers.UserHandler
	CardHandler        *handlers.CardHandler
	MerchantHandler    *handlers.MerchantHandler
	TransactionHandler *handlers.TransactionHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.ResponseTimeMiddleware())

	// Public routes: registration, login, reads and recommendations.
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		users := public.Group("/users")
		{
			users.POST("", deps.UserHandler.CreateUser)
			users.POST("/login", deps.UserHandler.Login)
			users.GET("", deps.UserHandler.GetAllUsers)
			users.GET("/:userId", deps.UserHandler.GetUserByID)
			users.GET("/:userId/cards", deps.UserHandler.GetUserCards)
			users.GET("/:userId/cards/:cardName", deps.UserHandler.GetUserCardByName)
		}

		cards := public.Group("/cards")
		{
			cards.GET("", deps.CardHandler.GetAllCards)
			cards.GET("/:cardId", deps.CardHandler.GetCardByID)
		}

		merchants := public.Group("/merchants")
		{
			merchants.GET("", deps.MerchantHandler.GetAllMerchants)
			merchants.GET("/active", deps.MerchantHandler.GetActiveMerchants)
			merchants.GET("/:merchantId", deps.MerchantHandler.GetMerchantByID)
		}

		transactions := public.Group("/transactions")
		{
			transactions.GET("", deps.TransactionHandler.GetAllTransactions)
			transactions.GET("/:transactionId", deps.TransactionHandler.GetTransactionByID)
			transactions.POST("/recommend", deps.TransactionHandler.Recommend)
		}
	}

	// Protected routes: everything that mutates state.
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		users := protected.Group("/users")
		{
			users.PATCH("/:userId", deps.UserHandler.UpdateUser)
			users.DELETE("/:userId", deps.UserHandler.DeleteUser)
			users.POST("/:userId/cards", deps.UserHandler.AddUserCard)
			users.PATCH("/:userId/cards/:cardName", deps.UserHandler.UpdateUserCardByName)
			users.DELETE("/:userId/cards/:cardName", deps.UserHandler.DeleteUserCardByName)
		}

		cards := protected.Group("/cards")
		{
			cards.POST("", deps.CardHandler.CreateCard)
			cards.PATCH("/:cardId", deps.CardHandler.UpdateCard)
			cards.DELETE("/:cardId", deps.CardHandler.DeleteCard)
		}

		merchants := protected.Group("/merchants")
		{
			merchants.POST("", deps.MerchantHandler.CreateMerchant)
			merchants.PATCH("/:merchantId", deps.MerchantHandler.UpdateMerchant)
			merchants.DELETE("/:merchantId", deps.MerchantHandler.DeleteMerchant)
		}

		transactions := protected.Group("/transactions")
		{
			transactions.POST("", deps.TransactionHandler.CreateTransaction)
			transactions.DELETE("/:transactionId", deps.TransactionHandler.DeleteTransaction)
		}
	}

	return router
}
