package handlers

import (
	"net/http"
	"time"

	"github.com/RyanNgWH/WhichCard-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles transaction HTTP requests, including cashback
// recommendations for a prospective spend.
type TransactionHandler struct {
	transactionService    *services.TransactionService
	recommendationService *services.RecommendationService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *services.TransactionService, recommendationService *services.RecommendationService) *TransactionHandler {
	return &TransactionHandler{
		transactionService:    transactionService,
		recommendationService: recommendationService,
	}
}

// GetAllTransactions handles GET /transactions
func (h *TransactionHandler) GetAllTransactions(c *gin.Context) {
	transactions, err := h.transactionService.GetAllTransactions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// GetTransactionByID handles GET /transactions/:transactionId
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	transaction, err := h.transactionService.GetTransactionByID(c.Request.Context(), c.Param("transactionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transaction)
}

// CreateTransaction handles POST /transactions
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var request struct {
		User     string    `json:"user" binding:"required,uuid"`
		UserCard string    `json:"userCard" binding:"required"`
		Merchant string    `json:"merchant" binding:"required,uuid"`
		DateTime time.Time `json:"dateTime" binding:"required"`
		Amount   float64   `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request.Context(), request.User, request.UserCard, request.Merchant, request.DateTime, request.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, transaction)
}

// DeleteTransaction handles DELETE /transactions/:transactionId
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.transactionService.DeleteTransactionByID(c.Request.Context(), c.Param("transactionId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Recommend handles POST /transactions/recommend. It ranks the user's wallet
// by the cashback a spend of the given amount at the merchant would earn.
func (h *TransactionHandler) Recommend(c *gin.Context) {
	var request struct {
		User     string  `json:"user" binding:"required,uuid"`
		Merchant string  `json:"merchant" binding:"required,uuid"`
		Amount   float64 `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recommendations, err := h.recommendationService.Recommend(c.Request.Context(), request.User, request.Merchant, request.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recommendations)
}
