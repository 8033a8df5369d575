package handlers

import (
	"net/http"

	"github.com/RyanNgWH/WhichCard-backend/internal/models"
	"github.com/RyanNgWH/WhichCard-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// CardHandler handles card-catalogue HTTP requests
type CardHandler struct {
	cardService *services.CardService
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(cardService *services.CardService) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

// GetAllCards handles GET /cards
func (h *CardHandler) GetAllCards(c *gin.Context) {
	cards, err := h.cardService.GetAllCards(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// GetCardByID handles GET /cards/:cardId
func (h *CardHandler) GetCardByID(c *gin.Context) {
	card, err := h.cardService.GetCardByID(c.Request.Context(), c.Param("cardId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// CreateCard handles POST /cards
func (h *CardHandler) CreateCard(c *gin.Context) {
	var request struct {
		Type          string           `json:"type" binding:"required"`
		Issuer        string           `json:"issuer" binding:"required"`
		Benefits      []models.Benefit `json:"benefits" binding:"dive"`
		Exclusions    []int            `json:"exclusions"`
		CashbackLimit float64          `json:"cashbackLimit" binding:"min=0"`
		MinimumSpend  float64          `json:"minimumSpend" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card, err := h.cardService.CreateCard(c.Request.Context(), &models.Card{
		Type:          request.Type,
		Issuer:        request.Issuer,
		Benefits:      request.Benefits,
		Exclusions:    request.Exclusions,
		CashbackLimit: request.CashbackLimit,
		MinimumSpend:  request.MinimumSpend,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, card)
}

// UpdateCard handles PATCH /cards/:cardId
func (h *CardHandler) UpdateCard(c *gin.Context) {
	var request struct {
		Benefits      []models.Benefit `json:"benefits" binding:"omitempty,dive"`
		Exclusions    []int            `json:"exclusions"`
		CashbackLimit *float64         `json:"cashbackLimit" binding:"omitempty,min=0"`
		MinimumSpend  *float64         `json:"minimumSpend" binding:"omitempty,min=0"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card, err := h.cardService.UpdateCardByID(c.Request.Context(), c.Param("cardId"), services.CardUpdates{
		Benefits:      request.Benefits,
		Exclusions:    request.Exclusions,
		CashbackLimit: request.CashbackLimit,
		MinimumSpend:  request.MinimumSpend,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// DeleteCard handles DELETE /cards/:cardId
func (h *CardHandler) DeleteCard(c *gin.Context) {
	if err := h.cardService.DeleteCardByID(c.Request.Context(), c.Param("cardId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
