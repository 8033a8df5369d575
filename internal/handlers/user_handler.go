package handlers

import (
	"net/http"
	"time"

	"github.com/RyanNgWH/WhichCard-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related HTTP requests, wallet management included
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetAllUsers handles GET /users
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByID handles GET /users/:userId
func (h *UserHandler) GetUserByID(c *gin.Context) {
	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var request struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), request.Name, request.Email, request.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateUser handles PATCH /users/:userId
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var request struct {
		Name     string `json:"name"`
		Email    string `json:"email" binding:"omitempty,email"`
		Password string `json:"password" binding:"omitempty,min=8"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpdateUserByID(c.Request.Context(), c.Param("userId"), services.UserUpdates{
		Name:     request.Name,
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /users/:userId
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUserByID(c.Request.Context(), c.Param("userId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Login handles POST /users/login
func (h *UserHandler) Login(c *gin.Context) {
	var request struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.userService.Login(c.Request.Context(), request.Email, request.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// GetUserCards handles GET /users/:userId/cards
func (h *UserHandler) GetUserCards(c *gin.Context) {
	cards, err := h.userService.GetUserCards(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// AddUserCard handles POST /users/:userId/cards
func (h *UserHandler) AddUserCard(c *gin.Context) {
	var request struct {
		CardName   string `json:"cardName" binding:"required"`
		CardExpiry string `json:"cardExpiry" binding:"required,datetime=2006-01-02"`
		Type       string `json:"type" binding:"required"`
		Issuer     string `json:"issuer" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expiry, _ := time.Parse(dateLayout, request.CardExpiry)
	user, err := h.userService.AddUserCard(c.Request.Context(), c.Param("userId"), request.CardName, expiry, request.Type, request.Issuer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserCardByName handles GET /users/:userId/cards/:cardName
func (h *UserHandler) GetUserCardByName(c *gin.Context) {
	card, err := h.userService.GetUserCardByName(c.Request.Context(), c.Param("userId"), c.Param("cardName"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// UpdateUserCardByName handles PATCH /users/:userId/cards/:cardName
func (h *UserHandler) UpdateUserCardByName(c *gin.Context) {
	var request struct {
		CardName   string `json:"cardName"`
		CardExpiry string `json:"cardExpiry" binding:"omitempty,datetime=2006-01-02"`
		Type       string `json:"type"`
		Issuer     string `json:"issuer"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if (request.Type == "") != (request.Issuer == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "If updating type or issuer, both must be provided"})
		return
	}

	updates := services.UserCardUpdates{
		CardName: request.CardName,
		Type:     request.Type,
		Issuer:   request.Issuer,
	}
	if request.CardExpiry != "" {
		expiry, _ := time.Parse(dateLayout, request.CardExpiry)
		updates.CardExpiry = &expiry
	}

	card, err := h.userService.UpdateUserCardByName(c.Request.Context(), c.Param("userId"), c.Param("cardName"), updates)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// DeleteUserCardByName handles DELETE /users/:userId/cards/:cardName
func (h *UserHandler) DeleteUserCardByName(c *gin.Context) {
	if err := h.userService.DeleteUserCardByName(c.Request.Context(), c.Param("userId"), c.Param("cardName")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
