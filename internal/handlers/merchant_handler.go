package handlers

import (
	"net/http"

	"github.com/RyanNgWH/WhichCard-backend/internal/models"
	"github.com/RyanNgWH/WhichCard-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// MerchantHandler handles merchant HTTP requests
type MerchantHandler struct {
	merchantService *services.MerchantService
}

// NewMerchantHandler creates a new MerchantHandler
func NewMerchantHandler(merchantService *services.MerchantService) *MerchantHandler {
	return &MerchantHandler{
		merchantService: merchantService,
	}
}

// GetAllMerchants handles GET /merchants
func (h *MerchantHandler) GetAllMerchants(c *gin.Context) {
	merchants, err := h.merchantService.GetAllMerchants(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, merchants)
}

// GetActiveMerchants handles GET /merchants/active
func (h *MerchantHandler) GetActiveMerchants(c *gin.Context) {
	merchants, err := h.merchantService.GetActiveMerchants(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, merchants)
}

// GetMerchantByID handles GET /merchants/:merchantId
func (h *MerchantHandler) GetMerchantByID(c *gin.Context) {
	merchant, err := h.merchantService.GetMerchantByID(c.Request.Context(), c.Param("merchantId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, merchant)
}

// CreateMerchant handles POST /merchants
func (h *MerchantHandler) CreateMerchant(c *gin.Context) {
	var request struct {
		Name       string  `json:"name" binding:"required"`
		PrettyName string  `json:"prettyName" binding:"required"`
		Address    string  `json:"address" binding:"required"`
		MCC        int     `json:"mcc" binding:"required,min=0,max=9999"`
		Longitude  float64 `json:"longitude"`
		Latitude   float64 `json:"latitude"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	merchant, err := h.merchantService.CreateMerchant(c.Request.Context(), &models.Merchant{
		Name:       request.Name,
		PrettyName: request.PrettyName,
		Address:    request.Address,
		MCC:        request.MCC,
		Longitude:  request.Longitude,
		Latitude:   request.Latitude,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, merchant)
}

// UpdateMerchant handles PATCH /merchants/:merchantId
func (h *MerchantHandler) UpdateMerchant(c *gin.Context) {
	var request struct {
		PrettyName string   `json:"prettyName"`
		Address    string   `json:"address"`
		MCC        *int     `json:"mcc" binding:"omitempty,min=0,max=9999"`
		Longitude  *float64 `json:"longitude"`
		Latitude   *float64 `json:"latitude"`
		Status     string   `json:"status" binding:"omitempty,oneof=active inactive"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	merchant, err := h.merchantService.UpdateMerchantByID(c.Request.Context(), c.Param("merchantId"), services.MerchantUpdates{
		PrettyName: request.PrettyName,
		Address:    request.Address,
		MCC:        request.MCC,
		Longitude:  request.Longitude,
		Latitude:   request.Latitude,
		Status:     request.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, merchant)
}

// DeleteMerchant handles DELETE /merchants/:merchantId
func (h *MerchantHandler) DeleteMerchant(c *gin.Context) {
	if err := h.merchantService.DeleteMerchantByID(c.Request.Context(), c.Param("merchantId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
