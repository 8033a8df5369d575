package handlers

import (
	"github.com/RyanNgWH/WhichCard-backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// dateLayout is the wire format for dates in request bodies.
const dateLayout = "2006-01-02"

// respondError writes a service error with the status its kind maps to.
func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
}
