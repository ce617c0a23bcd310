package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/drizz21/rental-tes/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError is the single boundary where service errors become HTTP
// responses. Anything outside the taxonomy is logged in full and answered
// with the generic 500 body, so raw detail never reaches the caller.
func writeError(c *gin.Context, err error) {
	var (
		validation *domain.ValidationError
		notFound   *domain.NotFoundError
	)
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.Is(err, domain.ErrVehicleUnavailable), errors.Is(err, domain.ErrInvalidVehicleStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		log.Printf("API error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
