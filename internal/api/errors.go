package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HyperionMedia/Plated-Free-sub001/internal/service"
	"github.com/HyperionMedia/Plated-Free-sub001/internal/store"
)

// abortWithError maps the store/service error taxonomy onto HTTP status
// codes: validation failures are the caller's fault, missing entities
// are 404s, everything else is a server-side failure.
func abortWithError(c *gin.Context, err error) {
	switch {
	case store.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrUserAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrEmptyEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
