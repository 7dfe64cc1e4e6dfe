package api

import (
	"github.com/gin-gonic/gin"

	"github.com/HyperionMedia/Plated-Free-sub001/internal/service"
	"github.com/HyperionMedia/Plated-Free-sub001/internal/store"
)

// SetupAPI registers every route group under /api/v1.
func SetupAPI(router *gin.Engine, s *store.Store, authService *service.AuthService, llmService *service.LLMService, imageService *service.ImageService) {
	v1 := router.Group("/api/v1")
	{
		NewAuthHandler(authService).RegisterRoutes(v1)
		NewRecipeHandler(s, authService, llmService, imageService).RegisterRoutes(v1)
		NewFolderHandler(s, authService).RegisterRoutes(v1)
		NewShoppingHandler(s, authService).RegisterRoutes(v1)
		NewMealHandler(s, authService).RegisterRoutes(v1)
	}
}
