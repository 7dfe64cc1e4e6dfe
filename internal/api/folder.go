package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HyperionMedia/Plated-Free-sub001/internal/middleware"
	"github.com/HyperionMedia/Plated-Free-sub001/internal/model"
	"github.com/HyperionMedia/Plated-Free-sub001/internal/service"
	"github.com/HyperionMedia/Plated-Free-sub001/internal/store"
)

type FolderHandler struct {
	store       *store.Store
	authService *service.AuthService
}

func NewFolderHandler(s *store.Store, authService *service.AuthService) *FolderHandler {
	return &FolderHandler{store: s, authService: authService}
}

func (h *FolderHandler) RegisterRoutes(router *gin.RouterGroup) {
	folders := router.Group("/folders")
	{
		folders.GET("", h.ListFolders)
		folders.GET("/recipes", h.RecipesByFolder)
		folders.POST("", middleware.AuthMiddleware(h.authService), h.CreateFolder)
		folders.DELETE("/:id", middleware.AuthMiddleware(h.authService), h.DeleteFolder)
		folders.PUT("/recipes/:recipeId", middleware.AuthMiddleware(h.authService), h.MoveRecipe)
	}
}

func (h *FolderHandler) ListFolders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"folders": h.store.Folders()})
}

// RecipesByFolder returns the folder projection, including the synthetic
// uncategorized bucket.
func (h *FolderHandler) RecipesByFolder(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"folders": h.store.RecipesByFolder()})
}

func (h *FolderHandler) CreateFolder(c *gin.Context) {
	var req CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	folder, err := h.store.AddFolder(c.Request.Context(), model.Folder{
		ID:       req.ID,
		Name:     req.Name,
		Color:    req.Color,
		Icon:     model.ParseFolderIcon(req.Icon),
		ParentID: req.ParentID,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"folder": folder})
}

func (h *FolderHandler) DeleteFolder(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.DeleteFolder(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Folder deleted successfully", "id": id})
}

func (h *FolderHandler) MoveRecipe(c *gin.Context) {
	var req MoveRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipeID := c.Param("recipeId")
	if err := h.store.MoveRecipeToFolder(c.Request.Context(), recipeID, req.FolderID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe moved successfully", "id": recipeID})
}
