package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HyperionMedia/Plated-Free-sub001/internal/middleware"
	"github.com/HyperionMedia/Plated-Free-sub001/internal/model"
	"github.com/HyperionMedia/Plated-Free-sub001/internal/service"
	"github.com/HyperionMedia/Plated-Free-sub001/internal/store"
)

type RecipeHandler struct {
	store        *store.Store
	authService  *service.AuthService
	llmService   *service.LLMService
	imageService *service.ImageService
}

// NewRecipeHandler wires the recipe routes. llmService and imageService
// may be nil when their API keys are not configured; the corresponding
// endpoints then answer 503.
func NewRecipeHandler(s *store.Store, authService *service.AuthService, llmService *service.LLMService, imageService *service.ImageService) *RecipeHandler {
	return &RecipeHandler{
		store:        s,
		authService:  authService,
		llmService:   llmService,
		imageService: imageService,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.GET("/:id/history", h.GetRecipeHistory)
		recipes.POST("", middleware.AuthMiddleware(h.authService), h.CreateRecipe)
		recipes.PUT("/:id", middleware.AuthMiddleware(h.authService), h.UpdateRecipe)
		recipes.DELETE("/:id", middleware.AuthMiddleware(h.authService), h.DeleteRecipe)
		recipes.PUT("/:id/rating", middleware.AuthMiddleware(h.authService), h.RateRecipe)
		recipes.POST("/:id/image", middleware.AuthMiddleware(h.authService), h.GenerateImage)
		recipes.POST("/import/url", middleware.AuthMiddleware(h.authService), h.ImportFromURL)
		recipes.POST("/import/deeplink", h.ImportDeepLink)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"recipes": h.store.Recipes()})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, ok := h.store.GetRecipe(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// GetRecipeHistory lists the meal log entries for a recipe. A deleted
// recipe still has history; the entries carry their own snapshots.
func (h *RecipeHandler) GetRecipeHistory(c *gin.Context) {
	entries := h.store.MealHistoryForRecipe(c.Param("id"))
	if entries == nil {
		entries = []model.MealLogEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.store.AddRecipe(c.Request.Context(), model.Recipe{
		ID:                 req.ID,
		Title:              req.Title,
		ImageURI:           req.ImageURI,
		Ingredients:        req.Ingredients,
		Instructions:       req.Instructions,
		Servings:           req.Servings,
		PrepTime:           req.PrepTime,
		CookTime:           req.CookTime,
		CaloriesPerServing: req.CaloriesPerServing,
		Macros:             req.Macros,
		FolderID:           req.FolderID,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	err := h.store.UpdateRecipe(c.Request.Context(), id, model.Recipe{
		Title:              req.Title,
		ImageURI:           req.ImageURI,
		Ingredients:        req.Ingredients,
		Instructions:       req.Instructions,
		Servings:           req.Servings,
		PrepTime:           req.PrepTime,
		CookTime:           req.CookTime,
		CaloriesPerServing: req.CaloriesPerServing,
		Macros:             req.Macros,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe updated successfully", "id": id})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.DeleteRecipe(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully", "id": id})
}

func (h *RecipeHandler) RateRecipe(c *gin.Context) {
	var req RateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	if err := h.store.SetRecipeRating(c.Request.Context(), id, req.Rating); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe rated successfully", "id": id})
}

// GenerateImage asks the image service for a picture of the recipe and
// writes the result via a merge on the image field only, so edits made
// while the call was in flight are not clobbered.
func (h *RecipeHandler) GenerateImage(c *gin.Context) {
	if h.imageService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image generation is not configured"})
		return
	}

	id := c.Param("id")
	recipe, ok := h.store.GetRecipe(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	imageURI, err := h.imageService.GenerateRecipeImage(c.Request.Context(), recipe.Title)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.SetRecipeImage(c.Request.Context(), id, imageURI); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "image_uri": imageURI})
}

// ImportFromURL extracts a recipe from a webpage via the AI service and
// inserts it. The extracted payload is untrusted; the store applies the
// same validation as manual entry and is left unchanged on failure.
func (h *RecipeHandler) ImportFromURL(c *gin.Context) {
	if h.llmService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "recipe extraction is not configured"})
		return
	}

	var req ImportFromURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	extraction, err := h.llmService.ExtractRecipeFromURL(c.Request.Context(), req.URL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	folderID := h.resolveFolderByName(extraction.SuggestedFolder)
	recipe, err := h.store.ImportRecipe(c.Request.Context(), extraction.Recipe.ToRecipe(), folderID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

// ImportDeepLink inserts a recipe shared via deep link. Malformed
// payloads fail before any store mutation.
func (h *RecipeHandler) ImportDeepLink(c *gin.Context) {
	var req DeepLinkImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := service.ParseDeepLink(req.Payload)
	if err != nil {
		abortWithError(c, err)
		return
	}

	inserted, err := h.store.ImportRecipe(c.Request.Context(), recipe, "")
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe": inserted})
}

func (h *RecipeHandler) resolveFolderByName(name string) string {
	if name == "" {
		return ""
	}
	for _, f := range h.store.Folders() {
		if f.Name == name {
			return f.ID
		}
	}
	return ""
}
