package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HyperionMedia/Plated-Free-sub001/internal/middleware"
	"github.com/HyperionMedia/Plated-Free-sub001/internal/service"
	"github.com/HyperionMedia/Plated-Free-sub001/internal/store"
)

type ShoppingHandler struct {
	store       *store.Store
	authService *service.AuthService
}

func NewShoppingHandler(s *store.Store, authService *service.AuthService) *ShoppingHandler {
	return &ShoppingHandler{store: s, authService: authService}
}

func (h *ShoppingHandler) RegisterRoutes(router *gin.RouterGroup) {
	shopping := router.Group("/shopping-list", middleware.AuthMiddleware(h.authService))
	{
		shopping.GET("", h.GetList)
		shopping.GET("/grouped", h.GetGrouped)
		shopping.POST("/items", h.AddItems)
		shopping.PUT("/items/:id/toggle", h.ToggleItem)
		shopping.DELETE("/items/:id", h.RemoveItem)
		shopping.DELETE("/checked", h.ClearChecked)
		shopping.DELETE("", h.ClearAll)
	}
}

func (h *ShoppingHandler) GetList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.store.ShoppingList()})
}

// GetGrouped returns the list partitioned by category in display order.
func (h *ShoppingHandler) GetGrouped(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"groups": h.store.GroupShoppingByCategory()})
}

func (h *ShoppingHandler) AddItems(c *gin.Context) {
	var req AddToShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.AddToShoppingList(c.Request.Context(), req.Ingredients); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.store.ShoppingList()})
}

func (h *ShoppingHandler) ToggleItem(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.ToggleShoppingItem(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item toggled", "id": id})
}

func (h *ShoppingHandler) RemoveItem(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.RemoveFromShoppingList(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed", "id": id})
}

func (h *ShoppingHandler) ClearChecked(c *gin.Context) {
	if err := h.store.ClearCheckedItems(c.Request.Context()); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Checked items cleared"})
}

func (h *ShoppingHandler) ClearAll(c *gin.Context) {
	if err := h.store.ClearShoppingList(c.Request.Context()); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shopping list cleared"})
}
