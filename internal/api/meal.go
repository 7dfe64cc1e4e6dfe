package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HyperionMedia/Plated-Free-sub001/internal/middleware"
	"github.com/HyperionMedia/Plated-Free-sub001/internal/model"
	"github.com/HyperionMedia/Plated-Free-sub001/internal/service"
	"github.com/HyperionMedia/Plated-Free-sub001/internal/store"
)

type MealHandler struct {
	store       *store.Store
	authService *service.AuthService
}

func NewMealHandler(s *store.Store, authService *service.AuthService) *MealHandler {
	return &MealHandler{store: s, authService: authService}
}

func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/meals", middleware.AuthMiddleware(h.authService))
	{
		meals.POST("", h.LogMeal)
		meals.DELETE("/:id", h.DeleteEntry)
		meals.GET("/daily", h.DailyNutrition)
	}
}

func (h *MealHandler) LogMeal(c *gin.Context) {
	var req LogMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.store.LogMeal(c.Request.Context(), req.RecipeID, req.Servings)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

func (h *MealHandler) DeleteEntry(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.DeleteMealLogEntry(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted", "id": id})
}

// DailyNutrition returns the totals and entries for one day. Defaults
// to today; a day with no entries yields zero totals.
func (h *MealHandler) DailyNutrition(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = model.TodayDateString()
	}

	entries := h.store.MealsForDate(date)
	if entries == nil {
		entries = []model.MealLogEntry{}
	}
	c.JSON(http.StatusOK, gin.H{
		"totals":  h.store.NutritionForDate(date),
		"entries": entries,
	})
}
