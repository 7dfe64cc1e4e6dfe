package api

import (
	"github.com/HyperionMedia/Plated-Free-sub001/internal/model"
)

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateRecipeRequest represents the request body for creating a recipe
type CreateRecipeRequest struct {
	ID                 string             `json:"id"`
	Title              string             `json:"title" binding:"required"`
	ImageURI           string             `json:"image_uri"`
	Ingredients        []model.Ingredient `json:"ingredients"`
	Instructions       []string           `json:"instructions"`
	Servings           string             `json:"servings"`
	PrepTime           string             `json:"prep_time"`
	CookTime           string             `json:"cook_time"`
	CaloriesPerServing int                `json:"calories_per_serving"`
	Macros             model.Macros       `json:"macros"`
	FolderID           string             `json:"folder_id"`
}

// UpdateRecipeRequest represents the request body for updating a recipe
type UpdateRecipeRequest struct {
	Title              string             `json:"title"`
	ImageURI           string             `json:"image_uri"`
	Ingredients        []model.Ingredient `json:"ingredients"`
	Instructions       []string           `json:"instructions"`
	Servings           string             `json:"servings"`
	PrepTime           string             `json:"prep_time"`
	CookTime           string             `json:"cook_time"`
	CaloriesPerServing int                `json:"calories_per_serving"`
	Macros             model.Macros       `json:"macros"`
}

// RateRecipeRequest sets a recipe's rating
type RateRecipeRequest struct {
	Rating float64 `json:"rating"`
}

// CreateFolderRequest represents the request body for creating a folder
type CreateFolderRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name" binding:"required"`
	Color    string `json:"color"`
	Icon     string `json:"icon"`
	ParentID string `json:"parent_id"`
}

// MoveRecipeRequest files a recipe under a folder
type MoveRecipeRequest struct {
	FolderID string `json:"folder_id"`
}

// AddToShoppingListRequest carries the ingredients to merge into the list
type AddToShoppingListRequest struct {
	Ingredients []model.Ingredient `json:"ingredients" binding:"required"`
}

// LogMealRequest represents the request body for logging a meal
type LogMealRequest struct {
	RecipeID string `json:"recipe_id" binding:"required"`
	Servings int    `json:"servings" binding:"required,min=1"`
}

// ImportFromURLRequest asks the extraction service to parse a webpage
type ImportFromURLRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// DeepLinkImportRequest carries a URL-encoded shared recipe payload
type DeepLinkImportRequest struct {
	Payload string `json:"payload" binding:"required"`
}
