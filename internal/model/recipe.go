package model

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is the central entity. It owns its ingredients and instructions;
// folders and meal log entries only refer to it by id.
type Recipe struct {
	ID                 string       `json:"id"`
	Title              string       `json:"title"`
	ImageURI           string       `json:"image_uri"`
	Ingredients        []Ingredient `json:"ingredients"`
	Instructions       []string     `json:"instructions"`
	Servings           string       `json:"servings"`
	PrepTime           string       `json:"prep_time"`
	CookTime           string       `json:"cook_time"`
	CaloriesPerServing int          `json:"calories_per_serving"`
	Macros             Macros       `json:"macros"`
	FolderID           string       `json:"folder_id,omitempty"`
	Rating             float64      `json:"rating,omitempty"`
	CreatedAt          time.Time    `json:"created_at"`
}

// Ingredient is a named quantity entry. Amount is free text ("1 cup",
// "2 tbsp"), never a structured unit, so aggregation compares strings.
type Ingredient struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Amount   string   `json:"amount"`
	Category Category `json:"category"`
}

// NewID returns a fresh identifier. Id generation is always the caller's
// job at the store boundary; the store only checks uniqueness.
func NewID() string {
	return uuid.New().String()
}

// ValidRating reports whether r is within 0-5 in half-point steps.
func ValidRating(r float64) bool {
	if r < 0 || r > 5 {
		return false
	}
	doubled := r * 2
	return doubled == float64(int(doubled))
}
