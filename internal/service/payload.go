package service

import (
	"github.com/HyperionMedia/Plated-Free-sub001/internal/model"
)

// RecipePayload is the untrusted recipe shape arriving from outside the
// app: deep links and the AI extraction service both produce it. It is
// converted with the same coercion rules as manual entry; the store
// validates it again before anything is inserted.
type RecipePayload struct {
	Title              string              `json:"title"`
	ImageURI           string              `json:"image_uri"`
	Ingredients        []IngredientPayload `json:"ingredients"`
	Instructions       []string            `json:"instructions"`
	Servings           string              `json:"servings"`
	PrepTime           string              `json:"prep_time"`
	CookTime           string              `json:"cook_time"`
	CaloriesPerServing int                 `json:"calories_per_serving"`
	Protein            float64             `json:"protein"`
	Carbs              float64             `json:"carbs"`
	Fat                float64             `json:"fat"`
	Fiber              float64             `json:"fiber"`
}

type IngredientPayload struct {
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
}

// ToRecipe converts the payload, coercing unknown categories to other
// and defaulting missing numerics. The id is left empty; the store
// assigns a fresh one on import.
func (p RecipePayload) ToRecipe() model.Recipe {
	r := model.Recipe{
		Title:              p.Title,
		ImageURI:           p.ImageURI,
		Instructions:       p.Instructions,
		Servings:           p.Servings,
		PrepTime:           p.PrepTime,
		CookTime:           p.CookTime,
		CaloriesPerServing: p.CaloriesPerServing,
		Macros: model.Macros{
			Protein: p.Protein,
			Carbs:   p.Carbs,
			Fat:     p.Fat,
			Fiber:   p.Fiber,
		}.Clamped(),
	}
	if r.CaloriesPerServing < 0 {
		r.CaloriesPerServing = 0
	}
	for _, ing := range p.Ingredients {
		r.Ingredients = append(r.Ingredients, model.Ingredient{
			Name:     ing.Name,
			Amount:   ing.Amount,
			Category: model.ParseCategory(ing.Category),
		})
	}
	return r
}
