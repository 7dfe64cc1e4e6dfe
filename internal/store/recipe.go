package store

import (
	"context"
	"strings"
	"time"

	"github.com/HyperionMedia/Plated-Free-sub001/internal/model"
)

// sanitizeRecipe applies the untrusted-input rules shared by manual
// entry, deep-link import and AI extraction: required title, category
// coercion, negative numerics defaulted, fresh ingredient ids.
func sanitizeRecipe(r *model.Recipe) error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return ErrEmptyRecipeTitle
	}
	if r.CaloriesPerServing < 0 {
		r.CaloriesPerServing = 0
	}
	r.Macros = r.Macros.Clamped()
	if r.Rating != 0 && !model.ValidRating(r.Rating) {
		return ErrInvalidRating
	}
	for i := range r.Ingredients {
		ing := &r.Ingredients[i]
		ing.Name = strings.TrimSpace(ing.Name)
		ing.Category = model.ParseCategory(string(ing.Category))
		if ing.ID == "" {
			ing.ID = model.NewID()
		}
	}
	return nil
}

// AddRecipe inserts a recipe. The id is the caller's to generate; an
// empty one gets a fresh uuid, a colliding one is rejected.
func (s *Store) AddRecipe(ctx context.Context, r model.Recipe) (model.Recipe, error) {
	err := s.mutate(ctx, EventRecipes, func() error {
		if err := sanitizeRecipe(&r); err != nil {
			return err
		}
		if r.ID == "" {
			r.ID = model.NewID()
		}
		for _, existing := range s.recipes {
			if existing.ID == r.ID {
				return ErrDuplicateRecipeID
			}
		}
		if r.CreatedAt.IsZero() {
			// UTC without monotonic bits so snapshots round-trip exactly.
			r.CreatedAt = time.Now().UTC()
		}
		s.recipes = append(s.recipes, r)
		return nil
	})
	if err != nil {
		return model.Recipe{}, err
	}
	return r, nil
}

// UpdateRecipe merges non-zero fields of upd into the stored recipe.
// Field-level merging keeps a late-arriving write (an async image result,
// say) from clobbering edits made in the meantime.
func (s *Store) UpdateRecipe(ctx context.Context, id string, upd model.Recipe) error {
	return s.mutate(ctx, EventRecipes, func() error {
		r := s.findRecipeLocked(id)
		if r == nil {
			return ErrRecipeNotFound
		}
		if t := strings.TrimSpace(upd.Title); t != "" {
			r.Title = t
		}
		if upd.ImageURI != "" {
			r.ImageURI = upd.ImageURI
		}
		if upd.Ingredients != nil {
			tmp := model.Recipe{Title: r.Title, Ingredients: upd.Ingredients}
			if err := sanitizeRecipe(&tmp); err != nil {
				return err
			}
			r.Ingredients = tmp.Ingredients
		}
		if upd.Instructions != nil {
			r.Instructions = upd.Instructions
		}
		if upd.Servings != "" {
			r.Servings = upd.Servings
		}
		if upd.PrepTime != "" {
			r.PrepTime = upd.PrepTime
		}
		if upd.CookTime != "" {
			r.CookTime = upd.CookTime
		}
		if upd.CaloriesPerServing > 0 {
			r.CaloriesPerServing = upd.CaloriesPerServing
		}
		if upd.Macros != (model.Macros{}) {
			r.Macros = upd.Macros.Clamped()
		}
		return nil
	})
}

// SetRecipeImage writes only the image reference, merged against current
// state. This is the landing point for async image generation results;
// it stays a no-op when the recipe was deleted while the call was in
// flight.
func (s *Store) SetRecipeImage(ctx context.Context, id, imageURI string) error {
	return s.mutate(ctx, EventRecipes, func() error {
		if r := s.findRecipeLocked(id); r != nil {
			r.ImageURI = imageURI
		}
		return nil
	})
}

// SetRecipeRating sets the 0-5 half-step rating. Missing recipe: no-op.
func (s *Store) SetRecipeRating(ctx context.Context, id string, rating float64) error {
	return s.mutate(ctx, EventRecipes, func() error {
		if !model.ValidRating(rating) {
			return ErrInvalidRating
		}
		if r := s.findRecipeLocked(id); r != nil {
			r.Rating = rating
		}
		return nil
	})
}

// DeleteRecipe removes a recipe. Meal log entries referencing it are
// left untouched; their snapshots keep history readable.
func (s *Store) DeleteRecipe(ctx context.Context, id string) error {
	return s.mutate(ctx, EventRecipes, func() error {
		for i, r := range s.recipes {
			if r.ID == id {
				s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
				break
			}
		}
		return nil
	})
}

func (s *Store) GetRecipe(id string) (model.Recipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r := s.findRecipeLocked(id); r != nil {
		return cloneRecipe(*r), true
	}
	return model.Recipe{}, false
}

// Recipes returns all recipes in insertion order.
func (s *Store) Recipes() []model.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, cloneRecipe(r))
	}
	return out
}

func (s *Store) findRecipeLocked(id string) *model.Recipe {
	for i := range s.recipes {
		if s.recipes[i].ID == id {
			return &s.recipes[i]
		}
	}
	return nil
}

// cloneRecipe deep-copies the slices so callers can't mutate store state
// behind the lock's back.
func cloneRecipe(r model.Recipe) model.Recipe {
	if r.Ingredients != nil {
		r.Ingredients = append([]model.Ingredient(nil), r.Ingredients...)
	}
	if r.Instructions != nil {
		r.Instructions = append([]string(nil), r.Instructions...)
	}
	return r
}
