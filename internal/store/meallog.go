package store

import (
	"context"
	"time"

	"github.com/HyperionMedia/Plated-Free-sub001/internal/model"
)

// LogMeal appends a meal to the ledger, snapshotting the recipe's title,
// per-serving calories and macros at this instant. Logging the same
// recipe twice on one day is two meals, never deduplicated. The recipe
// must still exist at logging time; the snapshot is what survives its
// later deletion.
func (s *Store) LogMeal(ctx context.Context, recipeID string, servings int) (model.MealLogEntry, error) {
	var entry model.MealLogEntry
	err := s.mutate(ctx, EventMeals, func() error {
		if servings < 1 {
			return ErrInvalidServings
		}
		r := s.findRecipeLocked(recipeID)
		if r == nil {
			return ErrRecipeNotFound
		}
		now := time.Now()
		entry = model.MealLogEntry{
			ID:          model.NewID(),
			RecipeID:    r.ID,
			RecipeTitle: r.Title,
			Servings:    servings,
			Calories:    servings * r.CaloriesPerServing,
			Macros:      r.Macros.Scale(servings),
			// Day key in local time, stored instant in UTC so the
			// snapshot round-trips exactly.
			Date:      model.DateString(now),
			Timestamp: now.UTC(),
		}
		s.mealLog = append(s.mealLog, entry)
		return nil
	})
	if err != nil {
		return model.MealLogEntry{}, err
	}
	return entry, nil
}

// DeleteMealLogEntry is the only way an entry leaves the ledger.
// Unknown id: no-op.
func (s *Store) DeleteMealLogEntry(ctx context.Context, id string) error {
	return s.mutate(ctx, EventMeals, func() error {
		for i, e := range s.mealLog {
			if e.ID == id {
				s.mealLog = append(s.mealLog[:i], s.mealLog[i+1:]...)
				break
			}
		}
		return nil
	})
}

// NutritionForDate sums the frozen snapshots of every entry logged on
// the given day key. A day with no entries yields zeros, not an error.
func (s *Store) NutritionForDate(date string) model.DailyNutrition {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := model.DailyNutrition{Date: date}
	for _, e := range s.mealLog {
		if e.Date != date {
			continue
		}
		total.Calories += e.Calories
		total.Macros = total.Macros.Add(e.Macros)
		total.Meals++
	}
	return total
}

// MealsForDate returns the entries for one day key in logging order.
func (s *Store) MealsForDate(date string) []model.MealLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.MealLogEntry
	for _, e := range s.mealLog {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// MealHistoryForRecipe filters the ledger by recipe id. Entries are
// returned even when the recipe itself is long gone; display always uses
// the denormalized snapshot.
func (s *Store) MealHistoryForRecipe(recipeID string) []model.MealLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.MealLogEntry
	for _, e := range s.mealLog {
		if e.RecipeID == recipeID {
			out = append(out, e)
		}
	}
	return out
}

// MealLog returns the full ledger in logging order.
func (s *Store) MealLog() []model.MealLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.MealLogEntry(nil), s.mealLog...)
}
