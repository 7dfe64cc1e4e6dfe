package store

import (
	"context"
	"time"

	"github.com/HyperionMedia/Plated-Free-sub001/internal/model"
)

// ImportRecipe inserts a recipe received from outside the app (deep link
// or AI extraction). The incoming id is discarded in favor of a fresh
// one, and when no folder was picked the recipe is filed under the first
// existing folder, or left unassigned if there are none. Validation
// failures leave the store untouched.
func (s *Store) ImportRecipe(ctx context.Context, r model.Recipe, folderID string) (model.Recipe, error) {
	err := s.mutate(ctx, EventRecipes, func() error {
		if err := sanitizeRecipe(&r); err != nil {
			return err
		}
		r.ID = model.NewID()
		r.CreatedAt = time.Now().UTC()
		switch {
		case folderID != "":
			r.FolderID = folderID
		case len(s.folders) > 0:
			r.FolderID = s.folders[0].ID
		default:
			r.FolderID = ""
		}
		s.recipes = append(s.recipes, r)
		return nil
	})
	if err != nil {
		return model.Recipe{}, err
	}
	return r, nil
}
