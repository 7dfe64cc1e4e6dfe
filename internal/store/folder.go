package store

import (
	"context"
	"strings"

	"github.com/HyperionMedia/Plated-Free-sub001/internal/model"
)

// AddFolder inserts a folder. The name is required; the id is the
// caller's to generate and only checked for uniqueness. A folder naming
// itself as parent is rejected, which keeps parent chains acyclic: a new
// folder's id is unknown to every existing chain, so self-reference is
// the only cycle an insert could create.
func (s *Store) AddFolder(ctx context.Context, f model.Folder) (model.Folder, error) {
	err := s.mutate(ctx, EventFolders, func() error {
		f.Name = strings.TrimSpace(f.Name)
		if f.Name == "" {
			return ErrEmptyFolderName
		}
		if f.ID == "" {
			f.ID = model.NewID()
		}
		if f.ParentID == f.ID {
			return ErrFolderSelfParent
		}
		for _, existing := range s.folders {
			if existing.ID == f.ID {
				return ErrDuplicateFolderID
			}
		}
		f.Icon = model.ParseFolderIcon(string(f.Icon))
		s.folders = append(s.folders, f)
		return nil
	})
	if err != nil {
		return model.Folder{}, err
	}
	return f, nil
}

// DeleteFolder removes a folder and repairs every reference to it:
// recipes filed under it become uncategorized, subfolders are promoted
// to top level rather than deleted. Unknown id: no-op.
func (s *Store) DeleteFolder(ctx context.Context, id string) error {
	return s.mutate(ctx, EventFolders, func() error {
		idx := -1
		for i, f := range s.folders {
			if f.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil
		}
		s.folders = append(s.folders[:idx], s.folders[idx+1:]...)
		for i := range s.folders {
			if s.folders[i].ParentID == id {
				s.folders[i].ParentID = ""
			}
		}
		for i := range s.recipes {
			if s.recipes[i].FolderID == id {
				s.recipes[i].FolderID = ""
			}
		}
		return nil
	})
}

// MoveRecipeToFolder files a recipe under a folder. A missing recipe is
// a trivial success. The folder id is deliberately not validated: folder
// creation and the move that follows it are issued as one logical user
// action and must not race.
func (s *Store) MoveRecipeToFolder(ctx context.Context, recipeID, folderID string) error {
	return s.mutate(ctx, EventRecipes, func() error {
		if r := s.findRecipeLocked(recipeID); r != nil {
			r.FolderID = folderID
		}
		return nil
	})
}

func (s *Store) Folders() []model.Folder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Folder(nil), s.folders...)
}

func (s *Store) GetFolder(id string) (model.Folder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.folders {
		if f.ID == id {
			return f, true
		}
	}
	return model.Folder{}, false
}

// RecipesByFolder projects the current collections into folderID ->
// recipes, with recipes whose folder reference is unset or dangling
// collected under model.UncategorizedFolderID. Derived on every call,
// never persisted.
func (s *Store) RecipesByFolder() map[string][]model.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()

	known := make(map[string]bool, len(s.folders))
	out := make(map[string][]model.Recipe, len(s.folders)+1)
	for _, f := range s.folders {
		known[f.ID] = true
		out[f.ID] = []model.Recipe{}
	}
	out[model.UncategorizedFolderID] = []model.Recipe{}

	for _, r := range s.recipes {
		bucket := r.FolderID
		if bucket == "" || !known[bucket] {
			bucket = model.UncategorizedFolderID
		}
		out[bucket] = append(out[bucket], cloneRecipe(r))
	}
	return out
}
