package store

import "errors"

// Validation errors are returned before any state change. Missing ids on
// mutations are deliberately NOT errors: deletes, toggles and moves on an
// id that no longer exists are benign no-ops, because caller state can
// lag store state.
var (
	ErrEmptyFolderName   = errors.New("folder name is required")
	ErrDuplicateFolderID = errors.New("folder id already exists")
	ErrFolderSelfParent  = errors.New("folder cannot be its own parent")
	ErrEmptyRecipeTitle  = errors.New("recipe title is required")
	ErrDuplicateRecipeID = errors.New("recipe id already exists")
	ErrInvalidRating     = errors.New("rating must be 0-5 in half steps")
	ErrInvalidServings   = errors.New("servings must be at least 1")
	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrInvalidPayload    = errors.New("malformed recipe payload")
	ErrReentrantMutation = errors.New("mutation issued from inside a store notification")
)

// IsValidation reports whether err is one of the pre-state-change
// rejections, as opposed to an infrastructure failure.
func IsValidation(err error) bool {
	for _, v := range []error{
		ErrEmptyFolderName, ErrDuplicateFolderID, ErrFolderSelfParent,
		ErrEmptyRecipeTitle, ErrDuplicateRecipeID, ErrInvalidRating,
		ErrInvalidServings, ErrInvalidPayload,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
