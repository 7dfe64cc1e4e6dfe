package service

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/HyperionMedia/Plated-Free-sub001/internal/model"
	"github.com/HyperionMedia/Plated-Free-sub001/internal/store"
)

// ParseDeepLink decodes a shared-recipe deep link payload: URL-encoded,
// then JSON-encoded. Any malformed input fails here, before the store is
// touched.
func ParseDeepLink(encoded string) (model.Recipe, error) {
	decoded, err := url.QueryUnescape(encoded)
	if err != nil {
		return model.Recipe{}, fmt.Errorf("%w: %v", store.ErrInvalidPayload, err)
	}

	var payload RecipePayload
	if err := json.Unmarshal([]byte(decoded), &payload); err != nil {
		return model.Recipe{}, fmt.Errorf("%w: %v", store.ErrInvalidPayload, err)
	}
	if strings.TrimSpace(payload.Title) == "" {
		return model.Recipe{}, fmt.Errorf("%w: missing title", store.ErrInvalidPayload)
	}
	return payload.ToRecipe(), nil
}
