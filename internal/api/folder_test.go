package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFoldersSeedsDefaults(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, "GET", "/api/v1/folders", "", nil)
	assert.Equal(t, 200, w.Code)

	folders := decodeBody(t, w)["folders"].([]interface{})
	assert.Len(t, folders, 4)
}

func TestCreateFolder(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := createTestUserAndToken(t, router)

	w := doJSON(t, router, "POST", "/api/v1/folders", token, map[string]interface{}{
		"name":  "Weeknight",
		"color": "#FF8844",
		"icon":  "Star",
	})
	assert.Equal(t, 201, w.Code)
	folder := decodeBody(t, w)["folder"].(map[string]interface{})
	assert.NotEmpty(t, folder["id"])
	assert.Equal(t, "Star", folder["icon"])

	// unknown icons fall back to the plain folder glyph
	w = doJSON(t, router, "POST", "/api/v1/folders", token, map[string]interface{}{
		"name": "Mystery",
		"icon": "sparkle-unicorn",
	})
	assert.Equal(t, 201, w.Code)
	folder = decodeBody(t, w)["folder"].(map[string]interface{})
	assert.Equal(t, "Folder", folder["icon"])
}

func TestCreateFolderRejectsEmptyName(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := createTestUserAndToken(t, router)

	w := doJSON(t, router, "POST", "/api/v1/folders", token, map[string]interface{}{
		"name": "   ",
	})
	assert.Equal(t, 400, w.Code)
}

func TestDeleteFolderCascades(t *testing.T) {
	router, s := setupTestRouter(t)
	token := createTestUserAndToken(t, router)

	w := doJSON(t, router, "POST", "/api/v1/folders", token, map[string]interface{}{
		"name": "Parent",
	})
	require.Equal(t, 201, w.Code)
	parentID := decodeBody(t, w)["folder"].(map[string]interface{})["id"].(string)

	w = doJSON(t, router, "POST", "/api/v1/folders", token, map[string]interface{}{
		"name":      "Child",
		"parent_id": parentID,
	})
	require.Equal(t, 201, w.Code)
	childID := decodeBody(t, w)["folder"].(map[string]interface{})["id"].(string)

	body := testRecipeBody()
	body["folder_id"] = parentID
	w = doJSON(t, router, "POST", "/api/v1/recipes", token, body)
	require.Equal(t, 201, w.Code)
	recipeID := decodeBody(t, w)["recipe"].(map[string]interface{})["id"].(string)

	w = doJSON(t, router, "DELETE", "/api/v1/folders/"+parentID, token, nil)
	assert.Equal(t, 200, w.Code)

	recipe, ok := s.GetRecipe(recipeID)
	require.True(t, ok)
	assert.Empty(t, recipe.FolderID, "recipes in a deleted folder become uncategorized")

	child, ok := s.GetFolder(childID)
	require.True(t, ok)
	assert.Empty(t, child.ParentID, "subfolders of a deleted folder move to the root")
}

func TestMoveRecipe(t *testing.T) {
	router, s := setupTestRouter(t)
	token := createTestUserAndToken(t, router)

	w := doJSON(t, router, "POST", "/api/v1/recipes", token, testRecipeBody())
	require.Equal(t, 201, w.Code)
	recipeID := decodeBody(t, w)["recipe"].(map[string]interface{})["id"].(string)

	w = doJSON(t, router, "POST", "/api/v1/folders", token, map[string]interface{}{
		"name": "Brunch",
	})
	require.Equal(t, 201, w.Code)
	folderID := decodeBody(t, w)["folder"].(map[string]interface{})["id"].(string)

	w = doJSON(t, router, "PUT", "/api/v1/folders/recipes/"+recipeID, token, map[string]interface{}{
		"folder_id": folderID,
	})
	assert.Equal(t, 200, w.Code)
	recipe, _ := s.GetRecipe(recipeID)
	assert.Equal(t, folderID, recipe.FolderID)

	// moving to the empty folder id unfiles the recipe
	w = doJSON(t, router, "PUT", "/api/v1/folders/recipes/"+recipeID, token, map[string]interface{}{
		"folder_id": "",
	})
	assert.Equal(t, 200, w.Code)
	recipe, _ = s.GetRecipe(recipeID)
	assert.Empty(t, recipe.FolderID)
}

func TestRecipesByFolderEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := createTestUserAndToken(t, router)

	w := doJSON(t, router, "POST", "/api/v1/recipes", token, testRecipeBody())
	require.Equal(t, 201, w.Code)

	w = doJSON(t, router, "GET", "/api/v1/folders/recipes", "", nil)
	assert.Equal(t, 200, w.Code)

	buckets := decodeBody(t, w)["folders"].(map[string]interface{})
	require.Contains(t, buckets, "uncategorized")
	assert.Len(t, buckets["uncategorized"], 1, "unfiled recipes land in the synthetic bucket")
}
