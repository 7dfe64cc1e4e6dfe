package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoppingListRequiresAuth(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, "GET", "/api/v1/shopping-list", "", nil)
	assert.Equal(t, 401, w.Code)
}

func TestAddShoppingItemsDeduplicates(t *testing.T) {
	router, s := setupTestRouter(t)
	token := createTestUserAndToken(t, router)

	body := map[string]interface{}{
		"ingredients": []map[string]interface{}{
			{"name": "Milk", "amount": "1L", "category": "dairy"},
			{"name": "Bread", "amount": "1 loaf", "category": "bakery"},
		},
	}
	w := doJSON(t, router, "POST", "/api/v1/shopping-list/items", token, body)
	assert.Equal(t, 200, w.Code)
	assert.Len(t, s.ShoppingList(), 2)

	// same ingredients again: existing unchecked entries absorb them
	w = doJSON(t, router, "POST", "/api/v1/shopping-list/items", token, body)
	assert.Equal(t, 200, w.Code)
	assert.Len(t, s.ShoppingList(), 2)
}

func TestToggleAndRemoveShoppingItem(t *testing.T) {
	router, s := setupTestRouter(t)
	token := createTestUserAndToken(t, router)

	w := doJSON(t, router, "POST", "/api/v1/shopping-list/items", token, map[string]interface{}{
		"ingredients": []map[string]interface{}{
			{"name": "Eggs", "amount": "12", "category": "dairy"},
		},
	})
	require.Equal(t, 200, w.Code)
	itemID := s.ShoppingList()[0].ID

	w = doJSON(t, router, "PUT", "/api/v1/shopping-list/items/"+itemID+"/toggle", token, nil)
	assert.Equal(t, 200, w.Code)
	assert.True(t, s.ShoppingList()[0].Checked)

	w = doJSON(t, router, "DELETE", "/api/v1/shopping-list/items/"+itemID, token, nil)
	assert.Equal(t, 200, w.Code)
	assert.Empty(t, s.ShoppingList())

	// unknown ids are benign no-ops
	w = doJSON(t, router, "PUT", "/api/v1/shopping-list/items/ghost/toggle", token, nil)
	assert.Equal(t, 200, w.Code)
}

func TestClearCheckedAndClearAll(t *testing.T) {
	router, s := setupTestRouter(t)
	token := createTestUserAndToken(t, router)

	w := doJSON(t, router, "POST", "/api/v1/shopping-list/items", token, map[string]interface{}{
		"ingredients": []map[string]interface{}{
			{"name": "Rice", "amount": "1kg", "category": "pantry"},
			{"name": "Salmon", "amount": "2 fillets", "category": "meat"},
		},
	})
	require.Equal(t, 200, w.Code)

	itemID := s.ShoppingList()[0].ID
	w = doJSON(t, router, "PUT", "/api/v1/shopping-list/items/"+itemID+"/toggle", token, nil)
	require.Equal(t, 200, w.Code)

	w = doJSON(t, router, "DELETE", "/api/v1/shopping-list/checked", token, nil)
	assert.Equal(t, 200, w.Code)
	require.Len(t, s.ShoppingList(), 1)
	assert.False(t, s.ShoppingList()[0].Checked)

	w = doJSON(t, router, "DELETE", "/api/v1/shopping-list", token, nil)
	assert.Equal(t, 200, w.Code)
	assert.Empty(t, s.ShoppingList())
}

func TestGroupedShoppingList(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := createTestUserAndToken(t, router)

	w := doJSON(t, router, "POST", "/api/v1/shopping-list/items", token, map[string]interface{}{
		"ingredients": []map[string]interface{}{
			{"name": "Apples", "amount": "6", "category": "produce"},
			{"name": "Cheddar", "amount": "200g", "category": "dairy"},
			{"name": "Batteries", "amount": "4", "category": "hardware"},
		},
	})
	require.Equal(t, 200, w.Code)

	w = doJSON(t, router, "GET", "/api/v1/shopping-list/grouped", token, nil)
	assert.Equal(t, 200, w.Code)

	groups := decodeBody(t, w)["groups"].([]interface{})
	require.Len(t, groups, 3)
	// display order: produce before dairy, unknown categories last as other
	first := groups[0].(map[string]interface{})
	last := groups[len(groups)-1].(map[string]interface{})
	assert.Equal(t, "produce", first["category"])
	assert.Equal(t, "other", last["category"])
}
