package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HyperionMedia/Plated-Free-sub001/internal/model"
)

func TestAddToShoppingListIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	milk := []model.Ingredient{{Name: "Milk", Amount: "1 cup", Category: model.CategoryDairy}}
	require.NoError(t, s.AddToShoppingList(ctx, milk))
	require.NoError(t, s.AddToShoppingList(ctx, milk))

	list := s.ShoppingList()
	require.Len(t, list, 1)
	assert.Equal(t, "Milk", list[0].Name)
	assert.Equal(t, "1 cup", list[0].Amount)
	assert.False(t, list[0].Checked)
}

func TestAddToShoppingListNormalizesNames(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.AddToShoppingList(ctx, []model.Ingredient{
		{Name: "Milk", Amount: "1 cup", Category: model.CategoryDairy},
		{Name: "  milk ", Amount: "2 cups", Category: model.CategoryDairy},
	}))

	// Same normalized name+category: existing item wins, amounts are
	// never merged.
	list := s.ShoppingList()
	require.Len(t, list, 1)
	assert.Equal(t, "1 cup", list[0].Amount)

	// Same name in a different category is a distinct item.
	require.NoError(t, s.AddToShoppingList(ctx, []model.Ingredient{
		{Name: "milk", Amount: "1 can", Category: model.CategoryCanned},
	}))
	assert.Len(t, s.ShoppingList(), 2)
}

func TestAddToShoppingListUnknownCategoryCoerced(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.AddToShoppingList(ctx, []model.Ingredient{
		{Name: "Mystery", Amount: "1", Category: "exotic"},
	}))
	list := s.ShoppingList()
	require.Len(t, list, 1)
	assert.Equal(t, model.CategoryOther, list[0].Category)
}

func TestCheckedItemDoesNotAbsorbDuplicate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	egg := []model.Ingredient{{Name: "Egg", Amount: "2", Category: model.CategoryDairy}}
	require.NoError(t, s.AddToShoppingList(ctx, egg))
	require.NoError(t, s.ToggleShoppingItem(ctx, s.ShoppingList()[0].ID))

	// Re-adding a bought ingredient puts it back on the list.
	require.NoError(t, s.AddToShoppingList(ctx, egg))
	list := s.ShoppingList()
	require.Len(t, list, 2)
	assert.True(t, list[0].Checked)
	assert.False(t, list[1].Checked)
}

func TestToggleAndRemoveAreIdempotentOnMissingIDs(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.ToggleShoppingItem(ctx, "ghost"))
	require.NoError(t, s.RemoveFromShoppingList(ctx, "ghost"))

	require.NoError(t, s.AddToShoppingList(ctx, []model.Ingredient{
		{Name: "Flour", Amount: "2 cups", Category: model.CategoryGrains},
	}))
	id := s.ShoppingList()[0].ID
	require.NoError(t, s.RemoveFromShoppingList(ctx, id))
	require.NoError(t, s.RemoveFromShoppingList(ctx, id))
	assert.Empty(t, s.ShoppingList())
}

func TestClearCheckedAndClearAll(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.AddToShoppingList(ctx, []model.Ingredient{
		{Name: "Apples", Amount: "3", Category: model.CategoryProduce},
		{Name: "Bread", Amount: "1 loaf", Category: model.CategoryGrains},
		{Name: "Butter", Amount: "1 stick", Category: model.CategoryDairy},
	}))
	require.NoError(t, s.ToggleShoppingItem(ctx, s.ShoppingList()[1].ID))

	require.NoError(t, s.ClearCheckedItems(ctx))
	list := s.ShoppingList()
	require.Len(t, list, 2)
	for _, item := range list {
		assert.False(t, item.Checked)
	}

	require.NoError(t, s.ClearShoppingList(ctx))
	assert.Empty(t, s.ShoppingList())
}

func TestGroupShoppingByCategoryIsTotalPartition(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.AddToShoppingList(ctx, []model.Ingredient{
		{Name: "Chicken", Amount: "1 lb", Category: model.CategoryMeats},
		{Name: "Apples", Amount: "3", Category: model.CategoryProduce},
		{Name: "Oats", Amount: "1 cup", Category: model.CategoryGrains},
		{Name: "Something odd", Amount: "1", Category: "??"},
		{Name: "Bananas", Amount: "2", Category: model.CategoryProduce},
	}))
	require.NoError(t, s.ToggleShoppingItem(ctx, s.ShoppingList()[0].ID))

	groups := s.GroupShoppingByCategory()

	// Union of the buckets is the original list, each item exactly once.
	seen := make(map[string]int)
	total := 0
	for _, g := range groups {
		total += len(g.Items)
		assert.Equal(t, len(g.Items), g.Total)
		unchecked := 0
		for _, item := range g.Items {
			seen[item.ID]++
			if !item.Checked {
				unchecked++
			}
		}
		assert.Equal(t, unchecked, g.Unchecked)
	}
	assert.Equal(t, len(s.ShoppingList()), total)
	for id, n := range seen {
		assert.Equal(t, 1, n, "item %s appears %d times", id, n)
	}

	// Buckets follow the fixed display order.
	order := make(map[model.Category]int, len(model.Categories))
	for i, c := range model.Categories {
		order[c] = i
	}
	for i := 1; i < len(groups); i++ {
		assert.Less(t, order[groups[i-1].Category], order[groups[i].Category])
	}

	// The unrecognized category landed under other.
	last := groups[len(groups)-1]
	assert.Equal(t, model.CategoryOther, last.Category)
	require.Len(t, last.Items, 1)
	assert.Equal(t, "Something odd", last.Items[0].Name)

	// Order within a bucket preserves list order.
	var produce CategoryGroup
	for _, g := range groups {
		if g.Category == model.CategoryProduce {
			produce = g
		}
	}
	require.Len(t, produce.Items, 2)
	assert.Equal(t, "Apples", produce.Items[0].Name)
	assert.Equal(t, "Bananas", produce.Items[1].Name)
}
