package store

import (
	"context"

	"github.com/HyperionMedia/Plated-Free-sub001/internal/model"
)

// AddToShoppingList merges ingredients into the shopping list. An input
// whose normalized name and category match an existing unchecked item is
// a duplicate: the existing item wins and amount strings are never
// merged, because amounts are opaque text ("1 cup" + "2 tbsp" has no
// generic sum). A checked match does not absorb the duplicate, so
// re-adding a bought ingredient puts it back on the list. The whole
// batch is applied in one step; callers never observe half of it.
func (s *Store) AddToShoppingList(ctx context.Context, ingredients []model.Ingredient) error {
	return s.mutate(ctx, EventShopping, func() error {
		for _, ing := range ingredients {
			name := normalizeName(ing.Name)
			if name == "" {
				continue
			}
			category := model.ParseCategory(string(ing.Category))
			exists := false
			for _, item := range s.shopping {
				if !item.Checked && normalizeName(item.Name) == name && item.Category == category {
					exists = true
					break
				}
			}
			if exists {
				continue
			}
			s.shopping = append(s.shopping, model.ShoppingListItem{
				ID:       model.NewID(),
				Name:     ing.Name,
				Amount:   ing.Amount,
				Category: category,
				Checked:  false,
			})
		}
		return nil
	})
}

// ToggleShoppingItem flips the checked flag. Unknown id: no-op.
func (s *Store) ToggleShoppingItem(ctx context.Context, id string) error {
	return s.mutate(ctx, EventShopping, func() error {
		for i := range s.shopping {
			if s.shopping[i].ID == id {
				s.shopping[i].Checked = !s.shopping[i].Checked
				break
			}
		}
		return nil
	})
}

// RemoveFromShoppingList deletes one item. Unknown id: no-op.
func (s *Store) RemoveFromShoppingList(ctx context.Context, id string) error {
	return s.mutate(ctx, EventShopping, func() error {
		for i, item := range s.shopping {
			if item.ID == id {
				s.shopping = append(s.shopping[:i], s.shopping[i+1:]...)
				break
			}
		}
		return nil
	})
}

// ClearCheckedItems removes every checked item.
func (s *Store) ClearCheckedItems(ctx context.Context) error {
	return s.mutate(ctx, EventShopping, func() error {
		kept := s.shopping[:0]
		for _, item := range s.shopping {
			if !item.Checked {
				kept = append(kept, item)
			}
		}
		s.shopping = kept
		return nil
	})
}

// ClearShoppingList empties the list entirely.
func (s *Store) ClearShoppingList(ctx context.Context) error {
	return s.mutate(ctx, EventShopping, func() error {
		s.shopping = nil
		return nil
	})
}

func (s *Store) ShoppingList() []model.ShoppingListItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ShoppingListItem(nil), s.shopping...)
}

// CategoryGroup is one display bucket of the shopping list.
type CategoryGroup struct {
	Category  model.Category           `json:"category"`
	Items     []model.ShoppingListItem `json:"items"`
	Unchecked int                      `json:"unchecked"`
	Total     int                      `json:"total"`
}

// GroupShoppingByCategory partitions the list into the fixed category
// order. Every item lands in exactly one bucket, in its original list
// position; anything unrecognized goes under other. Counts are derived
// here, never stored.
func (s *Store) GroupShoppingByCategory() []CategoryGroup {
	s.mu.Lock()
	defer s.mu.Unlock()

	byCategory := make(map[model.Category][]model.ShoppingListItem)
	for _, item := range s.shopping {
		c := item.Category
		if !c.Valid() {
			c = model.CategoryOther
		}
		byCategory[c] = append(byCategory[c], item)
	}

	groups := make([]CategoryGroup, 0, len(byCategory))
	for _, c := range model.Categories {
		items := byCategory[c]
		if len(items) == 0 {
			continue
		}
		g := CategoryGroup{Category: c, Items: items, Total: len(items)}
		for _, item := range items {
			if !item.Checked {
				g.Unchecked++
			}
		}
		groups = append(groups, g)
	}
	return groups
}
