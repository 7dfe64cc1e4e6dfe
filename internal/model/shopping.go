package model

// ShoppingListItem is an ingredient promoted onto the shopping list. It
// is a copy: later edits to the originating recipe do not propagate.
type ShoppingListItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Amount   string   `json:"amount"`
	Category Category `json:"category"`
	Checked  bool     `json:"checked"`
}
