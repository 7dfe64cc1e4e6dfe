package model

// Category classifies an ingredient or shopping list item.
type Category string

const (
	CategoryProduce    Category = "produce"
	CategoryMeats      Category = "meats"
	CategoryDairy      Category = "dairy"
	CategoryGrains     Category = "grains"
	CategorySpices     Category = "spices"
	CategoryCanned     Category = "canned"
	CategoryFrozen     Category = "frozen"
	CategoryBeverages  Category = "beverages"
	CategoryCondiments Category = "condiments"
	CategoryOther      Category = "other"
)

// Categories lists every category in display order. Grouping queries
// iterate this slice so the order is stable across calls.
var Categories = []Category{
	CategoryProduce,
	CategoryMeats,
	CategoryDairy,
	CategoryGrains,
	CategorySpices,
	CategoryCanned,
	CategoryFrozen,
	CategoryBeverages,
	CategoryCondiments,
	CategoryOther,
}

// ParseCategory coerces an arbitrary string into a known category.
// Unknown values map to CategoryOther rather than being rejected, so
// untrusted input (deep links, AI payloads) is never dropped.
func ParseCategory(s string) Category {
	c := Category(s)
	for _, known := range Categories {
		if c == known {
			return known
		}
	}
	return CategoryOther
}

// Valid reports whether the category is one of the known set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
