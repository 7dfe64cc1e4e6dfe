package model

// Folder is a user-defined grouping of recipes. ParentID is empty for
// top-level folders; the UI renders at most two levels, but the model
// only guarantees the chain stays acyclic, not a depth bound.
type Folder struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Color    string     `json:"color"`
	Icon     FolderIcon `json:"icon"`
	ParentID string     `json:"parent_id,omitempty"`
}

// UncategorizedFolderID is the synthetic bucket key for recipes whose
// folder reference is unset or dangling. It is never a real folder id.
const UncategorizedFolderID = "uncategorized"

// DefaultFolders is the seed set installed when no persisted snapshot
// exists on startup.
func DefaultFolders() []Folder {
	return []Folder{
		{ID: NewID(), Name: "Breakfast", Color: "#F59E0B", Icon: IconSun},
		{ID: NewID(), Name: "Lunch", Color: "#10B981", Icon: IconSalad},
		{ID: NewID(), Name: "Dinner", Color: "#6366F1", Icon: IconMoon},
		{ID: NewID(), Name: "Desserts", Color: "#EC4899", Icon: IconCake},
	}
}
