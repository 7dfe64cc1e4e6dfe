package model

// FolderIcon names the icon rendered next to a folder. The set is closed:
// adding an icon means adding a constant here, not passing a new string.
type FolderIcon string

const (
	IconSun     FolderIcon = "Sun"
	IconMoon    FolderIcon = "Moon"
	IconCoffee  FolderIcon = "Coffee"
	IconPizza   FolderIcon = "Pizza"
	IconCake    FolderIcon = "Cake"
	IconSalad   FolderIcon = "Salad"
	IconFish    FolderIcon = "Fish"
	IconHeart   FolderIcon = "Heart"
	IconStar    FolderIcon = "Star"
	IconBook    FolderIcon = "Book"
	IconFolder  FolderIcon = "Folder"
	IconUtensil FolderIcon = "Utensils"
)

var folderIcons = map[FolderIcon]struct{}{
	IconSun: {}, IconMoon: {}, IconCoffee: {}, IconPizza: {},
	IconCake: {}, IconSalad: {}, IconFish: {}, IconHeart: {},
	IconStar: {}, IconBook: {}, IconFolder: {}, IconUtensil: {},
}

// ParseFolderIcon maps an arbitrary string to a known icon, falling back
// to IconFolder for anything unrecognized.
func ParseFolderIcon(s string) FolderIcon {
	if _, ok := folderIcons[FolderIcon(s)]; ok {
		return FolderIcon(s)
	}
	return IconFolder
}
