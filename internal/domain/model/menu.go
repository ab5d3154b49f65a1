package model

// MenuCategory identifies a section of the Flemmyng menu. Categories
// appear verbatim in URL paths and in remote API requests.
type MenuCategory string

const (
	CategoryWhileYouWait MenuCategory = "while-you-wait"
	CategoryStarters     MenuCategory = "starters"
	CategoryMains        MenuCategory = "mains"
	CategorySides        MenuCategory = "sides"
	CategoryDesserts     MenuCategory = "desserts"
)

// MenuCategories lists the sections in menu display order.
var MenuCategories = []MenuCategory{
	CategoryWhileYouWait,
	CategoryStarters,
	CategoryMains,
	CategorySides,
	CategoryDesserts,
}

// Valid reports whether c is one of the known menu categories.
func (c MenuCategory) Valid() bool {
	for _, known := range MenuCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Title returns the section heading shown on the menu overview.
func (c MenuCategory) Title() string {
	switch c {
	case CategoryWhileYouWait:
		return "While You Wait"
	case CategoryStarters:
		return "Starters"
	case CategoryMains:
		return "Mains"
	case CategorySides:
		return "Sides"
	case CategoryDesserts:
		return "Desserts"
	default:
		return string(c)
	}
}

// MenuFields describes which optional item fields a category's forms
// expose. Visibility is a fixed property of the category, looked up from
// a static table rather than branched ad hoc, so it stays exhaustive and
// testable.
type MenuFields struct {
	Description bool
	Options     bool
	Allergens   bool
}

var categoryFields = map[MenuCategory]MenuFields{
	CategoryWhileYouWait: {Allergens: true},
	CategoryStarters:     {Description: true, Options: true, Allergens: true},
	CategoryMains:        {Description: true, Options: true, Allergens: true},
	CategorySides:        {Options: true, Allergens: true},
	CategoryDesserts:     {Description: true, Options: true},
}

// Fields returns the optional-field visibility for the category. Unknown
// categories expose no optional fields.
func (c MenuCategory) Fields() MenuFields { return categoryFields[c] }

// MenuItem is the portal's view of a dish owned by the remote API.
type MenuItem struct {
	ID          string       `json:"_id,omitempty"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Price       float64      `json:"price"`
	Category    MenuCategory `json:"category,omitempty"`
	Options     []string     `json:"options,omitempty"`
	Allergens   []string     `json:"allergens,omitempty"`
}

// DietaryOptions are the selectable dietary markers for a menu item.
var DietaryOptions = []string{
	"GF",
	"DF",
	"GF/DF",
	"GF available",
	"DF available",
	"GF/DF available",
}

// AllergenCodes are the selectable allergen abbreviations for a menu item.
var AllergenCodes = []string{
	"Ce", "Cr", "E", "F", "G", "Lu", "Mi", "Mo",
	"Mu", "N", "Pnut", "Se", "So", "Sd", "V", "Vg",
}
