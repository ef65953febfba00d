package entity

type Allergen string

const (
	AllergenGluten    Allergen = "gluten"
	AllergenDairy     Allergen = "dairy"
	AllergenEggs      Allergen = "eggs"
	AllergenNuts      Allergen = "nuts"
	AllergenSoy       Allergen = "soy"
	AllergenFish      Allergen = "fish"
	AllergenShellfish Allergen = "shellfish"
)

type Nutrition struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Fat      int `json:"fat"`
	Carbs    int `json:"carbs"`
}

// Modifier is a priced add-on (extra topping, size upgrade).
type Modifier struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// ModifierGroup is a named, constrained set of modifiers a customer
// picks from. MaxSelect bounds simultaneous selections.
type ModifierGroup struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Required  bool       `json:"required"`
	MaxSelect int        `json:"maxSelect"`
	Modifiers []Modifier `json:"modifiers"`
}

// MenuCategory carries a dense, collection-unique SortOrder used for
// display ordering.
type MenuCategory struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
}

// MenuItem references its category and modifier groups by id. SortOrder
// is ranked within the item's category, not globally.
type MenuItem struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Price          int64      `json:"price"`
	Category       int        `json:"category"`
	Available      bool       `json:"available"`
	Image          string     `json:"image,omitempty"`
	Weight         int        `json:"weight"`
	Nutrition      *Nutrition `json:"nutrition,omitempty"`
	Allergens      []Allergen `json:"allergens"`
	ModifierGroups []int      `json:"modifierGroups"`
	SortOrder      int        `json:"sortOrder"`
}
