package domain

import "fmt"

// Category is the closed set of product categories.
type Category string

const (
	CategoryElectronics    Category = "ELECTRONICS"
	CategoryClothing       Category = "CLOTHING"
	CategoryHomeGarden     Category = "HOME_GARDEN"
	CategorySportsOutdoors Category = "SPORTS_OUTDOORS"
	CategoryBooks          Category = "BOOKS"
	CategoryToysGames      Category = "TOYS_GAMES"
	CategoryBeauty         Category = "BEAUTY_PERSONAL_CARE"
	CategoryFoodBeverages  Category = "FOOD_BEVERAGES"
	CategoryAutomotive     Category = "AUTOMOTIVE"
	CategoryHealthWellness Category = "HEALTH_WELLNESS"
)

var categoryDisplayNames = map[Category]string{
	CategoryElectronics:    "Electronics",
	CategoryClothing:       "Clothing",
	CategoryHomeGarden:     "Home & Garden",
	CategorySportsOutdoors: "Sports & Outdoors",
	CategoryBooks:          "Books",
	CategoryToysGames:      "Toys & Games",
	CategoryBeauty:         "Beauty & Personal Care",
	CategoryFoodBeverages:  "Food & Beverages",
	CategoryAutomotive:     "Automotive",
	CategoryHealthWellness: "Health & Wellness",
}

// Categories returns all known categories in a stable order.
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryClothing,
		CategoryHomeGarden,
		CategorySportsOutdoors,
		CategoryBooks,
		CategoryToysGames,
		CategoryBeauty,
		CategoryFoodBeverages,
		CategoryAutomotive,
		CategoryHealthWellness,
	}
}

// ParseCategory validates a raw category string.
func ParseCategory(raw string) (Category, error) {
	c := Category(raw)
	if _, ok := categoryDisplayNames[c]; !ok {
		return "", fmt.Errorf("unknown category %q: %w", raw, ErrValidation)
	}
	return c, nil
}

// DisplayName returns the human-readable category name used in embedding
// text and prompts. Unknown categories fall back to the raw value.
func (c Category) DisplayName() string {
	if name, ok := categoryDisplayNames[c]; ok {
		return name
	}
	return string(c)
}

// Valid reports whether the category belongs to the closed set.
func (c Category) Valid() bool {
	_, ok := categoryDisplayNames[c]
	return ok
}
