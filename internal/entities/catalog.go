package entities

// ExtraCategory selects which of a food package's extra-price fields applies to an extra.
type ExtraCategory string

const (
	ExtraStarter ExtraCategory = "starter"
	ExtraMain    ExtraCategory = "main"
	ExtraDessert ExtraCategory = "dessert"
	ExtraSpecial ExtraCategory = "special"
)

type FoodPackage struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	PricePerGuest     float64 `json:"price_pp"`
	StarterExtraPrice float64 `json:"extras_price_pp_starter"`
	MainExtraPrice    float64 `json:"extras_price_pp_main"`
	DessertExtraPrice float64 `json:"extras_price_pp_dessert"`
	SpecialExtraPrice float64 `json:"extras_price_pp_special"`
}

// ExtraPrice returns the per-guest price this package charges for an extra of the
// given category. The price is defined on the package, not on the extra itself.
func (p FoodPackage) ExtraPrice(category ExtraCategory) (float64, bool) {
	switch category {
	case ExtraStarter:
		return p.StarterExtraPrice, true
	case ExtraMain:
		return p.MainExtraPrice, true
	case ExtraDessert:
		return p.DessertExtraPrice, true
	case ExtraSpecial:
		return p.SpecialExtraPrice, true
	}
	return 0, false
}

type FoodExperience struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PricePerGuest float64 `json:"price_pp"`
}

type FoodExtra struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Category ExtraCategory `json:"type"`
}

// BeverageTier is an open-bar tier. It also carries the single drink ticket price,
// so drink-ticket selections reference the same tier ids.
type BeverageTier struct {
	ID                string  `json:"id"`
	Name              string  `json:"tier_name"`
	BasePriceFirst2Hr float64 `json:"base_price_pp_2hr"`
	AddlHourPrice     float64 `json:"addl_hour_price_pp"`
	TicketPrice       float64 `json:"ticket_price"`
}

type HappyHourPackage struct {
	ID               string  `json:"id"`
	Name             string  `json:"tier_name"`
	Price2Hr         float64 `json:"price_pp_2hr"`
	ExtraChoicePrice float64 `json:"extra_choice_price_pp"`
}

// LateNightTier is a fixed 2-hour beverages-only service block.
type LateNightTier struct {
	ID       string  `json:"id"`
	Name     string  `json:"tier_name"`
	Price2Hr float64 `json:"price_pp_2hr"`
}

// Catalog is the full set of priced offerings, keyed by id. It is loaded once and
// treated as immutable for the lifetime of a snapshot; the engine only reads it.
type Catalog struct {
	FoodPackages      map[string]FoodPackage      `json:"packages_food"`
	FoodExperiences   map[string]FoodExperience   `json:"experiences_food"`
	FoodExtras        map[string]FoodExtra        `json:"food_extras"`
	BeverageTiers     map[string]BeverageTier     `json:"beverages_open_bar"`
	HappyHourPackages map[string]HappyHourPackage `json:"happy_hour_packages"`
	LateNightTiers    map[string]LateNightTier    `json:"late_night_open_bar"`
}
