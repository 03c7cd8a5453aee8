package entities

// DayType classifies the event date for rental pricing.
type DayType string

const (
	DayWeekday DayType = "weekday"
	DayWeekend DayType = "weekend"
)

// DrinkTicketSelection is an optional per-guest drink ticket purchase against an
// open-bar tier's ticket price.
type DrinkTicketSelection struct {
	TierID          string `json:"tier_id"`
	TicketsPerGuest int    `json:"tickets_per_guest"`
}

// BookingRequest describes one event booking to be priced. It carries no pricing
// data itself; every price is resolved from the catalog and policy by id. The JSON
// field names are a stable contract with the upstream extractor that builds this
// struct from free-form conversation, so all selections are optional and default
// to absent / zero / false.
type BookingRequest struct {
	Guests          int     `json:"guests"`
	DurationMinutes int     `json:"duration_minutes"`
	DayType         DayType `json:"day_type"`

	// Food: at most one of FoodPackageID / ExperienceID may be set.
	FoodPackageID string   `json:"food_package_id,omitempty"`
	FoodExtraIDs  []string `json:"food_extras,omitempty"`
	ExperienceID  string   `json:"experience_id,omitempty"`

	// Beverages, independently optional and combinable.
	OpenBarTierID          string                `json:"open_bar_tier_id,omitempty"`
	OpenBarDurationMinutes int                   `json:"open_bar_duration_minutes,omitempty"`
	DrinkTickets           *DrinkTicketSelection `json:"drink_tickets,omitempty"`
	HappyHourTierID        string                `json:"happy_hour_tier_id,omitempty"`
	HappyHourExtraChoices  int                   `json:"happy_hour_extra_choices,omitempty"`
	LateNightTierID        string                `json:"late_night_tier_id,omitempty"`

	WaivePrivateRental bool `json:"waive_private_rental,omitempty"`
}
