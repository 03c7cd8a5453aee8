package entities

// StaffingMode governs when the second staffing fee is charged.
type StaffingMode string

const (
	StaffingAlways      StaffingMode = "always"
	StaffingAnyAlcohol  StaffingMode = "any_alcohol_service"
	StaffingOpenBarOnly StaffingMode = "open_bar_only"
)

// PolicyConfig holds the venue's business rules. It is operator-supplied
// (policies.yaml), loaded once at startup and never mutated.
type PolicyConfig struct {
	PrivateRentalThresholdGuests int     `yaml:"private_rental_threshold_guests" json:"private_rental_threshold_guests"`
	PrivateRentalWeekdayRate     float64 `yaml:"private_rental_weekday_rate_per_hour" json:"private_rental_weekday_rate_per_hour"`
	PrivateRentalWeekendRate     float64 `yaml:"private_rental_weekend_rate_per_hour" json:"private_rental_weekend_rate_per_hour"`

	SecondStaffThresholdGuests int          `yaml:"second_bartender_threshold_guests" json:"second_bartender_threshold_guests"`
	SecondStaffRatePerHour     float64      `yaml:"second_bartender_rate_per_hour" json:"second_bartender_rate_per_hour"`
	SecondStaffAppliesWhen     StaffingMode `yaml:"second_bartender_applies_when" json:"second_bartender_applies_when"`

	GratuityRate   float64 `yaml:"gratuity_rate" json:"gratuity_rate"`
	TaxFoodRate    float64 `yaml:"tax_food_rate" json:"tax_food_rate"`
	TaxAlcoholRate float64 `yaml:"tax_alcohol_rate" json:"tax_alcohol_rate"`

	Disclosures []string `yaml:"disclosures" json:"disclosures"`
}
