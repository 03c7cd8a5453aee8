package entities

// LineItem is one itemized charge on a quote. Quantity is a count (guests or
// hours); UnitPrice and Total are currency values rounded to 2 decimals.
type LineItem struct {
	Label     string  `json:"label"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// CategorySubtotals are the four buckets taxes and gratuity allocation track.
type CategorySubtotals struct {
	Food    float64 `json:"food"`
	Alcohol float64 `json:"alcohol"`
	Rental  float64 `json:"rental"`
	Staff   float64 `json:"staff"`
}

// Quote is the engine's result. Line items keep construction order, which is
// presentation-significant. A quote is built fresh per call and never mutated
// after it is returned.
type Quote struct {
	LineItems         []LineItem        `json:"line_items"`
	CategorySubtotals CategorySubtotals `json:"category_subtotals"`
	Subtotal          float64           `json:"subtotal"`
	Gratuity          float64           `json:"gratuity"`
	FoodTax           float64           `json:"food_tax"`
	AlcoholTax        float64           `json:"alcohol_tax"`
	StaffTax          float64           `json:"staff_tax"`
	TaxTotal          float64           `json:"tax_total"`
	GrandTotal        float64           `json:"grand_total"`
	Disclosures       []string          `json:"disclosures"`
}
