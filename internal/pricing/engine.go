package pricing

import (
	"fmt"
	"math"

	"eventquote/internal/entities"
	"eventquote/internal/errors"
)

// Quote prices a booking against the catalog and policy and returns an itemized,
// tax- and gratuity-inclusive quote. It is a pure function: no I/O, no state, and
// identical inputs always produce an identical quote. It either returns a complete
// quote or an error, never a partially priced one.
func Quote(req entities.BookingRequest, catalog entities.Catalog, policy entities.PolicyConfig) (*entities.Quote, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	staffingMode, err := validatePolicy(policy)
	if err != nil {
		return nil, err
	}

	b := &builder{items: make([]entities.LineItem, 0, 8)}
	eventHours := ceilHours(req.DurationMinutes)
	openBarHours := 0
	if req.OpenBarTierID != "" {
		openBarHours = ceilHours(req.OpenBarDurationMinutes)
	}

	// Construction order is fixed: it is presentation order, and the rental and
	// staffing rules depend on the selections priced before them.
	if err := priceFood(b, req, catalog); err != nil {
		return nil, err
	}
	if err := priceHappyHour(b, req, catalog); err != nil {
		return nil, err
	}
	if err := priceOpenBar(b, req, catalog, openBarHours); err != nil {
		return nil, err
	}
	if err := priceDrinkTickets(b, req, catalog); err != nil {
		return nil, err
	}
	if err := priceLateNight(b, req, catalog); err != nil {
		return nil, err
	}
	priceRental(b, req, policy, eventHours)
	priceStaffing(b, req, policy, staffingMode, eventHours, openBarHours)

	return b.finish(policy), nil
}

// ceilHours converts minutes to billable hours: rounded up to the next whole
// hour, never below zero.
func ceilHours(minutes int) int {
	if minutes <= 0 {
		return 0
	}
	return (minutes + 59) / 60
}

func validateRequest(req entities.BookingRequest) error {
	if req.Guests < 0 {
		return errors.NewValidationError("guests", "must not be negative")
	}
	if req.DayType != entities.DayWeekday && req.DayType != entities.DayWeekend {
		return errors.NewValidationError("day_type", "must be weekday or weekend")
	}
	if req.FoodPackageID != "" && req.ExperienceID != "" {
		return errors.NewValidationError("food_selection", "food package and experience are mutually exclusive")
	}
	if req.DrinkTickets != nil && req.DrinkTickets.TicketsPerGuest < 0 {
		return errors.NewValidationError("tickets_per_guest", "must not be negative")
	}
	if req.HappyHourExtraChoices < 0 {
		return errors.NewValidationError("happy_hour_extra_choices", "must not be negative")
	}
	return nil
}

// validatePolicy checks the policy fields the computation depends on and resolves
// the staffing mode, defaulting an unset mode to any_alcohol_service.
func validatePolicy(policy entities.PolicyConfig) (entities.StaffingMode, error) {
	if policy.GratuityRate < 0 {
		return "", errors.NewConfigurationError("gratuity_rate")
	}
	if policy.TaxFoodRate < 0 {
		return "", errors.NewConfigurationError("tax_food_rate")
	}
	if policy.TaxAlcoholRate < 0 {
		return "", errors.NewConfigurationError("tax_alcohol_rate")
	}
	if policy.PrivateRentalThresholdGuests < 0 {
		return "", errors.NewConfigurationError("private_rental_threshold_guests")
	}
	if policy.PrivateRentalWeekdayRate < 0 || policy.PrivateRentalWeekendRate < 0 {
		return "", errors.NewConfigurationError("private_rental_rate_per_hour")
	}
	if policy.SecondStaffThresholdGuests < 0 {
		return "", errors.NewConfigurationError("second_bartender_threshold_guests")
	}
	if policy.SecondStaffRatePerHour < 0 {
		return "", errors.NewConfigurationError("second_bartender_rate_per_hour")
	}

	mode := policy.SecondStaffAppliesWhen
	if mode == "" {
		mode = entities.StaffingAnyAlcohol
	}
	switch mode {
	case entities.StaffingAlways, entities.StaffingAnyAlcohol, entities.StaffingOpenBarOnly:
		return mode, nil
	}
	return "", errors.NewConfigurationError("second_bartender_applies_when")
}

// builder accumulates line items and per-category totals in construction order.
// Totals are carried at full precision; rounding happens only in finish.
type builder struct {
	items   []entities.LineItem
	food    float64
	alcohol float64
	rental  float64
	staff   float64
}

func (b *builder) add(label string, quantity int, unitPrice, total float64) {
	b.items = append(b.items, entities.LineItem{
		Label:     label,
		Quantity:  quantity,
		UnitPrice: round2(unitPrice),
		Total:     round2(total),
	})
}

func priceFood(b *builder, req entities.BookingRequest, catalog entities.Catalog) error {
	guests := float64(req.Guests)

	if req.FoodPackageID != "" {
		pkg, ok := catalog.FoodPackages[req.FoodPackageID]
		if !ok {
			return errors.NewNotFoundError("food package", req.FoodPackageID)
		}
		total := guests * pkg.PricePerGuest
		b.add(fmt.Sprintf("Food Package: %s", pkg.Name), req.Guests, pkg.PricePerGuest, total)
		b.food += total

		for _, extraID := range req.FoodExtraIDs {
			extra, ok := catalog.FoodExtras[extraID]
			if !ok {
				return errors.NewNotFoundError("food extra", extraID)
			}
			// The extra's category selects the price defined on the chosen package.
			unit, ok := pkg.ExtraPrice(extra.Category)
			if !ok {
				return errors.NewNotFoundError("food extra category", string(extra.Category))
			}
			extraTotal := guests * unit
			b.add(fmt.Sprintf("Extra: %s", extra.Name), req.Guests, unit, extraTotal)
			b.food += extraTotal
		}
		return nil
	}

	if req.ExperienceID != "" {
		exp, ok := catalog.FoodExperiences[req.ExperienceID]
		if !ok {
			return errors.NewNotFoundError("food experience", req.ExperienceID)
		}
		total := guests * exp.PricePerGuest
		b.add(fmt.Sprintf("Food Experience: %s", exp.Name), req.Guests, exp.PricePerGuest, total)
		b.food += total
	}
	return nil
}

func priceHappyHour(b *builder, req entities.BookingRequest, catalog entities.Catalog) error {
	if req.HappyHourTierID == "" {
		return nil
	}
	hh, ok := catalog.HappyHourPackages[req.HappyHourTierID]
	if !ok {
		return errors.NewNotFoundError("happy hour tier", req.HappyHourTierID)
	}
	guests := float64(req.Guests)
	total := guests * hh.Price2Hr
	b.add(fmt.Sprintf("Happy Hour: %s (2hr)", hh.Name), req.Guests, hh.Price2Hr, total)
	b.alcohol += total

	if req.HappyHourExtraChoices > 0 {
		unit := hh.ExtraChoicePrice * float64(req.HappyHourExtraChoices)
		extraTotal := guests * unit
		b.add("Happy Hour extra selections", req.Guests, unit, extraTotal)
		b.alcohol += extraTotal
	}
	return nil
}

func priceOpenBar(b *builder, req entities.BookingRequest, catalog entities.Catalog, hours int) error {
	if req.OpenBarTierID == "" || hours <= 0 {
		return nil
	}
	tier, ok := catalog.BeverageTiers[req.OpenBarTierID]
	if !ok {
		return errors.NewNotFoundError("open bar tier", req.OpenBarTierID)
	}
	guests := float64(req.Guests)
	baseTotal := guests * tier.BasePriceFirst2Hr
	b.add(fmt.Sprintf("Open Bar: %s (first 2hr)", tier.Name), req.Guests, tier.BasePriceFirst2Hr, baseTotal)
	b.alcohol += baseTotal

	if hours > 2 {
		addlHours := hours - 2
		addlTotal := guests * float64(addlHours) * tier.AddlHourPrice
		b.add(fmt.Sprintf("Open Bar: %s (additional %d hr)", tier.Name, addlHours), req.Guests, tier.AddlHourPrice, addlTotal)
		b.alcohol += addlTotal
	}
	return nil
}

func priceDrinkTickets(b *builder, req entities.BookingRequest, catalog entities.Catalog) error {
	if req.DrinkTickets == nil || req.DrinkTickets.TicketsPerGuest <= 0 {
		return nil
	}
	tier, ok := catalog.BeverageTiers[req.DrinkTickets.TierID]
	if !ok {
		return errors.NewNotFoundError("drink ticket tier", req.DrinkTickets.TierID)
	}
	total := float64(req.Guests) * float64(req.DrinkTickets.TicketsPerGuest) * tier.TicketPrice
	label := fmt.Sprintf("Drink Tickets: %s x%d/guest", tier.Name, req.DrinkTickets.TicketsPerGuest)
	b.add(label, req.Guests, tier.TicketPrice, total)
	b.alcohol += total
	return nil
}

func priceLateNight(b *builder, req entities.BookingRequest, catalog entities.Catalog) error {
	if req.LateNightTierID == "" {
		return nil
	}
	ln, ok := catalog.LateNightTiers[req.LateNightTierID]
	if !ok {
		return errors.NewNotFoundError("late night tier", req.LateNightTierID)
	}
	total := float64(req.Guests) * ln.Price2Hr
	b.add(fmt.Sprintf("Late-Night Open Bar: %s (2hr, beverages only)", ln.Name), req.Guests, ln.Price2Hr, total)
	b.alcohol += total
	return nil
}

func priceRental(b *builder, req entities.BookingRequest, policy entities.PolicyConfig, eventHours int) {
	if req.WaivePrivateRental || req.Guests <= policy.PrivateRentalThresholdGuests {
		return
	}
	rate := policy.PrivateRentalWeekendRate
	if req.DayType == entities.DayWeekday {
		rate = policy.PrivateRentalWeekdayRate
	}
	total := rate * float64(eventHours)
	b.add(fmt.Sprintf("Private Rental (%s)", req.DayType), eventHours, rate, total)
	b.rental += total
}

func priceStaffing(b *builder, req entities.BookingRequest, policy entities.PolicyConfig, mode entities.StaffingMode, eventHours, openBarHours int) {
	if req.Guests <= policy.SecondStaffThresholdGuests {
		return
	}
	hasTickets := req.DrinkTickets != nil && req.DrinkTickets.TicketsPerGuest > 0
	hasAlcohol := req.OpenBarTierID != "" || hasTickets || req.HappyHourTierID != "" || req.LateNightTierID != ""

	applies := mode == entities.StaffingAlways ||
		(mode == entities.StaffingAnyAlcohol && hasAlcohol) ||
		(mode == entities.StaffingOpenBarOnly && req.OpenBarTierID != "")
	if !applies {
		return
	}

	// Service hours follow the dominant beverage service, falling back to the
	// whole event.
	var serviceHours int
	switch {
	case req.OpenBarTierID != "" && req.OpenBarDurationMinutes > 0:
		serviceHours = openBarHours
	case req.HappyHourTierID != "":
		serviceHours = 2
	case req.LateNightTierID != "":
		serviceHours = 2
	default:
		serviceHours = eventHours
	}

	total := float64(serviceHours) * policy.SecondStaffRatePerHour
	label := fmt.Sprintf("Second Bartender (> %d guests)", policy.SecondStaffThresholdGuests)
	b.add(label, serviceHours, policy.SecondStaffRatePerHour, total)
	b.staff += total
}

// finish computes gratuity, the proportional gratuity allocation onto food and
// alcohol, taxes, and the grand total. Intermediate math stays at full precision;
// only the returned fields are rounded.
func (b *builder) finish(policy entities.PolicyConfig) *entities.Quote {
	subtotal := b.food + b.alcohol + b.rental + b.staff
	gratuity := subtotal * policy.GratuityRate

	// Gratuity is raised on the whole subtotal (rental and staffing included) but
	// reallocated only onto the taxable food and alcohol categories, in proportion
	// to their share of the subtotal. A zero subtotal allocates nothing.
	allocate := func(categoryTotal float64) float64 {
		if subtotal <= 0 {
			return 0
		}
		return gratuity * (categoryTotal / subtotal)
	}

	foodTax := (b.food + allocate(b.food)) * policy.TaxFoodRate
	alcoholTax := (b.alcohol + allocate(b.alcohol)) * policy.TaxAlcoholRate

	// Staffing and rental fees are not taxed. Confirmed business rule, not a gap.
	staffTax := 0.0
	taxTotal := foodTax + alcoholTax + staffTax
	grandTotal := subtotal + gratuity + taxTotal

	disclosures := make([]string, len(policy.Disclosures))
	copy(disclosures, policy.Disclosures)

	return &entities.Quote{
		LineItems: b.items,
		CategorySubtotals: entities.CategorySubtotals{
			Food:    round2(b.food),
			Alcohol: round2(b.alcohol),
			Rental:  round2(b.rental),
			Staff:   round2(b.staff),
		},
		Subtotal:    round2(subtotal),
		Gratuity:    round2(gratuity),
		FoodTax:     round2(foodTax),
		AlcoholTax:  round2(alcoholTax),
		StaffTax:    round2(staffTax),
		TaxTotal:    round2(taxTotal),
		GrandTotal:  round2(grandTotal),
		Disclosures: disclosures,
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
