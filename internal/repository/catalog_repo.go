package repository

import (
	"database/sql"
	"fmt"

	"eventquote/internal/entities"
)

type CatalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// LoadCatalog reads every priced offering into an id-keyed catalog snapshot.
func (r *CatalogRepository) LoadCatalog() (*entities.Catalog, error) {
	catalog := &entities.Catalog{
		FoodPackages:      make(map[string]entities.FoodPackage),
		FoodExperiences:   make(map[string]entities.FoodExperience),
		FoodExtras:        make(map[string]entities.FoodExtra),
		BeverageTiers:     make(map[string]entities.BeverageTier),
		HappyHourPackages: make(map[string]entities.HappyHourPackage),
		LateNightTiers:    make(map[string]entities.LateNightTier),
	}

	if err := r.loadFoodPackages(catalog); err != nil {
		return nil, err
	}
	if err := r.loadFoodExperiences(catalog); err != nil {
		return nil, err
	}
	if err := r.loadFoodExtras(catalog); err != nil {
		return nil, err
	}
	if err := r.loadBeverageTiers(catalog); err != nil {
		return nil, err
	}
	if err := r.loadHappyHourPackages(catalog); err != nil {
		return nil, err
	}
	if err := r.loadLateNightTiers(catalog); err != nil {
		return nil, err
	}

	return catalog, nil
}

func (r *CatalogRepository) loadFoodPackages(catalog *entities.Catalog) error {
	query := `
	SELECT id, name, price_pp,
		extras_price_pp_starter, extras_price_pp_main,
		extras_price_pp_dessert, extras_price_pp_special
	FROM food_packages
	ORDER BY id`

	rows, err := r.DB.Query(query)
	if err != nil {
		return fmt.Errorf("error querying food packages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p entities.FoodPackage
		err := rows.Scan(&p.ID, &p.Name, &p.PricePerGuest,
			&p.StarterExtraPrice, &p.MainExtraPrice,
			&p.DessertExtraPrice, &p.SpecialExtraPrice)
		if err != nil {
			return fmt.Errorf("error scanning food package: %w", err)
		}
		catalog.FoodPackages[p.ID] = p
	}
	return rows.Err()
}

func (r *CatalogRepository) loadFoodExperiences(catalog *entities.Catalog) error {
	rows, err := r.DB.Query(`SELECT id, name, price_pp FROM food_experiences ORDER BY id`)
	if err != nil {
		return fmt.Errorf("error querying food experiences: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e entities.FoodExperience
		if err := rows.Scan(&e.ID, &e.Name, &e.PricePerGuest); err != nil {
			return fmt.Errorf("error scanning food experience: %w", err)
		}
		catalog.FoodExperiences[e.ID] = e
	}
	return rows.Err()
}

func (r *CatalogRepository) loadFoodExtras(catalog *entities.Catalog) error {
	rows, err := r.DB.Query(`SELECT id, name, category FROM food_extras ORDER BY id`)
	if err != nil {
		return fmt.Errorf("error querying food extras: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e entities.FoodExtra
		if err := rows.Scan(&e.ID, &e.Name, &e.Category); err != nil {
			return fmt.Errorf("error scanning food extra: %w", err)
		}
		catalog.FoodExtras[e.ID] = e
	}
	return rows.Err()
}

func (r *CatalogRepository) loadBeverageTiers(catalog *entities.Catalog) error {
	query := `
	SELECT id, tier_name, base_price_pp_2hr, addl_hour_price_pp, ticket_price
	FROM beverage_tiers
	ORDER BY id`

	rows, err := r.DB.Query(query)
	if err != nil {
		return fmt.Errorf("error querying beverage tiers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t entities.BeverageTier
		err := rows.Scan(&t.ID, &t.Name, &t.BasePriceFirst2Hr, &t.AddlHourPrice, &t.TicketPrice)
		if err != nil {
			return fmt.Errorf("error scanning beverage tier: %w", err)
		}
		catalog.BeverageTiers[t.ID] = t
	}
	return rows.Err()
}

func (r *CatalogRepository) loadHappyHourPackages(catalog *entities.Catalog) error {
	query := `
	SELECT id, tier_name, price_pp_2hr, extra_choice_price_pp
	FROM happy_hour_packages
	ORDER BY id`

	rows, err := r.DB.Query(query)
	if err != nil {
		return fmt.Errorf("error querying happy hour packages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var h entities.HappyHourPackage
		if err := rows.Scan(&h.ID, &h.Name, &h.Price2Hr, &h.ExtraChoicePrice); err != nil {
			return fmt.Errorf("error scanning happy hour package: %w", err)
		}
		catalog.HappyHourPackages[h.ID] = h
	}
	return rows.Err()
}

func (r *CatalogRepository) loadLateNightTiers(catalog *entities.Catalog) error {
	rows, err := r.DB.Query(`SELECT id, tier_name, price_pp_2hr FROM late_night_tiers ORDER BY id`)
	if err != nil {
		return fmt.Errorf("error querying late night tiers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l entities.LateNightTier
		if err := rows.Scan(&l.ID, &l.Name, &l.Price2Hr); err != nil {
			return fmt.Errorf("error scanning late night tier: %w", err)
		}
		catalog.LateNightTiers[l.ID] = l
	}
	return rows.Err()
}

// UpdateFoodPackage overwrites the per-guest prices of one food package.
func (r *CatalogRepository) UpdateFoodPackage(id string, p entities.FoodPackage) error {
	result, err := r.DB.Exec(`
		UPDATE food_packages
		SET price_pp = $1,
			extras_price_pp_starter = $2,
			extras_price_pp_main = $3,
			extras_price_pp_dessert = $4,
			extras_price_pp_special = $5
		WHERE id = $6
	`, p.PricePerGuest, p.StarterExtraPrice, p.MainExtraPrice, p.DessertExtraPrice, p.SpecialExtraPrice, id)
	if err != nil {
		return fmt.Errorf("error updating food package %s: %w", id, err)
	}
	return requireRowAffected(result, "food_packages", id)
}

// UpdateBeverageTier overwrites the per-guest prices of one open-bar tier.
func (r *CatalogRepository) UpdateBeverageTier(id string, t entities.BeverageTier) error {
	result, err := r.DB.Exec(`
		UPDATE beverage_tiers
		SET base_price_pp_2hr = $1,
			addl_hour_price_pp = $2,
			ticket_price = $3
		WHERE id = $4
	`, t.BasePriceFirst2Hr, t.AddlHourPrice, t.TicketPrice, id)
	if err != nil {
		return fmt.Errorf("error updating beverage tier %s: %w", id, err)
	}
	return requireRowAffected(result, "beverage_tiers", id)
}

func requireRowAffected(result sql.Result, table, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("no row in %s with id %s", table, id)
	}
	return nil
}
