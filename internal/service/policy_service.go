package service

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"eventquote/internal/entities"
	apperrors "eventquote/internal/errors"
)

// requiredPolicyKeys must all be present in policies.yaml. A missing key is a
// deployment fault, not something the engine may default to zero.
var requiredPolicyKeys = []string{
	"private_rental_threshold_guests",
	"private_rental_weekday_rate_per_hour",
	"private_rental_weekend_rate_per_hour",
	"second_bartender_threshold_guests",
	"second_bartender_rate_per_hour",
	"gratuity_rate",
	"tax_food_rate",
	"tax_alcohol_rate",
}

// LoadPolicyConfig reads and validates the venue policy file.
func LoadPolicyConfig(path string) (*entities.PolicyConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading policy file %s: %w", path, err)
	}

	var keys map[string]interface{}
	if err := yaml.Unmarshal(raw, &keys); err != nil {
		return nil, fmt.Errorf("error parsing policy file %s: %w", path, err)
	}
	for _, key := range requiredPolicyKeys {
		if _, ok := keys[key]; !ok {
			return nil, apperrors.NewConfigurationError(key)
		}
	}

	var policy entities.PolicyConfig
	if err := yaml.Unmarshal(raw, &policy); err != nil {
		return nil, fmt.Errorf("error parsing policy file %s: %w", path, err)
	}
	return &policy, nil
}
