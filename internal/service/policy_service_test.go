package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventquote/internal/entities"
	apperrors "eventquote/internal/errors"
)

const validPolicyYAML = `
private_rental_threshold_guests: 40
private_rental_weekday_rate_per_hour: 100
private_rental_weekend_rate_per_hour: 150
second_bartender_threshold_guests: 50
second_bartender_rate_per_hour: 35
second_bartender_applies_when: open_bar_only
gratuity_rate: 0.20
tax_food_rate: 0.08
tax_alcohol_rate: 0.10
disclosures:
  - "Pricing is before tax and 20% gratuity."
`

func writePolicyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policies.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPolicyConfig(t *testing.T) {
	policy, err := LoadPolicyConfig(writePolicyFile(t, validPolicyYAML))
	require.NoError(t, err)

	assert.Equal(t, 40, policy.PrivateRentalThresholdGuests)
	assert.Equal(t, 100.0, policy.PrivateRentalWeekdayRate)
	assert.Equal(t, 150.0, policy.PrivateRentalWeekendRate)
	assert.Equal(t, 50, policy.SecondStaffThresholdGuests)
	assert.Equal(t, 35.0, policy.SecondStaffRatePerHour)
	assert.Equal(t, entities.StaffingOpenBarOnly, policy.SecondStaffAppliesWhen)
	assert.Equal(t, 0.20, policy.GratuityRate)
	assert.Equal(t, 0.08, policy.TaxFoodRate)
	assert.Equal(t, 0.10, policy.TaxAlcoholRate)
	assert.Equal(t, []string{"Pricing is before tax and 20% gratuity."}, policy.Disclosures)
}

func TestLoadPolicyConfig_MissingRequiredKey(t *testing.T) {
	incomplete := `
private_rental_threshold_guests: 40
private_rental_weekday_rate_per_hour: 100
private_rental_weekend_rate_per_hour: 150
second_bartender_threshold_guests: 50
second_bartender_rate_per_hour: 35
tax_food_rate: 0.08
tax_alcohol_rate: 0.10
`
	_, err := LoadPolicyConfig(writePolicyFile(t, incomplete))

	var configErr *apperrors.ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "gratuity_rate", configErr.Field)
}

func TestLoadPolicyConfig_MissingFile(t *testing.T) {
	_, err := LoadPolicyConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadPolicyConfig_MalformedYAML(t *testing.T) {
	_, err := LoadPolicyConfig(writePolicyFile(t, "gratuity_rate: [unclosed"))
	require.Error(t, err)
}
