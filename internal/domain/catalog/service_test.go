package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timeNow() time.Time {
	return time.Now()
}

func newWindowCleaning(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService("Window Cleaning", "Professional window cleaning")
	require.NoError(t, err)
	return svc
}

func TestNewService_ValidInput(t *testing.T) {
	svc := newWindowCleaning(t)

	assert.Equal(t, "Window Cleaning", svc.Name())
	assert.Equal(t, "Professional window cleaning", svc.Description())
	assert.True(t, svc.IsActive())
	assert.Empty(t, svc.Features())
	assert.Empty(t, svc.PricingOptions())
	assert.Empty(t, svc.Questions())
}

func TestNewService_EmptyName(t *testing.T) {
	svc, err := NewService("   ", "desc")

	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestService_AddFeature_DuplicateName(t *testing.T) {
	svc := newWindowCleaning(t)

	_, err := svc.AddFeature("Interior", "inside glass")
	require.NoError(t, err)

	_, err = svc.AddFeature("Interior", "again")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestService_AddPricingOption_UnknownFeature(t *testing.T) {
	svc := newWindowCleaning(t)
	_, err := svc.AddFeature("Interior", "")
	require.NoError(t, err)

	_, err = svc.AddPricingOption("Standard", dec("10"), dec("100"), []FeatureInclusion{
		{FeatureName: "Exterior", Included: true},
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not belong to service")
}

func TestService_AddPricingOption_DuplicateName(t *testing.T) {
	svc := newWindowCleaning(t)
	_, err := svc.AddPricingOption("Standard", dec("0"), dec("50"), nil)
	require.NoError(t, err)

	_, err = svc.AddPricingOption("Standard", dec("5"), dec("60"), nil)
	assert.Error(t, err)
}

func TestService_ToggleActive(t *testing.T) {
	svc := newWindowCleaning(t)

	assert.False(t, svc.ToggleActive())
	assert.False(t, svc.IsActive())
	assert.True(t, svc.ToggleActive())
	assert.True(t, svc.IsActive())
}

func TestService_Duplicate(t *testing.T) {
	svc := newWindowCleaning(t)
	_, err := svc.AddFeature("Interior", "inside glass")
	require.NoError(t, err)
	_, err = svc.AddPricingOption("Standard", dec("10"), dec("100"), []FeatureInclusion{
		{FeatureName: "Interior", Included: true},
	})
	require.NoError(t, err)
	q, err := svc.AddQuestion("How many windows?", QuestionTypeChoice, dec("5"), true, 0)
	require.NoError(t, err)
	_, err = q.AddOption("10", "Up to 10", dec("0"), 0)
	require.NoError(t, err)

	dup, err := svc.Duplicate()

	require.NoError(t, err)
	assert.Equal(t, "Window Cleaning (Copy)", dup.Name())
	assert.Len(t, dup.Features(), 1)
	assert.Len(t, dup.PricingOptions(), 1)
	require.Len(t, dup.Questions(), 1)
	assert.Len(t, dup.Questions()[0].Options(), 1)
	// The copy is detached: renaming the original leaves it alone.
	require.NoError(t, svc.Rename("Renamed", ""))
	assert.Equal(t, "Window Cleaning (Copy)", dup.Name())
}

func TestService_ClearChildren(t *testing.T) {
	svc := newWindowCleaning(t)
	_, err := svc.AddFeature("Interior", "")
	require.NoError(t, err)
	_, err = svc.AddQuestion("Floors?", QuestionTypeNumber, dec("0"), false, 0)
	require.NoError(t, err)

	svc.ClearChildren()

	assert.Empty(t, svc.Features())
	assert.Empty(t, svc.PricingOptions())
	assert.Empty(t, svc.Questions())
}
