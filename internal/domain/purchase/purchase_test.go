package purchase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotecraft/internal/shared/errors"
)

func newDraftPurchase(t *testing.T) *Purchase {
	t.Helper()
	p, err := NewPurchase("contact-abc", nil, dec("90.00"))
	require.NoError(t, err)
	ps := NewPurchasedService("Window Cleaning", "")
	ps.SetID(7)
	p.AddService(ps)
	return p
}

func TestNewPurchase_InvalidInput(t *testing.T) {
	_, err := NewPurchase("", nil, dec("10"))
	assert.Error(t, err)

	_, err = NewPurchase("contact-abc", nil, dec("-0.01"))
	assert.Error(t, err)
}

func TestPurchase_Validate_Empty(t *testing.T) {
	p, err := NewPurchase("contact-abc", nil, dec("0"))
	require.NoError(t, err)

	err = p.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestPurchase_Finalize(t *testing.T) {
	p := newDraftPurchase(t)

	require.NoError(t, p.Finalize("Jane Doe", dec("95.50")))
	assert.True(t, p.IsSubmitted())
	require.NotNil(t, p.Signature())
	assert.Equal(t, "Jane Doe", *p.Signature())
	assert.True(t, dec("95.50").Equal(p.TotalAmount()))
}

func TestPurchase_Finalize_Twice(t *testing.T) {
	p := newDraftPurchase(t)
	require.NoError(t, p.Finalize("Jane Doe", dec("95.50")))

	err := p.Finalize("Someone Else", dec("1.00"))
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))

	// The first submission is untouched.
	assert.Equal(t, "Jane Doe", *p.Signature())
	assert.True(t, dec("95.50").Equal(p.TotalAmount()))
}

func TestPurchase_Finalize_RequiresSignature(t *testing.T) {
	p := newDraftPurchase(t)

	err := p.Finalize("   ", dec("95.50"))
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.False(t, p.IsSubmitted())
}

func TestPurchase_RemoveService(t *testing.T) {
	p := newDraftPurchase(t)

	require.NoError(t, p.RemoveService(7))
	assert.Empty(t, p.Services())

	err := p.RemoveService(7)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestPurchase_RemoveService_AfterSubmission(t *testing.T) {
	p := newDraftPurchase(t)
	require.NoError(t, p.Finalize("Jane Doe", dec("95.50")))

	// Removal stays available on submitted purchases.
	require.NoError(t, p.RemoveService(7))
	assert.Empty(t, p.Services())
}

func TestPurchasedService_SelectPlan_Foreign(t *testing.T) {
	ps := NewPurchasedService("Window Cleaning", "")
	own := NewPlanSnapshot("Basic", dec("10"))
	ps.AddPlan(own)

	foreign := NewPlanSnapshot("Basic", dec("10"))
	err := ps.SelectPlan(foreign)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Nil(t, ps.SelectedPlan())

	require.NoError(t, ps.SelectPlan(own))
	assert.Same(t, own, ps.SelectedPlan())
}

func TestPurchasedService_SelectPlanByID(t *testing.T) {
	ps := NewPurchasedService("Window Cleaning", "")
	basic := NewPlanSnapshot("Basic", dec("10"))
	basic.SetID(3)
	ps.AddPlan(basic)

	require.NoError(t, ps.SelectPlanByID(3))
	assert.Same(t, basic, ps.SelectedPlan())

	err := ps.SelectPlanByID(99)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
