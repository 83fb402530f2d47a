package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotecraft/internal/application/settings/usecases"
	"quotecraft/internal/domain/settings"
	"quotecraft/internal/interfaces/http/handlers/testutil"
	"quotecraft/internal/shared/errors"
)

type mockGetSettingsUC struct {
	result *settings.GlobalSettings
	err    error
}

func (m *mockGetSettingsUC) Execute(ctx context.Context) (*settings.GlobalSettings, error) {
	return m.result, m.err
}

type mockUpdateSettingsUC struct {
	result *settings.GlobalSettings
	err    error
	gotCmd usecases.UpdateSettingsCommand
}

func (m *mockUpdateSettingsUC) Execute(ctx context.Context, cmd usecases.UpdateSettingsCommand) (*settings.GlobalSettings, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

func TestSettingsHandler_GetSettings_Success(t *testing.T) {
	mockUC := &mockGetSettingsUC{
		result: &settings.GlobalSettings{MinimumPrice: decimal.NewFromInt(150)},
	}
	handler := NewSettingsHandler(mockUC, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/settings", nil)

	handler.GetSettings(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var body SettingsResponse
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	assert.True(t, body.MinimumPrice.Equal(decimal.NewFromInt(150)))
}

func TestSettingsHandler_UpdateSettings_Success(t *testing.T) {
	mockUC := &mockUpdateSettingsUC{
		result: &settings.GlobalSettings{MinimumPrice: decimal.NewFromInt(200)},
	}
	handler := NewSettingsHandler(nil, mockUC, testutil.NewMockLogger())

	reqBody := UpdateSettingsRequest{MinimumPrice: decimal.NewFromInt(200)}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/settings", reqBody)

	handler.UpdateSettings(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockUC.gotCmd.MinimumPrice.Equal(decimal.NewFromInt(200)))
}

func TestSettingsHandler_UpdateSettings_NegativePrice(t *testing.T) {
	mockUC := &mockUpdateSettingsUC{err: errors.NewValidationError("minimum price cannot be negative")}
	handler := NewSettingsHandler(nil, mockUC, testutil.NewMockLogger())

	reqBody := UpdateSettingsRequest{MinimumPrice: decimal.NewFromInt(-5)}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/settings", reqBody)

	handler.UpdateSettings(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
