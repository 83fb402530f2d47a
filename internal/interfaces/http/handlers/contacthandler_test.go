package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contactdto "quotecraft/internal/application/contact/dto"
	"quotecraft/internal/application/contact/usecases"
	"quotecraft/internal/interfaces/http/handlers/testutil"
	"quotecraft/internal/shared/errors"
)

type mockSearchContactsUC struct {
	result   *usecases.SearchContactsResult
	err      error
	gotQuery usecases.SearchContactsQuery
}

func (m *mockSearchContactsUC) Execute(ctx context.Context, q usecases.SearchContactsQuery) (*usecases.SearchContactsResult, error) {
	m.gotQuery = q
	return m.result, m.err
}

type mockValidateLocationUC struct {
	err    error
	gotLoc string
}

func (m *mockValidateLocationUC) Execute(ctx context.Context, locationID string) error {
	m.gotLoc = locationID
	return m.err
}

func newTestContactHandler(searchUC searchContactsUseCase, validateUC validateLocationUseCase) *ContactHandler {
	return NewContactHandler(searchUC, validateUC, testutil.NewMockLogger())
}

func TestContactHandler_SearchContacts_Success(t *testing.T) {
	mockUC := &mockSearchContactsUC{
		result: &usecases.SearchContactsResult{
			Contacts: []*contactdto.ContactDTO{
				{ID: 1, ContactID: "contact-abc", FullName: "Jane Doe"},
			},
			Total:    1,
			Page:     2,
			PageSize: 25,
		},
	}
	handler := newTestContactHandler(mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/contacts/search", nil)
	testutil.SetQueryParams(c, map[string]string{
		"search":    "jane",
		"page":      "2",
		"page_size": "25",
	})

	handler.SearchContacts(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jane", mockUC.gotQuery.Search)
	assert.Equal(t, 2, mockUC.gotQuery.Page)
	assert.Equal(t, 25, mockUC.gotQuery.PageSize)
}

func TestContactHandler_SearchContacts_DefaultsPaging(t *testing.T) {
	mockUC := &mockSearchContactsUC{result: &usecases.SearchContactsResult{Page: 1}}
	handler := newTestContactHandler(mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/contacts/search", nil)

	handler.SearchContacts(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, mockUC.gotQuery.Page)
	assert.Equal(t, 0, mockUC.gotQuery.PageSize)
}

func TestContactHandler_ValidateLocation_Success(t *testing.T) {
	mockUC := &mockValidateLocationUC{}
	handler := newTestContactHandler(nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/locations/validate", nil)
	testutil.SetQueryParams(c, map[string]string{"location_id": "loc-123"})

	handler.ValidateLocation(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "loc-123", mockUC.gotLoc)
}

func TestContactHandler_ValidateLocation_MissingParam(t *testing.T) {
	handler := newTestContactHandler(nil, &mockValidateLocationUC{})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/locations/validate", nil)

	handler.ValidateLocation(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactHandler_ValidateLocation_Mismatch(t *testing.T) {
	mockUC := &mockValidateLocationUC{err: errors.NewUnauthorizedError("unauthenticated location id")}
	handler := newTestContactHandler(nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/locations/validate", nil)
	testutil.SetQueryParams(c, map[string]string{"location_id": "other-loc"})

	handler.ValidateLocation(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}
