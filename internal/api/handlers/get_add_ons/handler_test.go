package get_add_ons_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers/get_add_ons"
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/pkg/logger"
)

type mockService struct {
	items []*domain.AddOn
	err   error
}

func (m *mockService) Catalog(context.Context) ([]*domain.AddOn, error) {
	return m.items, m.err
}

var _ get_add_ons.AddOnService = (*mockService)(nil)

func get(svc *mockService) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	get_add_ons.NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/addons", nil))
	return rec
}

func TestHandle_Catalog(t *testing.T) {
	rec := get(&mockService{items: []*domain.AddOn{
		{ID: 1, Code: "gps", Name: "GPS", Pricing: domain.AddOnPerDay, Price: decimal.RequireFromString("9.99")},
		{ID: 4, Code: "fuel", Name: "Prepaid fuel", Pricing: domain.AddOnFuel, Price: decimal.RequireFromString("1.8")},
	}})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []get_add_ons.AddOnResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "per_day", resp[0].Pricing)
	assert.Equal(t, "1.80", resp[1].Price)
}

func TestHandle_EmptyCatalog(t *testing.T) {
	rec := get(&mockService{})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	rec := get(&mockService{err: fmt.Errorf("%w: failed to list add-ons", domain.ErrDataUnavailable)})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, handlers.CodeDataUnavailable, resp.Code)

	rec = get(&mockService{err: errors.New("boom")})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
