package search_vehicles_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers/search_vehicles"
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	searchVehicles "github.com/m04kA/SMC-CarRentalService/internal/usecase/search_vehicles"
	"github.com/m04kA/SMC-CarRentalService/pkg/logger"
)

type mockUseCase struct {
	resp *searchVehicles.Response
	err  error
	got  *searchVehicles.Request
}

func (m *mockUseCase) Execute(_ context.Context, req *searchVehicles.Request) (*searchVehicles.Response, error) {
	m.got = req
	return m.resp, m.err
}

var _ search_vehicles.SearchVehiclesUseCase = (*mockUseCase)(nil)

const window = "start=2026-10-05T10:00:00Z&end=2026-10-08T10:00:00Z"

func get(uc *mockUseCase, query string) *httptest.ResponseRecorder {
	h := search_vehicles.NewHandler(uc, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/vehicles/available?"+query, nil))
	return rec
}

func TestHandle_FiltersAndBaseTotal(t *testing.T) {
	uc := &mockUseCase{resp: &searchVehicles.Response{
		RentalDays: 3,
		Vehicles: []*domain.Vehicle{
			{ID: 1, CategoryName: "SUV", DailyRate: decimal.RequireFromString("85.00"), Seats: 7},
		},
	}}

	rec := get(uc, window+"&locationId=2&category=suv&maxPrice=100&seats=5")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(2), *uc.got.LocationID)
	assert.Equal(t, "suv", *uc.got.Filter.Category)
	assert.Equal(t, 5, *uc.got.Filter.Seats)
	assert.True(t, uc.got.Filter.MaxPrice.Equal(decimal.NewFromInt(100)))
	assert.Nil(t, uc.got.Filter.MinPrice)

	var resp search_vehicles.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Vehicles, 1)
	assert.Equal(t, "255.00", resp.Vehicles[0].BaseTotal)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		err    error
		status int
		code   string
	}{
		{name: "missing range", query: "locationId=1", status: http.StatusBadRequest, code: handlers.CodeValidation},
		{name: "bad seats", query: window + "&seats=many", status: http.StatusBadRequest, code: handlers.CodeValidation},
		{name: "unknown location", query: window, err: searchVehicles.ErrLocationNotFound, status: http.StatusNotFound, code: handlers.CodeNotFound},
		{name: "fail closed", query: window, err: fmt.Errorf("%w: conflicts", domain.ErrDataUnavailable),
			status: http.StatusServiceUnavailable, code: handlers.CodeDataUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(&mockUseCase{err: tt.err}, tt.query)
			assert.Equal(t, tt.status, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Code)
		})
	}
}
