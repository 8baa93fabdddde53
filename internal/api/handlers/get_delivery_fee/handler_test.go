package get_delivery_fee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers/get_delivery_fee"
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/service/delivery"
	"github.com/m04kA/SMC-CarRentalService/pkg/logger"
)

type mockDelivery struct {
	quote *delivery.Quote
	err   error
	point domain.GeoPoint
}

func (m *mockDelivery) Quote(_ context.Context, _ int64, destination domain.GeoPoint) (*delivery.Quote, error) {
	m.point = destination
	return m.quote, m.err
}

var _ get_delivery_fee.DeliveryService = (*mockDelivery)(nil)

func TestHandle_OK(t *testing.T) {
	svc := &mockDelivery{quote: &delivery.Quote{LocationID: 1, DistanceKm: 32.5, Fee: decimal.RequireFromString("49")}}
	h := get_delivery_fee.NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/delivery/fee?locationId=1&lat=49.25&lng=-123.1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp get_delivery_fee.DeliveryFeeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "49.00", resp.Fee)
	assert.Equal(t, 32.5, resp.DistanceKm)
	assert.Equal(t, domain.GeoPoint{Latitude: 49.25, Longitude: -123.1}, svc.point)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		err    error
		status int
	}{
		{name: "missing location", query: "lat=1&lng=1", status: http.StatusBadRequest},
		{name: "missing coordinates", query: "locationId=1", status: http.StatusBadRequest},
		{name: "out of range", query: "locationId=1&lat=1&lng=1", err: delivery.ErrDeliveryUnavailable, status: http.StatusUnprocessableEntity},
		{name: "unknown location", query: "locationId=1&lat=1&lng=1", err: delivery.ErrLocationNotFound, status: http.StatusNotFound},
		{name: "internal", query: "locationId=1&lat=1&lng=1", err: delivery.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := get_delivery_fee.NewHandler(&mockDelivery{err: tt.err}, logger.NewNop())
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/delivery/fee?"+tt.query, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
