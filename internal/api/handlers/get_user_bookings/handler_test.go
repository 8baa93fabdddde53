package get_user_bookings_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers/get_user_bookings"
	"github.com/m04kA/SMC-CarRentalService/internal/api/middleware"
	"github.com/m04kA/SMC-CarRentalService/internal/service/bookings"
	"github.com/m04kA/SMC-CarRentalService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CarRentalService/pkg/logger"
)

type mockService struct {
	getFunc func(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error)
}

func (m *mockService) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	return m.getFunc(ctx, req)
}

var _ get_user_bookings.BookingService = (*mockService)(nil)

func get(svc *mockService, query string, userID int64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/bookings"+query, nil)
	if userID > 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	get_user_bookings.NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_ListsOwnBookings(t *testing.T) {
	var got *models.GetUserBookingsRequest
	svc := &mockService{getFunc: func(_ context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
		got = req
		return &models.BookingListResponse{Bookings: []models.BookingResponse{
			{ID: 1, UserID: req.UserID, Status: "confirmed", TotalAmount: "209.10"},
		}}, nil
	}}

	rec := get(svc, "?status=confirmed", 42)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, got)
	assert.Equal(t, int64(42), got.UserID)
	require.NotNil(t, got.Status)
	assert.Equal(t, "confirmed", *got.Status)

	var resp []models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "209.10", resp[0].TotalAmount)
}

func TestHandle_NoStatusFilter(t *testing.T) {
	svc := &mockService{getFunc: func(_ context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
		assert.Nil(t, req.Status)
		return &models.BookingListResponse{Bookings: []models.BookingResponse{}}, nil
	}}

	rec := get(svc, "", 42)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		userID int64
		err    error
		status int
	}{
		{name: "no user", status: http.StatusUnauthorized},
		{name: "unknown status", userID: 42, err: bookings.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "repository failure", userID: 42, err: errors.New("db down"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{getFunc: func(context.Context, *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
				return nil, tt.err
			}}
			rec := get(svc, "?status=lost", tt.userID)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
