package create_booking_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers/create_booking"
	"github.com/m04kA/SMC-CarRentalService/internal/api/middleware"
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	createBooking "github.com/m04kA/SMC-CarRentalService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CarRentalService/pkg/logger"
)

type mockUseCase struct {
	executeFn func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
	got       *createBooking.Request
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	m.got = req
	return m.executeFn(ctx, req)
}

var _ create_booking.CreateBookingUseCase = (*mockUseCase)(nil)

const body = `{"vehicleId":7,"startAt":"2026-10-05T10:00:00Z","endAt":"2026-10-08T10:00:00Z","protectionTier":"basic","total":"209.10"}`

func serve(uc *mockUseCase, payload string, userID int64) *httptest.ResponseRecorder {
	h := create_booking.NewHandler(uc, logger.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(payload))
	if userID > 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func breakdown(total string) *domain.PriceBreakdown {
	return &domain.PriceBreakdown{
		RentalDays: 3,
		Subtotal:   decimal.RequireFromString("180.00"),
		Total:      decimal.RequireFromString(total),
		Deposit:    decimal.RequireFromString("250.00"),
	}
}

func TestHandle_Created(t *testing.T) {
	uc := &mockUseCase{executeFn: func(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
		return &createBooking.Response{
			Booking: &domain.Booking{
				ID:          10,
				UserID:      req.UserID,
				VehicleID:   req.VehicleID,
				StartAt:     req.Range.Start,
				EndAt:       req.Range.End,
				Status:      domain.StatusConfirmed,
				TotalAmount: decimal.RequireFromString("209.10"),
				CreatedAt:   time.Now(),
				UpdatedAt:   time.Now(),
			},
			Breakdown: breakdown("209.10"),
		}, nil
	}}

	rec := serve(uc, body, 42)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(42), uc.got.UserID)
	assert.Equal(t, domain.ProtectionBasic, uc.got.ProtectionTier)
	assert.True(t, uc.got.ClientTotal.Equal(decimal.RequireFromString("209.10")))
	assert.Nil(t, uc.got.HoldID)

	var resp create_booking.CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.Booking.ID)
	assert.Equal(t, "209.10", resp.Booking.TotalAmount)
	assert.Equal(t, "209.10", resp.Breakdown.Total)
}

func TestHandle_PriceMismatch(t *testing.T) {
	uc := &mockUseCase{executeFn: func(context.Context, *createBooking.Request) (*createBooking.Response, error) {
		return nil, &domain.PriceMismatchError{
			Submitted: decimal.RequireFromString("209.10"),
			Expected:  decimal.RequireFromString("215.40"),
			Breakdown: breakdown("215.40"),
		}
	}}

	rec := serve(uc, body, 42)
	require.Equal(t, http.StatusConflict, rec.Code)

	var resp create_booking.PriceMismatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, handlers.CodePriceMismatch, resp.Code)
	assert.Equal(t, "215.40", resp.ExpectedTotal)
	assert.Equal(t, "209.10", resp.SubmittedTotal)
	require.NotNil(t, resp.Breakdown)
	assert.Equal(t, "215.40", resp.Breakdown.Total)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		userID  int64
		err     error
		status  int
		code    string
	}{
		{name: "no user", payload: body, status: http.StatusUnauthorized, code: handlers.CodeUnauthorized},
		{name: "unknown field", payload: `{"foo":1}`, userID: 1, status: http.StatusBadRequest, code: handlers.CodeValidation},
		{name: "bad total", payload: `{"vehicleId":7,"startAt":"2026-10-05T10:00:00Z","endAt":"2026-10-08T10:00:00Z","total":"abc"}`,
			userID: 1, status: http.StatusBadRequest, code: handlers.CodeValidation},
		{name: "bad hold id", payload: `{"vehicleId":7,"startAt":"2026-10-05T10:00:00Z","endAt":"2026-10-08T10:00:00Z","total":"1","holdId":"x"}`,
			userID: 1, status: http.StatusBadRequest, code: handlers.CodeValidation},
		{name: "not available", payload: body, userID: 1, err: createBooking.ErrVehicleNotAvailable, status: http.StatusConflict, code: handlers.CodeNotAvailable},
		{name: "vehicle not found", payload: body, userID: 1, err: createBooking.ErrVehicleNotFound, status: http.StatusNotFound, code: handlers.CodeNotFound},
		{name: "hold mismatch", payload: body, userID: 1, err: createBooking.ErrHoldMismatch, status: http.StatusForbidden, code: handlers.CodeForbidden},
		{name: "hold expired", payload: body, userID: 1, err: createBooking.ErrHoldExpired, status: http.StatusConflict, code: handlers.CodeConflict},
		{name: "validation", payload: body, userID: 1, err: domain.ErrValidation, status: http.StatusBadRequest, code: handlers.CodeValidation},
		{name: "pricing unavailable", payload: body, userID: 1, err: domain.ErrDataUnavailable, status: http.StatusServiceUnavailable, code: handlers.CodePricingUnavailable},
		{name: "internal", payload: body, userID: 1, err: createBooking.ErrInternal, status: http.StatusInternalServerError, code: handlers.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{executeFn: func(context.Context, *createBooking.Request) (*createBooking.Response, error) {
				return nil, tt.err
			}}

			rec := serve(uc, tt.payload, tt.userID)
			assert.Equal(t, tt.status, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Code)
		})
	}
}
