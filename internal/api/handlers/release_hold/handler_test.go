package release_hold_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers/release_hold"
	"github.com/m04kA/SMC-CarRentalService/internal/api/middleware"
	releaseHold "github.com/m04kA/SMC-CarRentalService/internal/usecase/release_hold"
	"github.com/m04kA/SMC-CarRentalService/pkg/logger"
)

type mockUseCase struct {
	err    error
	userID int64
	holdID uuid.UUID
}

func (m *mockUseCase) Execute(_ context.Context, userID int64, holdID uuid.UUID) error {
	m.userID, m.holdID = userID, holdID
	return m.err
}

var _ release_hold.ReleaseHoldUseCase = (*mockUseCase)(nil)

func TestHandle(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name   string
		path   string
		err    error
		status int
	}{
		{name: "released", path: "/holds/" + id.String(), status: http.StatusNoContent},
		{name: "bad id", path: "/holds/not-a-uuid", status: http.StatusBadRequest},
		{name: "not found", path: "/holds/" + id.String(), err: releaseHold.ErrHoldNotFound, status: http.StatusNotFound},
		{name: "foreign hold", path: "/holds/" + id.String(), err: releaseHold.ErrAccessDenied, status: http.StatusForbidden},
		{name: "already released", path: "/holds/" + id.String(), err: releaseHold.ErrHoldNotActive, status: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{err: tt.err}
			router := mux.NewRouter()
			router.HandleFunc("/holds/{holdId}", release_hold.NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodDelete)

			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			req = req.WithContext(middleware.WithUserID(req.Context(), 5))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusNoContent {
				assert.Equal(t, int64(5), uc.userID)
				assert.Equal(t, id, uc.holdID)
			}
		})
	}
}
