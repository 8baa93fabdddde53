package create_hold

import (
	"time"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	createHold "github.com/m04kA/SMC-CarRentalService/internal/usecase/create_hold"
)

// CreateHoldRequest HTTP request model
type CreateHoldRequest struct {
	VehicleID int64  `json:"vehicleId"`
	StartAt   string `json:"startAt"`
	EndAt     string `json:"endAt"`
}

// HoldResponse HTTP response model
type HoldResponse struct {
	ID        string `json:"id"`
	VehicleID int64  `json:"vehicleId"`
	StartAt   string `json:"startAt"`
	EndAt     string `json:"endAt"`
	Status    string `json:"status"`
	ExpiresAt string `json:"expiresAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateHoldRequest) ToUseCaseRequest(userID int64) (*createHold.Request, error) {
	start, err := time.Parse(domain.DateTimeFormat, r.StartAt)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(domain.DateTimeFormat, r.EndAt)
	if err != nil {
		return nil, err
	}

	return &createHold.Request{
		UserID:    userID,
		VehicleID: r.VehicleID,
		Range:     domain.DateRange{Start: start, End: end},
	}, nil
}

// FromDomainHold конвертирует холд в HTTP ответ
func FromDomainHold(h *domain.Hold) *HoldResponse {
	return &HoldResponse{
		ID:        h.ID.String(),
		VehicleID: h.VehicleID,
		StartAt:   h.StartAt.Format(domain.DateTimeFormat),
		EndAt:     h.EndAt.Format(domain.DateTimeFormat),
		Status:    string(h.Status),
		ExpiresAt: h.ExpiresAt.Format(domain.DateTimeFormat),
	}
}
