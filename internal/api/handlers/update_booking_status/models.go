package update_booking_status

import (
	"time"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/service/bookings/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status     string  `json:"status"`
	ReturnedAt *string `json:"returnedAt,omitempty"` // RFC 3339, только для completed
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(userID int64) (*models.UpdateStatusRequest, error) {
	req := &models.UpdateStatusRequest{
		UserID: userID,
		Status: r.Status,
	}

	if r.ReturnedAt != nil {
		returnedAt, err := time.Parse(domain.DateTimeFormat, *r.ReturnedAt)
		if err != nil {
			return nil, err
		}
		req.ReturnedAt = &returnedAt
	}

	return req, nil
}
