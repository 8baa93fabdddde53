package create_hold

import (
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// Request модель запроса на холд
type Request struct {
	UserID    int64
	VehicleID int64
	Range     domain.DateRange
}

// Response созданный холд
type Response struct {
	Hold *domain.Hold
}
