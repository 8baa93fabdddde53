package check_availability

import "github.com/m04kA/SMC-CarRentalService/internal/domain"

// Request модель запроса проверки
type Request struct {
	VehicleID int64
	Range     domain.DateRange
}

// Response результат проверки
type Response struct {
	VehicleID int64
	Available bool
}
