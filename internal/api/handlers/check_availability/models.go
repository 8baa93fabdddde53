package check_availability

// AvailabilityResponse результат проверки
type AvailabilityResponse struct {
	VehicleID int64  `json:"vehicleId"`
	StartAt   string `json:"startAt"`
	EndAt     string `json:"endAt"`
	Available bool   `json:"available"`
}
