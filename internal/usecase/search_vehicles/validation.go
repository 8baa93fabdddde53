package search_vehicles

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.LocationID != nil && *req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	if err := req.Range.ValidateRental(); err != nil {
		return err
	}

	if f := req.Filter; f != nil {
		if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
			return fmt.Errorf("%w: minPrice is greater than maxPrice", ErrInvalidInput)
		}
		if f.Seats != nil && *f.Seats <= 0 {
			return fmt.Errorf("%w: seats must be positive", ErrInvalidInput)
		}
	}

	return nil
}
