package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/service/delivery"
)

const (
	msgInvalidRental       = "некорректные параметры аренды"
	msgDeliveryUnavailable = "доставка на указанный адрес недоступна"
	msgInvalidAddress      = "некорректный адрес доставки"
	msgLocationNotFound    = "локация не найдена"
	msgPricingUnavailable  = "расчет стоимости временно недоступен, повторите запрос"
)

// RespondPricingError отвечает на ошибки расчета стоимости
// Возвращает false, если ошибка не относится к расчету
func RespondPricingError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, delivery.ErrDeliveryUnavailable):
		RespondErrorCode(w, http.StatusUnprocessableEntity, CodeNotAvailable, msgDeliveryUnavailable)
	case errors.Is(err, delivery.ErrInvalidInput):
		RespondBadRequest(w, msgInvalidAddress)
	case errors.Is(err, delivery.ErrLocationNotFound):
		RespondNotFound(w, msgLocationNotFound)
	case errors.Is(err, domain.ErrValidation):
		RespondBadRequest(w, msgInvalidRental)
	case errors.Is(err, domain.ErrDataUnavailable):
		RespondUnavailable(w, CodePricingUnavailable, msgPricingUnavailable)
	default:
		return false
	}
	return true
}
