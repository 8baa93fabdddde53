package get_quote

import (
	"context"

	"github.com/m04kA/SMC-CarRentalService/internal/service/quoting"
	quoteBooking "github.com/m04kA/SMC-CarRentalService/internal/usecase/quote_booking"
)

type QuoteUseCase interface {
	Execute(ctx context.Context, req *quoteBooking.Request) (*quoting.Quote, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
