package handlers

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// ParseDateRange читает интервал аренды из двух параметров в формате RFC 3339
func ParseDateRange(q url.Values, startKey, endKey string) (domain.DateRange, error) {
	start, err := time.Parse(domain.DateTimeFormat, q.Get(startKey))
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%s: %w", startKey, err)
	}
	end, err := time.Parse(domain.DateTimeFormat, q.Get(endKey))
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%s: %w", endKey, err)
	}
	return domain.DateRange{Start: start, End: end}, nil
}

// ParseOptionalInt64 nil, если параметр не задан
func ParseOptionalInt64(q url.Values, key string) (*int64, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &v, nil
}

// ParseOptionalInt nil, если параметр не задан
func ParseOptionalInt(q url.Values, key string) (*int, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &v, nil
}

// ParseOptionalDecimal nil, если параметр не задан
func ParseOptionalDecimal(q url.Values, key string) (*decimal.Decimal, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &v, nil
}

// ParseOptionalString nil, если параметр не задан
func ParseOptionalString(q url.Values, key string) *string {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	return &raw
}
