package maps

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	gmaps "googlemaps.github.io/maps"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// Client клиент Google Distance Matrix для расчета расстояния доставки
type Client struct {
	client *gmaps.Client
	log    Logger
}

// Option дополнительная настройка клиента
type Option func(*[]gmaps.ClientOption)

// WithBaseURL подменяет адрес API (для тестов)
func WithBaseURL(baseURL string) Option {
	return func(opts *[]gmaps.ClientOption) {
		*opts = append(*opts, gmaps.WithBaseURL(baseURL))
	}
}

// NewClient создает новый экземпляр клиента
func NewClient(apiKey string, timeout time.Duration, log Logger, options ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}

	opts := []gmaps.ClientOption{
		gmaps.WithAPIKey(apiKey),
		gmaps.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	for _, o := range options {
		o(&opts)
	}

	client, err := gmaps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Client{client: client, log: log}, nil
}

// DrivingDistance возвращает расстояние по дороге между двумя точками
func (c *Client) DrivingDistance(ctx context.Context, origin, destination domain.GeoPoint) (*RouteDistance, error) {
	req := &gmaps.DistanceMatrixRequest{
		Origins:      []string{formatPoint(origin)},
		Destinations: []string{formatPoint(destination)},
		Mode:         gmaps.TravelModeDriving,
		Units:        gmaps.UnitsMetric,
	}

	resp, err := c.client.DistanceMatrix(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: distance matrix request: %w", ErrInvalidResponse, err)
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return nil, fmt.Errorf("%w: empty distance matrix", ErrInvalidResponse)
	}

	element := resp.Rows[0].Elements[0]
	if element.Status != "OK" {
		return nil, fmt.Errorf("%w: element status %s", ErrRouteNotFound, element.Status)
	}

	return &RouteDistance{
		Meters:   element.Distance.Meters,
		Duration: element.Duration,
	}, nil
}

// DrivingDistanceWithGracefulDegradation то же, что DrivingDistance, но
// при недоступности API возвращает ErrServiceDegraded
// Отсутствие маршрута остается бизнес-ошибкой и пробрасывается как есть
func (c *Client) DrivingDistanceWithGracefulDegradation(ctx context.Context, origin, destination domain.GeoPoint) (*RouteDistance, error) {
	distance, err := c.DrivingDistance(ctx, origin, destination)
	if err != nil {
		if errors.Is(err, ErrRouteNotFound) {
			c.log.Info("No driving route between %s and %s", formatPoint(origin), formatPoint(destination))
			return nil, err
		}

		c.log.Error("Maps API unavailable, applying graceful degradation: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrServiceDegraded, err)
	}

	c.log.Info("Driving distance %s -> %s: %d m", formatPoint(origin), formatPoint(destination), distance.Meters)
	return distance, nil
}
