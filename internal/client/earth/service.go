package earth

import "context"

type PredictService interface {
	// FloodTrend returns the next-week risk analysis for a location.
	FloodTrend(ctx context.Context, at Coordinates) (*FloodTrend, error)
}

type InfraService interface {
	Status(ctx context.Context, at Coordinates) (*InfraStatus, error)
}
