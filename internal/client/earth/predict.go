package earth

import (
	"context"
	"errors"
)

var ErrMissingScore = errors.New("flood trend response has no next_week_score")

type predictService struct {
	client *Client
}

func (s *predictService) FloodTrend(ctx context.Context, at Coordinates) (*FloodTrend, error) {
	const route = "/predict/flood-trend"

	trend, err := get[FloodTrend](ctx, s.client, route, at.query())
	if err != nil {
		return nil, err
	}
	if trend.Analysis.NextWeekScore == nil {
		return nil, ErrMissingScore
	}
	return trend, nil
}
