package earth

import "context"

type infraService struct {
	client *Client
}

func (s *infraService) Status(ctx context.Context, at Coordinates) (*InfraStatus, error) {
	const route = "/infra/status"
	return get[InfraStatus](ctx, s.client, route, at.query())
}
