package salesclient

import (
	"context"

	salesdomain "github.com/vfg2006/roi-collector-api/infrastructure/integrator/salesplatform/domain"
)

// GetOrdersByDay retorna os totais diários de vendas do produto
func (c *SalesClient) GetOrdersByDay(ctx context.Context) (*salesdomain.OrdersByDayResponse, error) {
	var response salesdomain.OrdersByDayResponse
	if err := c.getJSON(ctx, c.productEndpoint("ordersByDay"), nil, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
