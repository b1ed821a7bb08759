package metaclient

import (
	"context"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/roi-collector-api/infrastructure/integrator/meta/domain"
)

type ResponseSpendInsights struct {
	Data []metadomain.SpendInsight `json:"data"`
}

// GetAccountSpend retorna o gasto de hoje da conta. Sem dados, o gasto é zero.
func (c *MetaClient) GetAccountSpend(ctx context.Context, accountID string) (*metadomain.SpendInsight, error) {
	params := url.Values{}
	params.Add("fields", "spend")
	params.Add("date_preset", "today")

	var response ResponseSpendInsights
	if err := c.get(ctx, c.buildURL(fmt.Sprintf("%s/insights", accountID), params), &response); err != nil {
		return nil, err
	}

	if len(response.Data) == 0 {
		return &metadomain.SpendInsight{AccountID: accountID, Spend: "0"}, nil
	}

	insight := response.Data[0]
	if insight.AccountID == "" {
		insight.AccountID = accountID
	}

	return &insight, nil
}
