package metaclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/roi-collector-api/infrastructure/integrator/meta/domain"
)

const budgetFields = "name,daily_budget,lifetime_budget,status"

type ResponseAdCampaign struct {
	Data   []metadomain.Campaign `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

type ResponseAdSet struct {
	Data   []metadomain.AdSet `json:"data"`
	Paging metadomain.Paging  `json:"paging"`
}

func activeParams() url.Values {
	params := url.Values{}
	params.Add("fields", budgetFields)
	params.Add("effective_status", "['ACTIVE']")
	return params
}

// GetActiveCampaigns lista as campanhas ativas da conta, seguindo a paginação
func (c *MetaClient) GetActiveCampaigns(ctx context.Context, accountID string) ([]metadomain.Campaign, error) {
	next := c.buildURL(fmt.Sprintf("%s/campaigns", accountID), activeParams())
	campaigns := make([]metadomain.Campaign, 0)

	for page := 0; next != "" && page < maxPages; page++ {
		var response ResponseAdCampaign
		if err := c.get(ctx, next, &response); err != nil {
			return nil, err
		}

		campaigns = append(campaigns, response.Data...)
		next = response.Paging.Next
	}

	if next != "" {
		logrus.WithField("account_id", accountID).Warn("Limite de páginas atingido ao listar campanhas")
	}

	return campaigns, nil
}

// GetActiveAdSets lista os conjuntos de anúncios ativos da campanha
func (c *MetaClient) GetActiveAdSets(ctx context.Context, campaignID string) ([]metadomain.AdSet, error) {
	next := c.buildURL(fmt.Sprintf("%s/adsets", campaignID), activeParams())
	adSets := make([]metadomain.AdSet, 0)

	for page := 0; next != "" && page < maxPages; page++ {
		var response ResponseAdSet
		if err := c.get(ctx, next, &response); err != nil {
			return nil, err
		}

		adSets = append(adSets, response.Data...)
		next = response.Paging.Next
	}

	return adSets, nil
}
