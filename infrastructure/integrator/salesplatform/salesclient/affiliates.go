package salesclient

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	salesdomain "github.com/vfg2006/roi-collector-api/infrastructure/integrator/salesplatform/domain"
	"github.com/vfg2006/roi-collector-api/pkg/utils"
)

// GetAffiliates retorna o total pago por afiliado no intervalo.
// A API responde com uma lista ou com {"data": [...]}.
func (c *SalesClient) GetAffiliates(ctx context.Context, init time.Time, end time.Time) ([]salesdomain.AffiliateSummary, error) {
	query := map[string]string{
		"init":          utils.FormatAPIInstant(init),
		"end":           utils.FormatAPIInstant(end),
		"name":          "",
		"affiliateCode": "",
	}

	var raw jsoniter.RawMessage
	if err := c.getJSON(ctx, c.productEndpoint("affiliates/data"), query, &raw); err != nil {
		return nil, err
	}

	var list []salesdomain.AffiliateSummary
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var envelope salesdomain.AffiliatesEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}

	return envelope.Data, nil
}
