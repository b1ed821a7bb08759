package salesdomain

type AffiliateUser struct {
	AffiliateCode string `json:"affiliateCode"`
	Name          string `json:"name"`
}

// AffiliateSummary é uma linha de /affiliates/data
type AffiliateSummary struct {
	User            AffiliateUser `json:"user"`
	TotalPaidOrders Amount        `json:"totalPaidOrders"`
}

type AffiliatesEnvelope struct {
	Data []AffiliateSummary `json:"data"`
}
