package metadomain

// SpendInsight é o gasto de uma conta no período pedido
type SpendInsight struct {
	AccountID string `json:"account_id"`
	Spend     string `json:"spend"`
	DateStart string `json:"date_start"`
	DateStop  string `json:"date_stop"`
}
