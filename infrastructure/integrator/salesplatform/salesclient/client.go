package salesclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	salesdomain "github.com/vfg2006/roi-collector-api/infrastructure/integrator/salesplatform/domain"
	"github.com/vfg2006/roi-collector-api/internal/config"
	"github.com/vfg2006/roi-collector-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetOrdersByDay(ctx context.Context) (*salesdomain.OrdersByDayResponse, error)
	GetAffiliates(ctx context.Context, init time.Time, end time.Time) ([]salesdomain.AffiliateSummary, error)
}

type SalesClient struct {
	httpClient *http.Client
	baseURL    string
	email      string
	password   string
	productID  string

	tokenMutex     sync.Mutex
	token          string
	tokenExpiresAt time.Time
	now            func() time.Time
}

// tempo máximo de cada chamada quando COLLECTION_FETCH_TIMEOUT não vem configurado
const defaultFetchTimeout = 30 * time.Second

func NewClient(cfg *config.Config) *SalesClient {
	timeout := cfg.Collection.FetchTimeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}

	return &SalesClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:   strings.TrimRight(cfg.SalesPlatform.URL, "/"),
		email:     cfg.SalesPlatform.Email,
		password:  cfg.SalesPlatform.Password,
		productID: cfg.SalesPlatform.ProductID,
		now:       time.Now,
	}
}

// WithHTTPClient troca o http.Client usado nas chamadas
func (c *SalesClient) WithHTTPClient(httpClient *http.Client) *SalesClient {
	c.httpClient = httpClient
	return c
}

// getJSON faz um GET autenticado. Um 401 invalida o token e repete a chamada uma vez.
func (c *SalesClient) getJSON(ctx context.Context, endpoint string, query map[string]string, out any) error {
	for attempt := 0; attempt < 2; attempt++ {
		token, err := c.accessToken(ctx)
		if err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
		if err != nil {
			return fmt.Errorf("erro ao criar a requisição: %w", err)
		}

		params := req.URL.Query()
		for key, value := range query {
			params.Set(key, value)
		}
		req.URL.RawQuery = params.Encode()

		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Accept", "application/json")

		body, status, err := utils.DoRequest(c.httpClient, req)
		if err != nil {
			return err
		}

		if status == http.StatusUnauthorized && attempt == 0 {
			c.invalidateToken()
			continue
		}

		if status != http.StatusOK {
			return &salesdomain.APIError{StatusCode: status, Endpoint: endpoint, Body: string(body)}
		}

		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("erro ao decodificar a resposta de %s: %w", endpoint, err)
		}

		return nil
	}

	return &salesdomain.APIError{StatusCode: http.StatusUnauthorized, Endpoint: endpoint}
}

func (c *SalesClient) productEndpoint(suffix string) string {
	return fmt.Sprintf("/product/%s/%s", c.productID, suffix)
}
