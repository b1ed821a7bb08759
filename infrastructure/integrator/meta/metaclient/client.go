package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/roi-collector-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/roi-collector-api/internal/config"
	"github.com/vfg2006/roi-collector-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// limite de páginas seguidas em uma listagem
const maxPages = 20

type Client interface {
	GetAccountSpend(ctx context.Context, accountID string) (*metadomain.SpendInsight, error)
	GetActiveCampaigns(ctx context.Context, accountID string) ([]metadomain.Campaign, error)
	GetActiveAdSets(ctx context.Context, campaignID string) ([]metadomain.AdSet, error)
}

type MetaClient struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

func NewClient(cfg *config.Config, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &MetaClient{
		baseURL:     strings.TrimRight(cfg.Meta.URL, "/"),
		accessToken: cfg.Meta.AccessToken,
		httpClient:  httpClient,
	}
}

// get executa a requisição e decodifica a resposta em out
func (c *MetaClient) get(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}

	body, status, err := utils.DoRequest(c.httpClient, req)
	if err != nil {
		return errors.Wrap(err, "erro ao fazer a requisição para o Meta")
	}

	if status != http.StatusOK {
		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			if pretty, err := utils.PrettyJson(body); err == nil {
				logrus.WithField("status", status).Debugf("Resposta de erro do Meta:\n%s", pretty)
			}
		}
		return handleErrorResponse(status, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return errors.Wrap(err, "erro ao decodificar resposta do Meta")
	}

	return nil
}

// handleErrorResponse converte o corpo de erro do Graph em GraphError
func handleErrorResponse(status int, body []byte) error {
	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Code == 0 {
		return &metadomain.GraphError{
			StatusCode: status,
			Details:    metadomain.ErrorDetails{Message: string(body)},
		}
	}

	graphErr := &metadomain.GraphError{StatusCode: status, Details: errResp.Error}
	if graphErr.TokenExpired() {
		logrus.WithFields(logrus.Fields{
			"code":    errResp.Error.Code,
			"subcode": errResp.Error.ErrorSubcode,
		}).Error("Token do Meta expirado ou inválido")
	}

	return graphErr
}

func (c *MetaClient) buildURL(path string, params url.Values) string {
	params.Set("access_token", c.accessToken)
	return fmt.Sprintf("%s/%s?%s", c.baseURL, strings.TrimLeft(path, "/"), params.Encode())
}
