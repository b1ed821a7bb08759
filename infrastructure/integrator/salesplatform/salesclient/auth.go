package salesclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	salesdomain "github.com/vfg2006/roi-collector-api/infrastructure/integrator/salesplatform/domain"
	"github.com/vfg2006/roi-collector-api/pkg/utils"
)

const (
	// margem antes da expiração em que o token é renovado
	tokenRenewMargin = time.Minute

	// validade assumida quando o token não traz exp
	defaultTokenTTL = 10 * time.Minute
)

// accessToken reaproveita o token enquanto ele for válido
func (c *SalesClient) accessToken(ctx context.Context) (string, error) {
	c.tokenMutex.Lock()
	defer c.tokenMutex.Unlock()

	if c.token != "" && c.now().Before(c.tokenExpiresAt) {
		return c.token, nil
	}

	token, err := c.login(ctx)
	if err != nil {
		return "", err
	}

	c.token = token
	c.tokenExpiresAt = tokenExpiry(token, c.now())

	return token, nil
}

func (c *SalesClient) invalidateToken() {
	c.tokenMutex.Lock()
	defer c.tokenMutex.Unlock()

	c.token = ""
	c.tokenExpiresAt = time.Time{}
}

func (c *SalesClient) login(ctx context.Context) (string, error) {
	payload, err := json.Marshal(salesdomain.LoginRequest{Email: c.email, Password: c.password})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("erro ao criar a requisição de login: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	body, status, err := utils.DoRequest(c.httpClient, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", salesdomain.ErrLoginFailed, err)
	}

	if status != http.StatusOK {
		logrus.WithField("status_code", status).Error("Erro ao obter token da plataforma de vendas")
		return "", fmt.Errorf("%w: status %d", salesdomain.ErrLoginFailed, status)
	}

	var response salesdomain.LoginResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("%w: %v", salesdomain.ErrLoginFailed, err)
	}

	if response.AccessToken == "" {
		return "", fmt.Errorf("%w: accessToken não encontrado na resposta", salesdomain.ErrLoginFailed)
	}

	logrus.Debug("Token da plataforma de vendas obtido com sucesso")

	return response.AccessToken, nil
}

// tokenExpiry lê o exp do JWT sem validar a assinatura
func tokenExpiry(token string, now time.Time) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return now.Add(defaultTokenTTL)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return now.Add(defaultTokenTTL)
	}

	return exp.Time.Add(-tokenRenewMargin)
}
