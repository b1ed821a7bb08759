package salesdomain

import (
	"errors"
	"fmt"
)

var ErrLoginFailed = errors.New("falha na autenticação da plataforma de vendas")

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// APIError representa uma resposta diferente de 200 da plataforma
type APIError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("plataforma de vendas: %s respondeu %d: %s", e.Endpoint, e.StatusCode, e.Body)
}
