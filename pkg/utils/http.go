package utils

import (
	"fmt"
	"io"
	"net/http"
)

// DoRequest executa a requisição e devolve o corpo e o status da resposta.
// Status diferente de 2xx não é tratado aqui, fica a cargo de quem chama.
func DoRequest(client *http.Client, req *http.Request) ([]byte, int, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao executar a requisição %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	return data, resp.StatusCode, nil
}
