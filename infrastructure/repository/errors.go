package repository

import (
	"fmt"

	"github.com/lib/pq"
)

// wrapExecError padroniza os erros de execução, incluindo o código do postgres
func wrapExecError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}
