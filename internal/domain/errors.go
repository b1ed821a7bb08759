package domain

import (
	"errors"
	"fmt"
)

var (
	// Falha de autenticação ou status diferente de sucesso em uma fonte externa
	ErrSourceUnavailable = errors.New("fonte de dados indisponível")

	// Valor numérico ilegível em um registro
	ErrMalformedData = errors.New("dado malformado")

	// Mapeamento de canais indisponível
	ErrConfigurationMissing = errors.New("configuração ausente")

	ErrUnknownChannel  = errors.New("canal desconhecido")
	ErrInvalidRequest  = errors.New("requisição inválida")
	ErrLockNotAcquired = errors.New("não foi possível obter o lock da coleta")
)

// SourceError identifica qual fonte falhou durante a coleta
type SourceError struct {
	Source string // sales, affiliates, meta
	Err    error
}

func NewSourceError(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err}
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s (%s): %v", ErrSourceUnavailable.Error(), e.Source, e.Err)
}

// Unwrap retorna o erro original
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is faz o SourceError se comportar como ErrSourceUnavailable
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// IsSourceUnavailable verifica se o erro veio de uma fonte externa
func IsSourceUnavailable(err error) bool {
	return errors.Is(err, ErrSourceUnavailable)
}
