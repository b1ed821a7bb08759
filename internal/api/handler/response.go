package handler

import (
	"errors"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roi-collector-api/internal/domain"
	"github.com/vfg2006/roi-collector-api/internal/usecases/collecting"
	"github.com/vfg2006/roi-collector-api/internal/usecases/configuring"
	"github.com/vfg2006/roi-collector-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// envelope é o formato das respostas de listagem e status
type envelope struct {
	Status    string    `json:"status"`
	Data      any       `json:"data"`
	Count     *int      `json:"count,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{
		Status:    "success",
		Data:      data,
		Timestamp: time.Now(),
	})
}

// writeServiceError traduz os erros dos serviços para o formato da API
func writeServiceError(w http.ResponseWriter, err error, fallbackMessage string) {
	switch {
	case errors.Is(err, domain.ErrUnknownChannel):
		apiErrors.WriteError(w, apiErrors.ErrUnknownChannel, err.Error(), nil)
	case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, configuring.ErrMappingReadOnly):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, domain.ErrLockNotAcquired):
		apiErrors.WriteError(w, apiErrors.ErrCollectionBusy, "Outra coleta está em andamento", nil)
	case domain.IsSourceUnavailable(err):
		var sourceErr *domain.SourceError
		details := map[string]string{}
		if errors.As(err, &sourceErr) {
			details["source"] = sourceErr.Source
		}
		apiErrors.WriteError(w, apiErrors.ErrCollectionFailed, err.Error(), details)
	case errors.Is(err, collecting.ErrRunBudgetExceeded):
		apiErrors.WriteError(w, apiErrors.ErrCollectionFailed, err.Error(), nil)
	default:
		logrus.WithError(err).Error(fallbackMessage)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
	}
}
