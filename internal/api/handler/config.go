package handler

import (
	"net/http"

	"github.com/vfg2006/roi-collector-api/internal/domain"
	"github.com/vfg2006/roi-collector-api/pkg/apiErrors"
)

func GetConfig(service ConfigManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		settings, err := service.GetConfig(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao obter configuração")
			return
		}

		writeData(w, settings)
	})
}

// UpdateConfig altera as metas da campanha e o mapeamento de canais
func UpdateConfig(service ConfigManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateSettingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		settings, err := service.UpdateConfig(r.Context(), req)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar configuração")
			return
		}

		writeData(w, settings)
	})
}
