package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roi-collector-api/pkg/apiErrors"
)

// DashboardSummary retorna os dados cumulativos de hoje
func DashboardSummary(service Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Today(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao obter resumo do painel")
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}

func ChannelData(service Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")
		if name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do canal é obrigatório", nil)
			return
		}

		logrus.WithField("channel", name).Debug("Consultando dados do canal")

		report, err := service.Channel(r.Context(), name)
		if err != nil {
			writeServiceError(w, err, "Erro ao obter dados do canal")
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}
