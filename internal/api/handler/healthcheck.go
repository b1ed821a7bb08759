package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}

// SystemHealth informa se há coleta hoje e se o banco responde
func SystemHealth(service Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report, err := service.Health(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao verificar saúde do sistema")
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}
