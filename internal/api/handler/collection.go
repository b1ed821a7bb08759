package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/roi-collector-api/internal/usecases/reporting"
	"github.com/vfg2006/roi-collector-api/pkg/apiErrors"
	"github.com/vfg2006/roi-collector-api/pkg/log"
)

const defaultHistoryDays = 7

func CollectionStatus(service Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status, err := service.Status(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao obter status das coletas")
			return
		}

		writeData(w, status)
	})
}

// CollectionHistory lista as coletas dos últimos dias, da mais recente para a mais antiga
func CollectionHistory(service Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		days := defaultHistoryDays
		if raw := r.URL.Query().Get("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < reporting.MinHistoryDays || parsed > reporting.MaxHistoryDays {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "days deve ser um número entre 1 e 90", nil)
				return
			}
			days = parsed
		}

		history, err := service.History(r.Context(), days)
		if err != nil {
			writeServiceError(w, err, "Erro ao obter histórico de coletas")
			return
		}

		count := len(history)
		writeJSON(w, http.StatusOK, envelope{
			Status:    "success",
			Data:      history,
			Count:     &count,
			Timestamp: time.Now(),
		})
	})
}

// ExecuteCollection roda uma coleta e responde com o resultado gravado
func ExecuteCollection(service CollectionRunner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("Coleta manual solicitada")

		result, err := service.Collect(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro na execução da coleta")
			return
		}

		totals := result.Snapshot.Result.Totals
		writeJSON(w, http.StatusOK, map[string]any{
			"status":      result.Log.Status,
			"message":     result.Log.Message,
			"run_id":      result.RunID,
			"snapshot_id": result.Snapshot.ID,
			"data": map[string]any{
				"roi":      totals.ROI,
				"sales":    totals.Sales,
				"spend":    totals.Spend,
				"channels": len(result.Snapshot.Result.Channels),
			},
			"timestamp": result.Snapshot.CollectedAt(),
		})
	})
}
