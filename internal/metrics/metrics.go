// Package metrics expõe as métricas Prometheus da coleta de ROI
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

const namespace = "roi"

// Métricas da execução da coleta
var (
	// CollectionRunsTotal total de coletas por status
	CollectionRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collection_runs_total",
			Help:      "Total de coletas executadas",
		},
		[]string{"status"}, // status: success, degraded, error
	)

	// CollectionDuration duração de cada coleta
	CollectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "collection_duration_seconds",
			Help:      "Duração da coleta (segundos)",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		},
	)

	// SourceFetchDuration duração das chamadas às fontes externas
	SourceFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "source_fetch_duration_seconds",
			Help:      "Duração das chamadas às fontes externas (segundos)",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20},
		},
		[]string{"source"}, // source: sales, affiliates, meta
	)

	// MalformedValuesTotal valores ilegíveis tratados como zero
	MalformedValuesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "malformed_values_total",
			Help:      "Valores numéricos ilegíveis tratados como zero",
		},
		[]string{"source"},
	)

	// MappingFallbackTotal vezes em que o mapeamento fixo foi usado
	MappingFallbackTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mapping_fallback_total",
			Help:      "Vezes em que o mapeamento de canais fixo foi usado",
		},
	)
)

// Métricas do último resultado por canal
var (
	ChannelROI = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "channel_roi",
			Help:      "ROI do canal na última coleta",
		},
		[]string{"channel"},
	)

	ChannelSales = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "channel_sales",
			Help:      "Vendas do canal na última coleta",
		},
		[]string{"channel"},
	)
)

// RecordMalformed incrementa o contador de valores malformados da fonte
func RecordMalformed(source string) {
	MalformedValuesTotal.WithLabelValues(source).Inc()
}

// RecordChannel atualiza os gauges de um canal
func RecordChannel(channel string, roi decimal.Decimal, sales decimal.Decimal) {
	ChannelROI.WithLabelValues(channel).Set(roi.InexactFloat64())
	ChannelSales.WithLabelValues(channel).Set(sales.InexactFloat64())
}
