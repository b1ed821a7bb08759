package middleware

import (
	"net/http"
	"runtime"
	"time"

	"github.com/vfg2006/roi-collector-api/pkg/apiErrors"
	"github.com/vfg2006/roi-collector-api/pkg/log"
)

// CorrelationIDHeader devolve ao cliente o ID usado nos logs da requisição
const CorrelationIDHeader = "X-Correlation-ID"

const defaultSlowThreshold = 500 * time.Millisecond

// LoggingOptions ajusta o LoggingMiddleware
type LoggingOptions struct {
	// SlowThreshold marca a requisição como lenta; zero usa 500ms
	SlowThreshold time.Duration
	// QuietPaths não geram log (monitores consultam com frequência)
	QuietPaths []string
}

// DefaultLoggingOptions silencia healthcheck e métricas
func DefaultLoggingOptions() LoggingOptions {
	return LoggingOptions{
		SlowThreshold: defaultSlowThreshold,
		QuietPaths:    []string{"/healthcheck", "/metrics"},
	}
}

// LoggingMiddleware registra uma linha por requisição, com o nível definido pelo status
func LoggingMiddleware(opts LoggingOptions) func(http.Handler) http.Handler {
	threshold := opts.SlowThreshold
	if threshold <= 0 {
		threshold = defaultSlowThreshold
	}

	quiet := make(map[string]struct{}, len(opts.QuietPaths))
	for _, path := range opts.QuietPaths {
		quiet[path] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := quiet[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			lrw := newLoggingResponseWriter(w)
			start := time.Now()

			log.ForContext(ctx).WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"query":       r.URL.RawQuery,
				"remote_addr": r.RemoteAddr,
				"user_agent":  r.UserAgent(),
			}).Debug("Requisição recebida")

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(start)
			logger := log.ForContext(ctx).WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": lrw.statusCode,
				"duration_ms": elapsed.Milliseconds(),
			})

			switch {
			case lrw.statusCode >= http.StatusInternalServerError:
				logger.Error("Requisição finalizada com erro")
			case elapsed > threshold:
				logger.WithField("slow", true).Warnf("Requisição lenta (%s)", elapsed.Round(time.Millisecond))
			case lrw.statusCode >= http.StatusBadRequest:
				logger.Warn("Requisição recusada")
			default:
				logger.Info("Requisição finalizada")
			}
		})
	}
}

// loggingResponseWriter guarda o status enviado ao cliente
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware transforma um panic do handler em 500 no formato de erro da API
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				stack := make([]byte, 4096)
				stack = stack[:runtime.Stack(stack, false)]

				log.ForContext(r.Context()).WithFields(log.Fields{
					"error":       recovered,
					"method":      r.Method,
					"path":        r.URL.Path,
					"stack_trace": string(stack),
				}).Error("Panic ao processar a requisição")

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
