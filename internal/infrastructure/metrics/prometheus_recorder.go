// Package metrics contadores de negocio en Prometheus con registro propio.
package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/newtop/marmoleria-api/internal/application/ports"
)

const namespace = "newtop"

// PrometheusRecorder implementa ports.Recorder.
type PrometheusRecorder struct {
	registry           *prometheus.Registry
	logins             *prometheus.CounterVec
	quotesSaved        prometheus.Counter
	quoteRequests      prometheus.Counter
	inventoryMutations *prometheus.CounterVec
	quotesExpired      prometheus.Counter
}

var _ ports.Recorder = (*PrometheusRecorder)(nil)

// NewPrometheusRecorder registra los contadores y los colectores de proceso y runtime.
func NewPrometheusRecorder() *PrometheusRecorder {
	r := &PrometheusRecorder{
		registry: prometheus.NewRegistry(),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Intentos de inicio de sesión por resultado",
		}, []string{"result"}),
		quotesSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_saved_total",
			Help:      "Cotizaciones creadas o actualizadas",
		}),
		quoteRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_requests_total",
			Help:      "Solicitudes de cotización públicas recibidas",
		}),
		inventoryMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inventory_mutations_total",
			Help:      "Altas, cambios y bajas de inventario",
		}, []string{"op"}),
		quotesExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_expired_total",
			Help:      "Cotizaciones marcadas como vencidas por el job",
		}),
	}
	r.registry.MustRegister(
		r.logins, r.quotesSaved, r.quoteRequests, r.inventoryMutations, r.quotesExpired,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *PrometheusRecorder) LoginAttempt(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	r.logins.WithLabelValues(result).Inc()
}

func (r *PrometheusRecorder) QuoteSaved()           { r.quotesSaved.Inc() }
func (r *PrometheusRecorder) QuoteRequestReceived() { r.quoteRequests.Inc() }

func (r *PrometheusRecorder) InventoryMutation(op string) {
	r.inventoryMutations.WithLabelValues(op).Inc()
}

func (r *PrometheusRecorder) QuotesExpired(n int) {
	if n > 0 {
		r.quotesExpired.Add(float64(n))
	}
}

// Registry expone el registro para tests.
func (r *PrometheusRecorder) Registry() *prometheus.Registry { return r.registry }

// Handler GET /metrics en formato de exposición de Prometheus.
func (r *PrometheusRecorder) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
}
