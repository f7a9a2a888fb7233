package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sarchlab/srlatch/latch"
	"github.com/sarchlab/srlatch/plc"
	"github.com/sarchlab/srlatch/sim/hooking"
	"github.com/sarchlab/srlatch/sim/timing"
)

// Metrics exports the cycles of the monitored controllers in the Prometheus
// text format.
type Metrics struct {
	registry *prometheus.Registry

	cycles  *prometheus.CounterVec
	coerced *prometheus.CounterVec
	sr      *prometheus.GaugeVec
}

// NewMetrics creates the collectors in a registry of their own.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		cycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "srlatch",
			Name:      "cycles_total",
			Help:      "Finished latch cycles by the branch of the rule taken",
		}, []string{"component", "action"}),
		coerced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "srlatch",
			Name:      "coerced_inputs_total",
			Help:      "Button readings replaced by 0",
		}, []string{"component"}),
		sr: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "srlatch",
			Name:      "sr",
			Help:      "Latch output after the last cycle",
		}, []string{"component"}),
	}

	m.registry.MustRegister(m.cycles, m.coerced, m.sr)

	return m
}

// Func updates the collectors with a finished cycle.
func (m *Metrics) Func(ctx hooking.HookCtx) {
	if ctx.Pos != plc.HookPosCycleEnd {
		return
	}

	record, ok := ctx.Item.(plc.CycleRecord)
	if !ok {
		return
	}

	mode, err := latch.ParseMode(record.Mode)
	if err != nil {
		return
	}

	component := "?"
	if named, ok := ctx.Domain.(timing.Named); ok {
		component = named.Name()
	}

	action := mode.Classify(record.Button, record.Cycle)
	m.cycles.WithLabelValues(component, string(action)).Inc()
	m.sr.WithLabelValues(component).Set(float64(record.SR))

	if record.Coerced {
		m.coerced.WithLabelValues(component).Inc()
	}
}

// Handler serves the collectors.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
