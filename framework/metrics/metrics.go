// Package metrics exposes container resolution counters to prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/upadhyeammit/smart-proxy/framework/container"
)

const namespace = "smart_proxy"

// Resolution outcomes.
const (
	ResultOK      = "ok"
	ResultError   = "error"
	ResultMissing = "missing"
)

// Registry is a prometheus registry whose metrics all carry an "app" label.
type Registry struct {
	*prometheus.Registry
	// Registerer registers collectors with the app label attached.
	Registerer prometheus.Registerer
}

// NewRegistry creates a Registry with the default process and Go collectors.
func NewRegistry(app string) *Registry {
	registry := prometheus.NewRegistry()
	registerer := prometheus.WrapRegistererWith(prometheus.Labels{"app": app}, registry)

	registerer.MustRegister(collectors.NewProcessCollector(
		collectors.ProcessCollectorOpts{Namespace: namespace},
	))
	registerer.MustRegister(collectors.NewGoCollector())

	return &Registry{Registry: registry, Registerer: registerer}
}

// Handler serves the registry in the prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.Registry, promhttp.HandlerOpts{})
}

// Observer counts resolutions per dependency name, strategy and outcome.
type Observer struct {
	resolutions *prometheus.CounterVec
}

var _ container.Observer = (*Observer)(nil)

// NewObserver creates an Observer and registers its collectors with reg.
func NewObserver(reg prometheus.Registerer) (*Observer, error) {
	o := &Observer{
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "container",
			Name:      "resolutions_total",
			Help:      "Dependency resolutions by name, strategy and result.",
		}, []string{"name", "strategy", "result"}),
	}
	if err := reg.Register(o.resolutions); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Observer) Resolved(name string, strategy container.Strategy, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	o.resolutions.WithLabelValues(name, strategy.String(), result).Inc()
}

func (o *Observer) Missed(name string) {
	o.resolutions.WithLabelValues(name, "", ResultMissing).Inc()
}

// Resolutions exposes the underlying counter, mainly for tests.
func (o *Observer) Resolutions() *prometheus.CounterVec { return o.resolutions }
