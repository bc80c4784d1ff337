// Copyright (c) 2024 The OriginByte developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "originmate_metrics"

// InitializePrometheusMetrics creates a new instance of the Prometheus
// service and sets the implementation as the default metrics service.
func InitializePrometheusMetrics() {
	// don't allow for reset
	if _, ok := metrics.(*prometheusMetrics); !ok {
		metrics = newPrometheusMetrics()
	}
}

type prometheusMetrics struct {
	counters    sync.Map
	counterVecs sync.Map
	gauges      sync.Map
}

func newPrometheusMetrics() Metrics {
	return &prometheusMetrics{}
}

func (p *prometheusMetrics) GetOrCreateCountMeter(name string) CountMeter {
	meter := &promCountMeter{
		counter: prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: name}),
	}
	if m, loaded := p.counters.LoadOrStore(name, meter); loaded {
		return m.(CountMeter)
	}
	prometheus.MustRegister(meter.counter)
	return meter
}

func (p *prometheusMetrics) GetOrCreateCountVecMeter(name string, labels []string) CountVecMeter {
	meter := &promCountVecMeter{
		vec: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: name}, labels),
	}
	if m, loaded := p.counterVecs.LoadOrStore(name, meter); loaded {
		return m.(CountVecMeter)
	}
	prometheus.MustRegister(meter.vec)
	return meter
}

func (p *prometheusMetrics) GetOrCreateGaugeMeter(name string) GaugeMeter {
	meter := &promGaugeMeter{
		gauge: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: name}),
	}
	if m, loaded := p.gauges.LoadOrStore(name, meter); loaded {
		return m.(GaugeMeter)
	}
	prometheus.MustRegister(meter.gauge)
	return meter
}

func (p *prometheusMetrics) GetOrCreateHandler() http.Handler {
	return promhttp.Handler()
}

type promCountMeter struct {
	counter prometheus.Counter
}

func (m *promCountMeter) Add(i int64) {
	m.counter.Add(float64(i))
}

type promCountVecMeter struct {
	vec *prometheus.CounterVec
}

func (m *promCountVecMeter) AddWithLabel(i int64, labels map[string]string) {
	m.vec.With(labels).Add(float64(i))
}

type promGaugeMeter struct {
	gauge prometheus.Gauge
}

func (m *promGaugeMeter) Add(i int64) {
	m.gauge.Add(float64(i))
}

func (m *promGaugeMeter) Set(i int64) {
	m.gauge.Set(float64(i))
}
