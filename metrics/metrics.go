// Copyright (c) 2024 The OriginByte developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package metrics provides an opt-in telemetry singleton. Meters default
// to a no-op implementation; call InitializePrometheusMetrics at startup
// to publish real values.
package metrics

import (
	"net/http"
	"sync"
)

// metrics is the process-wide meter factory. Defaults to no-op so that
// library code can instrument unconditionally.
var metrics Metrics = noopMetrics{}

// Metrics defines the interface metrics service implementations provide.
type Metrics interface {
	GetOrCreateCountMeter(name string) CountMeter
	GetOrCreateCountVecMeter(name string, labels []string) CountVecMeter
	GetOrCreateGaugeMeter(name string) GaugeMeter
	GetOrCreateHandler() http.Handler
}

// HTTPHandler returns the http handler for retrieving metrics.
func HTTPHandler() http.Handler {
	return metrics.GetOrCreateHandler()
}

// CountMeter is a cumulative metric that represents a single monotonically
// increasing counter.
type CountMeter interface {
	Add(int64)
}

func Counter(name string) CountMeter { return metrics.GetOrCreateCountMeter(name) }

// CountVecMeter same as CountMeter but with labels.
type CountVecMeter interface {
	AddWithLabel(int64, map[string]string)
}

func CounterVec(name string, labels []string) CountVecMeter {
	return metrics.GetOrCreateCountVecMeter(name, labels)
}

// GaugeMeter is a metric that represents a single numeric value, which can
// arbitrarily go up and down.
type GaugeMeter interface {
	Add(int64)
	Set(int64)
}

func Gauge(name string) GaugeMeter {
	return metrics.GetOrCreateGaugeMeter(name)
}

// LazyLoad defers the instantiation of a meter while allowing its
// package-wide definition, so the implementation selected at startup is
// the one the meter binds to.
func LazyLoad[T any](f func() T) func() T {
	var result T
	var once sync.Once
	return func() T {
		once.Do(func() {
			result = f()
		})
		return result
	}
}

func LazyLoadCounter(name string) func() CountMeter {
	return LazyLoad(func() CountMeter {
		return Counter(name)
	})
}

func LazyLoadCounterVec(name string, labels []string) func() CountVecMeter {
	return LazyLoad(func() CountVecMeter {
		return CounterVec(name, labels)
	})
}

type noopMetrics struct{}

func (noopMetrics) GetOrCreateCountMeter(string) CountMeter                 { return noopMeter{} }
func (noopMetrics) GetOrCreateCountVecMeter(string, []string) CountVecMeter { return noopMeter{} }
func (noopMetrics) GetOrCreateGaugeMeter(string) GaugeMeter                 { return noopMeter{} }
func (noopMetrics) GetOrCreateHandler() http.Handler                        { return http.NotFoundHandler() }

type noopMeter struct{}

func (noopMeter) Add(int64)                             {}
func (noopMeter) Set(int64)                             {}
func (noopMeter) AddWithLabel(int64, map[string]string) {}
