// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime           *prometheus.HistogramVec
	dependencyAvailability *prometheus.GaugeVec
	accessDecisions        *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.responseTime.With(tags).Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencyAvailability == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencyAvailability.With(tags).Set(value)

	return nil
}

func (m *Monitor) IncAccessDecision(tags map[string]string) error {
	if m.accessDecisions == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.accessDecisions.With(tags).Inc()

	return nil
}

func (m *Monitor) registerHistograms() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_response_time_seconds",
			Help:        "http_response_time_seconds",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"route", "status"},
	)

	m.registerOrWarn(m.responseTime)
}

func (m *Monitor) registerGauges() {
	m.dependencyAvailability = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "dependency_available",
			Help:        "dependency_available",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"component"},
	)

	m.registerOrWarn(m.dependencyAvailability)
}

func (m *Monitor) registerCounters() {
	m.accessDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "route_gate_decisions_total",
			Help:        "route gate decisions by outcome",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"decision"},
	)

	m.registerOrWarn(m.accessDecisions)
}

func (m *Monitor) registerOrWarn(c prometheus.Collector) {
	if err := prometheus.Register(c); err != nil {
		m.logger.Warnf("metric already registered: %v", err)
	}
}

// NewMonitor creates a new prometheus backed monitor registering its metrics
// on the default registry
func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()
	m.registerCounters()

	return m
}
