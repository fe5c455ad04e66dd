// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

type NoopMonitor struct {
	service string
}

func (m *NoopMonitor) GetService() string {
	return m.service
}

func (m *NoopMonitor) SetResponseTimeMetric(map[string]string, float64) error {
	return nil
}

func (m *NoopMonitor) SetDependencyAvailability(map[string]string, float64) error {
	return nil
}

func (m *NoopMonitor) IncAccessDecision(map[string]string) error {
	return nil
}

func NewNoopMonitor(service string) *NoopMonitor {
	return &NoopMonitor{service: service}
}
