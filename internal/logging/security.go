// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	eventSystemStartup     = "sys_startup"
	eventSystemShutdown    = "sys_shutdown"
	eventLoginSuccess      = "authn_login_success"
	eventLoginFail         = "authn_login_fail"
	eventLogout            = "authn_logout"
	eventRegistration      = "authn_register"
	eventPrivilegeElevated = "authz_admin"
	eventAuthzFailure      = "authz_fail"
)

// SecurityLogger emits events loosely following the OWASP logging vocabulary
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) event(name string, fields ...zap.Field) {
	s.l.Info(name, append(fields, zap.String("type", "security"))...)
}

func (s *SecurityLogger) SystemStartup() {
	s.event(eventSystemStartup)
}

func (s *SecurityLogger) SystemShutdown() {
	s.event(eventSystemShutdown)
}

func (s *SecurityLogger) AuthnLoginSuccess(identityID string) {
	s.event(eventLoginSuccess, zap.String("identity_id", identityID))
}

func (s *SecurityLogger) AuthnLoginFail(identifier string) {
	s.event(eventLoginFail, zap.String("identifier", identifier))
}

func (s *SecurityLogger) AuthnLogout(identityID string) {
	s.event(eventLogout, zap.String("identity_id", identityID))
}

func (s *SecurityLogger) AuthnRegistration(identityID string) {
	s.event(eventRegistration, zap.String("identity_id", identityID))
}

func (s *SecurityLogger) PrivilegeElevated(identityID string) {
	s.event(eventPrivilegeElevated, zap.String("identity_id", identityID))
}

func (s *SecurityLogger) AuthzFailure(subject, resource string) {
	s.event(eventAuthzFailure, zap.String("subject", subject), zap.String("resource", resource))
}

func newSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l}
}
