// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Errorf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
	Fatalf(string, ...interface{})
	Error(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Debug(...interface{})
	Fatal(...interface{})
	Sync() error
	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface records security relevant events in a dedicated stream
type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	AuthnLoginSuccess(identityID string)
	AuthnLoginFail(identifier string)
	AuthnLogout(identityID string)
	AuthnRegistration(identityID string)
	PrivilegeElevated(identityID string)
	AuthzFailure(subject, resource string)
}
