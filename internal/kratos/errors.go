// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrIdentityExists     = errors.New("an account with this email already exists")
	ErrSessionInvalid     = errors.New("session is not valid")
	ErrInvalidInput       = errors.New("invalid input")
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrAdminUnavailable   = errors.New("kratos admin api is not configured")
)
