// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"github.com/canonical/club-access/internal/kratos"
	"github.com/canonical/club-access/internal/types"
)

var (
	ErrInvalidCredentials = kratos.ErrInvalidCredentials
	ErrIdentityExists     = kratos.ErrIdentityExists
	ErrInvalidInput       = kratos.ErrInvalidInput
	ErrSessionInvalid     = kratos.ErrSessionInvalid
)

// State is the snapshot published by the Store, IsElevated is false until the
// privilege lookup for the current identity has succeeded
type State struct {
	Identity   *types.Identity `json:"identity"`
	Loading    bool            `json:"loading"`
	IsElevated bool            `json:"is_elevated"`
}

type EventKind string

const (
	EventSignedIn       EventKind = "signed_in"
	EventSignedOut      EventKind = "signed_out"
	EventTokenRefreshed EventKind = "token_refreshed"
)

// Event is an identity change, Session is nil for EventSignedOut
type Event struct {
	Kind    EventKind
	Session *types.Session
}
