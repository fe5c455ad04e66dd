// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// RegistrationPayload is the body the after-registration webhook of Kratos is
// configured to send
type RegistrationPayload struct {
	Identity KratosIdentity `json:"identity" validate:"required"`
}

type KratosIdentity struct {
	ID     string       `json:"id" validate:"required,uuid"`
	Traits KratosTraits `json:"traits"`
}

type KratosTraits struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
