// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

const (
	OWNER_RELATION = "owner"
	ADMIN_RELATION = "admin"
)

func UserTuple(userId string) string {
	return "user:" + userId
}

func TenantTuple(tenantId string) string {
	return "tenant:" + tenantId
}

func PrivilegedTuple(privilegedId string) string {
	return "privileged:" + privilegedId
}
