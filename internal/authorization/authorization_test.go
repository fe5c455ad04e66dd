// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go

func TestAuthorizer_AssignTenantOwner(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockAuthzClientInterface)
		expectedErr bool
	}{
		{
			name: "success",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().WriteTuple(gomock.Any(), "user:user-1", OWNER_RELATION, "tenant:tenant-1").Return(nil)
			},
		},
		{
			name: "error - client error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().WriteTuple(gomock.Any(), "user:user-1", OWNER_RELATION, "tenant:tenant-1").Return(errors.New("client error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			tc.setupMocks(mockClient)

			a := NewAuthorizer(mockClient, "global", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			err := a.AssignTenantOwner(context.Background(), "tenant-1", "user-1")

			if tc.expectedErr && err == nil {
				t.Error("expected error but got none")
			}
			if !tc.expectedErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAuthorizer_GetUserRoleStatus(t *testing.T) {
	testCases := []struct {
		name          string
		setupMocks    func(*MockAuthzClientInterface)
		expectedAdmin bool
		expectedErr   bool
	}{
		{
			name: "privileged admin",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), "user:user-1", ADMIN_RELATION, "privileged:global").Return(true, nil)
			},
			expectedAdmin: true,
		},
		{
			name: "regular user",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), "user:user-1", ADMIN_RELATION, "privileged:global").Return(false, nil)
			},
		},
		{
			name: "error - client error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), "user:user-1", ADMIN_RELATION, "privileged:global").Return(false, errors.New("unreachable"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			tc.setupMocks(mockClient)

			a := NewAuthorizer(mockClient, "global", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			status, err := a.GetUserRoleStatus(context.Background(), "user-1")

			if tc.expectedErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if status != nil {
					t.Errorf("expected nil status, got %+v", status)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if status.IsSuperAdmin != tc.expectedAdmin {
				t.Errorf("expected IsSuperAdmin %v, got %v", tc.expectedAdmin, status.IsSuperAdmin)
			}
		})
	}
}
