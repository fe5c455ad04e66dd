// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/club-access/internal/kratos"
	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/tracing"
	"github.com/canonical/club-access/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_interfaces.go -source=./interfaces.go

func TestService_HandleRegistration(t *testing.T) {
	identityID := "0b7e5a7e-8c43-4f64-9e4e-51d1d0c3f7a2"

	testCases := []struct {
		name        string
		identityID  string
		email       string
		lookup      bool
		setupMocks  func(*MockStorageInterface, *MockIdentityProviderInterface)
		expectedErr error
		wantErr     bool
	}{
		{
			name:       "success without identity lookup",
			identityID: identityID,
			email:      "coach@example.com",
			setupMocks: func(s *MockStorageInterface, _ *MockIdentityProviderInterface) {
				s.EXPECT().EnsureProfile(gomock.Any(), identityID).Return(nil)
			},
		},
		{
			name:       "success with identity lookup",
			identityID: identityID,
			lookup:     true,
			setupMocks: func(s *MockStorageInterface, i *MockIdentityProviderInterface) {
				i.EXPECT().GetIdentity(gomock.Any(), identityID).Return(&types.Identity{ID: identityID, Email: "coach@example.com"}, nil)
				s.EXPECT().EnsureProfile(gomock.Any(), identityID).Return(nil)
			},
		},
		{
			name:       "error - identity unknown to the provider",
			identityID: identityID,
			lookup:     true,
			setupMocks: func(_ *MockStorageInterface, i *MockIdentityProviderInterface) {
				i.EXPECT().GetIdentity(gomock.Any(), identityID).Return(nil, kratos.ErrIdentityNotFound)
			},
			expectedErr: ErrUnknownIdentity,
		},
		{
			name:       "error - identity provider failure",
			identityID: identityID,
			lookup:     true,
			setupMocks: func(_ *MockStorageInterface, i *MockIdentityProviderInterface) {
				i.EXPECT().GetIdentity(gomock.Any(), identityID).Return(nil, errors.New("kratos down"))
			},
			wantErr: true,
		},
		{
			name:        "error - empty identity id",
			identityID:  "",
			lookup:      true,
			setupMocks:  func(*MockStorageInterface, *MockIdentityProviderInterface) {},
			expectedErr: ErrMissingIdentity,
		},
		{
			name:       "error - storage failure",
			identityID: identityID,
			email:      "coach@example.com",
			setupMocks: func(s *MockStorageInterface, _ *MockIdentityProviderInterface) {
				s.EXPECT().EnsureProfile(gomock.Any(), identityID).Return(errors.New("storage error"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockStorage := NewMockStorageInterface(ctrl)
			mockIdentities := NewMockIdentityProviderInterface(ctrl)
			tc.setupMocks(mockStorage, mockIdentities)

			var identities IdentityProviderInterface
			if tc.lookup {
				identities = mockIdentities
			}

			s := NewService(mockStorage, identities, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			err := s.HandleRegistration(context.Background(), tc.identityID, tc.email)

			switch {
			case tc.expectedErr != nil:
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected %v, got %v", tc.expectedErr, err)
				}
			case tc.wantErr:
				if err == nil {
					t.Error("expected error but got none")
				}
			default:
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}
