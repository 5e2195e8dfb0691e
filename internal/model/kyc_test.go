package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayKYC(t *testing.T) {
	tests := []struct {
		name    string
		status  KYCStatus
		want    KYCDisplay
		wantErr bool
	}{
		{name: "unverified maps to pending", status: KYCUnverified, want: KYCDisplayPending},
		{name: "verified maps to approved", status: KYCVerified, want: KYCDisplayApproved},
		{name: "rejected maps to rejected", status: KYCRejected, want: KYCDisplayRejected},
		{name: "unknown value fails loudly", status: KYCStatus("in_review"), wantErr: true},
		{name: "empty value fails loudly", status: KYCStatus(""), wantErr: true},
		{name: "wrong case fails loudly", status: KYCStatus("Verified"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DisplayKYC(tt.status)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKYCDisplay(t *testing.T) {
	tests := []struct {
		name    string
		display KYCDisplay
		want    KYCStatus
		wantErr bool
	}{
		{name: "pending maps to unverified", display: KYCDisplayPending, want: KYCUnverified},
		{name: "approved maps to verified", display: KYCDisplayApproved, want: KYCVerified},
		{name: "rejected maps to rejected", display: KYCDisplayRejected, want: KYCRejected},
		{name: "unknown value fails loudly", display: KYCDisplay("WAITING"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKYCDisplay(tt.display)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKYCMappingIsTotalAndBijective(t *testing.T) {
	seen := make(map[KYCDisplay]bool)

	for _, status := range AllKYCStatuses() {
		display, err := DisplayKYC(status)
		require.NoError(t, err, "every backend status must map forward")
		assert.False(t, seen[display], "two statuses must not share a display value")
		seen[display] = true

		back, err := ParseKYCDisplay(display)
		require.NoError(t, err, "every display value must map back")
		assert.Equal(t, status, back, "round trip must be the identity")
	}

	assert.Len(t, seen, len(AllKYCDisplays()))
}
