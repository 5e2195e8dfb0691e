package model

import "fmt"

// KYCStatus is the backend's vocabulary for identity verification state.
type KYCStatus string

const (
	// KYCUnverified means verification has not happened yet.
	KYCUnverified KYCStatus = "unverified"
	// KYCVerified means the user's identity has been approved.
	KYCVerified KYCStatus = "verified"
	// KYCRejected means verification was refused.
	KYCRejected KYCStatus = "rejected"
)

// KYCDisplay is the admin console's vocabulary for the same states.
type KYCDisplay string

const (
	// KYCDisplayPending is shown for unverified users.
	KYCDisplayPending KYCDisplay = "PENDING"
	// KYCDisplayApproved is shown for verified users.
	KYCDisplayApproved KYCDisplay = "APPROVED"
	// KYCDisplayRejected is shown for rejected users.
	KYCDisplayRejected KYCDisplay = "REJECTED"
)

// The two vocabularies are small and fixed, so the mapping is kept total in
// both directions and any value outside it fails loudly instead of silently
// defaulting.

// DisplayKYC maps a backend status to its display form.
func DisplayKYC(s KYCStatus) (KYCDisplay, error) {
	switch s {
	case KYCUnverified:
		return KYCDisplayPending, nil
	case KYCVerified:
		return KYCDisplayApproved, nil
	case KYCRejected:
		return KYCDisplayRejected, nil
	default:
		return "", fmt.Errorf("unmapped KYC status %q", s)
	}
}

// ParseKYCDisplay maps a display form back to the backend status.
func ParseKYCDisplay(d KYCDisplay) (KYCStatus, error) {
	switch d {
	case KYCDisplayPending:
		return KYCUnverified, nil
	case KYCDisplayApproved:
		return KYCVerified, nil
	case KYCDisplayRejected:
		return KYCRejected, nil
	default:
		return "", fmt.Errorf("unmapped KYC display value %q", d)
	}
}

// AllKYCStatuses lists every backend status; used for filters and for
// exhaustiveness checks in tests.
func AllKYCStatuses() []KYCStatus {
	return []KYCStatus{KYCUnverified, KYCVerified, KYCRejected}
}

// AllKYCDisplays lists every display value.
func AllKYCDisplays() []KYCDisplay {
	return []KYCDisplay{KYCDisplayPending, KYCDisplayApproved, KYCDisplayRejected}
}
