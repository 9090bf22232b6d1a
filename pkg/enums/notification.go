package enums

import "fmt"

// NotificationKind is the outcome a cart command reports to the toast collaborator.
type NotificationKind string

const (
	NotificationKindAdded    NotificationKind = "added"
	NotificationKindRejected NotificationKind = "rejected"
	NotificationKindRemoved  NotificationKind = "removed"
	NotificationKindCleared  NotificationKind = "cleared"
)

var validNotificationKinds = []NotificationKind{
	NotificationKindAdded,
	NotificationKindRejected,
	NotificationKindRemoved,
	NotificationKindCleared,
}

// String implements fmt.Stringer.
func (n NotificationKind) String() string {
	return string(n)
}

// IsValid checks whether the given kind matches the canonical enum.
func (n NotificationKind) IsValid() bool {
	for _, candidate := range validNotificationKinds {
		if candidate == n {
			return true
		}
	}
	return false
}

// ParseNotificationKind converts raw strings into NotificationKind.
func ParseNotificationKind(value string) (NotificationKind, error) {
	for _, candidate := range validNotificationKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid notification kind %q", value)
}

// RejectionReason explains why a command was refused.
type RejectionReason string

const (
	RejectionReasonOutOfStock RejectionReason = "out_of_stock"
)
