package enums

import "fmt"

// NotificationKind labels entries in the operational feed.
type NotificationKind string

const (
	NotificationKindOrderCreated       NotificationKind = "order_created"
	NotificationKindOrderStatusChanged NotificationKind = "order_status_changed"
)

var validNotificationKinds = []NotificationKind{
	NotificationKindOrderCreated,
	NotificationKindOrderStatusChanged,
}

// String implements fmt.Stringer.
func (k NotificationKind) String() string {
	return string(k)
}

// IsValid reports whether the value is a known NotificationKind.
func (k NotificationKind) IsValid() bool {
	for _, candidate := range validNotificationKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseNotificationKind converts raw input into a NotificationKind.
func ParseNotificationKind(value string) (NotificationKind, error) {
	k := NotificationKind(value)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid notification kind %q", value)
	}
	return k, nil
}
