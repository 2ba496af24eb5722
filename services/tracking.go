package services

// Status names as seeded in the order_statuses lookup.
const (
	StatusNew        = "New"
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusReleasing  = "Releasing"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"
)

// ProgressStep maps a status to the customer tracking indicator
// (1..4); 0 for Cancelled or anything unknown.
func ProgressStep(status string) int {
	switch status {
	case StatusNew, StatusPending:
		return 1
	case StatusProcessing:
		return 2
	case StatusReleasing:
		return 3
	case StatusCompleted:
		return 4
	default:
		return 0
	}
}

// ProgressLabel is the display text for the current step; delivery and
// pickup word the last two steps differently.
func ProgressLabel(status, orderType string) string {
	switch status {
	case StatusNew, StatusPending:
		return "Order Received"
	case StatusProcessing:
		return "Baking"
	case StatusReleasing:
		if orderType == OrderTypeDelivery {
			return "Out for Delivery"
		}
		return "Ready for Pickup"
	case StatusCompleted:
		if orderType == OrderTypeDelivery {
			return "Delivered"
		}
		return "Picked Up"
	case StatusCancelled:
		return "Cancelled"
	default:
		return status
	}
}

// KnownStatuses lists every state an operator may set. Transitions are
// deliberately unconstrained beyond membership in this set.
func KnownStatuses() []string {
	return []string{StatusNew, StatusPending, StatusProcessing, StatusReleasing, StatusCompleted, StatusCancelled}
}

func IsKnownStatus(s string) bool {
	for _, k := range KnownStatuses() {
		if k == s {
			return true
		}
	}
	return false
}
