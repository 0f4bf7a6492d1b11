package models

// Milestone is one step of the visual order-status progression.
type Milestone struct {
	Status    OrderStatus `json:"status"`
	Label     string      `json:"label"`
	Completed bool        `json:"completed"`
}

// statusProgression is the fixed linear ordering of the timeline.
var statusProgression = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
}

// statusRank returns the position of s in the linear progression and whether
// s is part of it. Cancelled and unrecognized values are both outside the
// progression; callers that need to tell them apart check Valid first.
func statusRank(s OrderStatus) (int, bool) {
	for i, status := range statusProgression {
		if status == s {
			return i, true
		}
	}
	return 0, false
}

// StatusTimeline derives the milestone list for an order's current status.
// A milestone is completed when its status is the current one or strictly
// before it in the progression. The last two labels depend on the delivery
// type. Cancelled is a display fork, not a timeline position: the caller
// renders the terminal cancelled indicator instead, and this function
// returns nil for it. Unrecognized status values display as pending.
func StatusTimeline(status OrderStatus, deliveryType DeliveryType) []Milestone {
	if status == StatusCancelled {
		return nil
	}

	rank, known := statusRank(status)
	if !known {
		// An unknown value renders like a fresh order.
		rank, _ = statusRank(StatusPending)
	}

	fourthLabel, fifthLabel := "Out for delivery", "Delivered"
	if deliveryType == DeliveryTypePickup {
		fourthLabel, fifthLabel = "Ready for pickup", "Picked up"
	}
	labels := []string{"Order received", "Confirmed", "Preparing", fourthLabel, fifthLabel}

	milestones := make([]Milestone, len(statusProgression))
	for i, s := range statusProgression {
		milestones[i] = Milestone{
			Status:    s,
			Label:     labels[i],
			Completed: i <= rank,
		}
	}
	return milestones
}
