package appointment

// ===============================
// Delivery Status
// ===============================

// Status tracks a single relay attempt. Every attempt starts Pending and ends
// in exactly one terminal state; there is no resumption.
type Status string

const (
	StatusPending   Status = "pending"
	StatusDelivered Status = "delivered"
	StatusFailed    Status = "failed"
)

func InitialStatus() Status {
	return StatusPending
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusFailed
}

// Resolve moves a pending attempt to its terminal state from the delivery error.
// A terminal status is returned unchanged.
func (s Status) Resolve(deliveryErr error) Status {
	if s.Terminal() {
		return s
	}
	if deliveryErr != nil {
		return StatusFailed
	}
	return StatusDelivered
}
