package model

type ReturnStatus string

const (
	ReturnPending  ReturnStatus = "Pending"
	ReturnApproved ReturnStatus = "Approved"
	ReturnShipped  ReturnStatus = "Shipped"
	ReturnRefunded ReturnStatus = "Refunded"
	ReturnRejected ReturnStatus = "Rejected"
)

var returnTransitions = map[ReturnStatus][]ReturnStatus{
	ReturnPending:  {ReturnApproved, ReturnRejected},
	ReturnApproved: {ReturnShipped, ReturnRefunded},
	ReturnShipped:  {ReturnRefunded},
}

func (s ReturnStatus) CanTransitionTo(to ReturnStatus) bool {
	for _, t := range returnTransitions[s] {
		if t == to {
			return true
		}
	}
	return false
}

type ReturnRequest struct {
	Meta
	OrderID   string       `json:"order_id"`
	Reason    string       `json:"reason"`
	Status    ReturnStatus `json:"status"`
	PickupAWB string       `json:"pickup_awb,omitempty"`
}

// ReplacementRequest follows the same lifecycle as a return but ships a
// replacement instead of refunding.
type ReplacementRequest struct {
	Meta
	OrderID   string       `json:"order_id"`
	Reason    string       `json:"reason"`
	Status    ReturnStatus `json:"status"`
	PickupAWB string       `json:"pickup_awb,omitempty"`
}
