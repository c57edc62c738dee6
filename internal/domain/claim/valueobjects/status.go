package valueobjects

import "fmt"

type ClaimStatus string

const (
	StatusPending  ClaimStatus = "pending"
	StatusApproved ClaimStatus = "approved"
	StatusRejected ClaimStatus = "rejected"
	StatusExpired  ClaimStatus = "expired"
)

var validClaimStatuses = map[ClaimStatus]bool{
	StatusPending:  true,
	StatusApproved: true,
	StatusRejected: true,
	StatusExpired:  true,
}

// claimStatusTransitions defines the legal state machine: pending is the
// only non-terminal state, every other status is terminal.
var claimStatusTransitions = map[ClaimStatus][]ClaimStatus{
	StatusPending: {
		StatusApproved,
		StatusRejected,
		StatusExpired,
	},
	StatusApproved: {},
	StatusRejected: {},
	StatusExpired:  {},
}

func (cs ClaimStatus) String() string {
	return string(cs)
}

func (cs ClaimStatus) IsValid() bool {
	return validClaimStatuses[cs]
}

func (cs ClaimStatus) CanTransitionTo(newStatus ClaimStatus) bool {
	allowedTransitions, ok := claimStatusTransitions[cs]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (cs ClaimStatus) IsPending() bool {
	return cs == StatusPending
}

func (cs ClaimStatus) IsApproved() bool {
	return cs == StatusApproved
}

func (cs ClaimStatus) IsRejected() bool {
	return cs == StatusRejected
}

func (cs ClaimStatus) IsExpired() bool {
	return cs == StatusExpired
}

// IsTerminal reports whether no further transition is defined out of the status.
func (cs ClaimStatus) IsTerminal() bool {
	return cs.IsValid() && !cs.IsPending()
}

func NewClaimStatus(s string) (ClaimStatus, error) {
	cs := ClaimStatus(s)
	if !cs.IsValid() {
		return "", fmt.Errorf("invalid claim status: %s", s)
	}
	return cs, nil
}
