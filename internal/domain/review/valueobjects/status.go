package valueobjects

import "fmt"

// ReviewStatus is the moderation state of a review. Reviews are
// auto-approved on submission; admins may flag or reject them afterwards.
type ReviewStatus string

const (
	StatusPending  ReviewStatus = "pending"
	StatusApproved ReviewStatus = "approved"
	StatusRejected ReviewStatus = "rejected"
	StatusFlagged  ReviewStatus = "flagged"
)

var validReviewStatuses = map[ReviewStatus]bool{
	StatusPending:  true,
	StatusApproved: true,
	StatusRejected: true,
	StatusFlagged:  true,
}

func (rs ReviewStatus) String() string {
	return string(rs)
}

func (rs ReviewStatus) IsValid() bool {
	return validReviewStatuses[rs]
}

func (rs ReviewStatus) IsApproved() bool {
	return rs == StatusApproved
}

func NewReviewStatus(s string) (ReviewStatus, error) {
	rs := ReviewStatus(s)
	if !rs.IsValid() {
		return "", fmt.Errorf("invalid review status: %s", s)
	}
	return rs, nil
}
