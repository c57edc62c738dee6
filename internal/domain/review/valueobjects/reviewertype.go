package valueobjects

import "fmt"

// ReviewerType records the reviewer's relationship to the company.
type ReviewerType string

const (
	ReviewerCandidate     ReviewerType = "candidate"
	ReviewerHiringManager ReviewerType = "hiring_manager"
)

func (rt ReviewerType) String() string {
	return string(rt)
}

func (rt ReviewerType) IsValid() bool {
	return rt == ReviewerCandidate || rt == ReviewerHiringManager
}

func NewReviewerType(s string) (ReviewerType, error) {
	rt := ReviewerType(s)
	if !rt.IsValid() {
		return "", fmt.Errorf("invalid reviewer type: %s", s)
	}
	return rt, nil
}
