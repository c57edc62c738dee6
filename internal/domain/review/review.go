package review

import (
	"fmt"
	"math"
	"strings"
	"time"

	vo "recruitscore/internal/domain/review/valueobjects"
)

// Ratings holds the four 1-5 category scores of a review.
type Ratings struct {
	Communication int
	CandidateCare int
	JobQuality    int
	Speed         int
}

// Validate checks every category score is within 1-5.
func (r Ratings) Validate() error {
	for name, score := range map[string]int{
		"communication":  r.Communication,
		"candidate care": r.CandidateCare,
		"job quality":    r.JobQuality,
		"speed":          r.Speed,
	} {
		if score < 1 || score > 5 {
			return fmt.Errorf("%s rating must be between 1 and 5", name)
		}
	}
	return nil
}

// Overall is the mean of the four category scores, rounded to one decimal.
func (r Ratings) Overall() float64 {
	sum := r.Communication + r.CandidateCare + r.JobQuality + r.Speed
	return math.Round(float64(sum)/4*10) / 10
}

// Review is one user's rated account of working with a company. A user may
// review a company at most once.
type Review struct {
	id            uint
	companyID     uint
	userID        uint
	ratings       Ratings
	overallRating float64
	pros          string
	cons          string
	summary       string
	reviewerType  vo.ReviewerType
	status        vo.ReviewStatus
	helpfulCount  int
	createdAt     time.Time
	updatedAt     time.Time
}

// NewReview creates an approved review; moderation is reactive, so reviews
// go live immediately and admins can reject or flag them later.
func NewReview(
	companyID, userID uint,
	ratings Ratings,
	pros, cons, summary string,
	reviewerType vo.ReviewerType,
) (*Review, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if err := ratings.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(summary) == "" {
		return nil, fmt.Errorf("summary is required")
	}
	if !reviewerType.IsValid() {
		return nil, fmt.Errorf("invalid reviewer type")
	}

	now := time.Now()

	return &Review{
		companyID:     companyID,
		userID:        userID,
		ratings:       ratings,
		overallRating: ratings.Overall(),
		pros:          pros,
		cons:          cons,
		summary:       strings.TrimSpace(summary),
		reviewerType:  reviewerType,
		status:        vo.StatusApproved,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructReview(
	id uint,
	companyID, userID uint,
	ratings Ratings,
	overallRating float64,
	pros, cons, summary string,
	reviewerType vo.ReviewerType,
	status vo.ReviewStatus,
	helpfulCount int,
	createdAt, updatedAt time.Time,
) (*Review, error) {
	if id == 0 {
		return nil, fmt.Errorf("review ID cannot be zero")
	}
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !reviewerType.IsValid() {
		return nil, fmt.Errorf("invalid reviewer type")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid review status")
	}

	return &Review{
		id:            id,
		companyID:     companyID,
		userID:        userID,
		ratings:       ratings,
		overallRating: overallRating,
		pros:          pros,
		cons:          cons,
		summary:       summary,
		reviewerType:  reviewerType,
		status:        status,
		helpfulCount:  helpfulCount,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (r *Review) ID() uint {
	return r.id
}

func (r *Review) CompanyID() uint {
	return r.companyID
}

func (r *Review) UserID() uint {
	return r.userID
}

func (r *Review) Ratings() Ratings {
	return r.ratings
}

func (r *Review) OverallRating() float64 {
	return r.overallRating
}

func (r *Review) Pros() string {
	return r.pros
}

func (r *Review) Cons() string {
	return r.cons
}

func (r *Review) Summary() string {
	return r.summary
}

func (r *Review) ReviewerType() vo.ReviewerType {
	return r.reviewerType
}

func (r *Review) Status() vo.ReviewStatus {
	return r.status
}

func (r *Review) HelpfulCount() int {
	return r.helpfulCount
}

func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Review) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("review ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("review ID cannot be zero")
	}
	r.id = id
	return nil
}

// IsAuthoredBy reports whether the given user wrote the review.
func (r *Review) IsAuthoredBy(userID uint) bool {
	return r.userID == userID
}

// UpdateContent replaces ratings and text; the overall rating is
// recomputed from the new scores.
func (r *Review) UpdateContent(ratings Ratings, pros, cons, summary string, reviewerType vo.ReviewerType) error {
	if err := ratings.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(summary) == "" {
		return fmt.Errorf("summary is required")
	}
	if !reviewerType.IsValid() {
		return fmt.Errorf("invalid reviewer type")
	}

	r.ratings = ratings
	r.overallRating = ratings.Overall()
	r.pros = pros
	r.cons = cons
	r.summary = strings.TrimSpace(summary)
	r.reviewerType = reviewerType
	r.updatedAt = time.Now()
	return nil
}

// ChangeStatus applies an admin moderation decision.
func (r *Review) ChangeStatus(newStatus vo.ReviewStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid review status: %s", newStatus)
	}

	r.status = newStatus
	r.updatedAt = time.Now()
	return nil
}

// MarkHelpful increments the helpful vote counter.
func (r *Review) MarkHelpful() {
	r.helpfulCount++
	r.updatedAt = time.Now()
}
