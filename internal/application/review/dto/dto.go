// Package dto defines request and response payloads for review operations.
package dto

import (
	"time"

	"recruitscore/internal/domain/review"
)

type SubmitReviewRequest struct {
	RatingCommunication int    `json:"rating_communication" binding:"required,min=1,max=5"`
	RatingCandidateCare int    `json:"rating_candidate_care" binding:"required,min=1,max=5"`
	RatingJobQuality    int    `json:"rating_job_quality" binding:"required,min=1,max=5"`
	RatingSpeed         int    `json:"rating_speed" binding:"required,min=1,max=5"`
	Pros                string `json:"pros"`
	Cons                string `json:"cons"`
	Summary             string `json:"summary" binding:"required"`
	ReviewerType        string `json:"reviewer_type" binding:"required,oneof=candidate hiring_manager"`
}

type UpdateReviewRequest = SubmitReviewRequest

type RespondToReviewRequest struct {
	ResponseText string `json:"response_text" binding:"required"`
}

type OwnerResponse struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	ResponseText string    `json:"response_text"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReviewResponse struct {
	ID                  uint             `json:"id"`
	CompanyID           uint             `json:"company_id"`
	UserID              uint             `json:"user_id"`
	RatingCommunication int              `json:"rating_communication"`
	RatingCandidateCare int              `json:"rating_candidate_care"`
	RatingJobQuality    int              `json:"rating_job_quality"`
	RatingSpeed         int              `json:"rating_speed"`
	OverallRating       float64          `json:"overall_rating"`
	Pros                string           `json:"pros,omitempty"`
	Cons                string           `json:"cons,omitempty"`
	Summary             string           `json:"summary"`
	ReviewerType        string           `json:"reviewer_type"`
	Status              string           `json:"status"`
	HelpfulCount        int              `json:"helpful_count"`
	Responses           []*OwnerResponse `json:"responses,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

func NewReviewResponse(r *review.Review) *ReviewResponse {
	ratings := r.Ratings()
	return &ReviewResponse{
		ID:                  r.ID(),
		CompanyID:           r.CompanyID(),
		UserID:              r.UserID(),
		RatingCommunication: ratings.Communication,
		RatingCandidateCare: ratings.CandidateCare,
		RatingJobQuality:    ratings.JobQuality,
		RatingSpeed:         ratings.Speed,
		OverallRating:       r.OverallRating(),
		Pros:                r.Pros(),
		Cons:                r.Cons(),
		Summary:             r.Summary(),
		ReviewerType:        r.ReviewerType().String(),
		Status:              r.Status().String(),
		HelpfulCount:        r.HelpfulCount(),
		CreatedAt:           r.CreatedAt(),
		UpdatedAt:           r.UpdatedAt(),
	}
}

func NewOwnerResponse(resp *review.Response) *OwnerResponse {
	return &OwnerResponse{
		ID:           resp.ID(),
		UserID:       resp.UserID(),
		ResponseText: resp.ResponseText(),
		CreatedAt:    resp.CreatedAt(),
	}
}

// NewReviewResponseList maps reviews and attaches any owner replies keyed by
// review ID.
func NewReviewResponseList(reviews []*review.Review, responses map[uint][]*review.Response) []*ReviewResponse {
	out := make([]*ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		item := NewReviewResponse(r)
		for _, resp := range responses[r.ID()] {
			item.Responses = append(item.Responses, NewOwnerResponse(resp))
		}
		out = append(out, item)
	}
	return out
}
