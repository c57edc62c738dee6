package review

import (
	"fmt"
	"strings"
	"time"
)

// Response is a company owner's public reply to a review.
type Response struct {
	id           uint
	reviewID     uint
	userID       uint
	responseText string
	createdAt    time.Time
}

func NewResponse(reviewID, userID uint, responseText string) (*Response, error) {
	if reviewID == 0 {
		return nil, fmt.Errorf("review ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if strings.TrimSpace(responseText) == "" {
		return nil, fmt.Errorf("response text is required")
	}

	return &Response{
		reviewID:     reviewID,
		userID:       userID,
		responseText: strings.TrimSpace(responseText),
		createdAt:    time.Now(),
	}, nil
}

func ReconstructResponse(id, reviewID, userID uint, responseText string, createdAt time.Time) (*Response, error) {
	if id == 0 {
		return nil, fmt.Errorf("response ID cannot be zero")
	}
	if reviewID == 0 {
		return nil, fmt.Errorf("review ID is required")
	}

	return &Response{
		id:           id,
		reviewID:     reviewID,
		userID:       userID,
		responseText: responseText,
		createdAt:    createdAt,
	}, nil
}

func (r *Response) ID() uint {
	return r.id
}

func (r *Response) ReviewID() uint {
	return r.reviewID
}

func (r *Response) UserID() uint {
	return r.userID
}

func (r *Response) ResponseText() string {
	return r.responseText
}

func (r *Response) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Response) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("response ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("response ID cannot be zero")
	}
	r.id = id
	return nil
}
