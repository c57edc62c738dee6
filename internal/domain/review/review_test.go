package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "recruitscore/internal/domain/review/valueobjects"
)

func validRatings() Ratings {
	return Ratings{Communication: 4, CandidateCare: 5, JobQuality: 4, Speed: 3}
}

func TestRatings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ratings Ratings
		wantErr bool
	}{
		{"all valid", validRatings(), false},
		{"minimum scores", Ratings{1, 1, 1, 1}, false},
		{"maximum scores", Ratings{5, 5, 5, 5}, false},
		{"zero communication", Ratings{0, 3, 3, 3}, true},
		{"six candidate care", Ratings{3, 6, 3, 3}, true},
		{"negative speed", Ratings{3, 3, 3, -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ratings.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRatings_Overall(t *testing.T) {
	tests := []struct {
		name    string
		ratings Ratings
		want    float64
	}{
		{"whole number mean", Ratings{4, 4, 4, 4}, 4.0},
		{"rounds to one decimal", Ratings{4, 5, 4, 3}, 4.0},
		{"quarter mean rounds up", Ratings{5, 5, 5, 4}, 4.8},
		{"quarter mean rounds down", Ratings{1, 1, 1, 2}, 1.3},
		{"half mean", Ratings{5, 4, 5, 4}, 4.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.ratings.Overall(), 0.001)
		})
	}
}

func TestNewReview(t *testing.T) {
	tests := []struct {
		name         string
		companyID    uint
		userID       uint
		ratings      Ratings
		summary      string
		reviewerType vo.ReviewerType
		wantErr      string
	}{
		{
			name:         "valid review",
			companyID:    1,
			userID:       2,
			ratings:      validRatings(),
			summary:      "Great experience overall",
			reviewerType: vo.ReviewerCandidate,
		},
		{
			name:         "missing company",
			userID:       2,
			ratings:      validRatings(),
			summary:      "summary",
			reviewerType: vo.ReviewerCandidate,
			wantErr:      "company ID is required",
		},
		{
			name:         "missing user",
			companyID:    1,
			ratings:      validRatings(),
			summary:      "summary",
			reviewerType: vo.ReviewerCandidate,
			wantErr:      "user ID is required",
		},
		{
			name:         "rating out of range",
			companyID:    1,
			userID:       2,
			ratings:      Ratings{0, 3, 3, 3},
			summary:      "summary",
			reviewerType: vo.ReviewerCandidate,
			wantErr:      "must be between 1 and 5",
		},
		{
			name:         "blank summary",
			companyID:    1,
			userID:       2,
			ratings:      validRatings(),
			summary:      "   ",
			reviewerType: vo.ReviewerCandidate,
			wantErr:      "summary is required",
		},
		{
			name:         "invalid reviewer type",
			companyID:    1,
			userID:       2,
			ratings:      validRatings(),
			summary:      "summary",
			reviewerType: vo.ReviewerType("recruiter"),
			wantErr:      "invalid reviewer type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReview(tt.companyID, tt.userID, tt.ratings, "pros", "cons", tt.summary, tt.reviewerType)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, vo.StatusApproved, r.Status())
			assert.InDelta(t, tt.ratings.Overall(), r.OverallRating(), 0.001)
			assert.Equal(t, 0, r.HelpfulCount())
			assert.True(t, r.IsAuthoredBy(tt.userID))
			assert.False(t, r.IsAuthoredBy(tt.userID+1))
		})
	}
}

func TestReview_UpdateContent(t *testing.T) {
	r, err := NewReview(1, 2, validRatings(), "pros", "cons", "original summary", vo.ReviewerCandidate)
	require.NoError(t, err)

	newRatings := Ratings{5, 5, 5, 5}
	err = r.UpdateContent(newRatings, "new pros", "new cons", "updated summary", vo.ReviewerHiringManager)
	require.NoError(t, err)

	assert.InDelta(t, 5.0, r.OverallRating(), 0.001)
	assert.Equal(t, "updated summary", r.Summary())
	assert.Equal(t, vo.ReviewerHiringManager, r.ReviewerType())

	err = r.UpdateContent(Ratings{6, 5, 5, 5}, "p", "c", "s", vo.ReviewerCandidate)
	assert.Error(t, err)

	err = r.UpdateContent(validRatings(), "p", "c", "", vo.ReviewerCandidate)
	assert.Error(t, err)
}

func TestReview_ChangeStatus(t *testing.T) {
	r, err := NewReview(1, 2, validRatings(), "", "", "summary", vo.ReviewerCandidate)
	require.NoError(t, err)

	require.NoError(t, r.ChangeStatus(vo.StatusFlagged))
	assert.Equal(t, vo.StatusFlagged, r.Status())

	require.NoError(t, r.ChangeStatus(vo.StatusRejected))
	assert.Equal(t, vo.StatusRejected, r.Status())

	err = r.ChangeStatus(vo.ReviewStatus("deleted"))
	assert.Error(t, err)
	assert.Equal(t, vo.StatusRejected, r.Status())
}

func TestReview_MarkHelpful(t *testing.T) {
	r, err := NewReview(1, 2, validRatings(), "", "", "summary", vo.ReviewerCandidate)
	require.NoError(t, err)

	r.MarkHelpful()
	r.MarkHelpful()
	assert.Equal(t, 2, r.HelpfulCount())
}

func TestReview_SetID(t *testing.T) {
	r, err := NewReview(1, 2, validRatings(), "", "", "summary", vo.ReviewerCandidate)
	require.NoError(t, err)

	require.NoError(t, r.SetID(42))
	assert.Equal(t, uint(42), r.ID())
	assert.Error(t, r.SetID(43))
}

func TestReconstructReview(t *testing.T) {
	now := time.Now()
	r, err := ReconstructReview(7, 1, 2, validRatings(), 4.0, "pros", "cons", "summary",
		vo.ReviewerCandidate, vo.StatusApproved, 3, now, now)
	require.NoError(t, err)
	assert.Equal(t, uint(7), r.ID())
	assert.Equal(t, 3, r.HelpfulCount())

	_, err = ReconstructReview(0, 1, 2, validRatings(), 4.0, "", "", "summary",
		vo.ReviewerCandidate, vo.StatusApproved, 0, now, now)
	assert.Error(t, err)

	_, err = ReconstructReview(7, 1, 2, validRatings(), 4.0, "", "", "summary",
		vo.ReviewerCandidate, vo.ReviewStatus("bogus"), 0, now, now)
	assert.Error(t, err)
}

func TestNewResponse(t *testing.T) {
	resp, err := NewResponse(10, 20, "  Thanks for the feedback  ")
	require.NoError(t, err)
	assert.Equal(t, uint(10), resp.ReviewID())
	assert.Equal(t, uint(20), resp.UserID())
	assert.Equal(t, "Thanks for the feedback", resp.ResponseText())

	_, err = NewResponse(0, 20, "text")
	assert.Error(t, err)

	_, err = NewResponse(10, 0, "text")
	assert.Error(t, err)

	_, err = NewResponse(10, 20, "   ")
	assert.Error(t, err)
}
