package mappers

import (
	"fmt"

	"recruitscore/internal/domain/review"
	vo "recruitscore/internal/domain/review/valueobjects"
	"recruitscore/internal/infrastructure/persistence/models"
)

// ReviewMapper handles the conversion between Review domain entities and
// persistence models.
type ReviewMapper interface {
	ToModel(r *review.Review) *models.ReviewModel
	ToDomain(model *models.ReviewModel) (*review.Review, error)
	ResponseToModel(resp *review.Response) *models.ReviewResponseModel
	ResponseToDomain(model *models.ReviewResponseModel) (*review.Response, error)
}

type ReviewMapperImpl struct{}

func NewReviewMapper() ReviewMapper {
	return &ReviewMapperImpl{}
}

func (m *ReviewMapperImpl) ToModel(r *review.Review) *models.ReviewModel {
	ratings := r.Ratings()
	return &models.ReviewModel{
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
		CreatedAt:           r.CreatedAt().UnixMilli(),
		UpdatedAt:           r.UpdatedAt().UnixMilli(),
	}
}

func (m *ReviewMapperImpl) ToDomain(model *models.ReviewModel) (*review.Review, error) {
	reviewerType, err := vo.NewReviewerType(model.ReviewerType)
	if err != nil {
		return nil, fmt.Errorf("invalid reviewer type (id=%d): %w", model.ID, err)
	}

	status, err := vo.NewReviewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid review status (id=%d): %w", model.ID, err)
	}

	return review.ReconstructReview(
		model.ID,
		model.CompanyID,
		model.UserID,
		review.Ratings{
			Communication: model.RatingCommunication,
			CandidateCare: model.RatingCandidateCare,
			JobQuality:    model.RatingJobQuality,
			Speed:         model.RatingSpeed,
		},
		model.OverallRating,
		model.Pros,
		model.Cons,
		model.Summary,
		reviewerType,
		status,
		model.HelpfulCount,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}

func (m *ReviewMapperImpl) ResponseToModel(resp *review.Response) *models.ReviewResponseModel {
	return &models.ReviewResponseModel{
		ID:           resp.ID(),
		ReviewID:     resp.ReviewID(),
		UserID:       resp.UserID(),
		ResponseText: resp.ResponseText(),
		CreatedAt:    resp.CreatedAt().UnixMilli(),
	}
}

func (m *ReviewMapperImpl) ResponseToDomain(model *models.ReviewResponseModel) (*review.Response, error) {
	return review.ReconstructResponse(
		model.ID,
		model.ReviewID,
		model.UserID,
		model.ResponseText,
		convertMillisToTime(model.CreatedAt),
	)
}
