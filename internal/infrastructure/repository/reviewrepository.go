package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"recruitscore/internal/domain/review"
	"recruitscore/internal/infrastructure/persistence/mappers"
	"recruitscore/internal/infrastructure/persistence/models"
	"recruitscore/internal/shared/db"
)

var reviewSortColumns = map[string]string{
	"recent":  "created_at DESC",
	"helpful": "helpful_count DESC",
	"rating":  "overall_rating DESC",
}

type ReviewRepository struct {
	db     *gorm.DB
	mapper mappers.ReviewMapper
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{
		db:     db,
		mapper: mappers.NewReviewMapper(),
	}
}

func (r *ReviewRepository) Save(ctx context.Context, rev *review.Review) error {
	model := r.mapper.ToModel(rev)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save review: %w", err)
	}

	return rev.SetID(model.ID)
}

func (r *ReviewRepository) Update(ctx context.Context, rev *review.Review) error {
	model := r.mapper.ToModel(rev)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ReviewModel{}).
		Where("id = ?", model.ID).
		Select("RatingCommunication", "RatingCandidateCare", "RatingJobQuality",
			"RatingSpeed", "OverallRating", "Pros", "Cons", "Summary",
			"ReviewerType", "Status", "HelpfulCount", "UpdatedAt").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update review: %w", result.Error)
	}

	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ReviewModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("review not found")
	}

	return nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id uint) (*review.Review, error) {
	var model models.ReviewModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find review: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ReviewRepository) FindByCompanyAndUser(ctx context.Context, companyID, userID uint) (*review.Review, error) {
	var model models.ReviewModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("company_id = ? AND user_id = ?", companyID, userID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find review by company and user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ReviewRepository) List(ctx context.Context, filter review.Filter) ([]*review.Review, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ReviewModel{})

	if filter.CompanyID != nil {
		query = query.Where("company_id = ?", *filter.CompanyID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	if order, ok := reviewSortColumns[strings.ToLower(filter.SortBy)]; ok {
		query = query.Order(order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var reviewModels []models.ReviewModel
	if err := query.Find(&reviewModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}

	reviews := make([]*review.Review, len(reviewModels))
	for i, model := range reviewModels {
		rev, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		reviews[i] = rev
	}

	return reviews, total, nil
}

// CompanyStats aggregates approved reviews only so moderated content never
// skews a company's public rating.
func (r *ReviewRepository) CompanyStats(ctx context.Context, companyID uint) (review.Stats, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var result struct {
		AverageRating *float64
		ReviewCount   int64
	}

	if err := tx.
		Model(&models.ReviewModel{}).
		Select("AVG(overall_rating) AS average_rating, COUNT(*) AS review_count").
		Where("company_id = ? AND status = ?", companyID, "approved").
		Scan(&result).Error; err != nil {
		return review.Stats{}, fmt.Errorf("failed to aggregate review stats: %w", err)
	}

	return review.Stats{
		AverageRating: result.AverageRating,
		ReviewCount:   int(result.ReviewCount),
	}, nil
}

func (r *ReviewRepository) SaveResponse(ctx context.Context, resp *review.Response) error {
	model := r.mapper.ResponseToModel(resp)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save review response: %w", err)
	}

	return resp.SetID(model.ID)
}

func (r *ReviewRepository) ResponsesByReviewIDs(ctx context.Context, reviewIDs []uint) (map[uint][]*review.Response, error) {
	responses := make(map[uint][]*review.Response)
	if len(reviewIDs) == 0 {
		return responses, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	var responseModels []models.ReviewResponseModel
	if err := tx.
		Where("review_id IN ?", reviewIDs).
		Order("created_at ASC").
		Find(&responseModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list review responses: %w", err)
	}

	for i := range responseModels {
		resp, err := r.mapper.ResponseToDomain(&responseModels[i])
		if err != nil {
			return nil, err
		}
		responses[resp.ReviewID()] = append(responses[resp.ReviewID()], resp)
	}

	return responses, nil
}
