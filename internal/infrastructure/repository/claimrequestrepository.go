package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"recruitscore/internal/domain/claim"
	"recruitscore/internal/infrastructure/persistence/mappers"
	"recruitscore/internal/infrastructure/persistence/models"
	"recruitscore/internal/shared/db"
)

type ClaimRequestRepository struct {
	db     *gorm.DB
	mapper mappers.ClaimRequestMapper
}

func NewClaimRequestRepository(db *gorm.DB) *ClaimRequestRepository {
	return &ClaimRequestRepository{
		db:     db,
		mapper: mappers.NewClaimRequestMapper(),
	}
}

func (r *ClaimRequestRepository) Save(ctx context.Context, c *claim.ClaimRequest) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save claim request: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *ClaimRequestRepository) Update(ctx context.Context, c *claim.ClaimRequest) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select lists every mutable column so NULLing the pending key and other
	// zero values are written through; Updates alone skips zero fields.
	result := tx.
		Model(&models.ClaimRequestModel{}).
		Where("id = ?", model.ID).
		Select("Status", "AdminNotes", "ReviewedBy", "ReviewedAt", "PendingKey", "UpdatedAt").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update claim request: %w", result.Error)
	}

	return nil
}

func (r *ClaimRequestRepository) FindByID(ctx context.Context, id uint) (*claim.ClaimRequest, error) {
	var model models.ClaimRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find claim request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ClaimRequestRepository) FindPendingByToken(ctx context.Context, token string) (*claim.ClaimRequest, error) {
	var model models.ClaimRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("token = ? AND status = ?", token, "pending").
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find claim request by token: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ClaimRequestRepository) HasPendingClaim(ctx context.Context, companyID, userID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.ClaimRequestModel{}).
		Where("company_id = ? AND user_id = ? AND status = ?", companyID, userID, "pending").
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count pending claims: %w", err)
	}

	return count > 0, nil
}

func (r *ClaimRequestRepository) List(ctx context.Context, filter claim.Filter) ([]*claim.ClaimRequest, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ClaimRequestModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.CompanyID != nil {
		query = query.Where("company_id = ?", *filter.CompanyID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count claim requests: %w", err)
	}

	query = query.Order("created_at DESC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var claimModels []models.ClaimRequestModel
	if err := query.Find(&claimModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list claim requests: %w", err)
	}

	claims := make([]*claim.ClaimRequest, len(claimModels))
	for i, model := range claimModels {
		c, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		claims[i] = c
	}

	return claims, total, nil
}
