package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"recruitscore/internal/domain/company"
	"recruitscore/internal/infrastructure/persistence/mappers"
	"recruitscore/internal/infrastructure/persistence/models"
	"recruitscore/internal/shared/db"
)

// companySortColumns whitelists ORDER BY expressions to prevent SQL
// injection through the sort parameter.
var companySortColumns = map[string]string{
	"rating":  "average_rating DESC",
	"reviews": "review_count DESC",
	"recent":  "created_at DESC",
	"name":    "name ASC",
}

type CompanyRepository struct {
	db     *gorm.DB
	mapper mappers.CompanyMapper
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{
		db:     db,
		mapper: mappers.NewCompanyMapper(),
	}
}

func (r *CompanyRepository) Save(ctx context.Context, c *company.Company) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save company: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CompanyRepository) Update(ctx context.Context, c *company.Company) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CompanyModel{}).
		Where("id = ?", model.ID).
		Select("Name", "Description", "LogoURL", "Website", "WebsiteDomain",
			"Sectors", "Locations", "Size", "IsVerified", "OwnerID", "VerifiedAt",
			"AverageRating", "ReviewCount", "UpdatedAt").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update company: %w", result.Error)
	}

	return nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.CompanyModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("company not found")
	}

	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uint) (*company.Company, error) {
	var model models.CompanyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CompanyRepository) FindBySlug(ctx context.Context, slug string) (*company.Company, error) {
	var model models.CompanyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("slug = ?", slug).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find company by slug: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CompanyRepository) List(ctx context.Context, filter company.Filter) ([]*company.Company, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.CompanyModel{})

	// JSON_CONTAINS matches against the JSON arrays the mapper writes.
	if filter.Sector != "" {
		query = query.Where("JSON_CONTAINS(sectors, JSON_QUOTE(?))", filter.Sector)
	}
	if filter.Location != "" {
		query = query.Where("JSON_CONTAINS(locations, JSON_QUOTE(?))", filter.Location)
	}
	if filter.Size != nil {
		query = query.Where("size = ?", filter.Size.String())
	}
	if filter.Verified != nil {
		query = query.Where("is_verified = ?", *filter.Verified)
	}
	if filter.Search != "" {
		pattern := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count companies: %w", err)
	}

	if order, ok := companySortColumns[strings.ToLower(filter.SortBy)]; ok {
		query = query.Order(order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var companyModels []models.CompanyModel
	if err := query.Find(&companyModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list companies: %w", err)
	}

	companies := make([]*company.Company, len(companyModels))
	for i, model := range companyModels {
		c, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		companies[i] = c
	}

	return companies, total, nil
}
