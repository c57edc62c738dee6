package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"recruitscore/internal/domain/company"
	vo "recruitscore/internal/domain/company/valueobjects"
	"recruitscore/internal/infrastructure/persistence/models"
)

// CompanyMapper handles the conversion between Company domain entities and
// persistence models.
type CompanyMapper interface {
	ToModel(c *company.Company) *models.CompanyModel
	ToDomain(model *models.CompanyModel) (*company.Company, error)
}

type CompanyMapperImpl struct{}

func NewCompanyMapper() CompanyMapper {
	return &CompanyMapperImpl{}
}

func (m *CompanyMapperImpl) ToModel(c *company.Company) *models.CompanyModel {
	model := &models.CompanyModel{
		ID:            c.ID(),
		Name:          c.Name(),
		Slug:          c.Slug(),
		Description:   c.Description(),
		LogoURL:       c.LogoURL(),
		Website:       c.Website(),
		WebsiteDomain: c.WebsiteDomain(),
		Size:          c.Size().String(),
		IsVerified:    c.IsVerified(),
		OwnerID:       c.OwnerID(),
		AverageRating: c.AverageRating(),
		ReviewCount:   c.ReviewCount(),
		CreatedAt:     c.CreatedAt().UnixMilli(),
		UpdatedAt:     c.UpdatedAt().UnixMilli(),
	}

	sectorsJSON, _ := json.Marshal(c.Sectors())
	model.Sectors = datatypes.JSON(sectorsJSON)

	locationsJSON, _ := json.Marshal(c.Locations())
	model.Locations = datatypes.JSON(locationsJSON)

	if c.VerifiedAt() != nil {
		verified := c.VerifiedAt().UnixMilli()
		model.VerifiedAt = &verified
	}

	return model
}

func (m *CompanyMapperImpl) ToDomain(model *models.CompanyModel) (*company.Company, error) {
	var sectors []string
	if len(model.Sectors) > 0 {
		if err := json.Unmarshal(model.Sectors, &sectors); err != nil {
			return nil, fmt.Errorf("failed to unmarshal company sectors (id=%d): %w", model.ID, err)
		}
	}

	var locations []string
	if len(model.Locations) > 0 {
		if err := json.Unmarshal(model.Locations, &locations); err != nil {
			return nil, fmt.Errorf("failed to unmarshal company locations (id=%d): %w", model.ID, err)
		}
	}

	size, err := vo.NewCompanySize(model.Size)
	if err != nil {
		return nil, fmt.Errorf("invalid company size (id=%d): %w", model.ID, err)
	}

	var verifiedAt *time.Time
	if model.VerifiedAt != nil {
		t := convertMillisToTime(*model.VerifiedAt)
		verifiedAt = &t
	}

	return company.ReconstructCompany(
		model.ID,
		model.Name,
		model.Slug,
		model.Description,
		model.LogoURL,
		model.Website,
		model.WebsiteDomain,
		sectors,
		locations,
		size,
		model.IsVerified,
		model.OwnerID,
		verifiedAt,
		model.AverageRating,
		model.ReviewCount,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}
