package mappers

import (
	"fmt"
	"time"

	"recruitscore/internal/domain/claim"
	vo "recruitscore/internal/domain/claim/valueobjects"
	"recruitscore/internal/infrastructure/persistence/models"
)

// ClaimRequestMapper handles the conversion between ClaimRequest domain
// entities and persistence models.
type ClaimRequestMapper interface {
	ToModel(c *claim.ClaimRequest) *models.ClaimRequestModel
	ToDomain(model *models.ClaimRequestModel) (*claim.ClaimRequest, error)
}

type ClaimRequestMapperImpl struct{}

func NewClaimRequestMapper() ClaimRequestMapper {
	return &ClaimRequestMapperImpl{}
}

func (m *ClaimRequestMapperImpl) ToModel(c *claim.ClaimRequest) *models.ClaimRequestModel {
	model := &models.ClaimRequestModel{
		ID:               c.ID(),
		CompanyID:        c.CompanyID(),
		UserID:           c.UserID(),
		VerificationType: c.VerificationType().String(),
		EmailUsed:        c.EmailUsed(),
		Token:            c.Token(),
		FullName:         c.FullName(),
		JobTitle:         c.JobTitle(),
		LinkedinURL:      c.LinkedinURL(),
		ProofType:        c.ProofType().String(),
		ProofText:        c.ProofText(),
		Status:           c.Status().String(),
		AdminNotes:       c.AdminNotes(),
		ReviewedBy:       c.ReviewedBy(),
		CreatedAt:        c.CreatedAt().UnixMilli(),
		UpdatedAt:        c.UpdatedAt().UnixMilli(),
	}

	if c.TokenExpiresAt() != nil {
		expires := c.TokenExpiresAt().UnixMilli()
		model.TokenExpiresAt = &expires
	}

	if c.ReviewedAt() != nil {
		reviewed := c.ReviewedAt().UnixMilli()
		model.ReviewedAt = &reviewed
	}

	// The pending key only exists while the claim is pending; clearing it on
	// resolution is what frees the slot for a future claim.
	if c.Status().IsPending() {
		key := fmt.Sprintf("%d-%d", c.CompanyID(), c.UserID())
		model.PendingKey = &key
	}

	return model
}

func (m *ClaimRequestMapperImpl) ToDomain(model *models.ClaimRequestModel) (*claim.ClaimRequest, error) {
	verificationType, err := vo.NewVerificationType(model.VerificationType)
	if err != nil {
		return nil, fmt.Errorf("invalid verification type (id=%d): %w", model.ID, err)
	}

	status, err := vo.NewClaimStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid claim status (id=%d): %w", model.ID, err)
	}

	var proofType vo.ProofType
	if model.ProofType != "" {
		proofType, err = vo.NewProofType(model.ProofType)
		if err != nil {
			return nil, fmt.Errorf("invalid proof type (id=%d): %w", model.ID, err)
		}
	}

	var tokenExpiresAt *time.Time
	if model.TokenExpiresAt != nil {
		t := convertMillisToTime(*model.TokenExpiresAt)
		tokenExpiresAt = &t
	}

	var reviewedAt *time.Time
	if model.ReviewedAt != nil {
		t := convertMillisToTime(*model.ReviewedAt)
		reviewedAt = &t
	}

	return claim.ReconstructClaimRequest(
		model.ID,
		model.CompanyID,
		model.UserID,
		verificationType,
		model.EmailUsed,
		model.Token,
		tokenExpiresAt,
		model.FullName,
		model.JobTitle,
		model.LinkedinURL,
		proofType,
		model.ProofText,
		status,
		model.AdminNotes,
		model.ReviewedBy,
		reviewedAt,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}
