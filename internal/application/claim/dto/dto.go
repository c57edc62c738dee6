// Package dto defines request and response payloads for claim operations.
// Verification tokens never appear in any response: they travel only inside
// the verification email.
package dto

import (
	"time"

	"recruitscore/internal/domain/claim"
)

type ClaimResponse struct {
	ID               uint       `json:"id"`
	CompanyID        uint       `json:"company_id"`
	UserID           uint       `json:"user_id"`
	VerificationType string     `json:"verification_type"`
	EmailUsed        string     `json:"email_used,omitempty"`
	FullName         string     `json:"full_name,omitempty"`
	JobTitle         string     `json:"job_title,omitempty"`
	LinkedinURL      string     `json:"linkedin_url,omitempty"`
	ProofType        string     `json:"proof_type,omitempty"`
	ProofText        string     `json:"proof_text,omitempty"`
	Status           string     `json:"status"`
	AdminNotes       string     `json:"admin_notes,omitempty"`
	ReviewedBy       *uint      `json:"reviewed_by,omitempty"`
	ReviewedAt       *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func NewClaimResponse(c *claim.ClaimRequest) *ClaimResponse {
	return &ClaimResponse{
		ID:               c.ID(),
		CompanyID:        c.CompanyID(),
		UserID:           c.UserID(),
		VerificationType: c.VerificationType().String(),
		EmailUsed:        c.EmailUsed(),
		FullName:         c.FullName(),
		JobTitle:         c.JobTitle(),
		LinkedinURL:      c.LinkedinURL(),
		ProofType:        c.ProofType().String(),
		ProofText:        c.ProofText(),
		Status:           c.Status().String(),
		AdminNotes:       c.AdminNotes(),
		ReviewedBy:       c.ReviewedBy(),
		ReviewedAt:       c.ReviewedAt(),
		CreatedAt:        c.CreatedAt(),
		UpdatedAt:        c.UpdatedAt(),
	}
}

func NewClaimResponseList(claims []*claim.ClaimRequest) []*ClaimResponse {
	responses := make([]*ClaimResponse, 0, len(claims))
	for _, c := range claims {
		responses = append(responses, NewClaimResponse(c))
	}
	return responses
}

// VerifyClaimResult is returned after a successful email verification. The
// company slug lets the caller redirect straight to the claimed listing.
type VerifyClaimResult struct {
	ClaimID     uint   `json:"claim_id"`
	CompanyID   uint   `json:"company_id"`
	CompanySlug string `json:"company_slug"`
	CompanyName string `json:"company_name"`
}
