// Package dto defines request and response payloads for company operations.
package dto

import (
	"time"

	"recruitscore/internal/domain/company"
)

type CreateCompanyRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Description string   `json:"description"`
	Website     string   `json:"website"`
	LogoURL     string   `json:"logo_url"`
	Sectors     []string `json:"sectors"`
	Locations   []string `json:"locations"`
	Size        string   `json:"size"`
}

type UpdateCompanyRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Description string   `json:"description"`
	Website     string   `json:"website"`
	LogoURL     string   `json:"logo_url"`
	Sectors     []string `json:"sectors"`
	Locations   []string `json:"locations"`
	Size        string   `json:"size"`
}

type TransferOwnershipRequest struct {
	NewOwnerEmail string `json:"new_owner_email" binding:"required,email"`
}

type CompanyResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	// DescriptionHTML is sanitized rendered markdown, populated on detail
	// fetches only.
	DescriptionHTML string     `json:"description_html,omitempty"`
	LogoURL         string     `json:"logo_url,omitempty"`
	Website         string     `json:"website,omitempty"`
	WebsiteDomain   string     `json:"website_domain,omitempty"`
	Sectors         []string   `json:"sectors"`
	Locations       []string   `json:"locations"`
	Size            string     `json:"size,omitempty"`
	IsVerified      bool       `json:"is_verified"`
	OwnerID         *uint      `json:"owner_id,omitempty"`
	VerifiedAt      *time.Time `json:"verified_at,omitempty"`
	AverageRating   *float64   `json:"average_rating,omitempty"`
	ReviewCount     int        `json:"review_count"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func NewCompanyResponse(c *company.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:            c.ID(),
		Name:          c.Name(),
		Slug:          c.Slug(),
		Description:   c.Description(),
		LogoURL:       c.LogoURL(),
		Website:       c.Website(),
		WebsiteDomain: c.WebsiteDomain(),
		Sectors:       c.Sectors(),
		Locations:     c.Locations(),
		Size:          c.Size().String(),
		IsVerified:    c.IsVerified(),
		OwnerID:       c.OwnerID(),
		VerifiedAt:    c.VerifiedAt(),
		AverageRating: c.AverageRating(),
		ReviewCount:   c.ReviewCount(),
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
	}
}

func NewCompanyResponseList(companies []*company.Company) []*CompanyResponse {
	responses := make([]*CompanyResponse, 0, len(companies))
	for _, c := range companies {
		responses = append(responses, NewCompanyResponse(c))
	}
	return responses
}
