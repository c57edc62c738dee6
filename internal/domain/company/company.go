package company

import (
	"fmt"
	"strings"
	"time"

	vo "recruitscore/internal/domain/company/valueobjects"
)

// Company is a recruitment-company listing. The verification trio
// (isVerified, ownerID, verifiedAt) is mutated only together, via Verify:
// there is no valid state where one of the three reflects verification and
// the others do not.
type Company struct {
	id            uint
	name          string
	slug          string
	description   string
	logoURL       string
	website       string
	websiteDomain string
	sectors       []string
	locations     []string
	size          vo.CompanySize
	isVerified    bool
	ownerID       *uint
	verifiedAt    *time.Time
	averageRating *float64
	reviewCount   int
	createdAt     time.Time
	updatedAt     time.Time
}

func NewCompany(
	name, slug, description, website, websiteDomain string,
	sectors, locations []string,
	size vo.CompanySize,
) (*Company, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("name exceeds maximum length of 200 characters")
	}
	if slug == "" {
		return nil, fmt.Errorf("slug is required")
	}
	if size != "" && !size.IsValid() {
		return nil, fmt.Errorf("invalid company size")
	}

	if sectors == nil {
		sectors = []string{}
	}
	if locations == nil {
		locations = []string{}
	}

	now := time.Now()

	return &Company{
		name:          strings.TrimSpace(name),
		slug:          slug,
		description:   description,
		website:       website,
		websiteDomain: websiteDomain,
		sectors:       sectors,
		locations:     locations,
		size:          size,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructCompany(
	id uint,
	name, slug, description, logoURL, website, websiteDomain string,
	sectors, locations []string,
	size vo.CompanySize,
	isVerified bool,
	ownerID *uint,
	verifiedAt *time.Time,
	averageRating *float64,
	reviewCount int,
	createdAt, updatedAt time.Time,
) (*Company, error) {
	if id == 0 {
		return nil, fmt.Errorf("company ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if slug == "" {
		return nil, fmt.Errorf("slug is required")
	}

	if sectors == nil {
		sectors = []string{}
	}
	if locations == nil {
		locations = []string{}
	}

	return &Company{
		id:            id,
		name:          name,
		slug:          slug,
		description:   description,
		logoURL:       logoURL,
		website:       website,
		websiteDomain: websiteDomain,
		sectors:       sectors,
		locations:     locations,
		size:          size,
		isVerified:    isVerified,
		ownerID:       ownerID,
		verifiedAt:    verifiedAt,
		averageRating: averageRating,
		reviewCount:   reviewCount,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (c *Company) ID() uint {
	return c.id
}

func (c *Company) Name() string {
	return c.name
}

func (c *Company) Slug() string {
	return c.slug
}

func (c *Company) Description() string {
	return c.description
}

func (c *Company) LogoURL() string {
	return c.logoURL
}

func (c *Company) Website() string {
	return c.website
}

func (c *Company) WebsiteDomain() string {
	return c.websiteDomain
}

func (c *Company) Sectors() []string {
	sectorsCopy := make([]string, len(c.sectors))
	copy(sectorsCopy, c.sectors)
	return sectorsCopy
}

func (c *Company) Locations() []string {
	locationsCopy := make([]string, len(c.locations))
	copy(locationsCopy, c.locations)
	return locationsCopy
}

func (c *Company) Size() vo.CompanySize {
	return c.size
}

func (c *Company) IsVerified() bool {
	return c.isVerified
}

func (c *Company) OwnerID() *uint {
	return c.ownerID
}

func (c *Company) VerifiedAt() *time.Time {
	return c.verifiedAt
}

func (c *Company) AverageRating() *float64 {
	return c.averageRating
}

func (c *Company) ReviewCount() int {
	return c.reviewCount
}

func (c *Company) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Company) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Company) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("company ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("company ID cannot be zero")
	}
	c.id = id
	return nil
}

// IsOwnedBy reports whether the given user is the verified owner.
func (c *Company) IsOwnedBy(userID uint) bool {
	return c.ownerID != nil && *c.ownerID == userID
}

// MatchesEmailDomain compares the domain portion of an email address
// against the registered website domain, case-insensitively. Exact match
// only: no subdomain or similarity matching. A company without a registered
// website domain matches nothing.
func (c *Company) MatchesEmailDomain(email string) bool {
	if c.websiteDomain == "" {
		return false
	}

	// Everything after the first @ counts as the domain.
	at := strings.Index(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	return strings.ToLower(email[at+1:]) == strings.ToLower(c.websiteDomain)
}

// Verify marks the company as claimed by the given owner. The verification
// trio is set together.
func (c *Company) Verify(ownerID uint) error {
	if ownerID == 0 {
		return fmt.Errorf("owner ID is required")
	}
	if c.isVerified {
		return fmt.Errorf("company is already verified")
	}

	now := time.Now()
	c.isVerified = true
	c.ownerID = &ownerID
	c.verifiedAt = &now
	c.updatedAt = now
	return nil
}

// TransferTo reassigns ownership of a verified company.
func (c *Company) TransferTo(newOwnerID uint) error {
	if newOwnerID == 0 {
		return fmt.Errorf("new owner ID is required")
	}
	if !c.isVerified || c.ownerID == nil {
		return fmt.Errorf("only a verified company can transfer ownership")
	}

	c.ownerID = &newOwnerID
	c.updatedAt = time.Now()
	return nil
}

// UpdateDetails applies owner-editable listing fields. Empty name is
// rejected; other fields may be cleared.
func (c *Company) UpdateDetails(
	name, description, website, websiteDomain, logoURL string,
	sectors, locations []string,
	size vo.CompanySize,
) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if size != "" && !size.IsValid() {
		return fmt.Errorf("invalid company size")
	}

	c.name = strings.TrimSpace(name)
	c.description = description
	c.website = website
	c.websiteDomain = websiteDomain
	c.logoURL = logoURL
	if sectors != nil {
		c.sectors = sectors
	}
	if locations != nil {
		c.locations = locations
	}
	c.size = size
	c.updatedAt = time.Now()
	return nil
}

// ApplyReviewStats refreshes the denormalized rating aggregates after a
// review is created, updated, or removed.
func (c *Company) ApplyReviewStats(averageRating *float64, reviewCount int) {
	c.averageRating = averageRating
	c.reviewCount = reviewCount
	c.updatedAt = time.Now()
}
