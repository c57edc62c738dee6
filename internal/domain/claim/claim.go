package claim

import (
	"fmt"
	"strings"
	"time"

	vo "recruitscore/internal/domain/claim/valueobjects"
)

// DefaultTokenTTL is how long an email verification link stays valid.
const DefaultTokenTTL = 24 * time.Hour

// ClaimRequest represents one attempt by one user to establish ownership of
// one company listing. Email claims carry a verification token; manual
// claims carry identity evidence and are resolved only by admin review.
type ClaimRequest struct {
	id               uint
	companyID        uint
	userID           uint
	verificationType vo.VerificationType
	emailUsed        string
	token            string
	tokenExpiresAt   *time.Time
	fullName         string
	jobTitle         string
	linkedinURL      string
	proofType        vo.ProofType
	proofText        string
	status           vo.ClaimStatus
	adminNotes       string
	reviewedBy       *uint
	reviewedAt       *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

// NewEmailClaim creates a pending email-path claim with a freshly minted
// verification token expiring ttl from now. A non-positive ttl falls back to
// DefaultTokenTTL.
func NewEmailClaim(companyID, userID uint, emailUsed string, ttl time.Duration) (*ClaimRequest, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	emailUsed = strings.TrimSpace(emailUsed)
	if emailUsed == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(emailUsed[1:], "@") {
		return nil, fmt.Errorf("invalid email address")
	}

	token, err := GenerateToken()
	if err != nil {
		return nil, err
	}

	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	now := time.Now()
	expiresAt := now.Add(ttl)

	return &ClaimRequest{
		companyID:        companyID,
		userID:           userID,
		verificationType: vo.VerificationEmail,
		emailUsed:        emailUsed,
		token:            token,
		tokenExpiresAt:   &expiresAt,
		status:           vo.StatusPending,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// NewManualClaim creates a pending manual-path claim. All evidence fields
// are required; no token is issued.
func NewManualClaim(
	companyID, userID uint,
	fullName, jobTitle, linkedinURL string,
	proofType vo.ProofType,
	proofText string,
) (*ClaimRequest, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if strings.TrimSpace(fullName) == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if strings.TrimSpace(jobTitle) == "" {
		return nil, fmt.Errorf("job title is required")
	}
	if strings.TrimSpace(linkedinURL) == "" {
		return nil, fmt.Errorf("linkedin URL is required")
	}
	if !proofType.IsValid() {
		return nil, fmt.Errorf("invalid proof type")
	}
	if strings.TrimSpace(proofText) == "" {
		return nil, fmt.Errorf("proof description is required")
	}

	now := time.Now()

	return &ClaimRequest{
		companyID:        companyID,
		userID:           userID,
		verificationType: vo.VerificationManual,
		fullName:         strings.TrimSpace(fullName),
		jobTitle:         strings.TrimSpace(jobTitle),
		linkedinURL:      strings.TrimSpace(linkedinURL),
		proofType:        proofType,
		proofText:        strings.TrimSpace(proofText),
		status:           vo.StatusPending,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ReconstructClaimRequest rebuilds a claim from persistence.
func ReconstructClaimRequest(
	id uint,
	companyID, userID uint,
	verificationType vo.VerificationType,
	emailUsed, token string,
	tokenExpiresAt *time.Time,
	fullName, jobTitle, linkedinURL string,
	proofType vo.ProofType,
	proofText string,
	status vo.ClaimStatus,
	adminNotes string,
	reviewedBy *uint,
	reviewedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*ClaimRequest, error) {
	if id == 0 {
		return nil, fmt.Errorf("claim ID cannot be zero")
	}
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !verificationType.IsValid() {
		return nil, fmt.Errorf("invalid verification type")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid claim status")
	}

	return &ClaimRequest{
		id:               id,
		companyID:        companyID,
		userID:           userID,
		verificationType: verificationType,
		emailUsed:        emailUsed,
		token:            token,
		tokenExpiresAt:   tokenExpiresAt,
		fullName:         fullName,
		jobTitle:         jobTitle,
		linkedinURL:      linkedinURL,
		proofType:        proofType,
		proofText:        proofText,
		status:           status,
		adminNotes:       adminNotes,
		reviewedBy:       reviewedBy,
		reviewedAt:       reviewedAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (c *ClaimRequest) ID() uint {
	return c.id
}

func (c *ClaimRequest) CompanyID() uint {
	return c.companyID
}

func (c *ClaimRequest) UserID() uint {
	return c.userID
}

func (c *ClaimRequest) VerificationType() vo.VerificationType {
	return c.verificationType
}

func (c *ClaimRequest) EmailUsed() string {
	return c.emailUsed
}

func (c *ClaimRequest) Token() string {
	return c.token
}

func (c *ClaimRequest) TokenExpiresAt() *time.Time {
	return c.tokenExpiresAt
}

func (c *ClaimRequest) FullName() string {
	return c.fullName
}

func (c *ClaimRequest) JobTitle() string {
	return c.jobTitle
}

func (c *ClaimRequest) LinkedinURL() string {
	return c.linkedinURL
}

func (c *ClaimRequest) ProofType() vo.ProofType {
	return c.proofType
}

func (c *ClaimRequest) ProofText() string {
	return c.proofText
}

func (c *ClaimRequest) Status() vo.ClaimStatus {
	return c.status
}

func (c *ClaimRequest) AdminNotes() string {
	return c.adminNotes
}

func (c *ClaimRequest) ReviewedBy() *uint {
	return c.reviewedBy
}

func (c *ClaimRequest) ReviewedAt() *time.Time {
	return c.reviewedAt
}

func (c *ClaimRequest) CreatedAt() time.Time {
	return c.createdAt
}

func (c *ClaimRequest) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *ClaimRequest) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("claim ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("claim ID cannot be zero")
	}
	c.id = id
	return nil
}

// TokenExpired reports whether the verification token has passed its
// absolute expiry at the given instant. Manual claims have no token and
// never expire.
func (c *ClaimRequest) TokenExpired(now time.Time) bool {
	if c.tokenExpiresAt == nil {
		return false
	}
	return now.After(*c.tokenExpiresAt)
}

// ApproveByVerification transitions the claim to approved on the email
// token path. No audit fields are stamped: the claimant, not an admin,
// completed the verification.
func (c *ClaimRequest) ApproveByVerification() error {
	if !c.status.CanTransitionTo(vo.StatusApproved) {
		return fmt.Errorf("cannot approve claim with status %s", c.status)
	}

	c.status = vo.StatusApproved
	c.updatedAt = time.Now()
	return nil
}

// Approve transitions the claim to approved by admin adjudication, stamping
// the audit trail. Notes are optional.
func (c *ClaimRequest) Approve(reviewedBy uint, notes string) error {
	if reviewedBy == 0 {
		return fmt.Errorf("reviewer ID is required")
	}
	if !c.status.CanTransitionTo(vo.StatusApproved) {
		return fmt.Errorf("cannot approve claim with status %s", c.status)
	}

	now := time.Now()
	c.status = vo.StatusApproved
	c.adminNotes = notes
	c.reviewedBy = &reviewedBy
	c.reviewedAt = &now
	c.updatedAt = now
	return nil
}

// Reject transitions the claim to rejected. A rejection must be explained,
// so notes are required.
func (c *ClaimRequest) Reject(reviewedBy uint, notes string) error {
	if reviewedBy == 0 {
		return fmt.Errorf("reviewer ID is required")
	}
	if strings.TrimSpace(notes) == "" {
		return fmt.Errorf("rejection notes are required")
	}
	if !c.status.CanTransitionTo(vo.StatusRejected) {
		return fmt.Errorf("cannot reject claim with status %s", c.status)
	}

	now := time.Now()
	c.status = vo.StatusRejected
	c.adminNotes = notes
	c.reviewedBy = &reviewedBy
	c.reviewedAt = &now
	c.updatedAt = now
	return nil
}

// MarkExpired transitions the claim to expired. Expiry is evaluated lazily
// when a stale token is presented; there is no background sweep.
func (c *ClaimRequest) MarkExpired() error {
	if !c.status.CanTransitionTo(vo.StatusExpired) {
		return fmt.Errorf("cannot expire claim with status %s", c.status)
	}

	c.status = vo.StatusExpired
	c.updatedAt = time.Now()
	return nil
}
