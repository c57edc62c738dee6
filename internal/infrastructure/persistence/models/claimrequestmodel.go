package models

type ClaimRequestModel struct {
	ID               uint    `gorm:"primaryKey"`
	CompanyID        uint    `gorm:"not null;index"`
	UserID           uint    `gorm:"not null;index"`
	VerificationType string  `gorm:"size:20;not null"`
	EmailUsed        string  `gorm:"size:255"`
	Token            string  `gorm:"size:64;index"`
	TokenExpiresAt   *int64
	FullName         string  `gorm:"size:200"`
	JobTitle         string  `gorm:"size:200"`
	LinkedinURL      string  `gorm:"size:500"`
	ProofType        string  `gorm:"size:30"`
	ProofText        string  `gorm:"type:text"`
	Status           string  `gorm:"size:20;not null;index"`
	AdminNotes       string  `gorm:"type:text"`
	ReviewedBy       *uint
	ReviewedAt       *int64
	// PendingKey is "<company_id>-<user_id>" while the claim is pending and
	// NULL once resolved. The unique index enforces at most one pending
	// claim per user per company without blocking resubmission after a
	// rejection or expiry.
	PendingKey *string `gorm:"uniqueIndex;size:64"`
	CreatedAt  int64   `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt  int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (ClaimRequestModel) TableName() string {
	return "claim_requests"
}
