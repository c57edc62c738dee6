package models

import "gorm.io/datatypes"

type CompanyModel struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"size:200;not null"`
	Slug          string `gorm:"uniqueIndex;size:220;not null"`
	Description   string `gorm:"type:text"`
	LogoURL       string `gorm:"size:500"`
	Website       string `gorm:"size:500"`
	WebsiteDomain string `gorm:"size:255;index"`
	Sectors       datatypes.JSON
	Locations     datatypes.JSON
	Size          string   `gorm:"size:20"`
	IsVerified    bool     `gorm:"not null;default:false;index"`
	OwnerID       *uint    `gorm:"index"`
	VerifiedAt    *int64
	AverageRating *float64 `gorm:"index"`
	ReviewCount   int      `gorm:"not null;default:0"`
	CreatedAt     int64    `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64    `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (CompanyModel) TableName() string {
	return "companies"
}
