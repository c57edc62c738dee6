package models

type ReviewModel struct {
	ID                  uint    `gorm:"primaryKey"`
	CompanyID           uint    `gorm:"not null;uniqueIndex:idx_reviews_company_user"`
	UserID              uint    `gorm:"not null;index;uniqueIndex:idx_reviews_company_user"`
	RatingCommunication int     `gorm:"not null"`
	RatingCandidateCare int     `gorm:"not null"`
	RatingJobQuality    int     `gorm:"not null"`
	RatingSpeed         int     `gorm:"not null"`
	OverallRating       float64 `gorm:"not null;index"`
	Pros                string  `gorm:"type:text"`
	Cons                string  `gorm:"type:text"`
	Summary             string  `gorm:"type:text;not null"`
	ReviewerType        string  `gorm:"size:20;not null"`
	Status              string  `gorm:"size:20;not null;index"`
	HelpfulCount        int     `gorm:"not null;default:0"`
	CreatedAt           int64   `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt           int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}

type ReviewResponseModel struct {
	ID           uint   `gorm:"primaryKey"`
	ReviewID     uint   `gorm:"not null;index"`
	UserID       uint   `gorm:"not null;index"`
	ResponseText string `gorm:"type:text;not null"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
}

func (ReviewResponseModel) TableName() string {
	return "review_responses"
}
