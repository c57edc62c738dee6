package valueobjects

import "fmt"

// CompanySize buckets headcount for listing filters.
type CompanySize string

const (
	SizeMicro      CompanySize = "1-10"
	SizeSmall      CompanySize = "11-50"
	SizeMedium     CompanySize = "51-200"
	SizeLarge      CompanySize = "201-500"
	SizeEnterprise CompanySize = "500+"
)

var validCompanySizes = map[CompanySize]bool{
	SizeMicro:      true,
	SizeSmall:      true,
	SizeMedium:     true,
	SizeLarge:      true,
	SizeEnterprise: true,
}

func (cs CompanySize) String() string {
	return string(cs)
}

func (cs CompanySize) IsValid() bool {
	return validCompanySizes[cs]
}

func NewCompanySize(s string) (CompanySize, error) {
	if s == "" {
		return "", nil
	}
	cs := CompanySize(s)
	if !cs.IsValid() {
		return "", fmt.Errorf("invalid company size: %s", s)
	}
	return cs, nil
}
