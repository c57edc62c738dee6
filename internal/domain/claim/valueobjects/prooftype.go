package valueobjects

import "fmt"

// ProofType categorizes the evidence attached to a manual claim.
type ProofType string

const (
	ProofCompaniesHouse        ProofType = "companies_house"
	ProofOfficialDocumentation ProofType = "official_documentation"
	ProofOther                 ProofType = "other"
)

var validProofTypes = map[ProofType]bool{
	ProofCompaniesHouse:        true,
	ProofOfficialDocumentation: true,
	ProofOther:                 true,
}

func (pt ProofType) String() string {
	return string(pt)
}

func (pt ProofType) IsValid() bool {
	return validProofTypes[pt]
}

func NewProofType(s string) (ProofType, error) {
	pt := ProofType(s)
	if !pt.IsValid() {
		return "", fmt.Errorf("invalid proof type: %s", s)
	}
	return pt, nil
}
