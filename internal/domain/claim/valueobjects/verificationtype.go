package valueobjects

import "fmt"

// VerificationType selects the resolution path of a claim: email claims are
// resolved by a token link, manual claims only by admin adjudication.
type VerificationType string

const (
	VerificationEmail  VerificationType = "email"
	VerificationManual VerificationType = "manual"
)

func (vt VerificationType) String() string {
	return string(vt)
}

func (vt VerificationType) IsValid() bool {
	return vt == VerificationEmail || vt == VerificationManual
}

func (vt VerificationType) IsEmail() bool {
	return vt == VerificationEmail
}

func (vt VerificationType) IsManual() bool {
	return vt == VerificationManual
}

func NewVerificationType(s string) (VerificationType, error) {
	vt := VerificationType(s)
	if !vt.IsValid() {
		return "", fmt.Errorf("invalid verification type: %s", s)
	}
	return vt, nil
}
