package dto

import "time"

type VerificationRequest struct {
	VerificationType string     `json:"verificationType"`
	VerifiedBy       *string    `json:"verifiedBy"`
	Note             *string    `json:"note"`
	CertificationURL *string    `json:"certificationUrl"`
	VerificationDate *time.Time `json:"verificationDate"`
}
