package requests

import "strings"

type RegisterPatient struct {
	UserID                 string `json:"userId" validate:"required"`
	Name                   string `json:"name" validate:"required,min=2,max=50"`
	Email                  string `json:"email" validate:"required,email"`
	Phone                  string `json:"phone" validate:"required,phone_number"`
	BirthDate              string `json:"birthDate" validate:"required,past_date"`
	Gender                 string `json:"gender" validate:"required,oneof=male female other"`
	Address                string `json:"address" validate:"required,min=5,max=500"`
	Occupation             string `json:"occupation" validate:"required,min=2,max=500"`
	EmergencyContactName   string `json:"emergencyContactName" validate:"required,min=2,max=50"`
	EmergencyContactNumber string `json:"emergencyContactNumber" validate:"required,phone_number"`
	PrimaryPhysician       string `json:"primaryPhysician" validate:"required,min=2"`
	InsuranceProvider      string `json:"insuranceProvider" validate:"required,min=2,max=50"`
	InsurancePolicyNumber  string `json:"insurancePolicyNumber" validate:"required,min=2,max=50"`
	Allergies              string `json:"allergies" validate:"omitempty,max=500"`
	CurrentMedication      string `json:"currentMedication" validate:"omitempty,max=500"`
	FamilyMedicalHistory   string `json:"familyMedicalHistory" validate:"omitempty,max=500"`
	PastMedicalHistory     string `json:"pastMedicalHistory" validate:"omitempty,max=500"`
	IdentificationType     string `json:"identificationType" validate:"omitempty,max=100"`
	IdentificationNumber   string `json:"identificationNumber" validate:"omitempty,max=100"`
	TreatmentConsent       bool   `json:"treatmentConsent" validate:"consent"`
	DisclosureConsent      bool   `json:"disclosureConsent" validate:"consent"`
	PrivacyConsent         bool   `json:"privacyConsent" validate:"consent"`
}

func (r *RegisterPatient) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}
