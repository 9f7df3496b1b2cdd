package model

// DocumentType identifies a document collected during onboarding.
type DocumentType string

const (
	DocumentPhoto        DocumentType = "PHOTO"
	DocumentAadhar       DocumentType = "AADHAR"
	DocumentPAN          DocumentType = "PAN"
	DocumentAddressProof DocumentType = "ADDRESS_PROOF"
	DocumentEducation    DocumentType = "EDUCATION"
	DocumentExperience   DocumentType = "EXPERIENCE"
	DocumentBank         DocumentType = "BANK"
)

// RequiredDocuments lists the documents every joiner must submit.
// EXPERIENCE is optional for freshers and intentionally absent here.
func RequiredDocuments() []DocumentType {
	return []DocumentType{
		DocumentPhoto,
		DocumentAadhar,
		DocumentPAN,
		DocumentAddressProof,
		DocumentEducation,
		DocumentBank,
	}
}

// DocumentStatus is the verification state of one uploaded document.
type DocumentStatus struct {
	Type     DocumentType `json:"docType"`
	Uploaded bool         `json:"uploaded"`
	Verified bool         `json:"verified"`
	Remark   string       `json:"remark,omitempty"`
}

// OnboardingStatus is the backend's onboarding progress record for a
// selected candidate.
type OnboardingStatus struct {
	CandidateID string           `json:"candidateId"`
	Documents   []DocumentStatus `json:"documents"`
	JoiningDate string           `json:"joiningDate,omitempty"`
	Joined      bool             `json:"joined"`
}
