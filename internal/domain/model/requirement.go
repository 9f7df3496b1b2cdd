package model

// RequirementStatus tracks a hiring requirement's review lifecycle.
type RequirementStatus string

const (
	RequirementDraft             RequirementStatus = "DRAFT"
	RequirementPendingHRReview   RequirementStatus = "PENDING_HR_REVIEW"
	RequirementNeedClarification RequirementStatus = "NEED_CLARIFICATION"
	RequirementApproved          RequirementStatus = "APPROVED"
	RequirementClosed            RequirementStatus = "CLOSED"
	RequirementOnHold            RequirementStatus = "ON_HOLD"
)

// Requirement is a request to hire for a role, raised by an EA and
// reviewed by HR or the owner.
type Requirement struct {
	ID          string            `json:"id"`
	JobRole     string            `json:"jobRole"`
	Department  string            `json:"department,omitempty"`
	Positions   int               `json:"positions"`
	Description string            `json:"description,omitempty"`
	SalaryMin   int               `json:"salaryMin,omitempty"`
	SalaryMax   int               `json:"salaryMax,omitempty"`
	Status      RequirementStatus `json:"status"`
	RaisedBy    string            `json:"raisedBy,omitempty"`
	CreatedAt   string            `json:"createdAt,omitempty"`
}

// RequirementFilters narrows requirement listings server-side.
type RequirementFilters struct {
	Status  RequirementStatus `json:"status,omitempty"`
	JobRole string            `json:"jobRole,omitempty"`
	Page    int               `json:"page,omitempty"`
	PerPage int               `json:"pageSize,omitempty"`
}

// JobTemplate is a reusable requirement blueprint per job role.
type JobTemplate struct {
	ID          string `json:"id"`
	JobRole     string `json:"jobRole"`
	Department  string `json:"department,omitempty"`
	Description string `json:"description,omitempty"`
	SalaryMin   int    `json:"salaryMin,omitempty"`
	SalaryMax   int    `json:"salaryMax,omitempty"`
}
