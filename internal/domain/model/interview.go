package model

// CallOutcome is the result of a screening call.
type CallOutcome string

const (
	CallOutcomeNoAnswer     CallOutcome = "NO_ANSWER"
	CallOutcomeNotReachable CallOutcome = "NOT_REACHABLE"
	CallOutcomeRejected     CallOutcome = "REJECTED"
	CallOutcomeDone         CallOutcome = "CALL_DONE"
)

// Interview is a scheduled interview slot for a candidate.
type Interview struct {
	ID            string `json:"id"`
	CandidateID   string `json:"candidateId"`
	Type          string `json:"type,omitempty"`
	ScheduledDate string `json:"scheduledDate"`
	ScheduledTime string `json:"scheduledTime"`
	Interviewers  string `json:"interviewers,omitempty"`
	Notes         string `json:"notes,omitempty"`
	Appeared      *bool  `json:"appeared,omitempty"`
}

// InterviewFeedback is the panel's scorecard for a completed interview.
// Scores are on the backend's scale; TotalScore is their sum.
type InterviewFeedback struct {
	InterviewID        string `json:"interviewId"`
	TechnicalScore     int    `json:"technicalScore"`
	CommunicationScore int    `json:"communicationScore"`
	AttitudeScore      int    `json:"attitudeScore"`
	ExperienceScore    int    `json:"experienceScore"`
	TotalScore         int    `json:"totalScore"`
	Strengths          string `json:"strengths,omitempty"`
	Concerns           string `json:"concerns,omitempty"`
	Recommendation     string `json:"recommendation,omitempty"`
	RejectionReason    string `json:"rejectionReason,omitempty"`
}

// InterviewFilters narrows interview listings server-side.
type InterviewFilters struct {
	CandidateID string `json:"candidateId,omitempty"`
	Date        string `json:"date,omitempty"`
	Page        int    `json:"page,omitempty"`
	PerPage     int    `json:"pageSize,omitempty"`
}
