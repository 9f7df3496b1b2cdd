package model

// Package model holds the record shapes and status vocabularies the UI
// layer passes between the backend and its own caches. The backend owns
// all transitions; nothing here enforces workflow rules.

// CandidateStatus tracks a candidate through the hiring pipeline.
type CandidateStatus string

const (
	CandidateNew                  CandidateStatus = "NEW"
	CandidateShortlisted          CandidateStatus = "SHORTLISTED"
	CandidateRejectedShortlisting CandidateStatus = "REJECTED_SHORTLISTING"
	CandidateOnCall               CandidateStatus = "ON_CALL"
	CandidateCallNoAnswer         CandidateStatus = "CALL_NO_ANSWER"
	CandidateCallNotReachable     CandidateStatus = "CALL_NOT_REACHABLE"
	CandidateCallRejected         CandidateStatus = "CALL_REJECTED"
	CandidateCallDone             CandidateStatus = "CALL_DONE"
	CandidateOwnerReview          CandidateStatus = "OWNER_REVIEW"
	CandidateInterviewScheduled   CandidateStatus = "INTERVIEW_SCHEDULED"
	CandidateInterviewNotAppeared CandidateStatus = "INTERVIEW_NOT_APPEARED"
	CandidateInterviewAppeared    CandidateStatus = "INTERVIEW_APPEARED"
	CandidatePreInterviewPass     CandidateStatus = "PRE_INTERVIEW_PASS"
	CandidatePreInterviewFail     CandidateStatus = "PRE_INTERVIEW_FAIL"
	CandidateAdminReview          CandidateStatus = "ADMIN_REVIEW"
	CandidateTestPending          CandidateStatus = "TEST_PENDING"
	CandidateTestInProgress       CandidateStatus = "TEST_IN_PROGRESS"
	CandidateTestSubmitted        CandidateStatus = "TEST_SUBMITTED"
	CandidateTestPass             CandidateStatus = "TEST_PASS"
	CandidateTestFail             CandidateStatus = "TEST_FAIL"
	CandidateFinalInterview       CandidateStatus = "FINAL_INTERVIEW_SCHEDULED"
	CandidateSelected             CandidateStatus = "SELECTED"
	CandidateOnHold               CandidateStatus = "ON_HOLD"
	CandidateRejected             CandidateStatus = "REJECTED"
	CandidateOfferSent            CandidateStatus = "OFFER_SENT"
	CandidateOfferAccepted        CandidateStatus = "OFFER_ACCEPTED"
	CandidateOfferDeclined        CandidateStatus = "OFFER_DECLINED"
	CandidateDocumentsPending     CandidateStatus = "DOCUMENTS_PENDING"
	CandidateDocumentsVerified    CandidateStatus = "DOCUMENTS_VERIFIED"
	CandidateJoined               CandidateStatus = "JOINED"
	CandidateProbation            CandidateStatus = "PROBATION"
	CandidateConfirmed            CandidateStatus = "CONFIRMED"
)

// Candidate is the backend's candidate record as rendered by the UI.
type Candidate struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Mobile     string          `json:"mobile"`
	Email      string          `json:"email,omitempty"`
	JobRole    string          `json:"jobRole"`
	Source     string          `json:"source,omitempty"`
	Experience string          `json:"experience,omitempty"`
	Status     CandidateStatus `json:"status"`
	CVFileName string          `json:"cvFileName,omitempty"`
	CreatedAt  string          `json:"createdAt,omitempty"`
	UpdatedAt  string          `json:"updatedAt,omitempty"`
}

// CandidateFilters narrows candidate listings server-side.
type CandidateFilters struct {
	Status  CandidateStatus `json:"status,omitempty"`
	JobRole string          `json:"jobRole,omitempty"`
	Search  string          `json:"search,omitempty"`
	Page    int             `json:"page,omitempty"`
	PerPage int             `json:"pageSize,omitempty"`
}
