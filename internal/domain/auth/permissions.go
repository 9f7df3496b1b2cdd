package auth

// Permission is a fine-grained capability string checked against a
// user's cached set. The catalog below is the backend's permission
// vocabulary and must stay in sync with it.
type Permission string

const (
	// Requirement module.
	PermRequirementCreate   Permission = "REQUIREMENT_CREATE"
	PermRequirementEdit     Permission = "REQUIREMENT_EDIT"
	PermRequirementApprove  Permission = "REQUIREMENT_APPROVE"
	PermRequirementSendBack Permission = "REQUIREMENT_SEND_BACK"

	// Job posting module.
	PermJobPostingCreate Permission = "JOB_POSTING_CREATE"
	PermJobPostingEdit   Permission = "JOB_POSTING_EDIT"
	PermJobPostingView   Permission = "JOB_POSTING_VIEW"

	// Candidate module.
	PermCandidateAdd    Permission = "CANDIDATE_ADD"
	PermCandidateEdit   Permission = "CANDIDATE_EDIT"
	PermCandidateView   Permission = "CANDIDATE_VIEW"
	PermCandidateDelete Permission = "CANDIDATE_DELETE"

	// Shortlisting.
	PermShortlistApprove Permission = "SHORTLIST_APPROVE"
	PermShortlistReject  Permission = "SHORTLIST_REJECT"

	// Call screening.
	PermCallScreening Permission = "CALL_SCREENING"
	PermCallLogView   Permission = "CALL_LOG_VIEW"

	// Interviews.
	PermInterviewSchedule    Permission = "INTERVIEW_SCHEDULE"
	PermInterviewFeedback    Permission = "INTERVIEW_FEEDBACK"
	PermInterviewPreFeedback Permission = "INTERVIEW_PRE_FEEDBACK"

	// Tests.
	PermTestGenerateLink Permission = "TEST_GENERATE_LINK"
	PermTestViewResults  Permission = "TEST_VIEW_RESULTS"
	PermTestEditMarks    Permission = "TEST_EDIT_MARKS"

	// Admin functions.
	PermAdminDecision  Permission = "ADMIN_DECISION"
	PermAdminEditMarks Permission = "ADMIN_EDIT_MARKS"
	PermAdminRevert    Permission = "ADMIN_REVERT"
	PermAdminSettings  Permission = "ADMIN_SETTINGS"

	// Final interview.
	PermFinalInterviewDecision Permission = "FINAL_INTERVIEW_DECISION"

	// Onboarding.
	PermOnboardingManage Permission = "ONBOARDING_MANAGE"
	PermDocumentsVerify  Permission = "DOCUMENTS_VERIFY"

	// Logs.
	PermViewAuditLog     Permission = "VIEW_AUDIT_LOG"
	PermViewRejectionLog Permission = "VIEW_REJECTION_LOG"
	PermRevertRejection  Permission = "REVERT_REJECTION"
)

// RolePermissions maps each role to its default permission set. The
// backend is authoritative; this table is the fallback when a login
// response carries a role but no explicit permission list.
func RolePermissions(r Role) []Permission {
	switch r {
	case RoleAdmin:
		return []Permission{
			PermRequirementCreate, PermRequirementEdit, PermRequirementApprove, PermRequirementSendBack,
			PermJobPostingCreate, PermJobPostingEdit, PermJobPostingView,
			PermCandidateAdd, PermCandidateEdit, PermCandidateView, PermCandidateDelete,
			PermShortlistApprove, PermShortlistReject,
			PermCallScreening, PermCallLogView,
			PermInterviewSchedule, PermInterviewFeedback, PermInterviewPreFeedback,
			PermTestGenerateLink, PermTestViewResults, PermTestEditMarks,
			PermAdminDecision, PermAdminEditMarks, PermAdminRevert, PermAdminSettings,
			PermFinalInterviewDecision,
			PermOnboardingManage, PermDocumentsVerify,
			PermViewAuditLog, PermViewRejectionLog, PermRevertRejection,
		}
	case RoleHR:
		return []Permission{
			PermRequirementApprove, PermRequirementSendBack,
			PermJobPostingCreate, PermJobPostingEdit, PermJobPostingView,
			PermCandidateAdd, PermCandidateView,
			PermShortlistApprove, PermShortlistReject,
			PermCallScreening, PermCallLogView,
			PermInterviewSchedule, PermInterviewFeedback, PermInterviewPreFeedback,
			PermTestGenerateLink, PermTestViewResults,
			PermOnboardingManage, PermDocumentsVerify,
			PermViewRejectionLog,
		}
	case RoleEA:
		return []Permission{
			PermRequirementCreate, PermRequirementEdit,
			PermJobPostingView,
			PermCandidateView,
			PermTestViewResults, PermTestEditMarks,
		}
	case RoleOwner:
		return []Permission{
			PermRequirementApprove,
			PermJobPostingView,
			PermCandidateView,
			PermCallLogView,
			PermInterviewFeedback,
			PermTestViewResults,
			PermAdminDecision,
			PermFinalInterviewDecision,
			PermViewAuditLog, PermViewRejectionLog,
		}
	}
	return nil
}
