package action

// Package action defines the closed catalog of remote operations the
// backend understands. The string values are the wire contract and must
// be preserved verbatim for backend compatibility.

// Action is a named remote operation identifier sent to the backend.
type Action string

const (
	// Auth.
	AuthLogin          Action = "AUTH_LOGIN"
	AuthLogout         Action = "AUTH_LOGOUT"
	AuthValidate       Action = "AUTH_VALIDATE"
	GetUserPermissions Action = "GET_USER_PERMISSIONS"

	// Requirements.
	GetRequirements     Action = "GET_REQUIREMENTS"
	GetRequirement      Action = "GET_REQUIREMENT"
	RaiseRequirement    Action = "RAISE_REQUIREMENT"
	UpdateRequirement   Action = "UPDATE_REQUIREMENT"
	ApproveRequirement  Action = "APPROVE_REQUIREMENT"
	SendBackRequirement Action = "SEND_BACK_REQUIREMENT"
	CloseRequirement    Action = "CLOSE_REQUIREMENT"

	// Job templates.
	GetJobTemplates   Action = "GET_JOB_TEMPLATES"
	GetJobTemplate    Action = "GET_JOB_TEMPLATE"
	CreateJobTemplate Action = "CREATE_JOB_TEMPLATE"
	UpdateJobTemplate Action = "UPDATE_JOB_TEMPLATE"

	// Job postings.
	GetJobPostings    Action = "GET_JOB_POSTINGS"
	GetJobPosting     Action = "GET_JOB_POSTING"
	CreateJobPosting  Action = "CREATE_JOB_POSTING"
	UpdateJobPosting  Action = "UPDATE_JOB_POSTING"
	MarkJobPosted     Action = "MARK_JOB_POSTED"
	GetJobDescription Action = "GET_JOB_DESCRIPTION"

	// Candidates.
	GetCandidates       Action = "GET_CANDIDATES"
	GetCandidate        Action = "GET_CANDIDATE"
	AddCandidate        Action = "ADD_CANDIDATE"
	BulkAddCandidates   Action = "BULK_ADD_CANDIDATES"
	UpdateCandidate     Action = "UPDATE_CANDIDATE"
	ShortlistDecision   Action = "SHORTLIST_DECISION"
	GetCandidateHistory Action = "GET_CANDIDATE_HISTORY"
	GetWaitlist         Action = "GET_WAITLIST"

	// Call screening.
	CallScreening  Action = "CALL_SCREENING"
	GetCallLogs    Action = "GET_CALL_LOGS"
	GetAllCallLogs Action = "GET_ALL_CALL_LOGS"

	// Interviews.
	GetInterviews           Action = "GET_INTERVIEWS"
	ScheduleInterview       Action = "SCHEDULE_INTERVIEW"
	RescheduleInterview     Action = "RESCHEDULE_INTERVIEW"
	MarkInterviewAttendance Action = "MARK_INTERVIEW_ATTENDANCE"
	PreInterviewFeedback    Action = "PRE_INTERVIEW_FEEDBACK"
	SubmitInterviewFeedback Action = "SUBMIT_INTERVIEW_FEEDBACK"
	OwnerInterviewDecision  Action = "OWNER_INTERVIEW_DECISION"

	// Tests.
	GenerateTestLink Action = "GENERATE_TEST_LINK"
	GetTestQuestions Action = "GET_TEST_QUESTIONS"
	SubmitTestAnswer Action = "SUBMIT_TEST_ANSWER"
	SubmitTest       Action = "SUBMIT_TEST"
	GetTestResults   Action = "GET_TEST_RESULTS"
	EditTestMarks    Action = "EDIT_TEST_MARKS"

	// Admin.
	GetAdminPendingReview Action = "GET_ADMIN_PENDING_REVIEW"
	AdminDecision         Action = "ADMIN_DECISION"
	AdminEditMarks        Action = "ADMIN_EDIT_MARKS"
	AdminRevert           Action = "ADMIN_REVERT"
	GetAuditLog           Action = "GET_AUDIT_LOG"
	GetRejectionLog       Action = "GET_REJECTION_LOG"
	RevertRejection       Action = "REVERT_REJECTION"
	GetSystemStats        Action = "GET_SYSTEM_STATS"
	UpdateSettings        Action = "UPDATE_SETTINGS"

	// Final interview and selection.
	ScheduleFinalInterview Action = "SCHEDULE_FINAL_INTERVIEW"
	FinalInterviewDecision Action = "FINAL_INTERVIEW_DECISION"

	// Owner review.
	GetOwnerQueue          Action = "GET_OWNER_QUEUE"
	GetFinalInterviewQueue Action = "GET_FINAL_INTERVIEW_QUEUE"
	GetCandidateCV         Action = "GET_CANDIDATE_CV"
	GetCandidateJourney    Action = "GET_CANDIDATE_JOURNEY"
	GetOwnerDashboardStats Action = "GET_OWNER_DASHBOARD_STATS"

	// Onboarding.
	InitiateOnboarding    Action = "INITIATE_ONBOARDING"
	GetSelectedCandidates Action = "GET_SELECTED_CANDIDATES"
	UploadDocument        Action = "UPLOAD_DOCUMENT"
	VerifyDocument        Action = "VERIFY_DOCUMENT"
	GetCandidateDocuments Action = "GET_CANDIDATE_DOCUMENTS"
	DownloadDocument      Action = "DOWNLOAD_DOCUMENT"
	ViewDocument          Action = "VIEW_DOCUMENT"
	SetJoiningDate        Action = "SET_JOINING_DATE"
	PostponeJoining       Action = "POSTPONE_JOINING"
	ConfirmJoining        Action = "CONFIRM_JOINING"
	GetOnboardingStatus   Action = "GET_ONBOARDING_STATUS"
	GetProbationList      Action = "GET_PROBATION_LIST"
	ConfirmEmployee       Action = "CONFIRM_EMPLOYEE"

	// User management.
	GetUsers              Action = "GET_USERS"
	CreateUser            Action = "CREATE_USER"
	UpdateUser            Action = "UPDATE_USER"
	UpdateUserPermissions Action = "UPDATE_USER_PERMISSIONS"
	DeactivateUser        Action = "DEACTIVATE_USER"

	// Dashboard.
	GetDashboardStats Action = "GET_DASHBOARD_STATS"
	GetRecentActivity Action = "GET_RECENT_ACTIVITY"
	GetPendingActions Action = "GET_PENDING_ACTIONS"
	GetChartData      Action = "GET_CHART_DATA"
)

// catalog holds every defined action for validation.
var catalog = map[Action]struct{}{
	AuthLogin: {}, AuthLogout: {}, AuthValidate: {}, GetUserPermissions: {},
	GetRequirements: {}, GetRequirement: {}, RaiseRequirement: {}, UpdateRequirement: {},
	ApproveRequirement: {}, SendBackRequirement: {}, CloseRequirement: {},
	GetJobTemplates: {}, GetJobTemplate: {}, CreateJobTemplate: {}, UpdateJobTemplate: {},
	GetJobPostings: {}, GetJobPosting: {}, CreateJobPosting: {}, UpdateJobPosting: {},
	MarkJobPosted: {}, GetJobDescription: {},
	GetCandidates: {}, GetCandidate: {}, AddCandidate: {}, BulkAddCandidates: {},
	UpdateCandidate: {}, ShortlistDecision: {}, GetCandidateHistory: {}, GetWaitlist: {},
	CallScreening: {}, GetCallLogs: {}, GetAllCallLogs: {},
	GetInterviews: {}, ScheduleInterview: {}, RescheduleInterview: {},
	MarkInterviewAttendance: {}, PreInterviewFeedback: {}, SubmitInterviewFeedback: {},
	OwnerInterviewDecision: {},
	GenerateTestLink:       {}, GetTestQuestions: {}, SubmitTestAnswer: {}, SubmitTest: {},
	GetTestResults: {}, EditTestMarks: {},
	GetAdminPendingReview: {}, AdminDecision: {}, AdminEditMarks: {}, AdminRevert: {},
	GetAuditLog: {}, GetRejectionLog: {}, RevertRejection: {}, GetSystemStats: {},
	UpdateSettings: {},
	ScheduleFinalInterview: {}, FinalInterviewDecision: {},
	GetOwnerQueue: {}, GetFinalInterviewQueue: {}, GetCandidateCV: {},
	GetCandidateJourney: {}, GetOwnerDashboardStats: {},
	InitiateOnboarding: {}, GetSelectedCandidates: {}, UploadDocument: {}, VerifyDocument: {},
	GetCandidateDocuments: {}, DownloadDocument: {}, ViewDocument: {}, SetJoiningDate: {},
	PostponeJoining: {}, ConfirmJoining: {}, GetOnboardingStatus: {}, GetProbationList: {},
	ConfirmEmployee: {},
	GetUsers: {}, CreateUser: {}, UpdateUser: {}, UpdateUserPermissions: {}, DeactivateUser: {},
	GetDashboardStats: {}, GetRecentActivity: {}, GetPendingActions: {}, GetChartData: {},
}

// Valid reports whether a is a defined catalog action.
func (a Action) Valid() bool {
	_, ok := catalog[a]
	return ok
}

// String returns the wire name of the action.
func (a Action) String() string { return string(a) }

// public lists actions reachable without a session. The online test is
// taken by candidates through a tokenized link, before any login exists.
var public = map[Action]struct{}{
	AuthLogin:        {},
	GetTestQuestions: {},
	SubmitTestAnswer: {},
	SubmitTest:       {},
}

// Public reports whether a may be dispatched without an authenticated
// session. The test token inside the payload is the backend's own gate.
func (a Action) Public() bool {
	_, ok := public[a]
	return ok
}
