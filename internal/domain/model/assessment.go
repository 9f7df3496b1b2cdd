package model

// TestType identifies a skill assessment administered to candidates.
type TestType string

const (
	TestExcel     TestType = "EXCEL"
	TestTally     TestType = "TALLY"
	TestVoice     TestType = "VOICE"
	TestTyping    TestType = "TYPING"
	TestAptitude  TestType = "APTITUDE"
	TestCoding    TestType = "CODING"
	TestTechnical TestType = "TECHNICAL"
	TestGeneral   TestType = "GENERAL"
)

// TestsForJobRole returns the assessments a job role requires. Unknown
// roles fall back to a single general test, matching the backend's
// grading configuration.
func TestsForJobRole(jobRole string) []TestType {
	switch jobRole {
	case "ACCOUNTS":
		return []TestType{TestTally, TestExcel}
	case "FINANCE":
		return []TestType{TestExcel, TestAptitude}
	case "SALES":
		return []TestType{TestVoice, TestExcel}
	case "CRM":
		return []TestType{TestExcel, TestVoice}
	case "HR":
		return []TestType{TestExcel, TestGeneral}
	case "ADMIN":
		return []TestType{TestExcel, TestGeneral}
	case "IT":
		return []TestType{TestCoding, TestAptitude}
	case "SUPPORT":
		return []TestType{TestVoice, TestTyping}
	default:
		return []TestType{TestGeneral}
	}
}

// TestResult is a candidate's graded outcome for one test type.
type TestResult struct {
	CandidateID string   `json:"candidateId"`
	TestType    TestType `json:"testType"`
	Score       int      `json:"score"`
	MaxScore    int      `json:"maxScore"`
	Passed      bool     `json:"passed"`
	GradedAt    string   `json:"gradedAt,omitempty"`
}
