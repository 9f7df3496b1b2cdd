package service

import (
	"context"

	"github.com/hireloop/hrms-ui-api/internal/domain/action"
	"github.com/hireloop/hrms-ui-api/internal/ports"
)

// AssessmentService covers the online skill tests candidates take
// through tokenized links. The question/answer operations are public:
// the test token inside the payload is the backend's gate.
type AssessmentService struct {
	backend ports.Backend
}

// NewAssessmentService constructs an AssessmentService.
func NewAssessmentService(backend ports.Backend) *AssessmentService {
	return &AssessmentService{backend: backend}
}

// GenerateLinkInput is the payload for GENERATE_TEST_LINK.
type GenerateLinkInput struct {
	CandidateID string   `json:"candidateId"`
	TestTypes   []string `json:"testTypes,omitempty"`
}

func (s *AssessmentService) GenerateLink(ctx context.Context, in GenerateLinkInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.GenerateTestLink, in, nil)
}

type testTokenPayload struct {
	TestToken string `json:"testToken"`
}

func (s *AssessmentService) Questions(ctx context.Context, testToken string) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetTestQuestions, testTokenPayload{TestToken: testToken}, nil)
}

// AnswerInput is the payload for SUBMIT_TEST_ANSWER. Answers are sent
// one at a time so a dropped connection loses at most one.
type AnswerInput struct {
	TestToken  string `json:"testToken"`
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

func (s *AssessmentService) SubmitAnswer(ctx context.Context, in AnswerInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.SubmitTestAnswer, in, nil)
}

func (s *AssessmentService) Submit(ctx context.Context, testToken string) (ports.Result, error) {
	return s.backend.Call(ctx, action.SubmitTest, testTokenPayload{TestToken: testToken}, nil)
}

func (s *AssessmentService) Results(ctx context.Context, candidateID string) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetTestResults, candidatePayload{CandidateID: candidateID}, nil)
}

// EditMarksInput is the payload for EDIT_TEST_MARKS.
type EditMarksInput struct {
	CandidateID string `json:"candidateId"`
	TestType    string `json:"testType"`
	Score       int    `json:"score"`
	Reason      string `json:"reason,omitempty"`
}

func (s *AssessmentService) EditMarks(ctx context.Context, in EditMarksInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.EditTestMarks, in, nil)
}
