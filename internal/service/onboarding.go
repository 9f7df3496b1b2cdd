package service

import (
	"context"

	"github.com/hireloop/hrms-ui-api/internal/domain/action"
	"github.com/hireloop/hrms-ui-api/internal/domain/model"
	"github.com/hireloop/hrms-ui-api/internal/ports"
)

// OnboardingService covers document collection and joining for selected
// candidates, through probation tracking.
type OnboardingService struct {
	backend ports.Backend
}

// NewOnboardingService constructs an OnboardingService.
func NewOnboardingService(backend ports.Backend) *OnboardingService {
	return &OnboardingService{backend: backend}
}

func (s *OnboardingService) Initiate(ctx context.Context, candidateID string) (ports.Result, error) {
	return s.backend.Call(ctx, action.InitiateOnboarding, candidatePayload{CandidateID: candidateID}, nil)
}

// SelectedCandidates lists candidates selected at the final interview
// and now moving through onboarding.
func (s *OnboardingService) SelectedCandidates(ctx context.Context, filters model.CandidateFilters) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetSelectedCandidates, filtersPayload{Filters: filters}, nil)
}

// UploadDocumentInput is the payload for UPLOAD_DOCUMENT. File is the
// base64-encoded content.
type UploadDocumentInput struct {
	CandidateID string             `json:"candidateId"`
	DocType     model.DocumentType `json:"docType"`
	File        string             `json:"file"`
	FileName    string             `json:"fileName"`
}

func (s *OnboardingService) UploadDocument(ctx context.Context, in UploadDocumentInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.UploadDocument, in, nil)
}

// VerifyDocumentInput records a verification pass/fail with remark.
type VerifyDocumentInput struct {
	CandidateID string             `json:"candidateId"`
	DocType     model.DocumentType `json:"docType"`
	Verified    bool               `json:"verified"`
	Remark      string             `json:"remark,omitempty"`
}

func (s *OnboardingService) VerifyDocument(ctx context.Context, in VerifyDocumentInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.VerifyDocument, in, nil)
}

// Documents lists the documents collected for a candidate with their
// verification state.
func (s *OnboardingService) Documents(ctx context.Context, candidateID string) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetCandidateDocuments, candidatePayload{CandidateID: candidateID}, nil)
}

// DownloadDocument resolves a stored document to a url and filename
// for download.
func (s *OnboardingService) DownloadDocument(ctx context.Context, documentID string) (ports.Result, error) {
	return s.backend.Call(ctx, action.DownloadDocument, documentPayload{DocumentID: documentID}, nil)
}

// ViewDocument resolves a stored document to a url for inline viewing.
func (s *OnboardingService) ViewDocument(ctx context.Context, documentID string) (ports.Result, error) {
	return s.backend.Call(ctx, action.ViewDocument, documentPayload{DocumentID: documentID}, nil)
}

// JoiningDateInput sets the agreed joining date (ISO date string).
type JoiningDateInput struct {
	CandidateID string `json:"candidateId"`
	JoiningDate string `json:"joiningDate"`
}

func (s *OnboardingService) SetJoiningDate(ctx context.Context, in JoiningDateInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.SetJoiningDate, in, nil)
}

func (s *OnboardingService) ConfirmJoining(ctx context.Context, candidateID string) (ports.Result, error) {
	return s.backend.Call(ctx, action.ConfirmJoining, candidatePayload{CandidateID: candidateID}, nil)
}

// PostponeJoiningInput moves an agreed joining date forward with a
// mandatory reason.
type PostponeJoiningInput struct {
	CandidateID    string `json:"candidateId"`
	NewJoiningDate string `json:"newJoiningDate"`
	Reason         string `json:"reason"`
}

func (s *OnboardingService) PostponeJoining(ctx context.Context, in PostponeJoiningInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.PostponeJoining, in, nil)
}

func (s *OnboardingService) Status(ctx context.Context, candidateID string) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetOnboardingStatus, candidatePayload{CandidateID: candidateID}, nil)
}

func (s *OnboardingService) ProbationList(ctx context.Context) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetProbationList, nil, nil)
}

// ConfirmEmployee marks a probationer as confirmed. Keyed by the
// employee record, not the candidate.
func (s *OnboardingService) ConfirmEmployee(ctx context.Context, employeeID string) (ports.Result, error) {
	return s.backend.Call(ctx, action.ConfirmEmployee, employeePayload{EmployeeID: employeeID}, nil)
}

type employeePayload struct {
	EmployeeID string `json:"employeeId"`
}

type documentPayload struct {
	DocumentID string `json:"documentId"`
}
