package service

import (
	"context"

	"github.com/hireloop/hrms-ui-api/internal/domain/action"
	"github.com/hireloop/hrms-ui-api/internal/domain/model"
	"github.com/hireloop/hrms-ui-api/internal/ports"
)

// CandidateService covers the candidate pipeline from sourcing through
// shortlisting.
type CandidateService struct {
	backend ports.Backend
}

// NewCandidateService constructs a CandidateService.
func NewCandidateService(backend ports.Backend) *CandidateService {
	return &CandidateService{backend: backend}
}

func (s *CandidateService) List(ctx context.Context, filters model.CandidateFilters) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetCandidates, filters, nil)
}

func (s *CandidateService) Get(ctx context.Context, candidateID string) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetCandidate, candidatePayload{CandidateID: candidateID}, nil)
}

// AddCandidateInput is the payload for ADD_CANDIDATE. CVFile is the
// base64-encoded document; the backend stores it and keeps the name.
type AddCandidateInput struct {
	Name          string `json:"name"`
	Mobile        string `json:"mobile"`
	Email         string `json:"email,omitempty"`
	JobRole       string `json:"jobRole"`
	RequirementID string `json:"requirementId,omitempty"`
	Source        string `json:"source,omitempty"`
	CVFile        string `json:"cvFile,omitempty"`
	CVFileName    string `json:"cvFileName,omitempty"`
}

func (s *CandidateService) Add(ctx context.Context, in AddCandidateInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.AddCandidate, in, nil)
}

// BulkAddInput is the payload for BULK_ADD_CANDIDATES.
type BulkAddInput struct {
	Candidates []AddCandidateInput `json:"candidates"`
}

func (s *CandidateService) BulkAdd(ctx context.Context, in BulkAddInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.BulkAddCandidates, in, nil)
}

// UpdateCandidateInput is the payload for UPDATE_CANDIDATE. Fields
// are sent as a partial update map shaped by the caller.
type UpdateCandidateInput struct {
	CandidateID string         `json:"candidateId"`
	Updates     map[string]any `json:"updates"`
}

func (s *CandidateService) Update(ctx context.Context, in UpdateCandidateInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.UpdateCandidate, in, nil)
}

// ShortlistDecisionInput carries the HR approve/reject call on a
// sourced candidate.
type ShortlistDecisionInput struct {
	CandidateID string `json:"candidateId"`
	Decision    string `json:"decision"` // "APPROVE" or "REJECT"
	Reason      string `json:"reason,omitempty"`
}

func (s *CandidateService) ShortlistDecision(ctx context.Context, in ShortlistDecisionInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.ShortlistDecision, in, nil)
}

func (s *CandidateService) History(ctx context.Context, candidateID string) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetCandidateHistory, candidatePayload{CandidateID: candidateID}, nil)
}

func (s *CandidateService) Waitlist(ctx context.Context, filters model.CandidateFilters) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetWaitlist, filters, nil)
}

type candidatePayload struct {
	CandidateID string `json:"candidateId"`
}

// filtersPayload wraps list filters for the queue actions whose wire
// contract nests them under a filters key.
type filtersPayload struct {
	Filters model.CandidateFilters `json:"filters"`
}
