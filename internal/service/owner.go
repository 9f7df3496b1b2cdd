package service

import (
	"context"

	"github.com/hireloop/hrms-ui-api/internal/domain/action"
	"github.com/hireloop/hrms-ui-api/internal/domain/model"
	"github.com/hireloop/hrms-ui-api/internal/ports"
)

// OwnerService groups the operations reserved for the business owner:
// the review queues, the final interview verdict and the owner's own
// take on first-round interviews.
type OwnerService struct {
	backend ports.Backend
}

// NewOwnerService constructs an OwnerService.
func NewOwnerService(backend ports.Backend) *OwnerService {
	return &OwnerService{backend: backend}
}

// InterviewDecisionInput records the owner's call on an interview.
type InterviewDecisionInput struct {
	InterviewID string `json:"interviewId"`
	Decision    string `json:"decision"` // "PROCEED", "REJECT" or "WAITLIST"
	Remarks     string `json:"remarks,omitempty"`
}

func (s *OwnerService) InterviewDecision(ctx context.Context, in InterviewDecisionInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.OwnerInterviewDecision, in, nil)
}

// FinalDecisionInput is the payload for FINAL_INTERVIEW_DECISION. A
// SELECT decision carries the offered salary.
type FinalDecisionInput struct {
	CandidateID   string `json:"candidateId"`
	Decision      string `json:"decision"` // "SELECT", "REJECT" or "WAITLIST"
	OfferedSalary int    `json:"offeredSalary,omitempty"`
	Remarks       string `json:"remarks,omitempty"`
}

func (s *OwnerService) FinalDecision(ctx context.Context, in FinalDecisionInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.FinalInterviewDecision, in, nil)
}

// Queue lists candidates pending the owner's first-round review.
func (s *OwnerService) Queue(ctx context.Context, filters model.CandidateFilters) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetOwnerQueue, filtersPayload{Filters: filters}, nil)
}

// FinalInterviewQueue lists candidates awaiting the final interview
// verdict.
func (s *OwnerService) FinalInterviewQueue(ctx context.Context, filters model.CandidateFilters) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetFinalInterviewQueue, filtersPayload{Filters: filters}, nil)
}

// CandidateCV resolves the stored CV location for a candidate. The
// result data carries a cvUrl field.
func (s *OwnerService) CandidateCV(ctx context.Context, candidateID string) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetCandidateCV, candidatePayload{CandidateID: candidateID}, nil)
}

// CandidateJourney returns the full pipeline history of a candidate,
// from sourcing through the current stage.
func (s *OwnerService) CandidateJourney(ctx context.Context, candidateID string) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetCandidateJourney, candidatePayload{CandidateID: candidateID}, nil)
}

// DashboardStats returns the owner-scoped hiring metrics.
func (s *OwnerService) DashboardStats(ctx context.Context) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetOwnerDashboardStats, nil, nil)
}
