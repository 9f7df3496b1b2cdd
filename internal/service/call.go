package service

import (
	"context"

	"github.com/hireloop/hrms-ui-api/internal/domain/action"
	"github.com/hireloop/hrms-ui-api/internal/domain/model"
	"github.com/hireloop/hrms-ui-api/internal/ports"
)

// CallService covers telephone screening of shortlisted candidates.
type CallService struct {
	backend ports.Backend
}

// NewCallService constructs a CallService.
func NewCallService(backend ports.Backend) *CallService {
	return &CallService{backend: backend}
}

// LogCallInput is the payload for CALL_SCREENING.
type LogCallInput struct {
	CandidateID    string            `json:"candidateId"`
	Outcome        model.CallOutcome `json:"outcome"`
	Notes          string            `json:"notes,omitempty"`
	ExpectedSalary int               `json:"expectedSalary,omitempty"`
	NoticePeriod   string            `json:"noticePeriod,omitempty"`
}

func (s *CallService) LogCall(ctx context.Context, in LogCallInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.CallScreening, in, nil)
}

func (s *CallService) Logs(ctx context.Context, candidateID string) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetCallLogs, candidatePayload{CandidateID: candidateID}, nil)
}

// AllLogsInput pages through the full call history across candidates.
type AllLogsInput struct {
	Page     int    `json:"page,omitempty"`
	PageSize int    `json:"pageSize,omitempty"`
	Outcome  string `json:"outcome,omitempty"`
}

func (s *CallService) AllLogs(ctx context.Context, in AllLogsInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetAllCallLogs, in, nil)
}
