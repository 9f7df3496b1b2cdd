package service

import (
	"context"

	"github.com/hireloop/hrms-ui-api/internal/domain/action"
	"github.com/hireloop/hrms-ui-api/internal/ports"
)

// AdminService covers the admin review queue, audit and rejection logs,
// and system settings.
type AdminService struct {
	backend ports.Backend
}

// NewAdminService constructs an AdminService.
func NewAdminService(backend ports.Backend) *AdminService {
	return &AdminService{backend: backend}
}

func (s *AdminService) PendingReview(ctx context.Context) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetAdminPendingReview, nil, nil)
}

// DecisionInput carries the admin's go/no-go on a reviewed candidate.
type DecisionInput struct {
	CandidateID string `json:"candidateId"`
	Decision    string `json:"decision"` // "PROCEED" or "REJECT"
	Remarks     string `json:"remarks,omitempty"`
}

func (s *AdminService) Decide(ctx context.Context, in DecisionInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.AdminDecision, in, nil)
}

func (s *AdminService) EditMarks(ctx context.Context, in EditMarksInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.AdminEditMarks, in, nil)
}

// RevertInput undoes a prior admin decision on a candidate.
type RevertInput struct {
	CandidateID string `json:"candidateId"`
	Reason      string `json:"reason"`
}

func (s *AdminService) Revert(ctx context.Context, in RevertInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.AdminRevert, in, nil)
}

// LogQueryInput pages through the audit or rejection logs.
type LogQueryInput struct {
	Page     int    `json:"page,omitempty"`
	PageSize int    `json:"pageSize,omitempty"`
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
}

func (s *AdminService) AuditLog(ctx context.Context, in LogQueryInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetAuditLog, in, nil)
}

func (s *AdminService) RejectionLog(ctx context.Context, in LogQueryInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetRejectionLog, in, nil)
}

// RevertRejectionInput moves a rejected candidate back into the
// pipeline.
type RevertRejectionInput struct {
	CandidateID string `json:"candidateId"`
	Reason      string `json:"reason"`
}

func (s *AdminService) RevertRejection(ctx context.Context, in RevertRejectionInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.RevertRejection, in, nil)
}

func (s *AdminService) SystemStats(ctx context.Context) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetSystemStats, nil, nil)
}

// SettingsInput is a partial settings update keyed by setting name.
type SettingsInput struct {
	Settings map[string]any `json:"settings"`
}

func (s *AdminService) UpdateSettings(ctx context.Context, in SettingsInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.UpdateSettings, in, nil)
}
