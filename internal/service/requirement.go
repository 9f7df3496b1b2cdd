package service

// The feature services are typed wrappers over the action catalog: they
// shape payloads at compile time and pass the backend's structured
// result through untouched. Business rules live server-side.

import (
	"context"

	"github.com/hireloop/hrms-ui-api/internal/domain/action"
	"github.com/hireloop/hrms-ui-api/internal/domain/model"
	"github.com/hireloop/hrms-ui-api/internal/ports"
)

// RequirementService covers raising, reviewing and closing hiring
// requirements, plus the job template and posting operations that hang
// off an approved requirement.
type RequirementService struct {
	backend ports.Backend
}

// NewRequirementService constructs a RequirementService.
func NewRequirementService(backend ports.Backend) *RequirementService {
	return &RequirementService{backend: backend}
}

func (s *RequirementService) List(ctx context.Context, filters model.RequirementFilters) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetRequirements, filters, nil)
}

func (s *RequirementService) Get(ctx context.Context, requirementID string) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetRequirement, requirementPayload{RequirementID: requirementID}, nil)
}

// RaiseRequirementInput is the payload for RAISE_REQUIREMENT.
type RaiseRequirementInput struct {
	JobRole     string `json:"jobRole"`
	Department  string `json:"department"`
	Positions   int    `json:"positions"`
	Description string `json:"description"`
	SalaryMin   int    `json:"salaryMin,omitempty"`
	SalaryMax   int    `json:"salaryMax,omitempty"`
}

func (s *RequirementService) Raise(ctx context.Context, in RaiseRequirementInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.RaiseRequirement, in, nil)
}

// UpdateRequirementInput is the payload for UPDATE_REQUIREMENT.
type UpdateRequirementInput struct {
	RequirementID string `json:"requirementId"`
	RaiseRequirementInput
}

func (s *RequirementService) Update(ctx context.Context, in UpdateRequirementInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.UpdateRequirement, in, nil)
}

// ReviewInput carries an HR review decision on a requirement.
type ReviewInput struct {
	RequirementID string `json:"requirementId"`
	Remarks       string `json:"remarks,omitempty"`
}

func (s *RequirementService) Approve(ctx context.Context, in ReviewInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.ApproveRequirement, in, nil)
}

func (s *RequirementService) SendBack(ctx context.Context, in ReviewInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.SendBackRequirement, in, nil)
}

func (s *RequirementService) Close(ctx context.Context, in ReviewInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.CloseRequirement, in, nil)
}

// Job templates.

func (s *RequirementService) ListTemplates(ctx context.Context) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetJobTemplates, nil, nil)
}

func (s *RequirementService) GetTemplate(ctx context.Context, templateID string) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetJobTemplate, templatePayload{TemplateID: templateID}, nil)
}

// JobTemplateInput is the payload for job template create/update.
type JobTemplateInput struct {
	TemplateID  string `json:"templateId,omitempty"`
	JobRole     string `json:"jobRole"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Skills      string `json:"skills,omitempty"`
}

func (s *RequirementService) CreateTemplate(ctx context.Context, in JobTemplateInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.CreateJobTemplate, in, nil)
}

func (s *RequirementService) UpdateTemplate(ctx context.Context, in JobTemplateInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.UpdateJobTemplate, in, nil)
}

// Job postings.

func (s *RequirementService) ListPostings(ctx context.Context) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetJobPostings, nil, nil)
}

func (s *RequirementService) GetPosting(ctx context.Context, postingID string) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetJobPosting, postingPayload{PostingID: postingID}, nil)
}

// JobPostingInput is the payload for posting create/update.
type JobPostingInput struct {
	PostingID     string `json:"postingId,omitempty"`
	RequirementID string `json:"requirementId"`
	TemplateID    string `json:"templateId,omitempty"`
	Portal        string `json:"portal"`
	URL           string `json:"url,omitempty"`
}

func (s *RequirementService) CreatePosting(ctx context.Context, in JobPostingInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.CreateJobPosting, in, nil)
}

func (s *RequirementService) UpdatePosting(ctx context.Context, in JobPostingInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.UpdateJobPosting, in, nil)
}

func (s *RequirementService) MarkPosted(ctx context.Context, postingID string) (ports.Result, error) {
	return s.backend.Call(ctx, action.MarkJobPosted, postingPayload{PostingID: postingID}, nil)
}

func (s *RequirementService) JobDescription(ctx context.Context, requirementID string) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetJobDescription, requirementPayload{RequirementID: requirementID}, nil)
}

// Shared small payloads.

type requirementPayload struct {
	RequirementID string `json:"requirementId"`
}

type templatePayload struct {
	TemplateID string `json:"templateId"`
}

type postingPayload struct {
	PostingID string `json:"postingId"`
}
