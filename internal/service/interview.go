package service

import (
	"context"

	"github.com/hireloop/hrms-ui-api/internal/domain/action"
	"github.com/hireloop/hrms-ui-api/internal/domain/model"
	"github.com/hireloop/hrms-ui-api/internal/ports"
)

// InterviewService covers scheduling, attendance and feedback for both
// first-round and final interviews.
type InterviewService struct {
	backend ports.Backend
}

// NewInterviewService constructs an InterviewService.
func NewInterviewService(backend ports.Backend) *InterviewService {
	return &InterviewService{backend: backend}
}

func (s *InterviewService) List(ctx context.Context, filters model.InterviewFilters) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetInterviews, filters, nil)
}

// ScheduleInput is the payload for SCHEDULE_INTERVIEW and, with
// InterviewID set, RESCHEDULE_INTERVIEW.
type ScheduleInput struct {
	InterviewID      string   `json:"interviewId,omitempty"`
	CandidateID      string   `json:"candidateId"`
	ScheduledDate    string   `json:"scheduledDate"`
	ScheduledTime    string   `json:"scheduledTime"`
	Interviewers     []string `json:"interviewers,omitempty"`
	Notes            string   `json:"notes,omitempty"`
	SendNotification bool     `json:"sendNotification"`
}

func (s *InterviewService) Schedule(ctx context.Context, in ScheduleInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.ScheduleInterview, in, nil)
}

func (s *InterviewService) Reschedule(ctx context.Context, in ScheduleInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.RescheduleInterview, in, nil)
}

// AttendanceInput marks whether the candidate appeared.
type AttendanceInput struct {
	InterviewID string `json:"interviewId"`
	Appeared    bool   `json:"appeared"`
}

func (s *InterviewService) MarkAttendance(ctx context.Context, in AttendanceInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.MarkInterviewAttendance, in, nil)
}

// PreFeedbackInput is the quick impression recorded right after the
// interview, before the structured scorecard.
type PreFeedbackInput struct {
	InterviewID string `json:"interviewId"`
	Impression  string `json:"impression"`
	Notes       string `json:"notes,omitempty"`
}

func (s *InterviewService) PreFeedback(ctx context.Context, in PreFeedbackInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.PreInterviewFeedback, in, nil)
}

// FeedbackInput is the structured scorecard for SUBMIT_INTERVIEW_FEEDBACK.
type FeedbackInput struct {
	InterviewID        string `json:"interviewId"`
	TechnicalScore     int    `json:"technicalScore"`
	CommunicationScore int    `json:"communicationScore"`
	AttitudeScore      int    `json:"attitudeScore"`
	ExperienceScore    int    `json:"experienceScore"`
	Strengths          string `json:"strengths,omitempty"`
	Concerns           string `json:"concerns,omitempty"`
	Recommendation     string `json:"recommendation"`
	RejectionReason    string `json:"rejectionReason,omitempty"`
}

func (s *InterviewService) SubmitFeedback(ctx context.Context, in FeedbackInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.SubmitInterviewFeedback, in, nil)
}

// FinalScheduleInput is the payload for SCHEDULE_FINAL_INTERVIEW.
type FinalScheduleInput struct {
	CandidateID   string `json:"candidateId"`
	ScheduledDate string `json:"scheduledDate"`
	ScheduledTime string `json:"scheduledTime"`
	Notes         string `json:"notes,omitempty"`
}

func (s *InterviewService) ScheduleFinal(ctx context.Context, in FinalScheduleInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.ScheduleFinalInterview, in, nil)
}
