package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hrms-ui-api/internal/domain/action"
)

func TestAdminServiceDecide(t *testing.T) {
	backend := newFakeBackend()
	svc := NewAdminService(backend)

	_, err := svc.Decide(context.Background(), DecisionInput{
		CandidateID: "cand-1",
		Decision:    "PROCEED",
		Remarks:     "scores look fine",
	})
	require.NoError(t, err)

	assert.Equal(t, action.AdminDecision, backend.lastCall(t).Action)
	payload := backend.lastPayload(t)
	assert.Equal(t, "cand-1", payload["candidateId"])
	assert.Equal(t, "PROCEED", payload["decision"])
}

func TestAdminServiceEditMarksUsesAdminAction(t *testing.T) {
	backend := newFakeBackend()
	svc := NewAdminService(backend)

	_, err := svc.EditMarks(context.Background(), EditMarksInput{
		CandidateID: "cand-1",
		TestType:    "APTITUDE",
		Score:       70,
	})
	require.NoError(t, err)
	assert.Equal(t, action.AdminEditMarks, backend.lastCall(t).Action)
}

func TestAdminServiceLogsPagination(t *testing.T) {
	backend := newFakeBackend()
	svc := NewAdminService(backend)
	ctx := context.Background()
	in := LogQueryInput{Page: 2, PageSize: 50, From: "2026-08-01", To: "2026-08-28"}

	_, err := svc.AuditLog(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, action.GetAuditLog, backend.lastCall(t).Action)

	_, err = svc.RejectionLog(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, action.GetRejectionLog, backend.lastCall(t).Action)

	payload := backend.lastPayload(t)
	assert.Equal(t, float64(2), payload["page"])
	assert.Equal(t, float64(50), payload["pageSize"])
	assert.Equal(t, "2026-08-01", payload["from"])
}

func TestAdminServiceRevertRejection(t *testing.T) {
	backend := newFakeBackend()
	svc := NewAdminService(backend)

	_, err := svc.RevertRejection(context.Background(), RevertRejectionInput{
		CandidateID: "cand-4",
		Reason:      "rejected in error",
	})
	require.NoError(t, err)

	assert.Equal(t, action.RevertRejection, backend.lastCall(t).Action)
	payload := backend.lastPayload(t)
	assert.Equal(t, "cand-4", payload["candidateId"])
	assert.Equal(t, "rejected in error", payload["reason"])
}

func TestAdminServiceUpdateSettings(t *testing.T) {
	backend := newFakeBackend()
	svc := NewAdminService(backend)

	_, err := svc.UpdateSettings(context.Background(), SettingsInput{
		Settings: map[string]any{"testPassThreshold": 60, "probationMonths": 3},
	})
	require.NoError(t, err)

	assert.Equal(t, action.UpdateSettings, backend.lastCall(t).Action)
	payload := backend.lastPayload(t)
	settings, ok := payload["settings"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(60), settings["testPassThreshold"])
}

func TestAdminServiceQueueAndStats(t *testing.T) {
	backend := newFakeBackend()
	svc := NewAdminService(backend)
	ctx := context.Background()

	_, err := svc.PendingReview(ctx)
	require.NoError(t, err)
	_, err = svc.SystemStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, []action.Action{action.GetAdminPendingReview, action.GetSystemStats}, backend.actions())
	assert.Nil(t, backend.lastCall(t).Data)
}
