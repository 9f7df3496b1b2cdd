package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hrms-ui-api/internal/domain/action"
	"github.com/hireloop/hrms-ui-api/internal/domain/model"
)

func TestCallServiceLogCall(t *testing.T) {
	backend := newFakeBackend()
	svc := NewCallService(backend)

	_, err := svc.LogCall(context.Background(), LogCallInput{
		CandidateID:    "cand-1",
		Outcome:        model.CallOutcomeDone,
		Notes:          "available immediately",
		ExpectedSalary: 18000,
		NoticePeriod:   "15 days",
	})
	require.NoError(t, err)

	assert.Equal(t, action.CallScreening, backend.lastCall(t).Action)
	payload := backend.lastPayload(t)
	assert.Equal(t, "CALL_DONE", payload["outcome"])
	assert.Equal(t, float64(18000), payload["expectedSalary"])
	assert.Equal(t, "15 days", payload["noticePeriod"])
}

func TestCallServiceLogs(t *testing.T) {
	backend := newFakeBackend()
	svc := NewCallService(backend)

	_, err := svc.Logs(context.Background(), "cand-1")
	require.NoError(t, err)
	assert.Equal(t, action.GetCallLogs, backend.lastCall(t).Action)
	assert.Equal(t, "cand-1", backend.lastPayload(t)["candidateId"])
}

func TestCallServiceAllLogsPagination(t *testing.T) {
	backend := newFakeBackend()
	svc := NewCallService(backend)

	_, err := svc.AllLogs(context.Background(), AllLogsInput{Page: 3, PageSize: 25, Outcome: "NO_ANSWER"})
	require.NoError(t, err)

	assert.Equal(t, action.GetAllCallLogs, backend.lastCall(t).Action)
	payload := backend.lastPayload(t)
	assert.Equal(t, float64(3), payload["page"])
	assert.Equal(t, float64(25), payload["pageSize"])
	assert.Equal(t, "NO_ANSWER", payload["outcome"])
}
