package lifecycle

import (
	"testing"

	"plaiz_studio/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition_StatusClosure(t *testing.T) {
	for _, from := range entities.AllProjectStatuses {
		for _, to := range NextStatuses(from) {
			assert.Contains(t, entities.AllProjectStatuses, to, "edge %s -> %s leaves the status set", from, to)
			assert.True(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestCanTransition_ForwardOnly(t *testing.T) {
	for _, from := range entities.AllProjectStatuses {
		for _, to := range entities.AllProjectStatuses {
			if !CanTransition(from, to) {
				continue
			}
			assert.Greater(t, Rank(to), Rank(from), "%s -> %s moves backwards", from, to)
		}
	}
}

func TestCanTransition_Terminal(t *testing.T) {
	terminal := []entities.ProjectStatus{entities.ProjectStatusCompleted, entities.ProjectStatusCancelled, entities.ProjectStatusFlagged}
	for _, from := range terminal {
		assert.Empty(t, NextStatuses(from))
		for _, to := range entities.AllProjectStatuses {
			assert.False(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestCanTransition_Table(t *testing.T) {
	cases := []struct {
		from, to entities.ProjectStatus
		want     bool
	}{
		{entities.ProjectStatusQueued, entities.ProjectStatusAssigned, true},
		{entities.ProjectStatusAssigned, entities.ProjectStatusPendingAgreement, true},
		{entities.ProjectStatusPendingAgreement, entities.ProjectStatusInProgress, false},
		{entities.ProjectStatusPendingDownPayment, entities.ProjectStatusInProgress, true},
		{entities.ProjectStatusInProgress, entities.ProjectStatusApproved, true},
		{entities.ProjectStatusReadyForReview, entities.ProjectStatusInProgress, false},
		{entities.ProjectStatusApproved, entities.ProjectStatusAwaitingPayout, true},
		{entities.ProjectStatusAwaitingPayout, entities.ProjectStatusCompleted, true},
		{entities.ProjectStatusPending, entities.ProjectStatusFlagged, true},
		{entities.ProjectStatusAwaitingPayout, entities.ProjectStatusCancelled, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestNonTerminalStatuses(t *testing.T) {
	got := NonTerminalStatuses()
	require.Len(t, got, len(entities.AllProjectStatuses)-3)
	assert.NotContains(t, got, entities.ProjectStatusCompleted)
	assert.Contains(t, got, entities.ProjectStatusQueued)
}

func TestAtLeast(t *testing.T) {
	assert.True(t, AtLeast(entities.ProjectStatusQueued, entities.ProjectStatusPending))
	assert.True(t, AtLeast(entities.ProjectStatusCompleted, entities.ProjectStatusAwaitingPayout))
	assert.False(t, AtLeast(entities.ProjectStatusInProgress, entities.ProjectStatusApproved))
	assert.Equal(t, -1, Rank("archived"))
}
