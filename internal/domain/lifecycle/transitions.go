// Package lifecycle holds the pure project lifecycle rules: the status
// transition table, the guards that gate each transition and the money
// splits. Nothing here performs I/O.
package lifecycle

import "plaiz_studio/internal/domain/entities"

var transitions = map[entities.ProjectStatus][]entities.ProjectStatus{
	entities.ProjectStatusPending:              {entities.ProjectStatusAssigned},
	entities.ProjectStatusQueued:               {entities.ProjectStatusAssigned},
	entities.ProjectStatusAssigned:             {entities.ProjectStatusChatNegotiation, entities.ProjectStatusPendingAgreement},
	entities.ProjectStatusChatNegotiation:      {entities.ProjectStatusPendingAgreement},
	entities.ProjectStatusPendingAgreement:     {entities.ProjectStatusPendingDownPayment},
	entities.ProjectStatusPendingDownPayment:   {entities.ProjectStatusInProgress},
	entities.ProjectStatusInProgress:           {entities.ProjectStatusReadyForReview, entities.ProjectStatusApproved},
	entities.ProjectStatusReadyForReview:       {entities.ProjectStatusApproved},
	entities.ProjectStatusApproved:             {entities.ProjectStatusAwaitingFinalPayment, entities.ProjectStatusAwaitingPayout, entities.ProjectStatusCompleted},
	entities.ProjectStatusAwaitingFinalPayment: {entities.ProjectStatusAwaitingPayout, entities.ProjectStatusCompleted},
	entities.ProjectStatusAwaitingPayout:       {entities.ProjectStatusCompleted},
}

// CanTransition reports whether from -> to is an edge of the state machine.
// Every non-terminal status may move to cancelled or flagged.
func CanTransition(from, to entities.ProjectStatus) bool {
	if from.IsTerminal() {
		return false
	}
	if to == entities.ProjectStatusCancelled || to == entities.ProjectStatusFlagged {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses reachable from s in one step.
func NextStatuses(s entities.ProjectStatus) []entities.ProjectStatus {
	if s.IsTerminal() {
		return nil
	}
	out := append([]entities.ProjectStatus(nil), transitions[s]...)
	return append(out, entities.ProjectStatusCancelled, entities.ProjectStatusFlagged)
}

// NonTerminalStatuses is the From set of admin cancel/flag actions.
func NonTerminalStatuses() []entities.ProjectStatus {
	out := make([]entities.ProjectStatus, 0, len(entities.AllProjectStatuses))
	for _, s := range entities.AllProjectStatuses {
		if !s.IsTerminal() {
			out = append(out, s)
		}
	}
	return out
}

// Rank orders statuses along the happy path; pending and queued share a rank.
// Absorbing statuses rank above everything.
func Rank(s entities.ProjectStatus) int {
	switch s {
	case entities.ProjectStatusPending, entities.ProjectStatusQueued:
		return 0
	case entities.ProjectStatusAssigned:
		return 1
	case entities.ProjectStatusChatNegotiation:
		return 2
	case entities.ProjectStatusPendingAgreement:
		return 3
	case entities.ProjectStatusPendingDownPayment:
		return 4
	case entities.ProjectStatusInProgress:
		return 5
	case entities.ProjectStatusReadyForReview:
		return 6
	case entities.ProjectStatusApproved:
		return 7
	case entities.ProjectStatusAwaitingFinalPayment:
		return 8
	case entities.ProjectStatusAwaitingPayout:
		return 9
	case entities.ProjectStatusCompleted:
		return 10
	case entities.ProjectStatusCancelled, entities.ProjectStatusFlagged:
		return 11
	}
	return -1
}

// AtLeast reports whether s is at or past target along the happy path.
func AtLeast(s, target entities.ProjectStatus) bool {
	return Rank(s) >= Rank(target)
}
