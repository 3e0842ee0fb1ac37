package lifecycle

import (
	"testing"

	"plaiz_studio/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

var (
	client = entities.Session{UserID: "c1", Role: entities.RoleClient}
	worker = entities.Session{UserID: "w1", Role: entities.RoleWorker}
	admin  = entities.Session{UserID: "a1", Role: entities.RoleAdmin}
)

func project(status entities.ProjectStatus) entities.Project {
	return entities.Project{ID: "p1", ClientID: "c1", WorkerID: "w1", Status: status}
}

func TestCanProposePrice(t *testing.T) {
	open := &entities.Agreement{ID: "a1", FreelancerAgreed: true}
	final := &entities.Agreement{ID: "a2", FreelancerAgreed: true, ClientAgreed: true}
	declined := &entities.Agreement{ID: "a3", FreelancerAgreed: true, Declined: true}

	cases := []struct {
		name string
		ctx  ProposeContext
		want Violation
	}{
		{"ok", ProposeContext{Project: project(entities.ProjectStatusAssigned), Caller: worker, Amount: 100}, ViolationNone},
		{"zero amount", ProposeContext{Project: project(entities.ProjectStatusAssigned), Caller: worker}, ViolationValidation},
		{"client", ProposeContext{Project: project(entities.ProjectStatusAssigned), Caller: client, Amount: 100}, ViolationForbidden},
		{"open proposal", ProposeContext{Project: project(entities.ProjectStatusPendingAgreement), Caller: worker, Amount: 100, Active: open}, ViolationValidation},
		{"after decline", ProposeContext{Project: project(entities.ProjectStatusPendingAgreement), Caller: worker, Amount: 100, Active: declined}, ViolationNone},
		{"wrong status", ProposeContext{Project: project(entities.ProjectStatusInProgress), Caller: worker, Amount: 100}, ViolationPrecondition},
		{"final exists", ProposeContext{Project: project(entities.ProjectStatusPendingAgreement), Caller: worker, Amount: 100, Active: final}, ViolationPrecondition},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := CanProposePrice(tc.ctx)
			assert.Equal(t, tc.want == ViolationNone, r.Allowed)
			assert.Equal(t, tc.want, r.Violation)
		})
	}
}

func TestCanAcceptPrice(t *testing.T) {
	a := entities.Agreement{ID: "a1"}
	newer := entities.Agreement{ID: "a2"}
	p := project(entities.ProjectStatusPendingAgreement)

	assert.True(t, CanAcceptPrice(AcceptContext{Project: p, Caller: client, Agreement: a, Active: a}).Allowed)
	assert.True(t, CanAcceptPrice(AcceptContext{Project: p, Caller: worker, Agreement: a, Active: a}).Allowed)
	assert.Equal(t, ViolationForbidden, CanAcceptPrice(AcceptContext{Project: p, Caller: admin, Agreement: a, Active: a}).Violation)
	assert.Equal(t, ViolationForbidden, CanAcceptPrice(AcceptContext{Project: p, Caller: entities.Session{UserID: "c2", Role: entities.RoleClient}, Agreement: a, Active: a}).Violation)
	assert.Equal(t, ViolationPrecondition, CanAcceptPrice(AcceptContext{Project: p, Caller: client, Agreement: a, Active: newer}).Violation)

	a.Declined = true
	assert.Equal(t, ViolationPrecondition, CanAcceptPrice(AcceptContext{Project: p, Caller: client, Agreement: a, Active: a}).Violation)
}

func TestCanRecordPayment(t *testing.T) {
	final := &entities.Agreement{Amount: 5_000_000, ClientAgreed: true, FreelancerAgreed: true}
	cases := []struct {
		name string
		ctx  PaymentContext
		want Violation
	}{
		{"deposit ok", PaymentContext{Project: project(entities.ProjectStatusPendingDownPayment), Caller: client, Phase: entities.PaymentPhaseDeposit, Amount: 2_000_000, Agreement: final}, ViolationNone},
		{"balance ok", PaymentContext{Project: project(entities.ProjectStatusAwaitingFinalPayment), Caller: client, Phase: entities.PaymentPhaseBalance, Amount: 3_000_000, Agreement: final}, ViolationNone},
		{"unknown phase", PaymentContext{Project: project(entities.ProjectStatusPendingDownPayment), Caller: client, Phase: "full", Amount: 1, Agreement: final}, ViolationValidation},
		{"worker", PaymentContext{Project: project(entities.ProjectStatusPendingDownPayment), Caller: worker, Phase: entities.PaymentPhaseDeposit, Amount: 2_000_000, Agreement: final}, ViolationForbidden},
		{"no agreement", PaymentContext{Project: project(entities.ProjectStatusPendingDownPayment), Caller: client, Phase: entities.PaymentPhaseDeposit, Amount: 2_000_000}, ViolationPrecondition},
		{"mismatch", PaymentContext{Project: project(entities.ProjectStatusPendingDownPayment), Caller: client, Phase: entities.PaymentPhaseDeposit, Amount: 2_000_001, Agreement: final}, ViolationAmountMismatch},
		{"wrong status", PaymentContext{Project: project(entities.ProjectStatusInProgress), Caller: client, Phase: entities.PaymentPhaseDeposit, Amount: 2_000_000, Agreement: final}, ViolationPrecondition},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanRecordPayment(tc.ctx).Violation)
		})
	}
}

func TestUploadAndReviewRules(t *testing.T) {
	assert.True(t, CanUpload(project(entities.ProjectStatusInProgress), worker).Allowed)
	assert.True(t, CanUpload(project(entities.ProjectStatusInProgress), admin).Allowed)
	assert.Equal(t, ViolationForbidden, CanUpload(project(entities.ProjectStatusInProgress), entities.Session{UserID: "x", Role: entities.RoleWorker}).Violation)
	assert.Equal(t, ViolationPrecondition, CanUpload(project(entities.ProjectStatusFlagged), worker).Violation)

	assert.True(t, TriggersReview(project(entities.ProjectStatusInProgress), "w1"))
	assert.False(t, TriggersReview(project(entities.ProjectStatusInProgress), "c1"))
	assert.False(t, TriggersReview(project(entities.ProjectStatusReadyForReview), "w1"))

	assert.True(t, FilesUnlocked(project(entities.ProjectStatusCompleted)))
	assert.False(t, FilesUnlocked(project(entities.ProjectStatusAwaitingPayout)))
}

func TestPayoutHandshakeGuards(t *testing.T) {
	po := entities.Payout{ID: "p1", WorkerID: "w1", Status: entities.PayoutStatusAwaitingPayment}

	assert.True(t, CanMarkPayoutSent(MarkSentContext{Payout: po, Caller: admin, HasBankAccount: true}).Allowed)
	assert.False(t, CanMarkPayoutSent(MarkSentContext{Payout: po, Caller: admin}).Allowed)
	assert.False(t, CanMarkPayoutSent(MarkSentContext{Payout: po, Caller: worker, HasBankAccount: true}).Allowed)
	assert.Equal(t, ViolationPrecondition, CanConfirmReceipt(po, worker).Violation)

	po.Status = entities.PayoutStatusPaymentSent
	assert.True(t, CanConfirmReceipt(po, worker).Allowed)
	assert.False(t, CanConfirmReceipt(po, entities.Session{UserID: "w2", Role: entities.RoleWorker}).Allowed)
	assert.False(t, CanMarkPayoutSent(MarkSentContext{Payout: po, Caller: admin, HasBankAccount: true}).Allowed)
}
