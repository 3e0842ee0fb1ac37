package lifecycle

import (
	"fmt"

	"plaiz_studio/internal/domain/entities"
)

// Violation classifies why a guard refused an operation.
type Violation int

const (
	ViolationNone Violation = iota
	ViolationValidation
	ViolationPrecondition
	ViolationForbidden
	ViolationAmountMismatch
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed   bool
	Violation Violation
	Reason    string
}

func allow() GuardResult { return GuardResult{Allowed: true} }

func deny(v Violation, format string, args ...any) GuardResult {
	return GuardResult{Violation: v, Reason: fmt.Sprintf(format, args...)}
}

// ProposeContext is the state needed to decide a price proposal.
type ProposeContext struct {
	Project entities.Project
	Caller  entities.Session
	Amount  int64
	Active  *entities.Agreement
}

// CanProposePrice: only the assigned worker proposes, on an assigned or
// negotiating project, with a positive amount, and only when no proposal is
// still awaiting a decision.
func CanProposePrice(ctx ProposeContext) GuardResult {
	if ctx.Amount <= 0 {
		return deny(ViolationValidation, "amount must be a positive number")
	}
	if ctx.Caller.Role != entities.RoleWorker || ctx.Project.WorkerID != ctx.Caller.UserID {
		return deny(ViolationForbidden, "only the assigned worker can propose a price for project %s", ctx.Project.ID)
	}
	if ctx.Active != nil && !ctx.Active.IsResolved() {
		return deny(ViolationValidation, "agreement %s is still awaiting a decision", ctx.Active.ID)
	}
	switch ctx.Project.Status {
	case entities.ProjectStatusAssigned, entities.ProjectStatusChatNegotiation, entities.ProjectStatusPendingAgreement:
	default:
		return deny(ViolationPrecondition, "cannot propose a price while project is %s", ctx.Project.Status)
	}
	if ctx.Active != nil && ctx.Active.IsFinal() {
		return deny(ViolationPrecondition, "project %s already has a final agreement", ctx.Project.ID)
	}
	return allow()
}

// AcceptContext is the state needed to decide an acceptance or a decline.
type AcceptContext struct {
	Project   entities.Project
	Caller    entities.Session
	Agreement entities.Agreement
	Active    entities.Agreement
}

// CanAcceptPrice: a party of the project accepts the active, undeclined agreement.
func CanAcceptPrice(ctx AcceptContext) GuardResult {
	if r := callerIsParty(ctx.Project, ctx.Caller); !r.Allowed {
		return r
	}
	if ctx.Agreement.ID != ctx.Active.ID {
		return deny(ViolationPrecondition, "agreement %s was superseded by %s", ctx.Agreement.ID, ctx.Active.ID)
	}
	if ctx.Agreement.Declined {
		return deny(ViolationPrecondition, "agreement %s was declined", ctx.Agreement.ID)
	}
	return allow()
}

// CanDeclinePrice: the client declines the active agreement while it is unresolved.
func CanDeclinePrice(ctx AcceptContext) GuardResult {
	if ctx.Caller.Role != entities.RoleClient || ctx.Project.ClientID != ctx.Caller.UserID {
		return deny(ViolationForbidden, "only the project client can decline a price")
	}
	if ctx.Agreement.ID != ctx.Active.ID {
		return deny(ViolationPrecondition, "agreement %s was superseded by %s", ctx.Agreement.ID, ctx.Active.ID)
	}
	if ctx.Agreement.IsResolved() {
		return deny(ViolationPrecondition, "agreement %s is already resolved", ctx.Agreement.ID)
	}
	return allow()
}

func callerIsParty(p entities.Project, caller entities.Session) GuardResult {
	switch caller.Role {
	case entities.RoleClient:
		if p.ClientID == caller.UserID {
			return allow()
		}
	case entities.RoleWorker:
		if p.WorkerID == caller.UserID {
			return allow()
		}
	}
	return deny(ViolationForbidden, "caller is not a party of project %s", p.ID)
}

// ShouldFinalizeAgreement reports whether the project must advance because its
// active agreement is final. Callers pass freshly read state.
func ShouldFinalizeAgreement(p entities.Project, active *entities.Agreement) bool {
	return active != nil && active.IsFinal() && p.Status == entities.ProjectStatusPendingAgreement
}

// PaymentContext is the state needed to accept a client payment.
type PaymentContext struct {
	Project   entities.Project
	Caller    entities.Session
	Phase     entities.PaymentPhase
	Amount    int64
	Agreement *entities.Agreement
}

// PaymentFromStatuses are the project statuses a phase may be paid in.
func PaymentFromStatuses(phase entities.PaymentPhase) []entities.ProjectStatus {
	if phase == entities.PaymentPhaseDeposit {
		return []entities.ProjectStatus{entities.ProjectStatusPendingDownPayment}
	}
	return []entities.ProjectStatus{entities.ProjectStatusApproved, entities.ProjectStatusAwaitingFinalPayment}
}

// CanRecordPayment: the client pays the exact phase fraction of a final
// agreement while the project waits for that phase.
func CanRecordPayment(ctx PaymentContext) GuardResult {
	if !ctx.Phase.Valid() {
		return deny(ViolationValidation, "unknown payment phase %q", ctx.Phase)
	}
	if ctx.Amount <= 0 {
		return deny(ViolationValidation, "amount must be a positive number")
	}
	if ctx.Caller.Role != entities.RoleClient || ctx.Project.ClientID != ctx.Caller.UserID {
		return deny(ViolationForbidden, "only the project client can pay for project %s", ctx.Project.ID)
	}
	if ctx.Agreement == nil || !ctx.Agreement.IsFinal() {
		return deny(ViolationPrecondition, "project %s has no final agreement", ctx.Project.ID)
	}
	if want := PhaseAmount(*ctx.Agreement, ctx.Phase); ctx.Amount != want {
		return deny(ViolationAmountMismatch, "%s must be %d kobo, got %d", ctx.Phase, want, ctx.Amount)
	}
	if !statusIn(ctx.Project.Status, PaymentFromStatuses(ctx.Phase)) {
		return deny(ViolationPrecondition, "cannot pay %s while project is %s", ctx.Phase, ctx.Project.Status)
	}
	return allow()
}

// CanApprove: the project client approves delivered or in-progress work.
func CanApprove(p entities.Project, caller entities.Session) GuardResult {
	if caller.Role != entities.RoleClient || p.ClientID != caller.UserID {
		return deny(ViolationForbidden, "only the project client can approve project %s", p.ID)
	}
	if p.Status != entities.ProjectStatusInProgress && p.Status != entities.ProjectStatusReadyForReview {
		return deny(ViolationPrecondition, "cannot approve project while it is %s", p.Status)
	}
	return allow()
}

// CanModerate: admins cancel or flag any non-terminal project.
func CanModerate(p entities.Project, caller entities.Session, to entities.ProjectStatus) GuardResult {
	if !caller.IsAdmin() {
		return deny(ViolationForbidden, "only admins can move a project to %s", to)
	}
	if !CanTransition(p.Status, to) {
		return deny(ViolationPrecondition, "project %s is already %s", p.ID, p.Status)
	}
	return allow()
}

// CanUpload: participants upload while the project is not cancelled or flagged.
func CanUpload(p entities.Project, caller entities.Session) GuardResult {
	if !caller.IsAdmin() && !p.IsParticipant(caller.UserID) {
		return deny(ViolationForbidden, "caller is not a participant of project %s", p.ID)
	}
	if p.Status == entities.ProjectStatusCancelled || p.Status == entities.ProjectStatusFlagged {
		return deny(ViolationPrecondition, "cannot upload files while project is %s", p.Status)
	}
	return allow()
}

// TriggersReview reports whether an upload moves the project to review: the
// assigned worker uploading while work is in progress.
func TriggersReview(p entities.Project, uploaderID string) bool {
	return p.Status == entities.ProjectStatusInProgress && p.WorkerID != "" && p.WorkerID == uploaderID
}

// FilesUnlocked reports whether deliverables can be downloaded.
func FilesUnlocked(p entities.Project) bool {
	return p.Status == entities.ProjectStatusCompleted
}

// PayoutEligible reports whether a payout record may exist for p.
func PayoutEligible(p entities.Project) bool {
	return p.Status == entities.ProjectStatusAwaitingPayout || p.Status == entities.ProjectStatusCompleted
}

// MarkSentContext is the state needed for the admin half of the payout handshake.
type MarkSentContext struct {
	Payout         entities.Payout
	Caller         entities.Session
	HasBankAccount bool
}

func CanMarkPayoutSent(ctx MarkSentContext) GuardResult {
	if !ctx.Caller.IsAdmin() {
		return deny(ViolationPrecondition, "only admins can mark payout %s as sent", ctx.Payout.ID)
	}
	if ctx.Payout.Status != entities.PayoutStatusAwaitingPayment {
		return deny(ViolationPrecondition, "payout %s is %s, not %s", ctx.Payout.ID, ctx.Payout.Status, entities.PayoutStatusAwaitingPayment)
	}
	if !ctx.HasBankAccount {
		return deny(ViolationPrecondition, "worker %s has no bank account on file", ctx.Payout.WorkerID)
	}
	return allow()
}

// CanConfirmReceipt: only the payout's worker confirms, after the admin sent it.
func CanConfirmReceipt(p entities.Payout, caller entities.Session) GuardResult {
	if caller.Role != entities.RoleWorker || caller.UserID != p.WorkerID {
		return deny(ViolationPrecondition, "only the payout's worker can confirm receipt of payout %s", p.ID)
	}
	if p.Status != entities.PayoutStatusPaymentSent {
		return deny(ViolationPrecondition, "payout %s is %s, not %s", p.ID, p.Status, entities.PayoutStatusPaymentSent)
	}
	return allow()
}

func statusIn(s entities.ProjectStatus, set []entities.ProjectStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
