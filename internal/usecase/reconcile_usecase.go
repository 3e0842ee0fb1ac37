package usecase

import (
	"context"
	"time"

	"plaiz_studio/internal/domain/effects"
	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/domain/lifecycle"
	"plaiz_studio/internal/usecase/interfaces"
	"plaiz_studio/pkg/logger"

	"go.uber.org/zap"
)

// maxReconcileSteps bounds one project's catch-up; the happy path has fewer edges.
const maxReconcileSteps = 8

// ReconcileReport summarizes a sweep.
type ReconcileReport struct {
	Checked  int      `json:"checked"`
	Advanced int      `json:"advanced"`
	Payouts  int      `json:"payouts_created"`
	Failed   []string `json:"failed,omitempty"`
}

// IReconcileUseCase re-derives the project status from the records already
// committed. A transition whose follow-up write was lost (crash, lost race,
// failed request after the payment was stored) is completed here. Every rule
// is idempotent, so the sweep can run any number of times.

type IReconcileUseCase interface {
	ReconcileProject(ctx context.Context, projectID string) (TransitionResult, error)
	ReconcileAll(ctx context.Context) (ReconcileReport, error)
}

type ReconcileUseCase struct {
	projects   interfaces.IProjectRepository
	agreements interfaces.IAgreementRepository
	payments   interfaces.IPaymentRepository
	payouts    interfaces.IPayoutRepository
	files      interfaces.IProjectFileRepository
	dispatcher *SideEffectDispatcher
	log        *zap.Logger
}

var _ IReconcileUseCase = (*ReconcileUseCase)(nil)

func NewReconcileUseCase(
	projects interfaces.IProjectRepository,
	agreements interfaces.IAgreementRepository,
	payments interfaces.IPaymentRepository,
	payouts interfaces.IPayoutRepository,
	files interfaces.IProjectFileRepository,
	dispatcher *SideEffectDispatcher,
	log *zap.Logger,
) *ReconcileUseCase {
	return &ReconcileUseCase{
		projects:   projects,
		agreements: agreements,
		payments:   payments,
		payouts:    payouts,
		files:      files,
		dispatcher: dispatcher,
		log:        logger.OrNop(log),
	}
}

func (u *ReconcileUseCase) ReconcileProject(ctx context.Context, projectID string) (TransitionResult, error) {
	p, err := loadProject(ctx, u.projects, projectID)
	if err != nil {
		return TransitionResult{}, err
	}
	return u.reconcile(ctx, p)
}

func (u *ReconcileUseCase) ReconcileAll(ctx context.Context) (ReconcileReport, error) {
	statuses := append(lifecycle.NonTerminalStatuses(), entities.ProjectStatusCompleted)
	list, err := u.projects.ListByStatuses(ctx, statuses)
	if err != nil {
		return ReconcileReport{}, external(err)
	}
	u.log.Info("[reconcile][usecase] sweep start", zap.Int("projects", len(list)))

	var report ReconcileReport
	for _, p := range list {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Checked++
		res, err := u.reconcile(ctx, p)
		if err != nil {
			u.log.Warn("[reconcile][usecase] project failed", zap.String("project_id", p.ID), zap.Error(err))
			report.Failed = append(report.Failed, p.ID)
			continue
		}
		if res.Advanced {
			report.Advanced++
		}
		if hasPayoutEvent(res.Effects) {
			report.Payouts++
		}
	}
	u.log.Info("[reconcile][usecase] sweep done",
		zap.Int("checked", report.Checked),
		zap.Int("advanced", report.Advanced),
		zap.Int("payouts_created", report.Payouts),
		zap.Int("failed", len(report.Failed)),
	)
	return report, nil
}

func hasPayoutEvent(effs []effects.Effect) bool {
	for _, e := range effs {
		if ce, ok := e.(effects.ChangeEvent); ok && ce.Table == "payouts" {
			return true
		}
	}
	return false
}

// reconcile applies rules until none matches.
func (u *ReconcileUseCase) reconcile(ctx context.Context, p entities.Project) (TransitionResult, error) {
	var out effects.Outbox
	res := TransitionResult{Project: p}

	agreement, err := loadActiveAgreement(ctx, u.agreements, p.ID)
	if err != nil {
		return TransitionResult{}, err
	}
	res.Agreement = agreement

	for i := 0; i < maxReconcileSteps; i++ {
		to, kind, body, err := u.nextStep(ctx, res.Project, agreement)
		if err != nil {
			return TransitionResult{}, err
		}
		if to == "" {
			break
		}
		updated, effs, applied, err := advance(ctx, u.projects, SystemSession, res.Project,
			[]entities.ProjectStatus{res.Project.Status}, to, kind, body)
		if err != nil {
			return TransitionResult{}, err
		}
		if !applied {
			// Someone else moved it; start again from the stored state.
			fresh, err := loadProject(ctx, u.projects, p.ID)
			if err != nil {
				return TransitionResult{}, err
			}
			res.Project = fresh
			continue
		}
		u.log.Info("[reconcile][usecase] project advanced",
			zap.String("project_id", p.ID),
			zap.String("from", string(res.Project.Status)),
			zap.String("to", string(to)),
		)
		res.Project, res.Advanced = updated, true
		out.Add(effs...)
	}

	if lifecycle.PayoutEligible(res.Project) {
		po, created, err := ensurePayout(ctx, u.payouts, res.Project, agreement, time.Now().UTC())
		if err != nil {
			return TransitionResult{}, err
		}
		res.Payout = &po
		if created {
			out.Add(effects.ChangeEvent{Table: "payouts", RecordID: po.ID, ProjectID: p.ID, Status: string(po.Status)})
		}
		if po.Status == entities.PayoutStatusPaymentVerified && res.Project.Status == entities.ProjectStatusAwaitingPayout {
			updated, effs, applied, err := advance(ctx, u.projects, SystemSession, res.Project,
				[]entities.ProjectStatus{entities.ProjectStatusAwaitingPayout}, entities.ProjectStatusCompleted,
				"project_completed", "Payout confirmed. The project is complete and all files are unlocked.")
			if err != nil {
				return TransitionResult{}, err
			}
			if applied {
				res.Project, res.Advanced = updated, true
				out.Add(effs...)
			}
		}
	}

	res.Effects = out.Effects()
	u.dispatcher.Dispatch(ctx, res.Effects)
	return res, nil
}

// nextStep returns the status the committed records entitle p to, or "".
func (u *ReconcileUseCase) nextStep(ctx context.Context, p entities.Project, agreement *entities.Agreement) (entities.ProjectStatus, string, string, error) {
	switch p.Status {
	case entities.ProjectStatusPendingAgreement:
		if lifecycle.ShouldFinalizeAgreement(p, agreement) {
			return entities.ProjectStatusPendingDownPayment, "price_agreed", "Price agreed. The 40% deposit is now due.", nil
		}
	case entities.ProjectStatusPendingDownPayment:
		ok, err := u.hasPayment(ctx, p.ID, agreement, entities.PaymentPhaseDeposit, entities.PaymentStatusConfirmed)
		if err != nil || !ok {
			return "", "", "", err
		}
		return entities.ProjectStatusInProgress, "deposit_confirmed", "Deposit confirmed. Work has started.", nil
	case entities.ProjectStatusInProgress:
		if u.files == nil {
			return "", "", "", nil
		}
		files, err := u.files.ListByProjectID(ctx, p.ID)
		if err != nil {
			return "", "", "", external(err)
		}
		for _, f := range files {
			if lifecycle.TriggersReview(p, f.UploaderID) {
				return entities.ProjectStatusReadyForReview, "work_delivered", "The expert uploaded work for your review.", nil
			}
		}
	case entities.ProjectStatusApproved, entities.ProjectStatusAwaitingFinalPayment:
		ok, err := u.hasPayment(ctx, p.ID, agreement, entities.PaymentPhaseBalance, entities.PaymentStatusConfirmed)
		if err != nil {
			return "", "", "", err
		}
		if ok {
			return entities.ProjectStatusAwaitingPayout, "balance_confirmed", "Balance confirmed.", nil
		}
		if p.Status == entities.ProjectStatusApproved {
			ok, err = u.hasPayment(ctx, p.ID, agreement, entities.PaymentPhaseBalance, entities.PaymentStatusPending)
			if err != nil || !ok {
				return "", "", "", err
			}
			return entities.ProjectStatusAwaitingFinalPayment, "balance_pending", "Balance payment is being processed.", nil
		}
	}
	return "", "", "", nil
}

// hasPayment reports whether a payment of phase and status matching the
// agreement's phase amount exists.
func (u *ReconcileUseCase) hasPayment(ctx context.Context, projectID string, agreement *entities.Agreement, phase entities.PaymentPhase, status entities.PaymentStatus) (bool, error) {
	if agreement == nil || !agreement.IsFinal() || u.payments == nil {
		return false, nil
	}
	list, err := u.payments.ListByProjectID(ctx, projectID)
	if err != nil {
		return false, external(err)
	}
	want := lifecycle.PhaseAmount(*agreement, phase)
	for _, pay := range list {
		if pay.Phase == phase && pay.Status == status && pay.Amount == want {
			return true, nil
		}
	}
	return false, nil
}
