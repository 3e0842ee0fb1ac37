package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"plaiz_studio/internal/domain/effects"
	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/domain/lifecycle"
	"plaiz_studio/internal/usecase/interfaces"
	"plaiz_studio/pkg/logger"
	"plaiz_studio/pkg/metrics"

	"go.uber.org/zap"
)

var (
	ErrPayoutNotSent                = fmt.Errorf("%w: payout ledger refused the transition", ErrPrecondition)
	ErrTransferAlreadyInitiated     = fmt.Errorf("%w: a transfer was already initiated for this payout", ErrPrecondition)
	ErrMissingRecipientCode         = fmt.Errorf("%w: worker bank account has no transfer recipient", ErrPrecondition)
	ErrTransferGatewayNotConfigured = fmt.Errorf("%w: transfer gateway not configured", ErrExternalService)
	ErrTransferFailed               = fmt.Errorf("%w: transfer failed", ErrExternalService)
)

// IPayoutUseCase settles the worker's share once the balance is confirmed.
//
// The payout status moves through a two-party handshake: the admin marks it
// sent, the worker confirms receipt. Both halves go through the payout ledger.

type IPayoutUseCase interface {
	EnsurePayout(ctx context.Context, projectID string) (entities.Payout, error)
	GetPayoutForProject(ctx context.Context, s entities.Session, projectID string) (entities.Payout, error)
	MarkAsSent(ctx context.Context, s entities.Session, payoutID string) (TransitionResult, error)
	ConfirmReceipt(ctx context.Context, s entities.Session, payoutID string) (TransitionResult, error)
	InitiateTransfer(ctx context.Context, s entities.Session, payoutID string) (TransitionResult, error)
	ListPayouts(ctx context.Context, s entities.Session) ([]entities.Payout, error)
}

type PayoutUseCase struct {
	projects   interfaces.IProjectRepository
	agreements interfaces.IAgreementRepository
	payouts    interfaces.IPayoutRepository
	ledger     interfaces.IPayoutLedger
	accounts   interfaces.IBankAccountRepository
	transfers  interfaces.ITransferGateway
	dispatcher *SideEffectDispatcher
	log        *zap.Logger
}

var _ IPayoutUseCase = (*PayoutUseCase)(nil)

func NewPayoutUseCase(
	projects interfaces.IProjectRepository,
	agreements interfaces.IAgreementRepository,
	payouts interfaces.IPayoutRepository,
	ledger interfaces.IPayoutLedger,
	accounts interfaces.IBankAccountRepository,
	transfers interfaces.ITransferGateway,
	dispatcher *SideEffectDispatcher,
	log *zap.Logger,
) *PayoutUseCase {
	return &PayoutUseCase{
		projects:   projects,
		agreements: agreements,
		payouts:    payouts,
		ledger:     ledger,
		accounts:   accounts,
		transfers:  transfers,
		dispatcher: dispatcher,
		log:        logger.OrNop(log),
	}
}

func (u *PayoutUseCase) EnsurePayout(ctx context.Context, projectID string) (entities.Payout, error) {
	p, err := loadProject(ctx, u.projects, projectID)
	if err != nil {
		return entities.Payout{}, err
	}
	return u.ensure(ctx, p)
}

func (u *PayoutUseCase) ensure(ctx context.Context, p entities.Project) (entities.Payout, error) {
	agreement, err := loadActiveAgreement(ctx, u.agreements, p.ID)
	if err != nil {
		return entities.Payout{}, err
	}
	po, created, err := ensurePayout(ctx, u.payouts, p, agreement, time.Now().UTC())
	if err != nil {
		return entities.Payout{}, err
	}
	if created {
		u.log.Info("[payout][usecase] payout created",
			zap.String("project_id", p.ID),
			zap.Int64("worker_share", po.WorkerShare),
			zap.Int64("platform_share", po.PlatformShare),
		)
		u.dispatcher.Dispatch(ctx, []effects.Effect{
			effects.ChangeEvent{Table: "payouts", RecordID: po.ID, ProjectID: p.ID, Status: string(po.Status)},
		})
	}
	return po, nil
}

func (u *PayoutUseCase) GetPayoutForProject(ctx context.Context, s entities.Session, projectID string) (entities.Payout, error) {
	if err := requireSession(s); err != nil {
		return entities.Payout{}, err
	}
	p, err := loadProject(ctx, u.projects, projectID)
	if err != nil {
		return entities.Payout{}, err
	}
	if err := canView(p, s); err != nil {
		return entities.Payout{}, err
	}
	if !lifecycle.PayoutEligible(p) {
		return entities.Payout{}, ErrPayoutNotFound
	}
	return u.ensure(ctx, p)
}

func (u *PayoutUseCase) loadPayout(ctx context.Context, id string) (entities.Payout, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payout{}, ErrInvalidPayoutID
	}
	po, err := u.payouts.GetByID(ctx, id)
	if err != nil {
		return entities.Payout{}, external(err)
	}
	if po.ID == "" {
		return entities.Payout{}, ErrPayoutNotFound
	}
	return po, nil
}

func (u *PayoutUseCase) bankAccount(ctx context.Context, workerID string) (entities.BankAccount, error) {
	if u.accounts == nil {
		return entities.BankAccount{}, nil
	}
	acc, err := u.accounts.GetByWorkerID(ctx, workerID)
	if err != nil {
		return entities.BankAccount{}, external(err)
	}
	return acc, nil
}

func (u *PayoutUseCase) MarkAsSent(ctx context.Context, s entities.Session, payoutID string) (TransitionResult, error) {
	if err := requireSession(s); err != nil {
		return TransitionResult{}, err
	}
	po, err := u.loadPayout(ctx, payoutID)
	if err != nil {
		return TransitionResult{}, err
	}
	acc, err := u.bankAccount(ctx, po.WorkerID)
	if err != nil {
		return TransitionResult{}, err
	}
	if err := guardError(lifecycle.CanMarkPayoutSent(lifecycle.MarkSentContext{
		Payout: po, Caller: s, HasBankAccount: acc.WorkerID != "",
	})); err != nil {
		return TransitionResult{}, err
	}
	u.log.Info("[payout][usecase] mark sent start", zap.String("payout_id", po.ID))

	r, err := u.ledger.MarkAsSent(ctx, po.ID)
	if err != nil {
		u.log.Error("[payout][usecase] ledger mark sent failed", zap.String("payout_id", po.ID), zap.Error(err))
		return TransitionResult{}, external(err)
	}
	if !r.Success {
		return TransitionResult{}, fmt.Errorf("%w: payout %s", ErrPayoutNotSent, po.ID)
	}
	updated, err := u.loadPayout(ctx, po.ID)
	if err != nil {
		return TransitionResult{}, err
	}
	p, err := loadProject(ctx, u.projects, po.ProjectID)
	if err != nil {
		return TransitionResult{}, err
	}

	var out effects.Outbox
	out.Add(effects.ChangeEvent{Table: "payouts", RecordID: updated.ID, ProjectID: p.ID, Status: string(updated.Status)})
	out.Add(payoutChat(p, updated, "payout_sent",
		fmt.Sprintf("Payout of %s sent to the expert.", formatNaira(updated.WorkerShare)))...)
	out.Add(effects.Notification{
		RecipientID: updated.WorkerID,
		ProjectID:   p.ID,
		Subject:     updated.ID,
		Kind:        "payout_sent",
		Title:       fmt.Sprintf("%s: payout sent", p.Title),
		Body:        fmt.Sprintf("Your payout of %s was sent. Please confirm once you receive it.", formatNaira(updated.WorkerShare)),
	})
	effs := out.Effects()
	u.dispatcher.Dispatch(ctx, effs)
	u.log.Info("[payout][usecase] mark sent success", zap.String("payout_id", updated.ID), zap.String("status", string(updated.Status)))
	return TransitionResult{Project: p, Payout: &updated, Effects: effs}, nil
}

func (u *PayoutUseCase) ConfirmReceipt(ctx context.Context, s entities.Session, payoutID string) (TransitionResult, error) {
	if err := requireSession(s); err != nil {
		return TransitionResult{}, err
	}
	po, err := u.loadPayout(ctx, payoutID)
	if err != nil {
		return TransitionResult{}, err
	}
	if err := guardError(lifecycle.CanConfirmReceipt(po, s)); err != nil {
		return TransitionResult{}, err
	}
	u.log.Info("[payout][usecase] confirm receipt start", zap.String("payout_id", po.ID))

	r, err := u.ledger.ConfirmReceipt(ctx, po.ID)
	if err != nil {
		u.log.Error("[payout][usecase] ledger confirm failed", zap.String("payout_id", po.ID), zap.Error(err))
		return TransitionResult{}, external(err)
	}
	if !r.Success {
		return TransitionResult{}, fmt.Errorf("%w: payout %s", ErrPayoutNotSent, po.ID)
	}
	updated, err := u.loadPayout(ctx, po.ID)
	if err != nil {
		return TransitionResult{}, err
	}

	p, err := loadProject(ctx, u.projects, po.ProjectID)
	if err != nil {
		return TransitionResult{}, err
	}

	var out effects.Outbox
	out.Add(effects.ChangeEvent{Table: "payouts", RecordID: updated.ID, ProjectID: updated.ProjectID, Status: string(updated.Status)})
	out.Add(payoutChat(p, updated, "payout_confirmed",
		fmt.Sprintf("The expert confirmed receipt of the %s payout.", formatNaira(updated.WorkerShare)))...)
	out.Add(effects.Notification{
		RecipientRole: entities.RoleAdmin,
		ProjectID:     p.ID,
		Subject:       updated.ID,
		Kind:          "payout_confirmed",
		Title:         fmt.Sprintf("%s: payout received", p.Title),
		Body:          fmt.Sprintf("The expert confirmed receipt of %s.", formatNaira(updated.WorkerShare)),
	})

	res := TransitionResult{Project: p, Payout: &updated}
	if p.Status == entities.ProjectStatusAwaitingPayout {
		advanced, effs, applied, err := advance(ctx, u.projects, s, p,
			[]entities.ProjectStatus{entities.ProjectStatusAwaitingPayout},
			entities.ProjectStatusCompleted, "project_completed",
			"Payout confirmed. The project is complete and all files are unlocked.")
		if err != nil {
			// The receipt is recorded; the sweep completes the project.
			u.log.Warn("[payout][usecase] project completion deferred", zap.String("project_id", p.ID), zap.Error(err))
		} else if applied {
			res.Project, res.Advanced = advanced, true
			out.Add(effs...)
		}
	}

	res.Effects = out.Effects()
	u.dispatcher.Dispatch(ctx, res.Effects)
	u.log.Info("[payout][usecase] confirm receipt success", zap.String("payout_id", updated.ID), zap.Bool("advanced", res.Advanced))
	return res, nil
}

func (u *PayoutUseCase) InitiateTransfer(ctx context.Context, s entities.Session, payoutID string) (TransitionResult, error) {
	if err := requireSession(s); err != nil {
		return TransitionResult{}, err
	}
	if !s.IsAdmin() {
		return TransitionResult{}, fmt.Errorf("%w: only admins can initiate transfers", ErrForbidden)
	}
	po, err := u.loadPayout(ctx, payoutID)
	if err != nil {
		return TransitionResult{}, err
	}
	if po.TransferReference != "" {
		return TransitionResult{}, fmt.Errorf("%w: reference %s", ErrTransferAlreadyInitiated, po.TransferReference)
	}
	if po.Status == entities.PayoutStatusPaymentVerified {
		return TransitionResult{}, fmt.Errorf("%w: payout %s is already verified", ErrPrecondition, po.ID)
	}
	acc, err := u.bankAccount(ctx, po.WorkerID)
	if err != nil {
		return TransitionResult{}, err
	}
	if strings.TrimSpace(acc.RecipientCode) == "" {
		return TransitionResult{}, ErrMissingRecipientCode
	}
	if u.transfers == nil {
		return TransitionResult{}, ErrTransferGatewayNotConfigured
	}

	req := entities.TransferRequest{
		ProjectID:     po.ProjectID,
		WorkerID:      po.WorkerID,
		Amount:        po.WorkerShare,
		PlatformFee:   po.PlatformShare,
		RecipientCode: acc.RecipientCode,
	}
	u.log.Info("[payout][usecase] transfer start", zap.String("payout_id", po.ID), zap.Int64("amount", req.Amount))
	start := time.Now()
	result, err := u.transfers.Transfer(ctx, req)
	if err != nil {
		metrics.RecordGatewayCall("transfer", "error", time.Since(start))
		u.log.Error("[payout][usecase] transfer failed", zap.String("payout_id", po.ID), zap.Error(err))
		return TransitionResult{}, fmt.Errorf("%w: %w", ErrTransferFailed, err)
	}

	// A reference means the worker leg went out, even when the platform leg
	// failed afterwards. Storing it blocks a second worker transfer.
	updated := po
	if result.Reference != "" {
		updated, err = u.payouts.SetTransferReference(ctx, po.ID, result.Reference)
		if err != nil {
			u.log.Error("[payout][usecase] storing transfer reference failed",
				zap.String("payout_id", po.ID),
				zap.String("reference", result.Reference),
				zap.Error(err),
			)
			return TransitionResult{}, external(err)
		}
	}
	if !result.Success {
		metrics.RecordGatewayCall("transfer", "rejected", time.Since(start))
		if result.Reference != "" {
			u.log.Warn("[payout][usecase] platform transfer failed after worker transfer",
				zap.String("payout_id", po.ID),
				zap.String("reference", result.Reference),
			)
			return TransitionResult{}, fmt.Errorf("%w: worker transfer %s sent but platform transfer failed for payout %s",
				ErrTransferFailed, result.Reference, po.ID)
		}
		return TransitionResult{}, fmt.Errorf("%w: gateway reported failure for payout %s", ErrTransferFailed, po.ID)
	}
	metrics.RecordGatewayCall("transfer", "success", time.Since(start))

	p, err := loadProject(ctx, u.projects, po.ProjectID)
	if err != nil {
		return TransitionResult{}, err
	}
	effs := []effects.Effect{
		effects.ChangeEvent{Table: "payouts", RecordID: updated.ID, ProjectID: p.ID, Status: string(updated.Status)},
	}
	u.dispatcher.Dispatch(ctx, effs)
	u.log.Info("[payout][usecase] transfer success", zap.String("payout_id", po.ID), zap.String("reference", result.Reference))
	return TransitionResult{Project: p, Payout: &updated, Effects: effs}, nil
}

// payoutChat is the system line for a payout step, scoped to the payout so
// that it never collides with the project's own transition lines.
func payoutChat(p entities.Project, po entities.Payout, reason, body string) []effects.Effect {
	if p.ConversationID == "" {
		return nil
	}
	return []effects.Effect{effects.ChatMessage{
		ProjectID:      p.ID,
		ConversationID: p.ConversationID,
		Subject:        po.ID,
		Body:           body,
		Reason:         fmt.Sprintf("%s:%s", reason, po.Status),
	}}
}

func (u *PayoutUseCase) ListPayouts(ctx context.Context, s entities.Session) ([]entities.Payout, error) {
	if err := requireSession(s); err != nil {
		return nil, err
	}
	var (
		list []entities.Payout
		err  error
	)
	switch s.Role {
	case entities.RoleAdmin:
		list, err = u.payouts.ListAll(ctx)
	case entities.RoleWorker:
		list, err = u.payouts.ListByWorker(ctx, s.UserID)
	default:
		return nil, fmt.Errorf("%w: clients have no payouts", ErrForbidden)
	}
	if err != nil {
		return nil, external(err)
	}
	return list, nil
}
