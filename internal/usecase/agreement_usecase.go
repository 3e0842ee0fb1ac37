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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProposalInput is a worker's price proposal. Amount is in kobo.
type ProposalInput struct {
	Amount       int64
	Deliverables string
	Timeline     string
}

// IAgreementUseCase negotiates the project price between client and worker.

type IAgreementUseCase interface {
	ProposePrice(ctx context.Context, s entities.Session, projectID string, in ProposalInput) (TransitionResult, error)
	AcceptPrice(ctx context.Context, s entities.Session, agreementID string) (TransitionResult, error)
	DeclinePrice(ctx context.Context, s entities.Session, agreementID string) (TransitionResult, error)
	GetActiveAgreement(ctx context.Context, s entities.Session, projectID string) (entities.Agreement, error)
}

type AgreementUseCase struct {
	projects   interfaces.IProjectRepository
	agreements interfaces.IAgreementRepository
	dispatcher *SideEffectDispatcher
	log        *zap.Logger
}

var _ IAgreementUseCase = (*AgreementUseCase)(nil)

func NewAgreementUseCase(projects interfaces.IProjectRepository, agreements interfaces.IAgreementRepository, dispatcher *SideEffectDispatcher, log *zap.Logger) *AgreementUseCase {
	return &AgreementUseCase{projects: projects, agreements: agreements, dispatcher: dispatcher, log: logger.OrNop(log)}
}

func (u *AgreementUseCase) ProposePrice(ctx context.Context, s entities.Session, projectID string, in ProposalInput) (TransitionResult, error) {
	if err := requireSession(s); err != nil {
		return TransitionResult{}, err
	}
	if in.Amount <= 0 {
		return TransitionResult{}, ErrInvalidAmount
	}
	p, err := loadProject(ctx, u.projects, projectID)
	if err != nil {
		return TransitionResult{}, err
	}
	active, err := loadActiveAgreement(ctx, u.agreements, p.ID)
	if err != nil {
		return TransitionResult{}, err
	}
	if err := guardError(lifecycle.CanProposePrice(lifecycle.ProposeContext{
		Project: p, Caller: s, Amount: in.Amount, Active: active,
	})); err != nil {
		u.log.Info("[agreement][usecase] propose refused", zap.String("project_id", p.ID), zap.Error(err))
		return TransitionResult{}, err
	}

	now := time.Now().UTC()
	a, err := u.agreements.Create(ctx, entities.Agreement{
		ID:               uuid.NewString(),
		ProjectID:        p.ID,
		ProposedBy:       s.UserID,
		Amount:           in.Amount,
		FreelancerAgreed: true,
		Deliverables:     strings.TrimSpace(in.Deliverables),
		Timeline:         strings.TrimSpace(in.Timeline),
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		u.log.Error("[agreement][usecase] create failed", zap.String("project_id", p.ID), zap.Error(err))
		return TransitionResult{}, external(err)
	}

	body := fmt.Sprintf("Price proposed: %s.", formatNaira(a.Amount))
	var out effects.Outbox
	out.Add(effects.ChangeEvent{Table: "agreements", RecordID: a.ID, ProjectID: p.ID, Status: "proposed"})

	res := TransitionResult{Project: p, Agreement: &a}
	if p.Status != entities.ProjectStatusPendingAgreement {
		updated, effs, applied, err := advance(ctx, u.projects, s, p,
			[]entities.ProjectStatus{entities.ProjectStatusAssigned, entities.ProjectStatusChatNegotiation},
			entities.ProjectStatusPendingAgreement, "price_proposed", body)
		if err != nil {
			return TransitionResult{}, err
		}
		if applied {
			res.Project, res.Advanced = updated, true
			out.Add(effects.About(a.ID, effs...)...)
		}
	} else {
		// A new round after a decline: the project already waits for agreement.
		out.Add(effects.About(a.ID, effects.ForTransition(p, p.Status, s, "price_proposed", body)...)...)
	}

	res.Effects = out.Effects()
	u.dispatcher.Dispatch(ctx, res.Effects)
	u.log.Info("[agreement][usecase] propose success",
		zap.String("project_id", p.ID),
		zap.String("agreement_id", a.ID),
		zap.Int64("amount", a.Amount),
	)
	return res, nil
}

func (u *AgreementUseCase) AcceptPrice(ctx context.Context, s entities.Session, agreementID string) (TransitionResult, error) {
	if err := requireSession(s); err != nil {
		return TransitionResult{}, err
	}
	a, p, active, err := u.loadForDecision(ctx, agreementID)
	if err != nil {
		return TransitionResult{}, err
	}
	if err := guardError(lifecycle.CanAcceptPrice(lifecycle.AcceptContext{
		Project: p, Caller: s, Agreement: a, Active: active,
	})); err != nil {
		u.log.Info("[agreement][usecase] accept refused", zap.String("agreement_id", a.ID), zap.Error(err))
		return TransitionResult{}, err
	}
	u.log.Info("[agreement][usecase] accept start", zap.String("agreement_id", a.ID), zap.String("role", string(s.Role)))

	var out effects.Outbox
	if !a.AcceptedBy(s.Role) {
		if _, err := u.agreements.SetAcceptance(ctx, a.ID, s.Role); err != nil {
			u.log.Error("[agreement][usecase] set acceptance failed", zap.String("agreement_id", a.ID), zap.Error(err))
			return TransitionResult{}, external(err)
		}
		out.Add(effects.ChangeEvent{Table: "agreements", RecordID: a.ID, ProjectID: p.ID, Status: "accepted_by_" + string(s.Role)})
	}

	// Decide on fresh state: the counter-party may have accepted concurrently.
	fresh, err := u.agreements.GetByID(ctx, a.ID)
	if err != nil {
		return TransitionResult{}, external(err)
	}
	if fresh.ID == "" {
		return TransitionResult{}, ErrAgreementNotFound
	}
	current, err := loadProject(ctx, u.projects, p.ID)
	if err != nil {
		return TransitionResult{}, err
	}

	res := TransitionResult{Project: current, Agreement: &fresh}
	if lifecycle.ShouldFinalizeAgreement(current, &fresh) {
		body := fmt.Sprintf("Price agreed at %s. A 40%% deposit of %s is now due.",
			formatNaira(fresh.Amount), formatNaira(lifecycle.PhaseAmount(fresh, entities.PaymentPhaseDeposit)))
		updated, effs, applied, err := advance(ctx, u.projects, s, current,
			[]entities.ProjectStatus{entities.ProjectStatusPendingAgreement},
			entities.ProjectStatusPendingDownPayment, "price_agreed", body)
		if err != nil {
			return TransitionResult{}, err
		}
		if applied {
			res.Project, res.Advanced = updated, true
			out.Add(effects.About(fresh.ID, effs...)...)
		} else if reread, err := loadProject(ctx, u.projects, p.ID); err == nil {
			res.Project = reread
		}
	}

	res.Effects = out.Effects()
	u.dispatcher.Dispatch(ctx, res.Effects)
	u.log.Info("[agreement][usecase] accept success",
		zap.String("agreement_id", fresh.ID),
		zap.Bool("final", fresh.IsFinal()),
		zap.Bool("advanced", res.Advanced),
	)
	return res, nil
}

func (u *AgreementUseCase) DeclinePrice(ctx context.Context, s entities.Session, agreementID string) (TransitionResult, error) {
	if err := requireSession(s); err != nil {
		return TransitionResult{}, err
	}
	a, p, active, err := u.loadForDecision(ctx, agreementID)
	if err != nil {
		return TransitionResult{}, err
	}
	if err := guardError(lifecycle.CanDeclinePrice(lifecycle.AcceptContext{
		Project: p, Caller: s, Agreement: a, Active: active,
	})); err != nil {
		return TransitionResult{}, err
	}

	declined, applied, err := u.agreements.MarkDeclined(ctx, a.ID)
	if err != nil {
		return TransitionResult{}, external(err)
	}
	if !applied {
		return TransitionResult{}, fmt.Errorf("%w: agreement %s was resolved concurrently", ErrPrecondition, a.ID)
	}

	var out effects.Outbox
	out.Add(effects.ChangeEvent{Table: "agreements", RecordID: a.ID, ProjectID: p.ID, Status: "declined"})
	out.Add(effects.About(a.ID, effects.ForTransition(p, p.Status, s, "price_declined",
		fmt.Sprintf("The client declined the proposed price of %s.", formatNaira(a.Amount)))...)...)

	res := TransitionResult{Project: p, Agreement: &declined, Effects: out.Effects()}
	u.dispatcher.Dispatch(ctx, res.Effects)
	u.log.Info("[agreement][usecase] decline success", zap.String("agreement_id", a.ID), zap.String("project_id", p.ID))
	return res, nil
}

func (u *AgreementUseCase) GetActiveAgreement(ctx context.Context, s entities.Session, projectID string) (entities.Agreement, error) {
	if err := requireSession(s); err != nil {
		return entities.Agreement{}, err
	}
	p, err := loadProject(ctx, u.projects, projectID)
	if err != nil {
		return entities.Agreement{}, err
	}
	if err := canView(p, s); err != nil {
		return entities.Agreement{}, err
	}
	active, err := loadActiveAgreement(ctx, u.agreements, p.ID)
	if err != nil {
		return entities.Agreement{}, err
	}
	if active == nil {
		return entities.Agreement{}, ErrAgreementNotFound
	}
	return *active, nil
}

// loadForDecision reads the agreement, its project and the project's active
// agreement.
func (u *AgreementUseCase) loadForDecision(ctx context.Context, agreementID string) (entities.Agreement, entities.Project, entities.Agreement, error) {
	agreementID = strings.TrimSpace(agreementID)
	if agreementID == "" {
		return entities.Agreement{}, entities.Project{}, entities.Agreement{}, ErrInvalidAgreementID
	}
	a, err := u.agreements.GetByID(ctx, agreementID)
	if err != nil {
		return entities.Agreement{}, entities.Project{}, entities.Agreement{}, external(err)
	}
	if a.ID == "" {
		return entities.Agreement{}, entities.Project{}, entities.Agreement{}, ErrAgreementNotFound
	}
	p, err := loadProject(ctx, u.projects, a.ProjectID)
	if err != nil {
		return entities.Agreement{}, entities.Project{}, entities.Agreement{}, err
	}
	active, err := loadActiveAgreement(ctx, u.agreements, p.ID)
	if err != nil {
		return entities.Agreement{}, entities.Project{}, entities.Agreement{}, err
	}
	if active == nil {
		active = &a
	}
	return a, p, *active, nil
}
