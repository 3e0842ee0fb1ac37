package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"plaiz_studio/internal/domain/effects"
	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/domain/lifecycle"
	"plaiz_studio/internal/usecase/interfaces"
	"plaiz_studio/pkg/logger"
	"plaiz_studio/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidPhase           = fmt.Errorf("%w: phase must be deposit_40 or balance_60", ErrValidation)
	ErrInvalidPaymentStatus   = fmt.Errorf("%w: status must be pending, confirmed or failed", ErrValidation)
	ErrInvalidCheckoutPayload = fmt.Errorf("%w: invalid checkout payload", ErrValidation)

	ErrPaymentGatewayNotConfigured    = fmt.Errorf("%w: payment gateway not configured", ErrExternalService)
	ErrPaymentGatewayBadRequest       = fmt.Errorf("%w: payment gateway bad request", ErrExternalService)
	ErrPaymentGatewayUnauthorized     = fmt.Errorf("%w: payment gateway unauthorized", ErrExternalService)
	ErrPaymentGatewayInvalidUsers     = fmt.Errorf("%w: payment gateway invalid users involved", ErrExternalService)
	ErrPaymentGatewayCustomerNotFound = fmt.Errorf("%w: payment gateway customer not found", ErrExternalService)
)

// PaymentInput records a payment confirmed outside the service. Amount is in kobo.
type PaymentInput struct {
	Phase     entities.PaymentPhase
	Amount    int64
	Reference string
	Status    string
}

// CheckoutInput charges the client through the checkout gateway. The amount
// is checked against the agreement before the gateway is called.
type CheckoutInput struct {
	Phase           entities.PaymentPhase
	Amount          int64
	ProviderPayload json.RawMessage
}

// IPaymentUseCase is the payment gate: deposit before work, balance before payout.

type IPaymentUseCase interface {
	RecordPayment(ctx context.Context, s entities.Session, projectID string, in PaymentInput) (TransitionResult, error)
	Checkout(ctx context.Context, s entities.Session, projectID string, in CheckoutInput) (TransitionResult, error)
	ListPayments(ctx context.Context, s entities.Session, projectID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	projects   interfaces.IProjectRepository
	agreements interfaces.IAgreementRepository
	payments   interfaces.IPaymentRepository
	payouts    interfaces.IPayoutRepository
	gateway    interfaces.IPaymentGateway
	dispatcher *SideEffectDispatcher
	log        *zap.Logger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	projects interfaces.IProjectRepository,
	agreements interfaces.IAgreementRepository,
	payments interfaces.IPaymentRepository,
	payouts interfaces.IPayoutRepository,
	gateway interfaces.IPaymentGateway,
	dispatcher *SideEffectDispatcher,
	log *zap.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		projects:   projects,
		agreements: agreements,
		payments:   payments,
		payouts:    payouts,
		gateway:    gateway,
		dispatcher: dispatcher,
		log:        logger.OrNop(log),
	}
}

func (u *PaymentUseCase) RecordPayment(ctx context.Context, s entities.Session, projectID string, in PaymentInput) (TransitionResult, error) {
	if err := requireSession(s); err != nil {
		return TransitionResult{}, err
	}
	status, ok := entities.ParsePaymentStatus(strings.ToLower(strings.TrimSpace(in.Status)))
	if !ok {
		return TransitionResult{}, ErrInvalidPaymentStatus
	}
	u.log.Info("[payment][usecase] record start",
		zap.String("project_id", projectID),
		zap.String("phase", string(in.Phase)),
		zap.Int64("amount", in.Amount),
		zap.String("status", string(status)),
	)
	p, agreement, err := u.check(ctx, s, projectID, in.Phase, in.Amount)
	if err != nil {
		return TransitionResult{}, err
	}
	return u.record(ctx, s, p, agreement, entities.Payment{
		Phase:     in.Phase,
		Amount:    in.Amount,
		Status:    status,
		Reference: strings.TrimSpace(in.Reference),
	})
}

// check runs the payment gate on current state.
func (u *PaymentUseCase) check(ctx context.Context, s entities.Session, projectID string, phase entities.PaymentPhase, amount int64) (entities.Project, *entities.Agreement, error) {
	if !phase.Valid() {
		return entities.Project{}, nil, ErrInvalidPhase
	}
	if amount <= 0 {
		return entities.Project{}, nil, ErrInvalidAmount
	}
	p, err := loadProject(ctx, u.projects, projectID)
	if err != nil {
		return entities.Project{}, nil, err
	}
	agreement, err := loadActiveAgreement(ctx, u.agreements, p.ID)
	if err != nil {
		return entities.Project{}, nil, err
	}
	if err := guardError(lifecycle.CanRecordPayment(lifecycle.PaymentContext{
		Project: p, Caller: s, Phase: phase, Amount: amount, Agreement: agreement,
	})); err != nil {
		u.log.Info("[payment][usecase] payment refused", zap.String("project_id", p.ID), zap.Error(err))
		return entities.Project{}, nil, err
	}
	return p, agreement, nil
}

func (u *PaymentUseCase) record(ctx context.Context, s entities.Session, p entities.Project, agreement *entities.Agreement, pay entities.Payment) (TransitionResult, error) {
	pay.ID = uuid.NewString()
	pay.ProjectID = p.ID
	pay.PayerID = s.UserID
	pay.CreatedAt = time.Now().UTC()

	created, err := u.payments.Create(ctx, pay)
	if err != nil {
		u.log.Error("[payment][usecase] payment create failed", zap.String("project_id", p.ID), zap.Error(err))
		return TransitionResult{}, external(err)
	}

	var out effects.Outbox
	out.Add(effects.ChangeEvent{Table: "payments", RecordID: created.ID, ProjectID: p.ID, Status: string(created.Status)})
	res := TransitionResult{Project: p, Payment: &created}

	to, kind, body := paymentTarget(created)
	if to != "" && to != p.Status {
		updated, effs, applied, err := advance(ctx, u.projects, s, p, lifecycle.PaymentFromStatuses(created.Phase), to, kind, body)
		if err != nil {
			return TransitionResult{}, err
		}
		if applied {
			res.Project, res.Advanced = updated, true
			out.Add(effects.About(created.ID, effs...)...)
		}
	}

	if res.Project.Status == entities.ProjectStatusAwaitingPayout {
		po, isNew, err := ensurePayout(ctx, u.payouts, res.Project, agreement, created.CreatedAt)
		if err != nil {
			// The sweep or the first payout view creates it later.
			u.log.Warn("[payment][usecase] payout creation deferred", zap.String("project_id", p.ID), zap.Error(err))
		} else {
			res.Payout = &po
			if isNew {
				out.Add(effects.ChangeEvent{Table: "payouts", RecordID: po.ID, ProjectID: p.ID, Status: string(po.Status)})
			}
		}
	}

	res.Effects = out.Effects()
	u.dispatcher.Dispatch(ctx, res.Effects)
	u.log.Info("[payment][usecase] record success",
		zap.String("project_id", p.ID),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
		zap.Bool("advanced", res.Advanced),
	)
	return res, nil
}

// paymentTarget is the status a recorded payment moves the project to, if any.
func paymentTarget(pay entities.Payment) (entities.ProjectStatus, string, string) {
	switch {
	case pay.Phase == entities.PaymentPhaseDeposit && pay.Status == entities.PaymentStatusConfirmed:
		return entities.ProjectStatusInProgress, "deposit_confirmed",
			fmt.Sprintf("Deposit of %s confirmed. Work has started.", formatNaira(pay.Amount))
	case pay.Phase == entities.PaymentPhaseBalance && pay.Status == entities.PaymentStatusConfirmed:
		return entities.ProjectStatusAwaitingPayout, "balance_confirmed",
			fmt.Sprintf("Balance of %s confirmed. Files are unlocked once the payout completes.", formatNaira(pay.Amount))
	case pay.Phase == entities.PaymentPhaseBalance && pay.Status == entities.PaymentStatusPending:
		return entities.ProjectStatusAwaitingFinalPayment, "balance_pending",
			fmt.Sprintf("Balance payment of %s is being processed.", formatNaira(pay.Amount))
	}
	return "", "", ""
}

func (u *PaymentUseCase) Checkout(ctx context.Context, s entities.Session, projectID string, in CheckoutInput) (TransitionResult, error) {
	if err := requireSession(s); err != nil {
		return TransitionResult{}, err
	}
	u.log.Info("[payment][usecase] checkout start",
		zap.String("project_id", projectID),
		zap.String("phase", string(in.Phase)),
		zap.Int("payload_len", len(in.ProviderPayload)),
	)
	payload := in.ProviderPayload
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return TransitionResult{}, ErrInvalidCheckoutPayload
	}
	if u.gateway == nil {
		return TransitionResult{}, ErrPaymentGatewayNotConfigured
	}
	p, agreement, err := u.check(ctx, s, projectID, in.Phase, in.Amount)
	if err != nil {
		return TransitionResult{}, err
	}

	// Mercado Pago uses external_reference to reconcile events. The agreement
	// is the source of truth for the amount.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		return TransitionResult{}, ErrInvalidCheckoutPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = fmt.Sprintf("%s:%s", p.ID, in.Phase)
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("%s (%s)", p.Title, in.Phase)
	}
	reqMap["transaction_amount"] = entities.KoboToNaira(lifecycle.PhaseAmount(*agreement, in.Phase))
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return TransitionResult{}, ErrInvalidCheckoutPayload
	}

	start := time.Now()
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		metrics.RecordGatewayCall("checkout", "error", time.Since(start))
		u.log.Error("[payment][usecase] payment gateway failed", zap.String("project_id", p.ID), zap.Error(err))
		return TransitionResult{}, classifyGatewayError(err)
	}
	metrics.RecordGatewayCall("checkout", providerStatus, time.Since(start))
	u.log.Info("[payment][usecase] payment gateway success",
		zap.String("project_id", p.ID),
		zap.String("provider_payment_id", providerID),
		zap.String("provider_status", providerStatus),
	)

	return u.record(ctx, s, p, agreement, entities.Payment{
		Phase:           in.Phase,
		Amount:          in.Amount,
		Status:          mapProviderStatus(providerStatus),
		Reference:       providerID,
		ProviderPayload: providerResp,
	})
}

func mapProviderStatus(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved":
		return entities.PaymentStatusConfirmed
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusFailed
	}
	return entities.PaymentStatusPending
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayCustomerNotFound, err)
	case isGatewayInvalidUsers(err):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayInvalidUsers, err)
	case isGatewayUnauthorized(err):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayUnauthorized, err)
	case isGatewayBadRequest(err):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayBadRequest, err)
	}
	return external(err)
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

func (u *PaymentUseCase) ListPayments(ctx context.Context, s entities.Session, projectID string) ([]entities.Payment, error) {
	if err := requireSession(s); err != nil {
		return nil, err
	}
	p, err := loadProject(ctx, u.projects, projectID)
	if err != nil {
		return nil, err
	}
	if err := canView(p, s); err != nil {
		return nil, err
	}
	list, err := u.payments.ListByProjectID(ctx, p.ID)
	if err != nil {
		return nil, external(err)
	}
	return list, nil
}
