package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"plaiz_studio/internal/domain/effects"
	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/domain/lifecycle"
	"plaiz_studio/internal/usecase/interfaces"
	"plaiz_studio/pkg/metrics"
)

// TransitionResult is what every lifecycle operation returns: the state after
// the committed mutation plus the side effects it emitted.
type TransitionResult struct {
	Project   entities.Project      `json:"project"`
	Agreement *entities.Agreement   `json:"agreement,omitempty"`
	Payment   *entities.Payment     `json:"payment,omitempty"`
	Payout    *entities.Payout      `json:"payout,omitempty"`
	File      *entities.ProjectFile `json:"file,omitempty"`
	// Advanced reports whether this call moved the project status.
	Advanced bool             `json:"advanced"`
	Effects  []effects.Effect `json:"-"`
}

// SystemSession is the actor used by the reconciliation sweep.
var SystemSession = entities.Session{UserID: "system", Role: entities.RoleAdmin}

func requireSession(s entities.Session) error {
	if strings.TrimSpace(s.UserID) == "" {
		return ErrInvalidSession
	}
	if _, ok := entities.ParseRole(string(s.Role)); !ok {
		return ErrInvalidSession
	}
	return nil
}

func loadProject(ctx context.Context, repo interfaces.IProjectRepository, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, external(err)
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

// canView: admins see everything, others only projects they take part in.
func canView(p entities.Project, s entities.Session) error {
	if s.IsAdmin() || p.IsParticipant(s.UserID) {
		return nil
	}
	return fmt.Errorf("%w: project %s", ErrForbidden, p.ID)
}

// activeAgreement returns the most recent agreement, or nil.
func activeAgreement(list []entities.Agreement) *entities.Agreement {
	var active *entities.Agreement
	for i := range list {
		if active == nil || list[i].Newer(*active) {
			active = &list[i]
		}
	}
	if active == nil {
		return nil
	}
	out := *active
	return &out
}

func loadActiveAgreement(ctx context.Context, repo interfaces.IAgreementRepository, projectID string) (*entities.Agreement, error) {
	list, err := repo.ListByProjectID(ctx, projectID)
	if err != nil {
		return nil, external(err)
	}
	return activeAgreement(list), nil
}

// advance conditionally moves p from one of from to to. It reports false
// without error when another writer changed the status first.
func advance(
	ctx context.Context,
	repo interfaces.IProjectRepository,
	actor entities.Session,
	p entities.Project,
	from []entities.ProjectStatus,
	to entities.ProjectStatus,
	kind, body string,
) (entities.Project, []effects.Effect, bool, error) {
	if !lifecycle.CanTransition(p.Status, to) {
		return p, nil, false, fmt.Errorf("%w: cannot move project from %s to %s", ErrPrecondition, p.Status, to)
	}
	updated, applied, err := repo.UpdateStatus(ctx, p.ID, from, to)
	if err != nil {
		return p, nil, false, external(err)
	}
	if !applied {
		return p, nil, false, nil
	}
	metrics.RecordTransition(string(p.Status), string(to))
	return updated, effects.ForTransition(updated, p.Status, actor, kind, body), true, nil
}

// ensurePayout creates the payout of an eligible project once. The payout id
// equals the project id.
func ensurePayout(
	ctx context.Context,
	payouts interfaces.IPayoutRepository,
	p entities.Project,
	agreement *entities.Agreement,
	now time.Time,
) (entities.Payout, bool, error) {
	if !lifecycle.PayoutEligible(p) {
		return entities.Payout{}, false, fmt.Errorf("%w: project %s is %s, no payout yet", ErrPrecondition, p.ID, p.Status)
	}
	existing, err := payouts.GetByID(ctx, p.ID)
	if err != nil {
		return entities.Payout{}, false, external(err)
	}
	if existing.ID != "" {
		return existing, false, nil
	}
	if agreement == nil || !agreement.IsFinal() {
		return entities.Payout{}, false, fmt.Errorf("%w: project %s has no final agreement", ErrPrecondition, p.ID)
	}
	worker, platform := lifecycle.SplitPayout(agreement.Amount)
	po := entities.Payout{
		ID:            p.ID,
		ProjectID:     p.ID,
		WorkerID:      p.WorkerID,
		GrossAmount:   agreement.Amount,
		WorkerShare:   worker,
		PlatformShare: platform,
		Status:        entities.PayoutStatusAwaitingPayment,
		CreatedAt:     now,
	}
	created, isNew, err := payouts.Create(ctx, po)
	if err != nil {
		return entities.Payout{}, false, external(err)
	}
	return created, isNew, nil
}

// formatNaira renders kobo as "₦50,000.00".
func formatNaira(kobo int64) string {
	sign := ""
	if kobo < 0 {
		sign = "-"
		kobo = -kobo
	}
	whole := strconv.FormatInt(kobo/100, 10)
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return fmt.Sprintf("%s₦%s.%02d", sign, b.String(), kobo%100)
}
