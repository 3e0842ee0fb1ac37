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

var (
	ErrInvalidTitle         = fmt.Errorf("%w: title is required", ErrValidation)
	ErrInvalidCategory      = fmt.Errorf("%w: unknown service category", ErrValidation)
	ErrInvalidWebScope      = fmt.Errorf("%w: web projects need a scope of prototype or full_site", ErrValidation)
	ErrInvalidPrintDetails  = fmt.Errorf("%w: printing projects need an item and a positive quantity", ErrValidation)
	ErrInvalidWorkerID      = fmt.Errorf("%w: invalid worker id", ErrValidation)
	ErrInvalidStatusGroup   = fmt.Errorf("%w: unknown status group", ErrValidation)
	ErrProjectNotAssignable = fmt.Errorf("%w: project already has a worker", ErrPrecondition)
)

// ProjectInput is a client's project request.
type ProjectInput struct {
	Title          string
	Description    string
	Category       entities.ServiceCategory
	WebScope       entities.WebScope
	PrintItem      string
	PrintQuantity  int
	AttachmentURLs []string
}

// IProjectUseCase covers project requests and the transitions driven directly
// by a dashboard button: assignment, negotiation, approval and moderation.

type IProjectUseCase interface {
	CreateProject(ctx context.Context, s entities.Session, in ProjectInput) (TransitionResult, error)
	AssignWorker(ctx context.Context, s entities.Session, projectID, workerID string) (TransitionResult, error)
	OpenNegotiation(ctx context.Context, s entities.Session, projectID string) (TransitionResult, error)
	Approve(ctx context.Context, s entities.Session, projectID string) (TransitionResult, error)
	Cancel(ctx context.Context, s entities.Session, projectID, reason string) (TransitionResult, error)
	Flag(ctx context.Context, s entities.Session, projectID, reason string) (TransitionResult, error)
	Get(ctx context.Context, s entities.Session, projectID string) (entities.Project, error)
	List(ctx context.Context, s entities.Session, group string) ([]entities.Project, error)
}

type ProjectUseCase struct {
	repo          interfaces.IProjectRepository
	conversations interfaces.IConversationRepository
	matcher       interfaces.IWorkerMatcher
	dispatcher    *SideEffectDispatcher
	log           *zap.Logger
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(
	repo interfaces.IProjectRepository,
	conversations interfaces.IConversationRepository,
	matcher interfaces.IWorkerMatcher,
	dispatcher *SideEffectDispatcher,
	log *zap.Logger,
) *ProjectUseCase {
	return &ProjectUseCase{
		repo:          repo,
		conversations: conversations,
		matcher:       matcher,
		dispatcher:    dispatcher,
		log:           logger.OrNop(log),
	}
}

func (u *ProjectUseCase) CreateProject(ctx context.Context, s entities.Session, in ProjectInput) (TransitionResult, error) {
	if err := requireSession(s); err != nil {
		return TransitionResult{}, err
	}
	if s.Role != entities.RoleClient {
		return TransitionResult{}, fmt.Errorf("%w: only clients can request projects", ErrForbidden)
	}
	if err := validateProjectInput(&in); err != nil {
		return TransitionResult{}, err
	}
	u.log.Info("[project][usecase] create start", zap.String("client_id", s.UserID), zap.String("category", string(in.Category)))

	workerID := ""
	if u.matcher != nil {
		id, err := u.matcher.Match(ctx, in.Category)
		if err != nil {
			// The request is still accepted and waits for an admin assignment.
			u.log.Warn("[project][usecase] worker matching failed", zap.String("category", string(in.Category)), zap.Error(err))
		} else {
			workerID = strings.TrimSpace(id)
		}
	}

	status := entities.ProjectStatusPending
	if workerID != "" {
		status = entities.ProjectStatusAssigned
	}

	now := time.Now().UTC()
	p := entities.Project{
		ID:             uuid.NewString(),
		ClientID:       s.UserID,
		WorkerID:       workerID,
		Title:          in.Title,
		Description:    in.Description,
		Category:       in.Category,
		Status:         status,
		WebScope:       in.WebScope,
		PrintItem:      in.PrintItem,
		PrintQuantity:  in.PrintQuantity,
		AttachmentURLs: in.AttachmentURLs,
		ConversationID: uuid.NewString(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.log.Error("[project][usecase] create failed", zap.String("client_id", s.UserID), zap.Error(err))
		u.releaseWorker(ctx, workerID)
		return TransitionResult{}, external(err)
	}
	if u.conversations != nil {
		if _, err := u.conversations.Create(ctx, entities.Conversation{
			ID:        created.ConversationID,
			ProjectID: created.ID,
			ClientID:  created.ClientID,
			WorkerID:  created.WorkerID,
			CreatedAt: now,
		}); err != nil {
			// Messages are keyed by the conversation id, so chat keeps working.
			u.log.Warn("[project][usecase] conversation create failed", zap.String("project_id", created.ID), zap.Error(err))
		}
	}

	body := "Project request received. We are curating an expert team for you."
	if workerID != "" {
		body = "Project request received and an expert has been assigned."
	}
	effs := effects.ForTransition(created, "", s, "project_created", body)
	u.dispatcher.Dispatch(ctx, effs)
	u.log.Info("[project][usecase] create success", zap.String("project_id", created.ID), zap.String("status", string(created.Status)))
	return TransitionResult{Project: created, Advanced: true, Effects: effs}, nil
}

func (u *ProjectUseCase) releaseWorker(ctx context.Context, workerID string) {
	if workerID == "" || u.matcher == nil {
		return
	}
	if err := u.matcher.Release(context.WithoutCancel(ctx), workerID); err != nil {
		u.log.Error("[project][usecase] worker release failed", zap.String("worker_id", workerID), zap.Error(err))
	}
}

func validateProjectInput(in *ProjectInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if in.Title == "" {
		return ErrInvalidTitle
	}
	if !in.Category.Valid() {
		return ErrInvalidCategory
	}
	switch in.Category {
	case entities.ServiceCategoryWebDesign:
		if in.WebScope != entities.WebScopePrototype && in.WebScope != entities.WebScopeFullSite {
			return ErrInvalidWebScope
		}
		in.PrintItem, in.PrintQuantity = "", 0
	case entities.ServiceCategoryPrinting:
		in.PrintItem = strings.TrimSpace(in.PrintItem)
		if in.PrintItem == "" || in.PrintQuantity <= 0 {
			return ErrInvalidPrintDetails
		}
		in.WebScope = ""
	default:
		in.WebScope, in.PrintItem, in.PrintQuantity = "", "", 0
	}
	return nil
}

func (u *ProjectUseCase) AssignWorker(ctx context.Context, s entities.Session, projectID, workerID string) (TransitionResult, error) {
	if err := requireSession(s); err != nil {
		return TransitionResult{}, err
	}
	if !s.IsAdmin() {
		return TransitionResult{}, fmt.Errorf("%w: only admins can assign workers", ErrForbidden)
	}
	workerID = strings.TrimSpace(workerID)
	if workerID == "" {
		return TransitionResult{}, ErrInvalidWorkerID
	}
	p, err := loadProject(ctx, u.repo, projectID)
	if err != nil {
		return TransitionResult{}, err
	}
	from := []entities.ProjectStatus{entities.ProjectStatusPending, entities.ProjectStatusQueued}
	if !lifecycle.CanTransition(p.Status, entities.ProjectStatusAssigned) {
		return TransitionResult{}, fmt.Errorf("%w: project is %s", ErrProjectNotAssignable, p.Status)
	}

	updated, applied, err := u.repo.AssignWorker(ctx, p.ID, workerID, from)
	if err != nil {
		return TransitionResult{}, external(err)
	}
	if !applied {
		return TransitionResult{}, ErrStaleStatus
	}
	effs := effects.ForTransition(updated, p.Status, s, "worker_assigned", "An expert has been assigned to your project.")
	u.dispatcher.Dispatch(ctx, effs)
	u.log.Info("[project][usecase] worker assigned", zap.String("project_id", p.ID), zap.String("worker_id", workerID))
	return TransitionResult{Project: updated, Advanced: true, Effects: effs}, nil
}

func (u *ProjectUseCase) OpenNegotiation(ctx context.Context, s entities.Session, projectID string) (TransitionResult, error) {
	if err := requireSession(s); err != nil {
		return TransitionResult{}, err
	}
	p, err := loadProject(ctx, u.repo, projectID)
	if err != nil {
		return TransitionResult{}, err
	}
	if !p.IsParticipant(s.UserID) {
		return TransitionResult{}, fmt.Errorf("%w: project %s", ErrForbidden, p.ID)
	}
	if p.Status == entities.ProjectStatusChatNegotiation {
		return TransitionResult{Project: p}, nil
	}
	return u.move(ctx, s, p, []entities.ProjectStatus{entities.ProjectStatusAssigned}, entities.ProjectStatusChatNegotiation,
		"negotiation_opened", "Negotiation started. Discuss scope and price in this chat.")
}

func (u *ProjectUseCase) Approve(ctx context.Context, s entities.Session, projectID string) (TransitionResult, error) {
	if err := requireSession(s); err != nil {
		return TransitionResult{}, err
	}
	p, err := loadProject(ctx, u.repo, projectID)
	if err != nil {
		return TransitionResult{}, err
	}
	if err := guardError(lifecycle.CanApprove(p, s)); err != nil {
		return TransitionResult{}, err
	}
	return u.move(ctx, s, p,
		[]entities.ProjectStatus{entities.ProjectStatusInProgress, entities.ProjectStatusReadyForReview},
		entities.ProjectStatusApproved,
		"work_approved", "The client approved the delivered work. The balance payment is now due.")
}

func (u *ProjectUseCase) Cancel(ctx context.Context, s entities.Session, projectID, reason string) (TransitionResult, error) {
	return u.moderate(ctx, s, projectID, entities.ProjectStatusCancelled, reason)
}

func (u *ProjectUseCase) Flag(ctx context.Context, s entities.Session, projectID, reason string) (TransitionResult, error) {
	return u.moderate(ctx, s, projectID, entities.ProjectStatusFlagged, reason)
}

func (u *ProjectUseCase) moderate(ctx context.Context, s entities.Session, projectID string, to entities.ProjectStatus, reason string) (TransitionResult, error) {
	if err := requireSession(s); err != nil {
		return TransitionResult{}, err
	}
	p, err := loadProject(ctx, u.repo, projectID)
	if err != nil {
		return TransitionResult{}, err
	}
	if err := guardError(lifecycle.CanModerate(p, s, to)); err != nil {
		return TransitionResult{}, err
	}
	body := fmt.Sprintf("An admin marked this project as %s.", to)
	if reason = strings.TrimSpace(reason); reason != "" {
		body += " Reason: " + reason
	}
	return u.move(ctx, s, p, lifecycle.NonTerminalStatuses(), to, "project_"+string(to), body)
}

func (u *ProjectUseCase) move(ctx context.Context, s entities.Session, p entities.Project, from []entities.ProjectStatus, to entities.ProjectStatus, kind, body string) (TransitionResult, error) {
	updated, effs, applied, err := advance(ctx, u.repo, s, p, from, to, kind, body)
	if err != nil {
		u.log.Error("[project][usecase] transition failed", zap.String("project_id", p.ID), zap.String("to", string(to)), zap.Error(err))
		return TransitionResult{}, err
	}
	if !applied {
		return TransitionResult{}, ErrStaleStatus
	}
	u.dispatcher.Dispatch(ctx, effs)
	u.log.Info("[project][usecase] transition applied", zap.String("project_id", p.ID), zap.String("from", string(p.Status)), zap.String("to", string(to)))
	return TransitionResult{Project: updated, Advanced: true, Effects: effs}, nil
}

func (u *ProjectUseCase) Get(ctx context.Context, s entities.Session, projectID string) (entities.Project, error) {
	if err := requireSession(s); err != nil {
		return entities.Project{}, err
	}
	p, err := loadProject(ctx, u.repo, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if err := canView(p, s); err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (u *ProjectUseCase) List(ctx context.Context, s entities.Session, group string) ([]entities.Project, error) {
	if err := requireSession(s); err != nil {
		return nil, err
	}
	g, ok := entities.ParseStatusGroup(group)
	if !ok {
		return nil, ErrInvalidStatusGroup
	}

	var (
		list []entities.Project
		err  error
	)
	switch s.Role {
	case entities.RoleAdmin:
		statuses := entities.AllProjectStatuses
		if g != "" {
			statuses = g.Statuses()
		}
		list, err = u.repo.ListByStatuses(ctx, statuses)
	case entities.RoleWorker:
		list, err = u.repo.ListByWorker(ctx, s.UserID)
	default:
		list, err = u.repo.ListByClient(ctx, s.UserID)
	}
	if err != nil {
		return nil, external(err)
	}
	if g == "" {
		return list, nil
	}
	out := make([]entities.Project, 0, len(list))
	for _, p := range list {
		if p.Status.Group() == g {
			out = append(out, p)
		}
	}
	return out, nil
}
