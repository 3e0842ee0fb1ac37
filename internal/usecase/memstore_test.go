package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/usecase/interfaces"
)

// memStore is an in-memory store serializing every write under one mutex,
// the way the conditional DynamoDB writes serialize in production.
type memStore struct {
	mu         sync.Mutex
	projects   map[string]entities.Project
	agreements map[string]entities.Agreement
	payments   []entities.Payment
	payouts    map[string]entities.Payout
	files      []entities.ProjectFile
	accounts   map[string]entities.BankAccount
	messages   []entities.Message
	notes      []entities.Notification
	statusLog  []string

	conversations []entities.Conversation
}

func newMemStore() *memStore {
	return &memStore{
		projects:   map[string]entities.Project{},
		agreements: map[string]entities.Agreement{},
		payouts:    map[string]entities.Payout{},
		accounts:   map[string]entities.BankAccount{},
	}
}

func (m *memStore) project(id string) entities.Project {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.projects[id]
}

func (m *memStore) transitions(to entities.ProjectStatus) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, s := range m.statusLog {
		if s == string(to) {
			n++
		}
	}
	return n
}

type memProjects struct{ *memStore }

var _ interfaces.IProjectRepository = memProjects{}

func (m memProjects) Create(_ context.Context, p entities.Project) (entities.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.projects[p.ID] = p
	return p, nil
}

func (m memProjects) GetByID(_ context.Context, id string) (entities.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.projects[id], nil
}

func (m memProjects) list(keep func(entities.Project) bool) []entities.Project {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.Project
	for _, p := range m.projects {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (m memProjects) ListByClient(_ context.Context, clientID string) ([]entities.Project, error) {
	return m.list(func(p entities.Project) bool { return p.ClientID == clientID }), nil
}

func (m memProjects) ListByWorker(_ context.Context, workerID string) ([]entities.Project, error) {
	return m.list(func(p entities.Project) bool { return p.WorkerID == workerID }), nil
}

func (m memProjects) ListByStatuses(_ context.Context, statuses []entities.ProjectStatus) ([]entities.Project, error) {
	return m.list(func(p entities.Project) bool {
		for _, s := range statuses {
			if p.Status == s {
				return true
			}
		}
		return false
	}), nil
}

func (m memProjects) UpdateStatus(_ context.Context, id string, from []entities.ProjectStatus, to entities.ProjectStatus) (entities.Project, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[id]
	if !ok {
		return entities.Project{}, false, fmt.Errorf("project %s missing", id)
	}
	for _, s := range from {
		if p.Status == s {
			p.Status = to
			p.UpdatedAt = time.Now().UTC()
			m.projects[id] = p
			m.statusLog = append(m.statusLog, string(to))
			return p, true, nil
		}
	}
	return p, false, nil
}

func (m memProjects) AssignWorker(_ context.Context, id, workerID string, from []entities.ProjectStatus) (entities.Project, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.projects[id]
	for _, s := range from {
		if p.Status == s {
			p.Status = entities.ProjectStatusAssigned
			p.WorkerID = workerID
			m.projects[id] = p
			m.statusLog = append(m.statusLog, string(p.Status))
			return p, true, nil
		}
	}
	return p, false, nil
}

type memAgreements struct{ *memStore }

var _ interfaces.IAgreementRepository = memAgreements{}

func (m memAgreements) Create(_ context.Context, a entities.Agreement) (entities.Agreement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.agreements[a.ID] = a
	return a, nil
}

func (m memAgreements) GetByID(_ context.Context, id string) (entities.Agreement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.agreements[id], nil
}

func (m memAgreements) ListByProjectID(_ context.Context, projectID string) ([]entities.Agreement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.Agreement
	for _, a := range m.agreements {
		if a.ProjectID == projectID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m memAgreements) SetAcceptance(_ context.Context, id string, role entities.Role) (entities.Agreement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.agreements[id]
	switch role {
	case entities.RoleClient:
		a.ClientAgreed = true
	case entities.RoleWorker:
		a.FreelancerAgreed = true
	}
	m.agreements[id] = a
	return a, nil
}

func (m memAgreements) MarkDeclined(_ context.Context, id string) (entities.Agreement, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.agreements[id]
	if a.IsResolved() {
		return a, false, nil
	}
	a.Declined = true
	m.agreements[id] = a
	return a, true, nil
}

type memPayments struct{ *memStore }

var _ interfaces.IPaymentRepository = memPayments{}

func (m memPayments) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments = append(m.payments, p)
	return p, nil
}

func (m memPayments) ListByProjectID(_ context.Context, projectID string) ([]entities.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.Payment
	for _, p := range m.payments {
		if p.ProjectID == projectID {
			out = append(out, p)
		}
	}
	return out, nil
}

type memPayouts struct{ *memStore }

var _ interfaces.IPayoutRepository = memPayouts{}
var _ interfaces.IPayoutLedger = memPayouts{}

func (m memPayouts) Create(_ context.Context, p entities.Payout) (entities.Payout, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.payouts[p.ID]; ok {
		return existing, false, nil
	}
	m.payouts[p.ID] = p
	return p, true, nil
}

func (m memPayouts) GetByID(_ context.Context, id string) (entities.Payout, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.payouts[id], nil
}

func (m memPayouts) ListByWorker(_ context.Context, workerID string) ([]entities.Payout, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.Payout
	for _, p := range m.payouts {
		if p.WorkerID == workerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m memPayouts) ListAll(_ context.Context) ([]entities.Payout, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.Payout
	for _, p := range m.payouts {
		out = append(out, p)
	}
	return out, nil
}

func (m memPayouts) SetTransferReference(_ context.Context, id, reference string) (entities.Payout, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.payouts[id]
	p.TransferReference = reference
	m.payouts[id] = p
	return p, nil
}

func (m memPayouts) move(id string, from, to entities.PayoutStatus) (interfaces.LedgerResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.payouts[id]
	if !ok || p.Status != from {
		return interfaces.LedgerResult{Success: false}, nil
	}
	now := time.Now().UTC()
	p.Status = to
	if to == entities.PayoutStatusPaymentSent {
		p.SentAt = &now
	} else {
		p.VerifiedAt = &now
	}
	m.payouts[id] = p
	return interfaces.LedgerResult{Success: true}, nil
}

func (m memPayouts) MarkAsSent(_ context.Context, id string) (interfaces.LedgerResult, error) {
	return m.move(id, entities.PayoutStatusAwaitingPayment, entities.PayoutStatusPaymentSent)
}

func (m memPayouts) ConfirmReceipt(_ context.Context, id string) (interfaces.LedgerResult, error) {
	return m.move(id, entities.PayoutStatusPaymentSent, entities.PayoutStatusPaymentVerified)
}

type memFiles struct{ *memStore }

var _ interfaces.IProjectFileRepository = memFiles{}

func (m memFiles) Create(_ context.Context, f entities.ProjectFile) (entities.ProjectFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files = append(m.files, f)
	return f, nil
}

func (m memFiles) ListByProjectID(_ context.Context, projectID string) ([]entities.ProjectFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.ProjectFile
	for _, f := range m.files {
		if f.ProjectID == projectID {
			out = append(out, f)
		}
	}
	return out, nil
}

type memAccounts struct{ *memStore }

var _ interfaces.IBankAccountRepository = memAccounts{}

func (m memAccounts) Upsert(_ context.Context, b entities.BankAccount) (entities.BankAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[b.WorkerID] = b
	return b, nil
}

func (m memAccounts) GetByWorkerID(_ context.Context, workerID string) (entities.BankAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.accounts[workerID], nil
}

type memMessages struct{ *memStore }

var _ interfaces.IMessageRepository = memMessages{}

func (m memMessages) Create(_ context.Context, msg entities.Message) (entities.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return msg, nil
}

func (m memMessages) ListByConversation(_ context.Context, conversationID string) ([]entities.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.Message
	for _, msg := range m.messages {
		if msg.ConversationID == conversationID {
			out = append(out, msg)
		}
	}
	return out, nil
}

type memNotifications struct{ *memStore }

var _ interfaces.INotificationRepository = memNotifications{}

func (m memNotifications) Create(_ context.Context, n entities.Notification) (entities.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes = append(m.notes, n)
	return n, nil
}

func (m memNotifications) ListForRecipient(_ context.Context, userID string, role entities.Role) ([]entities.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.Notification
	for _, n := range m.notes {
		if n.RecipientID == userID || (n.RecipientID == "" && n.RecipientRole == role) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m memNotifications) MarkRead(_ context.Context, id, userID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, n := range m.notes {
		if n.ID == id && n.RecipientID == userID {
			m.notes[i].Read = true
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) chatBodies(conversationID string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, msg := range m.messages {
		if msg.ConversationID == conversationID {
			out = append(out, msg.Body)
		}
	}
	return out
}

type fixedMatcher struct {
	workerID string
	err      error
}

func (f fixedMatcher) Match(context.Context, entities.ServiceCategory) (string, error) {
	return f.workerID, f.err
}

func (f fixedMatcher) Release(context.Context, string) error { return nil }

type memConversations struct{ *memStore }

var _ interfaces.IConversationRepository = memConversations{}

func (m memConversations) Create(_ context.Context, conv entities.Conversation) (entities.Conversation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conversations = append(m.conversations, conv)
	return conv, nil
}

type memStorage struct{}

func (memStorage) Upload(_ context.Context, bucket, key string, _ []byte, _ string) (string, error) {
	return fmt.Sprintf("https://files.test/%s/%s", bucket, key), nil
}

// studio wires every use case over one memStore.
type studio struct {
	store      *memStore
	projects   *ProjectUseCase
	agreements *AgreementUseCase
	payments   *PaymentUseCase
	files      *FileUseCase
	payouts    *PayoutUseCase
	reconcile  *ReconcileUseCase
}

// memDeduper behaves like the Redis SETNX deduper without expiry.
type memDeduper struct {
	mu   sync.Mutex
	seen map[string]bool
}

func (d *memDeduper) AcquireOnce(_ context.Context, key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.seen[key] {
		return false
	}
	if d.seen == nil {
		d.seen = map[string]bool{}
	}
	d.seen[key] = true
	return true
}

func newStudio(workerID string) *studio {
	return newStudioWithDeduper(workerID, nil)
}

func newStudioWithDeduper(workerID string, dedupe interfaces.IEffectDeduper) *studio {
	st := newMemStore()
	d := NewSideEffectDispatcher(memMessages{st}, memNotifications{st}, nil, dedupe, nil)
	return &studio{
		store:      st,
		projects:   NewProjectUseCase(memProjects{st}, memConversations{st}, fixedMatcher{workerID: workerID}, d, nil),
		agreements: NewAgreementUseCase(memProjects{st}, memAgreements{st}, d, nil),
		payments:   NewPaymentUseCase(memProjects{st}, memAgreements{st}, memPayments{st}, memPayouts{st}, nil, d, nil),
		files:      NewFileUseCase(memProjects{st}, memFiles{st}, memStorage{}, "project-files", 0, d, nil),
		payouts:    NewPayoutUseCase(memProjects{st}, memAgreements{st}, memPayouts{st}, memPayouts{st}, memAccounts{st}, nil, d, nil),
		reconcile:  NewReconcileUseCase(memProjects{st}, memAgreements{st}, memPayments{st}, memPayouts{st}, memFiles{st}, d, nil),
	}
}
