package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"plaiz_studio/internal/domain/entities"
)

var (
	client = entities.Session{UserID: "client-1", Role: entities.RoleClient}
	worker = entities.Session{UserID: "worker-1", Role: entities.RoleWorker}
	admin  = entities.Session{UserID: "admin-1", Role: entities.RoleAdmin}
)

// ₦50,000
const agreedAmount int64 = 5_000_000

func (s *studio) seedProject(t *testing.T, status entities.ProjectStatus) entities.Project {
	t.Helper()
	p := entities.Project{
		ID:             "proj-1",
		ClientID:       client.UserID,
		WorkerID:       worker.UserID,
		Title:          "Logo refresh",
		Category:       entities.ServiceCategoryGraphicDesign,
		Status:         status,
		ConversationID: "conv-1",
		CreatedAt:      time.Now().UTC(),
	}
	if _, err := (memProjects{s.store}).Create(context.Background(), p); err != nil {
		t.Fatalf("seed project: %v", err)
	}
	return p
}

func (s *studio) seedAgreement(t *testing.T, clientAgreed, workerAgreed bool) entities.Agreement {
	t.Helper()
	a := entities.Agreement{
		ID:               "agr-1",
		ProjectID:        "proj-1",
		ProposedBy:       worker.UserID,
		Amount:           agreedAmount,
		ClientAgreed:     clientAgreed,
		FreelancerAgreed: workerAgreed,
		CreatedAt:        time.Now().UTC(),
	}
	if _, err := (memAgreements{s.store}).Create(context.Background(), a); err != nil {
		t.Fatalf("seed agreement: %v", err)
	}
	return a
}

func mustStatus(t *testing.T, s *studio, want entities.ProjectStatus) {
	t.Helper()
	if got := s.store.project("proj-1").Status; got != want {
		t.Fatalf("expected project status %s, got %s", want, got)
	}
}

func TestLifecycle_HappyPath(t *testing.T) {
	ctx := context.Background()
	s := newStudio(worker.UserID)

	res, err := s.projects.CreateProject(ctx, client, ProjectInput{Title: "Logo refresh", Category: entities.ServiceCategoryGraphicDesign})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	p := res.Project
	if p.Status != entities.ProjectStatusAssigned || p.WorkerID != worker.UserID {
		t.Fatalf("expected assigned to %s, got %s/%s", worker.UserID, p.Status, p.WorkerID)
	}

	if _, err := s.projects.OpenNegotiation(ctx, worker, p.ID); err != nil {
		t.Fatalf("open negotiation: %v", err)
	}
	proposed, err := s.agreements.ProposePrice(ctx, worker, p.ID, ProposalInput{Amount: agreedAmount, Deliverables: "3 concepts"})
	if err != nil {
		t.Fatalf("propose: %v", err)
	}
	if proposed.Project.Status != entities.ProjectStatusPendingAgreement {
		t.Fatalf("expected pending_agreement, got %s", proposed.Project.Status)
	}

	accepted, err := s.agreements.AcceptPrice(ctx, client, proposed.Agreement.ID)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if !accepted.Advanced || accepted.Project.Status != entities.ProjectStatusPendingDownPayment {
		t.Fatalf("expected advance to pending_down_payment, got %+v", accepted.Project.Status)
	}

	dep, err := s.payments.RecordPayment(ctx, client, p.ID, PaymentInput{Phase: entities.PaymentPhaseDeposit, Amount: 2_000_000, Reference: "ref-dep"})
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if dep.Project.Status != entities.ProjectStatusInProgress {
		t.Fatalf("expected in_progress, got %s", dep.Project.Status)
	}

	up, err := s.files.UploadFile(ctx, worker, p.ID, entities.FileUpload{FileName: "logo v1.png", ContentType: "image/png", Body: []byte("png")})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if up.Project.Status != entities.ProjectStatusReadyForReview {
		t.Fatalf("expected ready_for_review, got %s", up.Project.Status)
	}

	files, err := s.files.ListFiles(ctx, client, p.ID)
	if err != nil {
		t.Fatalf("list files: %v", err)
	}
	if len(files) != 1 || !files[0].Locked || files[0].URL != "" {
		t.Fatalf("expected one locked file without url, got %+v", files)
	}

	if _, err := s.projects.Approve(ctx, client, p.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}
	bal, err := s.payments.RecordPayment(ctx, client, p.ID, PaymentInput{Phase: entities.PaymentPhaseBalance, Amount: 3_000_000, Reference: "ref-bal"})
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if bal.Project.Status != entities.ProjectStatusAwaitingPayout {
		t.Fatalf("expected awaiting_payout, got %s", bal.Project.Status)
	}
	if bal.Payout == nil {
		t.Fatalf("expected payout to be created")
	}
	if bal.Payout.WorkerShare != 3_000_000 || bal.Payout.PlatformShare != 2_000_000 || bal.Payout.ID != p.ID {
		t.Fatalf("unexpected payout %+v", *bal.Payout)
	}

	_, _ = (memAccounts{s.store}).Upsert(ctx, entities.BankAccount{WorkerID: worker.UserID, BankName: "GTBank", AccountNumber: "0123456789", AccountName: "Ada"})
	if _, err := s.payouts.MarkAsSent(ctx, admin, bal.Payout.ID); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	done, err := s.payouts.ConfirmReceipt(ctx, worker, bal.Payout.ID)
	if err != nil {
		t.Fatalf("confirm receipt: %v", err)
	}
	if done.Project.Status != entities.ProjectStatusCompleted || done.Payout.Status != entities.PayoutStatusPaymentVerified {
		t.Fatalf("expected completed/payment_verified, got %s/%s", done.Project.Status, done.Payout.Status)
	}

	files, err = s.files.ListFiles(ctx, client, p.ID)
	if err != nil {
		t.Fatalf("list files: %v", err)
	}
	if files[0].Locked || files[0].URL == "" {
		t.Fatalf("expected unlocked file, got %+v", files[0])
	}
	if len(s.store.chatBodies(p.ConversationID)) == 0 {
		t.Fatalf("expected system chat messages")
	}
}

func TestLifecycle_MismatchedDeposit(t *testing.T) {
	ctx := context.Background()
	s := newStudio(worker.UserID)
	s.seedProject(t, entities.ProjectStatusPendingDownPayment)
	s.seedAgreement(t, true, true)

	_, err := s.payments.RecordPayment(ctx, client, "proj-1", PaymentInput{Phase: entities.PaymentPhaseDeposit, Amount: 2_500_000})
	if !errors.Is(err, ErrAmountMismatch) {
		t.Fatalf("expected ErrAmountMismatch, got %v", err)
	}
	mustStatus(t, s, entities.ProjectStatusPendingDownPayment)
	if list, _ := (memPayments{s.store}).ListByProjectID(ctx, "proj-1"); len(list) != 0 {
		t.Fatalf("expected no payment recorded, got %d", len(list))
	}
}

func TestLifecycle_PaymentGate(t *testing.T) {
	ctx := context.Background()

	t.Run("deposit without final agreement", func(t *testing.T) {
		s := newStudio(worker.UserID)
		s.seedProject(t, entities.ProjectStatusPendingAgreement)
		s.seedAgreement(t, false, true)
		_, err := s.payments.RecordPayment(ctx, client, "proj-1", PaymentInput{Phase: entities.PaymentPhaseDeposit, Amount: 2_000_000})
		if !errors.Is(err, ErrPrecondition) {
			t.Fatalf("expected ErrPrecondition, got %v", err)
		}
	})

	t.Run("unknown phase", func(t *testing.T) {
		s := newStudio(worker.UserID)
		_, err := s.payments.RecordPayment(ctx, client, "proj-1", PaymentInput{Phase: "deposit_50", Amount: 1})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("balance before approval", func(t *testing.T) {
		s := newStudio(worker.UserID)
		s.seedProject(t, entities.ProjectStatusInProgress)
		s.seedAgreement(t, true, true)
		_, err := s.payments.RecordPayment(ctx, client, "proj-1", PaymentInput{Phase: entities.PaymentPhaseBalance, Amount: 3_000_000})
		if !errors.Is(err, ErrPrecondition) {
			t.Fatalf("expected ErrPrecondition, got %v", err)
		}
	})

	t.Run("pending balance then confirmed balance", func(t *testing.T) {
		s := newStudio(worker.UserID)
		s.seedProject(t, entities.ProjectStatusApproved)
		s.seedAgreement(t, true, true)
		if _, err := s.payments.RecordPayment(ctx, client, "proj-1", PaymentInput{Phase: entities.PaymentPhaseBalance, Amount: 3_000_000, Status: "pending"}); err != nil {
			t.Fatalf("pending balance: %v", err)
		}
		mustStatus(t, s, entities.ProjectStatusAwaitingFinalPayment)
		if _, err := s.payments.RecordPayment(ctx, client, "proj-1", PaymentInput{Phase: entities.PaymentPhaseBalance, Amount: 3_000_000, Status: "confirmed"}); err != nil {
			t.Fatalf("confirmed balance: %v", err)
		}
		mustStatus(t, s, entities.ProjectStatusAwaitingPayout)
	})

	t.Run("worker cannot pay", func(t *testing.T) {
		s := newStudio(worker.UserID)
		s.seedProject(t, entities.ProjectStatusPendingDownPayment)
		s.seedAgreement(t, true, true)
		_, err := s.payments.RecordPayment(ctx, worker, "proj-1", PaymentInput{Phase: entities.PaymentPhaseDeposit, Amount: 2_000_000})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestLifecycle_OutOfOrderPayoutConfirmation(t *testing.T) {
	ctx := context.Background()
	s := newStudio(worker.UserID)
	s.seedProject(t, entities.ProjectStatusAwaitingPayout)
	s.seedAgreement(t, true, true)

	po, err := s.payouts.GetPayoutForProject(ctx, worker, "proj-1")
	if err != nil {
		t.Fatalf("get payout: %v", err)
	}
	if po.Status != entities.PayoutStatusAwaitingPayment {
		t.Fatalf("expected awaiting_payment, got %s", po.Status)
	}

	_, err = s.payouts.ConfirmReceipt(ctx, worker, po.ID)
	if !errors.Is(err, ErrPrecondition) {
		t.Fatalf("expected ErrPrecondition, got %v", err)
	}
	got, _ := (memPayouts{s.store}).GetByID(ctx, po.ID)
	if got.Status != entities.PayoutStatusAwaitingPayment {
		t.Fatalf("payout status changed to %s", got.Status)
	}
	mustStatus(t, s, entities.ProjectStatusAwaitingPayout)

	t.Run("mark sent without bank account", func(t *testing.T) {
		_, err := s.payouts.MarkAsSent(ctx, admin, po.ID)
		if !errors.Is(err, ErrPrecondition) {
			t.Fatalf("expected ErrPrecondition, got %v", err)
		}
	})

	t.Run("lazy payout is created once", func(t *testing.T) {
		again, err := s.payouts.EnsurePayout(ctx, "proj-1")
		if err != nil {
			t.Fatalf("ensure payout: %v", err)
		}
		if again.ID != po.ID || len(s.store.payouts) != 1 {
			t.Fatalf("expected single payout, got %d", len(s.store.payouts))
		}
	})
}

func TestLifecycle_AcceptRace(t *testing.T) {
	ctx := context.Background()
	for round := 0; round < 20; round++ {
		s := newStudio(worker.UserID)
		s.seedProject(t, entities.ProjectStatusPendingAgreement)
		s.seedAgreement(t, false, false)

		var wg sync.WaitGroup
		errs := make(chan error, 8)
		for i := 0; i < 4; i++ {
			for _, who := range []entities.Session{client, worker} {
				wg.Add(1)
				go func(who entities.Session) {
					defer wg.Done()
					if _, err := s.agreements.AcceptPrice(ctx, who, "agr-1"); err != nil {
						errs <- err
					}
				}(who)
			}
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			t.Fatalf("accept: %v", err)
		}

		mustStatus(t, s, entities.ProjectStatusPendingDownPayment)
		if n := s.store.transitions(entities.ProjectStatusPendingDownPayment); n != 1 {
			t.Fatalf("round %d: expected exactly one transition, got %d", round, n)
		}
	}
}

func TestLifecycle_AcceptIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newStudio(worker.UserID)
	s.seedProject(t, entities.ProjectStatusPendingAgreement)
	s.seedAgreement(t, false, true)

	first, err := s.agreements.AcceptPrice(ctx, client, "agr-1")
	if err != nil || !first.Advanced {
		t.Fatalf("first accept: advanced=%v err=%v", first.Advanced, err)
	}
	second, err := s.agreements.AcceptPrice(ctx, client, "agr-1")
	if err != nil {
		t.Fatalf("second accept: %v", err)
	}
	if second.Advanced || len(second.Effects) != 0 {
		t.Fatalf("expected no advance and no effects on re-accept, got %+v", second)
	}
	if n := s.store.transitions(entities.ProjectStatusPendingDownPayment); n != 1 {
		t.Fatalf("expected one transition, got %d", n)
	}
}

func TestLifecycle_Negotiation(t *testing.T) {
	ctx := context.Background()

	t.Run("second proposal while first is open", func(t *testing.T) {
		s := newStudio(worker.UserID)
		s.seedProject(t, entities.ProjectStatusAssigned)
		if _, err := s.agreements.ProposePrice(ctx, worker, "proj-1", ProposalInput{Amount: agreedAmount}); err != nil {
			t.Fatalf("propose: %v", err)
		}
		_, err := s.agreements.ProposePrice(ctx, worker, "proj-1", ProposalInput{Amount: agreedAmount + 100})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("decline opens a new round", func(t *testing.T) {
		s := newStudio(worker.UserID)
		s.seedProject(t, entities.ProjectStatusPendingAgreement)
		s.seedAgreement(t, false, true)
		if _, err := s.agreements.DeclinePrice(ctx, client, "agr-1"); err != nil {
			t.Fatalf("decline: %v", err)
		}
		mustStatus(t, s, entities.ProjectStatusPendingAgreement)

		_, err := s.agreements.AcceptPrice(ctx, client, "agr-1")
		if !errors.Is(err, ErrPrecondition) {
			t.Fatalf("expected ErrPrecondition accepting a declined agreement, got %v", err)
		}

		time.Sleep(time.Millisecond)
		res, err := s.agreements.ProposePrice(ctx, worker, "proj-1", ProposalInput{Amount: 4_000_000})
		if err != nil {
			t.Fatalf("re-propose: %v", err)
		}
		active, err := s.agreements.GetActiveAgreement(ctx, client, "proj-1")
		if err != nil || active.ID != res.Agreement.ID {
			t.Fatalf("expected new agreement to be active, got %v / %v", active.ID, err)
		}
	})

	t.Run("every round is announced with dedupe on", func(t *testing.T) {
		s := newStudioWithDeduper(worker.UserID, &memDeduper{})
		s.seedProject(t, entities.ProjectStatusAssigned)

		for round := 1; round <= 3; round++ {
			time.Sleep(time.Millisecond)
			res, err := s.agreements.ProposePrice(ctx, worker, "proj-1", ProposalInput{Amount: agreedAmount})
			if err != nil {
				t.Fatalf("round %d propose: %v", round, err)
			}
			if _, err := s.agreements.DeclinePrice(ctx, client, res.Agreement.ID); err != nil {
				t.Fatalf("round %d decline: %v", round, err)
			}
		}
		if got := s.store.chatBodies("conv-1"); len(got) != 6 {
			t.Fatalf("expected 6 chat lines, got %d: %v", len(got), got)
		}
	})

	t.Run("non-positive amount", func(t *testing.T) {
		s := newStudio(worker.UserID)
		s.seedProject(t, entities.ProjectStatusAssigned)
		_, err := s.agreements.ProposePrice(ctx, worker, "proj-1", ProposalInput{Amount: 0})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("client cannot propose", func(t *testing.T) {
		s := newStudio(worker.UserID)
		s.seedProject(t, entities.ProjectStatusAssigned)
		_, err := s.agreements.ProposePrice(ctx, client, "proj-1", ProposalInput{Amount: agreedAmount})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestLifecycle_FirstFileOnly(t *testing.T) {
	ctx := context.Background()
	s := newStudio(worker.UserID)
	s.seedProject(t, entities.ProjectStatusInProgress)

	clientUpload, err := s.files.UploadFile(ctx, client, "proj-1", entities.FileUpload{FileName: "brief.pdf", Body: []byte("brief")})
	if err != nil {
		t.Fatalf("client upload: %v", err)
	}
	if clientUpload.Advanced {
		t.Fatalf("client upload must not move the project")
	}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.files.UploadFile(ctx, worker, "proj-1", entities.FileUpload{FileName: "draft.png", Body: []byte("x")}); err != nil {
				t.Errorf("worker upload: %v", err)
			}
		}()
	}
	wg.Wait()

	mustStatus(t, s, entities.ProjectStatusReadyForReview)
	if n := s.store.transitions(entities.ProjectStatusReadyForReview); n != 1 {
		t.Fatalf("expected one review transition, got %d", n)
	}
	if len(s.store.files) != 6 {
		t.Fatalf("expected 6 stored files, got %d", len(s.store.files))
	}
}

func TestLifecycle_Reconcile(t *testing.T) {
	ctx := context.Background()

	t.Run("final agreement and lost follow-up writes", func(t *testing.T) {
		s := newStudio(worker.UserID)
		s.seedProject(t, entities.ProjectStatusPendingAgreement)
		s.seedAgreement(t, true, true)
		_, _ = (memPayments{s.store}).Create(ctx, entities.Payment{
			ID: "pay-1", ProjectID: "proj-1", Phase: entities.PaymentPhaseDeposit,
			Amount: 2_000_000, Status: entities.PaymentStatusConfirmed,
		})

		res, err := s.reconcile.ReconcileProject(ctx, "proj-1")
		if err != nil {
			t.Fatalf("reconcile: %v", err)
		}
		if !res.Advanced || res.Project.Status != entities.ProjectStatusInProgress {
			t.Fatalf("expected in_progress, got %s", res.Project.Status)
		}

		again, err := s.reconcile.ReconcileProject(ctx, "proj-1")
		if err != nil {
			t.Fatalf("second reconcile: %v", err)
		}
		if again.Advanced {
			t.Fatalf("second sweep must be a no-op")
		}
	})

	t.Run("sweep creates missing payouts", func(t *testing.T) {
		s := newStudio(worker.UserID)
		s.seedProject(t, entities.ProjectStatusAwaitingPayout)
		s.seedAgreement(t, true, true)

		report, err := s.reconcile.ReconcileAll(ctx)
		if err != nil {
			t.Fatalf("sweep: %v", err)
		}
		if report.Checked != 1 || report.Payouts != 1 || len(report.Failed) != 0 {
			t.Fatalf("unexpected report %+v", report)
		}
		if _, ok := s.store.payouts["proj-1"]; !ok {
			t.Fatalf("expected payout for proj-1")
		}
	})
}

func TestLifecycle_Moderation(t *testing.T) {
	ctx := context.Background()

	t.Run("admin cancels", func(t *testing.T) {
		s := newStudio(worker.UserID)
		s.seedProject(t, entities.ProjectStatusInProgress)
		if _, err := s.projects.Cancel(ctx, admin, "proj-1", "duplicate request"); err != nil {
			t.Fatalf("cancel: %v", err)
		}
		mustStatus(t, s, entities.ProjectStatusCancelled)

		_, err := s.projects.Flag(ctx, admin, "proj-1", "")
		if !errors.Is(err, ErrPrecondition) {
			t.Fatalf("expected ErrPrecondition on terminal project, got %v", err)
		}
	})

	t.Run("client cannot flag", func(t *testing.T) {
		s := newStudio(worker.UserID)
		s.seedProject(t, entities.ProjectStatusInProgress)
		_, err := s.projects.Flag(ctx, client, "proj-1", "")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("uploads refused once cancelled", func(t *testing.T) {
		s := newStudio(worker.UserID)
		s.seedProject(t, entities.ProjectStatusCancelled)
		_, err := s.files.UploadFile(ctx, worker, "proj-1", entities.FileUpload{FileName: "a.png", Body: []byte("x")})
		if !errors.Is(err, ErrPrecondition) {
			t.Fatalf("expected ErrPrecondition, got %v", err)
		}
	})
}
