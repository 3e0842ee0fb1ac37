package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"plaiz_studio/internal/domain/entities"
	mock_interfaces "plaiz_studio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAccountUseCase_SaveBankAccount(t *testing.T) {
	ctx := context.Background()
	valid := BankAccountInput{BankName: "GTBank", AccountNumber: "0123456789", AccountName: "Ada Obi"}

	tests := []struct {
		name    string
		session entities.Session
		in      BankAccountInput
		wantErr error
	}{
		{"client cannot register", client, valid, ErrForbidden},
		{"missing session", entities.Session{}, valid, ErrInvalidSession},
		{"short number", worker, BankAccountInput{BankName: "GTBank", AccountNumber: "12345", AccountName: "Ada"}, ErrInvalidAccountNumber},
		{"letters in number", worker, BankAccountInput{BankName: "GTBank", AccountNumber: "01234567ab", AccountName: "Ada"}, ErrInvalidAccountNumber},
		{"missing bank", worker, BankAccountInput{AccountNumber: "0123456789", AccountName: "Ada"}, ErrInvalidBankName},
		{"missing holder", worker, BankAccountInput{BankName: "GTBank", AccountNumber: "0123456789"}, ErrInvalidAccountName},
		{"valid", worker, valid, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewAccountUseCase(memAccounts{newMemStore()}, nil)
			saved, err := uc.SaveBankAccount(ctx, tt.session, tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if saved.WorkerID != worker.UserID || saved.UpdatedAt.IsZero() {
				t.Fatalf("unexpected account: %+v", saved)
			}
		})
	}
}

func TestAccountUseCase_GetBankAccount(t *testing.T) {
	ctx := context.Background()
	uc := NewAccountUseCase(memAccounts{newMemStore()}, nil)

	if _, err := uc.GetBankAccount(ctx, worker); !errors.Is(err, ErrBankAccountNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := uc.SaveBankAccount(ctx, worker, BankAccountInput{BankName: "Kuda", AccountNumber: "1234567890", AccountName: "Ada"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := uc.GetBankAccount(ctx, worker)
	if err != nil || got.BankName != "Kuda" {
		t.Fatalf("unexpected account %+v err=%v", got, err)
	}
}

func TestPortfolioUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads the image under the worker prefix", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPortfolioRepository(ctrl)
		storage := mock_interfaces.NewMockIFileStorage(ctrl)
		uc := NewPortfolioUseCase(repo, memProjects{newMemStore()}, storage, "portfolio", nil)

		storage.EXPECT().Upload(gomock.Any(), "portfolio", gomock.Any(), []byte("jpg"), "image/jpeg").
			DoAndReturn(func(_ context.Context, bucket, key string, _ []byte, _ string) (string, error) {
				if !strings.HasPrefix(key, "portfolio/worker-1/") {
					t.Fatalf("unexpected key %s", key)
				}
				return "https://files.test/" + bucket + "/" + key, nil
			})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item entities.PortfolioItem) (entities.PortfolioItem, error) {
				if item.Approved || item.Featured || item.WorkerID != worker.UserID {
					t.Fatalf("new items start unapproved: %+v", item)
				}
				return item, nil
			})

		item, err := uc.Create(ctx, worker, PortfolioInput{
			Title:    " Brand kit ",
			Category: entities.ServiceCategoryGraphicDesign,
			Image:    &entities.FileUpload{FileName: "kit.jpg", ContentType: "image/jpeg", Body: []byte("jpg")},
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if item.Title != "Brand kit" || !strings.HasPrefix(item.ImageURL, "https://files.test/portfolio/") {
			t.Fatalf("unexpected item: %+v", item)
		}
	})

	t.Run("validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewPortfolioUseCase(mock_interfaces.NewMockIPortfolioRepository(ctrl), memProjects{newMemStore()}, nil, "portfolio", nil)

		if _, err := uc.Create(ctx, client, PortfolioInput{Title: "x", Category: entities.ServiceCategoryPrinting, ImageURL: "https://x"}); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
		if _, err := uc.Create(ctx, worker, PortfolioInput{Title: "x", Category: "murals", ImageURL: "https://x"}); !errors.Is(err, ErrInvalidCategory) {
			t.Fatalf("expected invalid category, got %v", err)
		}
		if _, err := uc.Create(ctx, worker, PortfolioInput{Title: "x", Category: entities.ServiceCategoryPrinting}); !errors.Is(err, ErrPortfolioImageMissing) {
			t.Fatalf("expected missing image, got %v", err)
		}
	})
}

func TestPortfolioUseCase_Moderation(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPortfolioRepository(ctrl)
	uc := NewPortfolioUseCase(repo, memProjects{newMemStore()}, nil, "portfolio", nil)

	if _, err := uc.Approve(ctx, worker, "pf-1", true); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "pf-1").Return(entities.PortfolioItem{ID: "pf-1"}, nil)
	if _, err := uc.Feature(ctx, admin, "pf-1", true); !errors.Is(err, ErrPrecondition) {
		t.Fatalf("featuring an unapproved item must fail, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.PortfolioItem{}, nil)
	if _, err := uc.Approve(ctx, admin, "missing", true); !errors.Is(err, ErrPortfolioNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "pf-1").Return(entities.PortfolioItem{ID: "pf-1", Approved: true}, nil)
	repo.EXPECT().SetFlags(gomock.Any(), "pf-1", nil, gomock.Any()).Return(entities.PortfolioItem{ID: "pf-1", Approved: true, Featured: true}, nil)
	item, err := uc.Feature(ctx, admin, "pf-1", true)
	if err != nil || !item.Featured {
		t.Fatalf("unexpected result %+v err=%v", item, err)
	}
}

func TestPortfolioUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPortfolioRepository(ctrl)
	uc := NewPortfolioUseCase(repo, memProjects{newMemStore()}, nil, "portfolio", nil)

	items := []entities.PortfolioItem{
		{ID: "approved", WorkerID: "worker-2", Approved: true},
		{ID: "mine-pending", WorkerID: worker.UserID},
		{ID: "other-pending", WorkerID: "worker-2"},
		{ID: "featured", WorkerID: "worker-3", Approved: true, Featured: true},
	}
	repo.EXPECT().List(gomock.Any()).Return(items, nil).Times(2)

	got, err := uc.List(context.Background(), worker)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	ids := make([]string, 0, len(got))
	for _, it := range got {
		ids = append(ids, it.ID)
	}
	if strings.Join(ids, ",") != "featured,approved,mine-pending" {
		t.Fatalf("unexpected worker view: %v", ids)
	}

	got, err = uc.List(context.Background(), admin)
	if err != nil || len(got) != 4 {
		t.Fatalf("admins see everything, got %d err=%v", len(got), err)
	}
}

func TestConversationUseCase(t *testing.T) {
	ctx := context.Background()
	s := newStudio(worker.UserID)
	s.seedProject(t, entities.ProjectStatusInProgress)
	conv := NewConversationUseCase(memProjects{s.store}, memMessages{s.store}, memNotifications{s.store}, nil, nil)

	t.Run("outsiders cannot post", func(t *testing.T) {
		stranger := entities.Session{UserID: "client-9", Role: entities.RoleClient}
		if _, err := conv.SendMessage(ctx, stranger, "proj-1", "hi"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("blank message", func(t *testing.T) {
		if _, err := conv.SendMessage(ctx, client, "proj-1", "   "); !errors.Is(err, ErrInvalidMessage) {
			t.Fatalf("expected invalid message, got %v", err)
		}
	})

	t.Run("messages come back oldest first", func(t *testing.T) {
		if _, err := conv.SendMessage(ctx, client, "proj-1", "first"); err != nil {
			t.Fatalf("send: %v", err)
		}
		time.Sleep(time.Millisecond)
		if _, err := conv.SendMessage(ctx, worker, "proj-1", "second"); err != nil {
			t.Fatalf("send: %v", err)
		}
		list, err := conv.ListMessages(ctx, client, "proj-1")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 2 || list[0].Body != "first" || list[1].Body != "second" {
			t.Fatalf("unexpected messages: %+v", list)
		}
	})

	t.Run("notifications", func(t *testing.T) {
		notes := memNotifications{s.store}
		_, _ = notes.Create(ctx, entities.Notification{ID: "n-direct", RecipientID: client.UserID, CreatedAt: time.Now()})
		_, _ = notes.Create(ctx, entities.Notification{ID: "n-admins", RecipientRole: entities.RoleAdmin, CreatedAt: time.Now()})

		list, err := conv.ListNotifications(ctx, client)
		if err != nil || len(list) != 1 || list[0].ID != "n-direct" {
			t.Fatalf("unexpected client inbox: %+v err=%v", list, err)
		}
		if err := conv.MarkNotificationRead(ctx, client, "n-direct"); err != nil {
			t.Fatalf("mark read: %v", err)
		}
		if err := conv.MarkNotificationRead(ctx, admin, "n-admins"); !errors.Is(err, ErrNotificationNotFound) {
			t.Fatalf("role-wide notifications cannot be marked read, got %v", err)
		}
	})
}
