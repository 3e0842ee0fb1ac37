package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"plaiz_studio/internal/domain/entities"
	mock_interfaces "plaiz_studio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type checkoutMocks struct {
	projects   *mock_interfaces.MockIProjectRepository
	agreements *mock_interfaces.MockIAgreementRepository
	payments   *mock_interfaces.MockIPaymentRepository
	payouts    *mock_interfaces.MockIPayoutRepository
	gateway    *mock_interfaces.MockIPaymentGateway
}

func newCheckoutUseCase(ctrl *gomock.Controller) (*PaymentUseCase, checkoutMocks) {
	m := checkoutMocks{
		projects:   mock_interfaces.NewMockIProjectRepository(ctrl),
		agreements: mock_interfaces.NewMockIAgreementRepository(ctrl),
		payments:   mock_interfaces.NewMockIPaymentRepository(ctrl),
		payouts:    mock_interfaces.NewMockIPayoutRepository(ctrl),
		gateway:    mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	uc := NewPaymentUseCase(m.projects, m.agreements, m.payments, m.payouts, m.gateway, nil, nil)
	return uc, m
}

func depositReady(m checkoutMocks) {
	m.projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{
		ID: "proj-1", ClientID: client.UserID, WorkerID: worker.UserID, Title: "Logo",
		Status: entities.ProjectStatusPendingDownPayment,
	}, nil).AnyTimes()
	m.agreements.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return([]entities.Agreement{{
		ID: "agr-1", ProjectID: "proj-1", Amount: agreedAmount, ClientAgreed: true, FreelancerAgreed: true, CreatedAt: time.Now(),
	}}, nil).AnyTimes()
}

func TestPaymentUseCase_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newCheckoutUseCase(ctrl)
		_, err := uc.Checkout(ctx, client, "proj-1", CheckoutInput{Phase: entities.PaymentPhaseDeposit, Amount: 2_000_000, ProviderPayload: json.RawMessage(`{`)})
		if !errors.Is(err, ErrInvalidCheckoutPayload) {
			t.Fatalf("expected ErrInvalidCheckoutPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.Checkout(ctx, client, "proj-1", CheckoutInput{Phase: entities.PaymentPhaseDeposit, Amount: 2_000_000})
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("mismatch is rejected before the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCase(ctrl)
		depositReady(m)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Checkout(ctx, client, "proj-1", CheckoutInput{Phase: entities.PaymentPhaseDeposit, Amount: 1_000_000})
		if !errors.Is(err, ErrAmountMismatch) {
			t.Fatalf("expected ErrAmountMismatch, got %v", err)
		}
	})

	t.Run("approved payment advances", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCase(ctrl)
		depositReady(m)

		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var body map[string]any
			if err := json.Unmarshal(payload, &body); err != nil {
				t.Fatalf("payload: %v", err)
			}
			if body["transaction_amount"] != float64(20000) {
				t.Fatalf("expected transaction_amount 20000, got %v", body["transaction_amount"])
			}
			if body["external_reference"] != "proj-1:deposit_40" {
				t.Fatalf("unexpected external_reference %v", body["external_reference"])
			}
			if body["payment_method_id"] != "pix" {
				t.Fatalf("caller fields must be kept, got %v", body)
			}
			return "mp-1", "approved", json.RawMessage(`{"id":1,"status":"approved"}`), nil
		})
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
			if p.Status != entities.PaymentStatusConfirmed || p.Reference != "mp-1" || p.PayerID != client.UserID {
				t.Fatalf("unexpected payment %+v", p)
			}
			return p, nil
		})
		m.projects.EXPECT().UpdateStatus(gomock.Any(), "proj-1", []entities.ProjectStatus{entities.ProjectStatusPendingDownPayment}, entities.ProjectStatusInProgress).
			Return(entities.Project{ID: "proj-1", ClientID: client.UserID, Status: entities.ProjectStatusInProgress}, true, nil)

		res, err := uc.Checkout(ctx, client, "proj-1", CheckoutInput{
			Phase: entities.PaymentPhaseDeposit, Amount: 2_000_000,
			ProviderPayload: json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Advanced || res.Project.Status != entities.ProjectStatusInProgress {
			t.Fatalf("expected in_progress, got %+v", res.Project)
		}
	})

	t.Run("rejected payment is recorded without advancing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCase(ctrl)
		depositReady(m)

		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-2", "rejected", json.RawMessage(`{}`), nil)
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
			return p, nil
		})

		res, err := uc.Checkout(ctx, client, "proj-1", CheckoutInput{Phase: entities.PaymentPhaseDeposit, Amount: 2_000_000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Advanced || res.Payment.Status != entities.PaymentStatusFailed {
			t.Fatalf("expected failed payment and no advance, got %+v", res)
		}
	})

	t.Run("gateway errors are classified", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want error
		}{
			{"bad request", errors.New(`{"error":"bad_request","status":400}`), ErrPaymentGatewayBadRequest},
			{"unauthorized", errors.New(`{"error":"unauthorized","status":401}`), ErrPaymentGatewayUnauthorized},
			{"invalid users", errors.New(`Invalid users involved`), ErrPaymentGatewayInvalidUsers},
			{"customer not found", errors.New(`{"code":2002}`), ErrPaymentGatewayCustomerNotFound},
			{"other", errors.New("timeout"), ErrExternalService},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc, m := newCheckoutUseCase(ctrl)
				depositReady(m)
				m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

				_, err := uc.Checkout(ctx, client, "proj-1", CheckoutInput{Phase: entities.PaymentPhaseDeposit, Amount: 2_000_000})
				if !errors.Is(err, tc.want) || !errors.Is(err, ErrExternalService) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})
}

func TestMapProviderStatus(t *testing.T) {
	cases := map[string]entities.PaymentStatus{
		"approved":     entities.PaymentStatusConfirmed,
		" APPROVED ":   entities.PaymentStatusConfirmed,
		"rejected":     entities.PaymentStatusFailed,
		"cancelled":    entities.PaymentStatusFailed,
		"charged_back": entities.PaymentStatusFailed,
		"in_process":   entities.PaymentStatusPending,
		"":             entities.PaymentStatusPending,
	}
	for in, want := range cases {
		if got := mapProviderStatus(in); got != want {
			t.Fatalf("mapProviderStatus(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestPaymentUseCase_RecordPayment_InvalidStatus(t *testing.T) {
	uc := NewPaymentUseCase(nil, nil, nil, nil, nil, nil, nil)
	_, err := uc.RecordPayment(context.Background(), client, "proj-1", PaymentInput{Phase: entities.PaymentPhaseDeposit, Amount: 1, Status: "refunded"})
	if !errors.Is(err, ErrInvalidPaymentStatus) {
		t.Fatalf("expected ErrInvalidPaymentStatus, got %v", err)
	}
}
