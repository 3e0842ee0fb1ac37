package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"plaiz_studio/internal/adapter/http/handlers"
	"plaiz_studio/internal/adapter/http/handlers/mocks"
	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var testSecret = []byte("routes-test-secret")

func newTestHandlers(ctrl *gomock.Controller) (Handlers, *mocks.MockIProjectUseCase) {
	projects := mocks.NewMockIProjectUseCase(ctrl)
	return Handlers{
		Projects:      handlers.NewProjectHandler(projects),
		Agreements:    handlers.NewAgreementHandler(mocks.NewMockIAgreementUseCase(ctrl)),
		Payments:      handlers.NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl)),
		Files:         handlers.NewFileHandler(mocks.NewMockIFileUseCase(ctrl), 0),
		Payouts:       handlers.NewPayoutHandler(mocks.NewMockIPayoutUseCase(ctrl)),
		Reconcile:     handlers.NewReconcileHandler(mocks.NewMockIReconcileUseCase(ctrl)),
		Portfolio:     handlers.NewPortfolioHandler(mocks.NewMockIPortfolioUseCase(ctrl), 0),
		Accounts:      handlers.NewAccountHandler(mocks.NewMockIAccountUseCase(ctrl)),
		Conversations: handlers.NewConversationHandler(mocks.NewMockIConversationUseCase(ctrl)),
	}, projects
}

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, projects := newTestHandlers(ctrl)
	r := NewRouter(h, testSecret, nil)

	t.Run("ping is public", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("metrics are exposed", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("api requires a token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/projects", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("token carries the session", func(t *testing.T) {
		s := entities.Session{UserID: "client-1", Role: entities.RoleClient}
		token, err := auth.GenerateToken(s, testSecret, time.Hour)
		if err != nil {
			t.Fatalf("token: %v", err)
		}
		projects.EXPECT().List(gomock.Any(), s, "").Return([]entities.Project{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})
}
