package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"plaiz_studio/internal/adapter/http/handlers/mocks"
	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func multipartRequest(t *testing.T, path, field, fileName string, content []byte, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if field != "" {
		part, err := mw.CreateFormFile(field, fileName)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFileHandler_UploadFile(t *testing.T) {
	t.Run("missing file part", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewFileHandler(mocks.NewMockIFileUseCase(ctrl), 0)

		r := newTestRouter(workerSession)
		r.POST("/v1/projects/:id/files", h.UploadFile)

		w := serve(r, multipartRequest(t, "/v1/projects/p-1/files", "", "", nil, map[string]string{"note": "x"}))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("too large", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewFileHandler(mocks.NewMockIFileUseCase(ctrl), 4)

		r := newTestRouter(workerSession)
		r.POST("/v1/projects/:id/files", h.UploadFile)

		w := serve(r, multipartRequest(t, "/v1/projects/p-1/files", "file", "mock.png", []byte("0123456789"), nil))
		if w.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("expected 413, got %d", w.Code)
		}
	})

	t.Run("uploaded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFileUseCase(ctrl)
		h := NewFileHandler(uc, 1024)

		r := newTestRouter(workerSession)
		r.POST("/v1/projects/:id/files", h.UploadFile)

		uc.EXPECT().UploadFile(gomock.Any(), workerSession, "p-1", gomock.Any()).
			DoAndReturn(func(_ any, _ entities.Session, _ string, up entities.FileUpload) (usecase.TransitionResult, error) {
				if up.FileName != "mock.png" || string(up.Body) != "png-bytes" {
					t.Fatalf("unexpected upload: %s %q", up.FileName, up.Body)
				}
				return usecase.TransitionResult{
					Project:  entities.Project{ID: "p-1", Status: entities.ProjectStatusReadyForReview},
					File:     &entities.ProjectFile{ID: "f-1", ProjectID: "p-1", FileName: "mock.png"},
					Advanced: true,
				}, nil
			})

		w := serve(r, multipartRequest(t, "/v1/projects/p-1/files", "file", "mock.png", []byte("png-bytes"), nil))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestFileHandler_ListFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIFileUseCase(ctrl)
	h := NewFileHandler(uc, 0)

	r := newTestRouter(clientSession)
	r.GET("/v1/projects/:id/files", h.ListFiles)

	uc.EXPECT().ListFiles(gomock.Any(), clientSession, "p-1").Return([]usecase.FileView{
		{ProjectFile: entities.ProjectFile{ID: "f-1", ProjectID: "p-1"}, Locked: true},
	}, nil)

	w := doJSON(r, http.MethodGet, "/v1/projects/p-1/files", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"locked":true`)) {
		t.Fatalf("expected locked file, got %s", w.Body.String())
	}
}

func TestPortfolioHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPortfolioUseCase(ctrl)
	h := NewPortfolioHandler(uc, 1024)

	r := newTestRouter(workerSession)
	r.POST("/v1/portfolio", h.CreatePortfolioItem)
	r.GET("/v1/portfolio", h.ListPortfolio)
	r.PATCH("/v1/portfolio/:id/approve", h.ApprovePortfolioItem)
	r.PATCH("/v1/portfolio/:id/feature", h.FeaturePortfolioItem)

	t.Run("create with image", func(t *testing.T) {
		uc.EXPECT().Create(gomock.Any(), workerSession, gomock.Any()).
			DoAndReturn(func(_ any, _ entities.Session, in usecase.PortfolioInput) (entities.PortfolioItem, error) {
				if in.Title != "Brand kit" || in.Category != entities.ServiceCategoryGraphicDesign || in.Image == nil {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.PortfolioItem{ID: "pf-1", WorkerID: "worker-1", Title: in.Title}, nil
			})
		req := multipartRequest(t, "/v1/portfolio", "image", "kit.jpg", []byte("jpg"), map[string]string{
			"title": "Brand kit", "category": "graphic_design",
		})
		if w := serve(r, req); w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("create without title", func(t *testing.T) {
		req := multipartRequest(t, "/v1/portfolio", "", "", nil, map[string]string{"category": "printing"})
		if w := serve(r, req); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("approve defaults to true", func(t *testing.T) {
		uc.EXPECT().Approve(gomock.Any(), workerSession, "pf-1", true).Return(entities.PortfolioItem{}, usecase.ErrForbidden)
		if w := doJSON(r, http.MethodPatch, "/v1/portfolio/pf-1/approve", ""); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("unfeature", func(t *testing.T) {
		uc.EXPECT().Feature(gomock.Any(), workerSession, "pf-1", false).Return(entities.PortfolioItem{ID: "pf-1"}, nil)
		if w := doJSON(r, http.MethodPatch, "/v1/portfolio/pf-1/feature", `{"value":false}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		uc.EXPECT().List(gomock.Any(), workerSession).Return([]entities.PortfolioItem{{ID: "pf-1"}}, nil)
		if w := doJSON(r, http.MethodGet, "/v1/portfolio", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestConversationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIConversationUseCase(ctrl)
	h := NewConversationHandler(uc)

	r := newTestRouter(clientSession)
	r.POST("/v1/projects/:id/messages", h.SendMessage)
	r.GET("/v1/projects/:id/messages", h.ListMessages)
	r.GET("/v1/notifications", h.ListNotifications)
	r.PATCH("/v1/notifications/:id/read", h.MarkNotificationRead)

	if w := doJSON(r, http.MethodPost, "/v1/projects/p-1/messages", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	uc.EXPECT().SendMessage(gomock.Any(), clientSession, "p-1", "hello").Return(entities.Message{ID: "m-1", Body: "hello"}, nil)
	if w := doJSON(r, http.MethodPost, "/v1/projects/p-1/messages", `{"body":"hello"}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	uc.EXPECT().ListMessages(gomock.Any(), clientSession, "p-1").Return(nil, usecase.ErrProjectNotFound)
	if w := doJSON(r, http.MethodGet, "/v1/projects/p-1/messages", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	uc.EXPECT().ListNotifications(gomock.Any(), clientSession).Return([]entities.Notification{{ID: "n-1"}}, nil)
	if w := doJSON(r, http.MethodGet, "/v1/notifications", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().MarkNotificationRead(gomock.Any(), clientSession, "n-1").Return(nil)
	if w := doJSON(r, http.MethodPatch, "/v1/notifications/n-1/read", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestReconcileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReconcileUseCase(ctrl)
	h := NewReconcileHandler(uc)

	t.Run("non-admin", func(t *testing.T) {
		r := newTestRouter(clientSession)
		r.POST("/v1/admin/reconcile", h.ReconcileAll)
		if w := doJSON(r, http.MethodPost, "/v1/admin/reconcile", ""); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin", func(t *testing.T) {
		r := newTestRouter(adminSession)
		r.POST("/v1/admin/reconcile", h.ReconcileAll)
		r.POST("/v1/projects/:id/reconcile", h.ReconcileProject)

		uc.EXPECT().ReconcileAll(gomock.Any()).Return(usecase.ReconcileReport{Checked: 3, Advanced: 1}, nil)
		w := doJSON(r, http.MethodPost, "/v1/admin/reconcile", "")
		if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"checked":3`)) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}

		uc.EXPECT().ReconcileProject(gomock.Any(), "p-1").Return(usecase.TransitionResult{
			Project: entities.Project{ID: "p-1", Status: entities.ProjectStatusInProgress}, Advanced: true,
		}, nil)
		if w := doJSON(r, http.MethodPost, "/v1/projects/p-1/reconcile", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
