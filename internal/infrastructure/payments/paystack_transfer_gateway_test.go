package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"plaiz_studio/internal/domain/entities"
	appconfig "plaiz_studio/internal/infrastructure/config"
)

type recordedTransfer struct {
	Auth string
	Body transferBody
}

func newPaystackServer(t *testing.T, reply func(b transferBody) (int, string)) (*httptest.Server, *[]recordedTransfer) {
	t.Helper()
	var (
		mu   sync.Mutex
		seen []recordedTransfer
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transfer" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var b transferBody
		_ = json.NewDecoder(r.Body).Decode(&b)
		mu.Lock()
		seen = append(seen, recordedTransfer{Auth: r.Header.Get("Authorization"), Body: b})
		mu.Unlock()
		code, body := reply(b)
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func TestPaystackTransferGateway_BothLegs(t *testing.T) {
	srv, seen := newPaystackServer(t, func(b transferBody) (int, string) {
		return http.StatusOK, `{"status":true,"message":"Transfer has been queued","data":{"reference":"` + b.Reference + `","status":"pending"}}`
	})
	g, err := NewPaystackTransferGateway(appconfig.TransferConfig{BaseURL: srv.URL, SecretKey: "sk_test", PlatformRecipientCode: "RCP_platform"}, nil)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}

	res, err := g.Transfer(context.Background(), entities.TransferRequest{
		ProjectID: "p1", WorkerID: "w1", Amount: 4_250_000, PlatformFee: 750_000, RecipientCode: "RCP_worker",
	})
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if !res.Success || res.Reference != "payout-p1-worker" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(*seen) != 2 {
		t.Fatalf("expected 2 transfers, got %d", len(*seen))
	}
	w, p := (*seen)[0], (*seen)[1]
	if w.Auth != "Bearer sk_test" || w.Body.Recipient != "RCP_worker" || w.Body.Amount != 4_250_000 {
		t.Fatalf("unexpected worker leg: %+v", w)
	}
	if p.Body.Recipient != "RCP_platform" || p.Body.Amount != 750_000 {
		t.Fatalf("unexpected platform leg: %+v", p)
	}
	if len(res.PlatformTransfer) == 0 {
		t.Fatalf("expected platform transfer payload")
	}
}

func TestPaystackTransferGateway_WorkerRejected(t *testing.T) {
	srv, seen := newPaystackServer(t, func(transferBody) (int, string) {
		return http.StatusBadRequest, `{"status":false,"message":"Insufficient balance"}`
	})
	g, _ := NewPaystackTransferGateway(appconfig.TransferConfig{BaseURL: srv.URL, SecretKey: "sk_test", PlatformRecipientCode: "RCP_platform"}, nil)

	res, err := g.Transfer(context.Background(), entities.TransferRequest{ProjectID: "p1", Amount: 100, PlatformFee: 10, RecipientCode: "RCP_worker"})
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if res.Success || res.Reference != "" {
		t.Fatalf("expected failure without reference, got %+v", res)
	}
	if len(*seen) != 1 {
		t.Fatalf("platform leg must not run after a rejected worker leg, got %d calls", len(*seen))
	}
}

func TestPaystackTransferGateway_PlatformRejectedKeepsWorkerReference(t *testing.T) {
	srv, seen := newPaystackServer(t, func(b transferBody) (int, string) {
		if b.Recipient == "RCP_platform" {
			return http.StatusBadRequest, `{"status":false,"message":"Insufficient balance"}`
		}
		return http.StatusOK, `{"status":true,"message":"Transfer has been queued","data":{"reference":"` + b.Reference + `","status":"pending"}}`
	})
	g, _ := NewPaystackTransferGateway(appconfig.TransferConfig{BaseURL: srv.URL, SecretKey: "sk_test", PlatformRecipientCode: "RCP_platform"}, nil)

	res, err := g.Transfer(context.Background(), entities.TransferRequest{ProjectID: "p1", Amount: 600, PlatformFee: 400, RecipientCode: "RCP_worker"})
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if res.Success {
		t.Fatalf("expected failure")
	}
	if res.Reference != "payout-p1-worker" || len(res.WorkerTransfer) == 0 {
		t.Fatalf("worker leg lost: %+v", res)
	}
	if len(*seen) != 2 {
		t.Fatalf("expected 2 transfers, got %d", len(*seen))
	}
}

func TestPaystackTransferGateway_ServerError(t *testing.T) {
	srv, _ := newPaystackServer(t, func(transferBody) (int, string) {
		return http.StatusBadGateway, `{"status":false,"message":"upstream down"}`
	})
	g, _ := NewPaystackTransferGateway(appconfig.TransferConfig{BaseURL: srv.URL, SecretKey: "sk_test"}, nil)

	_, err := g.Transfer(context.Background(), entities.TransferRequest{ProjectID: "p1", Amount: 100, RecipientCode: "RCP_worker"})
	if err == nil || !strings.Contains(err.Error(), "upstream down") {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestNewPaystackTransferGateway_MissingSecret(t *testing.T) {
	if _, err := NewPaystackTransferGateway(appconfig.TransferConfig{}, nil); err != ErrMissingPaystackSecret {
		t.Fatalf("expected ErrMissingPaystackSecret, got %v", err)
	}
}
