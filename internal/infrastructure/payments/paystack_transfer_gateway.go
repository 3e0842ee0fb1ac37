package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"plaiz_studio/internal/domain/entities"
	appconfig "plaiz_studio/internal/infrastructure/config"
	"plaiz_studio/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrMissingPaystackSecret = errors.New("missing PAYSTACK_SECRET_KEY")

// PaystackTransferGateway sends the two legs of a payout through the
// Paystack transfer API: the worker share to the worker's recipient and the
// platform share to the platform recipient, when one is configured.
type PaystackTransferGateway struct {
	httpClient        *http.Client
	baseURL           string
	secretKey         string
	platformRecipient string
	log               *zap.Logger
}

var _ interfaces.ITransferGateway = (*PaystackTransferGateway)(nil)

func NewPaystackTransferGateway(cfg appconfig.TransferConfig, log *zap.Logger) (*PaystackTransferGateway, error) {
	if cfg.SecretKey == "" {
		return nil, ErrMissingPaystackSecret
	}
	if log == nil {
		log = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &PaystackTransferGateway{
		httpClient:        &http.Client{Timeout: timeout},
		baseURL:           strings.TrimRight(cfg.BaseURL, "/"),
		secretKey:         cfg.SecretKey,
		platformRecipient: cfg.PlatformRecipientCode,
		log:               log,
	}, nil
}

type transferBody struct {
	Source    string `json:"source"`
	Amount    int64  `json:"amount"`
	Recipient string `json:"recipient"`
	Reason    string `json:"reason"`
	Reference string `json:"reference"`
	Currency  string `json:"currency"`
}

type transferReply struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Reference    string `json:"reference"`
		TransferCode string `json:"transfer_code"`
		Status       string `json:"status"`
	} `json:"data"`
}

// Transfer is not atomic across the two legs. The worker leg goes first; a
// failed platform leg is reported as success=false with the worker leg kept
// in the result so the reference is not lost. Reference is set only once the
// worker leg was accepted.
func (g *PaystackTransferGateway) Transfer(ctx context.Context, req entities.TransferRequest) (entities.TransferResult, error) {
	workerRef := fmt.Sprintf("payout-%s-worker", req.ProjectID)
	g.log.Info("[payout][gateway] worker transfer start", zap.String("project_id", req.ProjectID), zap.Int64("amount", req.Amount))

	workerReply, workerRaw, err := g.send(ctx, transferBody{
		Source:    "balance",
		Amount:    req.Amount,
		Recipient: req.RecipientCode,
		Reason:    fmt.Sprintf("Plaiz Studio payout for project %s", req.ProjectID),
		Reference: workerRef,
		Currency:  "NGN",
	})
	if err != nil {
		return entities.TransferResult{}, err
	}
	result := entities.TransferResult{
		Success:        workerReply.Status,
		WorkerTransfer: workerRaw,
	}
	if !workerReply.Status {
		g.log.Warn("[payout][gateway] worker transfer rejected", zap.String("message", workerReply.Message))
		return result, nil
	}
	result.Reference = firstNonEmpty(workerReply.Data.Reference, workerRef)

	if g.platformRecipient == "" || req.PlatformFee <= 0 {
		return result, nil
	}
	platformReply, platformRaw, err := g.send(ctx, transferBody{
		Source:    "balance",
		Amount:    req.PlatformFee,
		Recipient: g.platformRecipient,
		Reason:    fmt.Sprintf("Plaiz Studio fee for project %s", req.ProjectID),
		Reference: fmt.Sprintf("payout-%s-platform", req.ProjectID),
		Currency:  "NGN",
	})
	if err != nil {
		g.log.Error("[payout][gateway] platform transfer failed", zap.String("project_id", req.ProjectID), zap.Error(err))
		result.Success = false
		return result, nil
	}
	result.PlatformTransfer = platformRaw
	result.Success = platformReply.Status
	return result, nil
}

func (g *PaystackTransferGateway) send(ctx context.Context, body transferBody) (transferReply, json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return transferReply{}, nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/transfer", bytes.NewReader(payload))
	if err != nil {
		return transferReply{}, nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return transferReply{}, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return transferReply{}, nil, err
	}
	var reply transferReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return transferReply{}, nil, fmt.Errorf("paystack: status %d: invalid response: %w", resp.StatusCode, err)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return reply, raw, fmt.Errorf("paystack: unauthorized: %s", reply.Message)
	}
	if resp.StatusCode >= 500 {
		return reply, raw, fmt.Errorf("paystack: status %d: %s", resp.StatusCode, reply.Message)
	}
	return reply, raw, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
