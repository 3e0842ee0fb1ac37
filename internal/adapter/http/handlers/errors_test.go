package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"plaiz_studio/internal/usecase"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", usecase.ErrInvalidTitle, http.StatusBadRequest, "INVALID_REQUEST"},
		{"forbidden before precondition", fmt.Errorf("%w: not yours", usecase.ErrForbidden), http.StatusForbidden, "FORBIDDEN"},
		{"stale", usecase.ErrStaleStatus, http.StatusConflict, "STALE_STATUS"},
		{"precondition", usecase.ErrPayoutNotSent, http.StatusConflict, "PRECONDITION_FAILED"},
		{"mismatch", fmt.Errorf("%w: deposit must be 20000", usecase.ErrAmountMismatch), http.StatusUnprocessableEntity, "AMOUNT_MISMATCH"},
		{"project not found", usecase.ErrProjectNotFound, http.StatusNotFound, "PROJECT_NOT_FOUND"},
		{"gateway bad request", usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest, "PAYMENT_PROVIDER_BAD_REQUEST"},
		{"external", fmt.Errorf("%w: dynamodb timeout", usecase.ErrExternalService), http.StatusBadGateway, "EXTERNAL_SERVICE_ERROR"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.err)
			if got.HTTPStatus != tt.status || got.Code != tt.code {
				t.Fatalf("expected %d/%s, got %d/%s", tt.status, tt.code, got.HTTPStatus, got.Code)
			}
		})
	}
}

func TestMapError_ExternalKeepsRawMessage(t *testing.T) {
	err := fmt.Errorf("%w: %w", usecase.ErrTransferFailed, errors.New("paystack: Insufficient balance"))
	body := mapError(err).ToHTTPErrorWithDetail()
	if body.Detail == "" || body.Code != "EXTERNAL_SERVICE_ERROR" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
