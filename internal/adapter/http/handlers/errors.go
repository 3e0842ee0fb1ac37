package handlers

import (
	"errors"
	"net/http"

	"plaiz_studio/internal/usecase"
	"plaiz_studio/pkg"
	"plaiz_studio/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

type errorCase struct {
	target  error
	code    string
	message string
	status  int
}

// Specific sentinels come first; the taxonomy roots below catch the rest.
var errorCases = []errorCase{
	{usecase.ErrPaymentGatewayBadRequest, "PAYMENT_PROVIDER_BAD_REQUEST", "Payment provider rejected the request", http.StatusBadRequest},
	{usecase.ErrPaymentGatewayCustomerNotFound, "PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago context", http.StatusBadRequest},
	{usecase.ErrPaymentGatewayInvalidUsers, "PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer", http.StatusBadRequest},
	{usecase.ErrPaymentGatewayUnauthorized, "PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway},
	{usecase.ErrProjectNotFound, "PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound},
	{usecase.ErrAgreementNotFound, "AGREEMENT_NOT_FOUND", "Agreement not found", http.StatusNotFound},
	{usecase.ErrPayoutNotFound, "PAYOUT_NOT_FOUND", "Payout not found", http.StatusNotFound},
	{usecase.ErrBankAccountNotFound, "BANK_ACCOUNT_NOT_FOUND", "Bank account not found", http.StatusNotFound},
	{usecase.ErrPortfolioNotFound, "PORTFOLIO_ITEM_NOT_FOUND", "Portfolio item not found", http.StatusNotFound},
	{usecase.ErrNotificationNotFound, "NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound},
	{usecase.ErrStaleStatus, "STALE_STATUS", "Project status changed, reload and retry", http.StatusConflict},
	{usecase.ErrForbidden, "FORBIDDEN", "Not allowed", http.StatusForbidden},
	{usecase.ErrNotFound, "NOT_FOUND", "Not found", http.StatusNotFound},
	{usecase.ErrAmountMismatch, "AMOUNT_MISMATCH", "Amount does not match the agreement", http.StatusUnprocessableEntity},
	{usecase.ErrValidation, "INVALID_REQUEST", "Invalid request", http.StatusBadRequest},
	{usecase.ErrPrecondition, "PRECONDITION_FAILED", "Operation not allowed in the current state", http.StatusConflict},
	{usecase.ErrExternalService, "EXTERNAL_SERVICE_ERROR", "Upstream service failed", http.StatusBadGateway},
}

func mapError(err error) *pkg.AppError {
	for _, ec := range errorCases {
		if errors.Is(err, ec.target) {
			return pkg.NewDomainError(ec.code, ec.message, err, ec.status)
		}
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

// respondError writes the mapped error. The underlying message is exposed for
// everything but internal errors.
func respondError(c *gin.Context, component string, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus == http.StatusInternalServerError {
		logger.Log.Error("["+component+"][handler] internal error", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logger.Log.Info("["+component+"][handler] request failed",
		zap.String("path", c.FullPath()),
		zap.String("code", appErr.Code),
		zap.Error(err),
	)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithDetail())
}

func respondInvalidPayload(c *gin.Context) {
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}
