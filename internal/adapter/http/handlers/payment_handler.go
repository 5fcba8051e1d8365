package handlers

import (
	"errors"
	"net/http"

	"paytabs_gateway/internal/adapter/http/dto/request"
	"paytabs_gateway/internal/adapter/http/dto/response"
	"paytabs_gateway/internal/usecase"
	"paytabs_gateway/pkg"
	"paytabs_gateway/pkg/paytabs"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler handles HTTP requests for PayTabs payments.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	logger  *zap.Logger
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, logger *zap.Logger) *PaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentHandler{usecase: uc, logger: logger}
}

// CreatePaymentPage godoc
// @Summary      Create a hosted payment page
// @Description  Registers a transaction with PayTabs and returns the redirect url of its payment page
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      request.PaymentPageRequest  true  "Payment page"
// @Success      200      {object}  response.PaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /payments/page [post]
func (h *PaymentHandler) CreatePaymentPage(c *gin.Context) {
	var req request.PaymentPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("[payment][handler] invalid payment page payload", zap.Error(err))
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.logger.Info("[payment][handler] create-payment-page start", zap.String("cart_id", req.Cart.CartID))

	payment, err := h.usecase.CreatePaymentPage(c.Request.Context(), req.ToParams())
	if err != nil {
		h.logger.Warn("[payment][handler] create-payment-page failed", zap.String("cart_id", req.Cart.CartID), zap.Error(err))
		writePaymentError(c, err)
		return
	}
	h.logger.Info("[payment][handler] create-payment-page success", zap.String("cart_id", payment.CartID), zap.String("tran_ref", payment.TranRef))

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// ValidatePayment godoc
// @Summary      Validate a payment
// @Description  Looks up the current state of a transaction by tran_ref
// @Tags         payments
// @Produce      json
// @Param        tran_ref  path      string  true  "Transaction reference"
// @Success      200       {object}  response.PaymentResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      502       {object}  pkg.HTTPError
// @Router       /payments/{tran_ref}/validate [post]
func (h *PaymentHandler) ValidatePayment(c *gin.Context) {
	tranRef := c.Param("tran_ref")
	h.logger.Info("[payment][handler] validate-payment start", zap.String("tran_ref", tranRef))

	payment, err := h.usecase.ValidatePayment(c.Request.Context(), tranRef)
	if err != nil {
		h.logger.Warn("[payment][handler] validate-payment failed", zap.String("tran_ref", tranRef), zap.Error(err))
		writePaymentError(c, err)
		return
	}
	h.logger.Info("[payment][handler] validate-payment success", zap.String("tran_ref", tranRef), zap.String("status", string(payment.Status)))

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// QueryTransaction godoc
// @Summary      Follow-up transaction
// @Description  Sends a follow-up request (capture, void, refund...) for an existing tran_ref
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      request.QueryTransactionRequest  true  "Follow-up transaction"
// @Success      200      {object}  response.PaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /payments/query [post]
func (h *PaymentHandler) QueryTransaction(c *gin.Context) {
	var req request.QueryTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("[payment][handler] invalid query payload", zap.Error(err))
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.logger.Info("[payment][handler] query-transaction start", zap.String("tran_ref", req.TranRef), zap.String("tran_type", req.TranType))

	payment, err := h.usecase.QueryTransaction(c.Request.Context(), req.ToParams())
	if err != nil {
		h.logger.Warn("[payment][handler] query-transaction failed", zap.String("tran_ref", req.TranRef), zap.Error(err))
		writePaymentError(c, err)
		return
	}
	h.logger.Info("[payment][handler] query-transaction success", zap.String("tran_ref", payment.TranRef), zap.String("status", string(payment.Status)))

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// Callback godoc
// @Summary      PayTabs callback
// @Description  Receives the gateway's server-to-server notification and confirms it with a validation call
// @Tags         payments
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.PaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /payments/callback [post]
func (h *PaymentHandler) Callback(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		h.logger.Warn("[payment][handler] callback body unreadable", zap.Error(err))
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	payment, err := h.usecase.HandleCallback(c.Request.Context(), raw)
	if err != nil {
		h.logger.Warn("[payment][handler] callback failed", zap.Error(err))
		writePaymentError(c, err)
		return
	}
	h.logger.Info("[payment][handler] callback processed", zap.String("tran_ref", payment.TranRef), zap.String("status", string(payment.Status)))

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

func writePaymentError(c *gin.Context, err error) {
	appErr := mapPaymentError(err)
	if ge, ok := paytabs.AsGatewayError(err); ok {
		c.JSON(appErr.HTTPStatus, appErr.WithDetails(ge.Result))
		return
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTranRef), errors.Is(err, usecase.ErrInvalidCallbackPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_BAD_REQUEST", "Payment provider rejected the request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
