package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"paytabs_gateway/internal/domain/entities"
	"paytabs_gateway/internal/usecase/interfaces"
	"paytabs_gateway/pkg/paytabs"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidTranRef              = errors.New("invalid tran_ref")
	ErrInvalidCallbackPayload      = errors.New("invalid callback payload")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest    = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized  = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayUnavailable   = errors.New("payment gateway unavailable")
)

// IPaymentUseCase exposes the PayTabs operations to the HTTP layer.
//
//   - CreatePaymentPage => hosted payment page (payment/request)
//   - ValidatePayment   => transaction lookup by tran_ref (payment/query)
//   - QueryTransaction  => follow-up request on an existing tran_ref (payment/request)
//   - HandleCallback    => decodes the gateway's IPN post and re-validates it
type IPaymentUseCase interface {
	CreatePaymentPage(ctx context.Context, p paytabs.PaymentPageParams) (entities.Payment, error)
	ValidatePayment(ctx context.Context, tranRef string) (entities.Payment, error)
	QueryTransaction(ctx context.Context, p paytabs.QueryTransactionParams) (entities.Payment, error)
	HandleCallback(ctx context.Context, body []byte) (entities.Payment, error)
}

type PaymentUseCase struct {
	gateway interfaces.IPaymentGateway
	logger  *zap.Logger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(gateway interfaces.IPaymentGateway, logger *zap.Logger) *PaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentUseCase{gateway: gateway, logger: logger}
}

func (u *PaymentUseCase) CreatePaymentPage(ctx context.Context, p paytabs.PaymentPageParams) (entities.Payment, error) {
	if u.gateway == nil {
		u.logger.Warn("[payment][usecase] gateway not configured")
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	p.Cart.CartID = strings.TrimSpace(p.Cart.CartID)
	if p.Cart.CartID == "" {
		p.Cart.CartID = uuid.NewString()
		u.logger.Debug("[payment][usecase] generated cart_id", zap.String("cart_id", p.Cart.CartID))
	}
	u.logger.Info("[payment][usecase] create-payment-page start",
		zap.String("cart_id", p.Cart.CartID),
		zap.Float64("cart_amount", p.Cart.CartAmount),
		zap.String("cart_currency", p.Cart.CartCurrency))

	resp, err := u.gateway.CreatePaymentPage(ctx, p)
	if err != nil {
		u.logger.Warn("[payment][usecase] create-payment-page failed", zap.String("cart_id", p.Cart.CartID), zap.Error(err))
		return entities.Payment{}, mapGatewayError(err)
	}

	payment := toPayment(resp)
	if payment.CartID == "" {
		payment.CartID = p.Cart.CartID
	}
	u.logger.Info("[payment][usecase] create-payment-page success", zap.String("cart_id", payment.CartID), zap.String("tran_ref", payment.TranRef))
	return payment, nil
}

func (u *PaymentUseCase) ValidatePayment(ctx context.Context, tranRef string) (entities.Payment, error) {
	tranRef = strings.TrimSpace(tranRef)
	if tranRef == "" {
		return entities.Payment{}, ErrInvalidTranRef
	}
	if u.gateway == nil {
		u.logger.Warn("[payment][usecase] gateway not configured")
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	resp, err := u.gateway.ValidatePayment(ctx, tranRef)
	if err != nil {
		u.logger.Warn("[payment][usecase] validate-payment failed", zap.String("tran_ref", tranRef), zap.Error(err))
		return entities.Payment{}, mapGatewayError(err)
	}

	payment := toPayment(resp)
	if payment.TranRef == "" {
		payment.TranRef = tranRef
	}
	u.logger.Info("[payment][usecase] validate-payment success", zap.String("tran_ref", tranRef), zap.String("status", string(payment.Status)))
	return payment, nil
}

func (u *PaymentUseCase) QueryTransaction(ctx context.Context, p paytabs.QueryTransactionParams) (entities.Payment, error) {
	p.Transaction.TranRef = strings.TrimSpace(p.Transaction.TranRef)
	if p.Transaction.TranRef == "" {
		return entities.Payment{}, ErrInvalidTranRef
	}
	if u.gateway == nil {
		u.logger.Warn("[payment][usecase] gateway not configured")
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	resp, err := u.gateway.QueryTransaction(ctx, p)
	if err != nil {
		u.logger.Warn("[payment][usecase] query-transaction failed", zap.String("tran_ref", p.Transaction.TranRef), zap.Error(err))
		return entities.Payment{}, mapGatewayError(err)
	}

	payment := toPayment(resp)
	u.logger.Info("[payment][usecase] query-transaction success",
		zap.String("tran_ref", p.Transaction.TranRef),
		zap.String("new_tran_ref", payment.TranRef),
		zap.String("status", string(payment.Status)))
	return payment, nil
}

// HandleCallback decodes a PayTabs callback post. The posted status is not
// trusted: the transaction is looked up again with ValidatePayment and that
// answer is returned.
func (u *PaymentUseCase) HandleCallback(ctx context.Context, body []byte) (entities.Payment, error) {
	cb, err := paytabs.DecodeCallback(body)
	if err != nil {
		u.logger.Warn("[payment][usecase] callback decode failed", zap.Error(err))
		return entities.Payment{}, fmt.Errorf("%w: %w", ErrInvalidCallbackPayload, err)
	}
	if strings.TrimSpace(cb.TranRef) == "" {
		u.logger.Warn("[payment][usecase] callback without tran_ref", zap.String("cart_id", cb.CartID))
		return entities.Payment{}, ErrInvalidCallbackPayload
	}
	u.logger.Info("[payment][usecase] callback received",
		zap.String("tran_ref", cb.TranRef),
		zap.String("cart_id", cb.CartID),
		zap.String("response_status", cb.PaymentResult.ResponseStatus))

	payment, err := u.ValidatePayment(ctx, cb.TranRef)
	if err != nil {
		return entities.Payment{}, err
	}

	posted := entities.PaymentStatusFromResult(cb.PaymentResult.ResponseStatus)
	if posted != payment.Status {
		u.logger.Warn("[payment][usecase] callback status differs from gateway",
			zap.String("tran_ref", cb.TranRef),
			zap.String("posted_status", string(posted)),
			zap.String("gateway_status", string(payment.Status)))
	}
	if payment.CartID == "" {
		payment.CartID = cb.CartID
	}
	return payment, nil
}

// mapGatewayError classifies a normalized gateway failure by the status PayTabs
// actually answered with. The original error stays in the chain.
func mapGatewayError(err error) error {
	ge, ok := paytabs.AsGatewayError(err)
	if !ok {
		return err
	}
	switch {
	case ge.Transport():
		return fmt.Errorf("%w: %w", ErrPaymentGatewayUnavailable, err)
	case ge.HTTPStatus == http.StatusUnauthorized, ge.HTTPStatus == http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrPaymentGatewayUnauthorized, err)
	case ge.HTTPStatus >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %w", ErrPaymentGatewayUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", ErrPaymentGatewayBadRequest, err)
	}
}

func toPayment(resp *paytabs.GatewayResponse) entities.Payment {
	if resp == nil {
		return entities.Payment{Status: entities.PaymentStatusPending, Date: time.Now().UTC()}
	}
	p := entities.Payment{
		TranRef:            resp.TranRef,
		CartID:             resp.CartID,
		RedirectURL:        resp.RedirectURL,
		Status:             entities.PaymentStatusPending,
		Date:               time.Now().UTC(),
		ProviderPayloadRaw: json.RawMessage(resp.Raw),
		ProviderPayload:    resp.Fields,
	}
	if r := resp.PaymentResult; r != nil {
		p.Status = entities.PaymentStatusFromResult(r.ResponseStatus)
		p.ResponseCode = r.ResponseCode
		p.ResponseMessage = r.ResponseMessage
	}
	return p
}
