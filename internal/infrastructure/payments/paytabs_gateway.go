package payments

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"paytabs_gateway/internal/usecase/interfaces"
	"paytabs_gateway/pkg/paytabs"

	"go.uber.org/zap"
)

var ErrMissingPayTabsServerKey = errors.New("missing PAYTABS_SERVER_KEY")
var ErrMissingPayTabsProfileID = errors.New("missing PAYTABS_PROFILE_ID")
var ErrPayTabsGatewayNotConfigured = errors.New("paytabs gateway not configured")

const mockPaymentPageBase = "https://secure-global.paytabs.com/payment/page/"

type PayTabsGateway struct {
	client   *paytabs.Client
	mockMode bool
	logger   *zap.Logger
}

var _ interfaces.IPaymentGateway = (*PayTabsGateway)(nil)

func NewPayTabsGateway(cfg paytabs.Config, logger *zap.Logger, opts ...paytabs.Option) (*PayTabsGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if isPaymentGatewayMockEnabled() {
		logger.Info("[payment][gateway] mock mode enabled")
		return &PayTabsGateway{mockMode: true, logger: logger}, nil
	}

	if cfg.ServerKey == "" {
		logger.Warn("[payment][gateway] missing PAYTABS_SERVER_KEY")
		return nil, ErrMissingPayTabsServerKey
	}
	if cfg.ProfileID == "" {
		logger.Warn("[payment][gateway] missing PAYTABS_PROFILE_ID")
		return nil, ErrMissingPayTabsProfileID
	}

	client, err := paytabs.NewClient(cfg, append([]paytabs.Option{paytabs.WithLogger(logger)}, opts...)...)
	if err != nil {
		logger.Error("[payment][gateway] failed creating paytabs client", zap.Error(err))
		return nil, err
	}
	logger.Info("[payment][gateway] PayTabs client initialized", zap.String("region", cfg.Region.String()))

	return &PayTabsGateway{client: client, logger: logger}, nil
}

func (g *PayTabsGateway) CreatePaymentPage(ctx context.Context, p paytabs.PaymentPageParams) (*paytabs.GatewayResponse, error) {
	if g != nil && g.mockMode {
		id := mockTranRef()
		g.logger.Info("[payment][gateway] mock create-payment-page", zap.String("tran_ref", id), zap.String("cart_id", p.Cart.CartID))
		return mockResponse(map[string]any{
			"tran_ref":         id,
			"tran_type":        p.Transaction.TranType,
			"cart_id":          p.Cart.CartID,
			"cart_description": p.Cart.CartDescription,
			"cart_currency":    p.Cart.CartCurrency,
			"cart_amount":      strconv.FormatFloat(p.Cart.CartAmount, 'f', 2, 64),
			"callback":         p.Urls.Callback,
			"return":           p.Urls.ReturnURL,
			"redirect_url":     mockPaymentPageBase + id,
		})
	}
	if err := g.ready(); err != nil {
		return nil, err
	}
	return g.client.CreatePaymentPage(ctx, p)
}

func (g *PayTabsGateway) ValidatePayment(ctx context.Context, tranRef string) (*paytabs.GatewayResponse, error) {
	if g != nil && g.mockMode {
		g.logger.Info("[payment][gateway] mock validate-payment", zap.String("tran_ref", tranRef))
		return mockResponse(map[string]any{
			"tran_ref":       tranRef,
			"payment_result": mockApprovedResult(),
		})
	}
	if err := g.ready(); err != nil {
		return nil, err
	}
	return g.client.ValidatePayment(ctx, tranRef)
}

func (g *PayTabsGateway) QueryTransaction(ctx context.Context, p paytabs.QueryTransactionParams) (*paytabs.GatewayResponse, error) {
	if g != nil && g.mockMode {
		id := mockTranRef()
		g.logger.Info("[payment][gateway] mock query-transaction", zap.String("tran_ref", p.Transaction.TranRef), zap.String("new_tran_ref", id))
		return mockResponse(map[string]any{
			"tran_ref":          id,
			"previous_tran_ref": p.Transaction.TranRef,
			"tran_type":         p.Transaction.TranType,
			"cart_id":           p.Cart.CartID,
			"cart_currency":     p.Cart.CartCurrency,
			"cart_amount":       strconv.FormatFloat(p.Cart.CartAmount, 'f', 2, 64),
			"payment_result":    mockApprovedResult(),
		})
	}
	if err := g.ready(); err != nil {
		return nil, err
	}
	return g.client.QueryTransaction(ctx, p)
}

// Client exposes the underlying library client, nil in mock mode.
func (g *PayTabsGateway) Client() *paytabs.Client {
	if g == nil {
		return nil
	}
	return g.client
}

func (g *PayTabsGateway) ready() error {
	if g == nil || g.client == nil {
		return ErrPayTabsGatewayNotConfigured
	}
	return nil
}

func mockTranRef() string {
	return "TST" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
}

func mockApprovedResult() map[string]any {
	return map[string]any{
		"response_status":  "A",
		"response_code":    "G00000",
		"response_message": "Authorised",
		"transaction_time": time.Now().UTC().Format(time.RFC3339),
	}
}

func mockResponse(fields map[string]any) (*paytabs.GatewayResponse, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	out := &paytabs.GatewayResponse{Raw: raw}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &out.Fields); err != nil {
		return nil, err
	}
	return out, nil
}
