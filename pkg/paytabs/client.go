package paytabs

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

const (
	pathPaymentRequest = "payment/request"
	pathPaymentQuery   = "payment/query"
)

// Client talks to the PayTabs PT2 API on behalf of one merchant profile.
//
// The configuration can be swapped at any time with SetConfig; each operation
// reads one consistent snapshot when it starts.
type Client struct {
	mu  sync.RWMutex
	cfg Config

	dispatcher *dispatcher
	logger     *zap.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the http.Client used for gateway calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.dispatcher.httpClient = hc
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
			c.dispatcher.logger = l
		}
	}
}

func NewClient(cfg Config, opts ...Option) (*Client, error) {
	c := &Client{
		dispatcher: &dispatcher{httpClient: http.DefaultClient, logger: zap.NewNop()},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.SetConfig(cfg); err != nil {
		return nil, err
	}
	return c, nil
}

// SetConfig overwrites profile id, server key and region together. The last
// call wins; nothing is merged with the previous value. A config naming an
// unknown region is rejected and the current one kept.
func (c *Client) SetConfig(cfg Config) error {
	if !cfg.Region.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownRegion, cfg.Region)
	}
	c.mu.Lock()
	c.cfg = cfg
	c.mu.Unlock()
	c.log().Info("[paytabs][client] config updated", zap.String("profile_id", cfg.ProfileID), zap.String("region", cfg.Region.String()))
	return nil
}

func (c *Client) Config() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg
}

// CreatePaymentPage asks PayTabs for a hosted payment page.
func (c *Client) CreatePaymentPage(ctx context.Context, p PaymentPageParams) (*GatewayResponse, error) {
	cfg := c.Config()
	c.log().Info("[paytabs][client] create-payment-page start", zap.String("cart_id", p.Cart.CartID), zap.String("tran_type", p.Transaction.TranType))

	payload := paymentPageRequest{
		ProfileID:       cfg.ProfileID,
		PaymentMethods:  p.PaymentCode.PaymentMethods,
		TranType:        p.Transaction.TranType,
		TranClass:       p.Transaction.TranClass,
		CartID:          p.Cart.CartID,
		CartCurrency:    p.Cart.CartCurrency,
		CartAmount:      p.Cart.CartAmount,
		CartDescription: p.Cart.CartDescription,
		PaypageLang:     p.Lang,
		CustomerDetails: p.Customer,
		ShippingDetails: p.Shipping,
		Callback:        p.Urls.Callback,
		Return:          p.Urls.ReturnURL,
		Framed:          p.Framed,
		UserDefined:     userDefined{Package: PackageTag},
	}
	return c.send(ctx, cfg, pathPaymentRequest, payload)
}

// ValidatePayment looks up the state of a transaction by its reference.
func (c *Client) ValidatePayment(ctx context.Context, tranRef string) (*GatewayResponse, error) {
	cfg := c.Config()
	c.log().Info("[paytabs][client] validate-payment start", zap.String("tran_ref", tranRef))

	payload := validatePaymentRequest{
		ProfileID: cfg.ProfileID,
		TranRef:   tranRef,
	}
	return c.send(ctx, cfg, pathPaymentQuery, payload)
}

// QueryTransaction issues a request against an existing transaction
// (tran_ref plus tran_type/tran_class and the cart). It shares the
// payment/request path with page creation, which is where PayTabs takes
// follow-up operations such as capture, void and refund.
func (c *Client) QueryTransaction(ctx context.Context, p QueryTransactionParams) (*GatewayResponse, error) {
	cfg := c.Config()
	c.log().Info("[paytabs][client] query-transaction start", zap.String("tran_ref", p.Transaction.TranRef), zap.String("tran_type", p.Transaction.TranType))

	payload := queryTransactionRequest{
		ProfileID:       cfg.ProfileID,
		TranRef:         p.Transaction.TranRef,
		TranType:        p.Transaction.TranType,
		TranClass:       p.Transaction.TranClass,
		CartID:          p.Cart.CartID,
		CartCurrency:    p.Cart.CartCurrency,
		CartAmount:      p.Cart.CartAmount,
		CartDescription: p.Cart.CartDescription,
	}
	return c.send(ctx, cfg, pathPaymentRequest, payload)
}

func (c *Client) CreatePaymentPageAsync(ctx context.Context, p PaymentPageParams) <-chan Result {
	return async(func() (*GatewayResponse, error) { return c.CreatePaymentPage(ctx, p) })
}

func (c *Client) ValidatePaymentAsync(ctx context.Context, tranRef string) <-chan Result {
	return async(func() (*GatewayResponse, error) { return c.ValidatePayment(ctx, tranRef) })
}

func (c *Client) QueryTransactionAsync(ctx context.Context, p QueryTransactionParams) <-chan Result {
	return async(func() (*GatewayResponse, error) { return c.QueryTransaction(ctx, p) })
}

// async runs fn in the background. The returned channel yields exactly one
// Result and is then closed.
func async(fn func() (*GatewayResponse, error)) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		resp, err := fn()
		ch <- Result{Response: resp, Err: err}
	}()
	return ch
}

func (c *Client) send(ctx context.Context, cfg Config, path string, payload any) (*GatewayResponse, error) {
	endpoint, ok := cfg.endpoint(path)
	if !ok {
		c.log().Warn("[paytabs][client] region has no endpoint", zap.String("region", cfg.Region.String()))
		return nil, newGatewayError(resultInvalidURL, 0, ErrUnknownRegion)
	}
	d := c.dispatcher
	if d == nil {
		d = defaultDispatcher
	}
	return d.post(ctx, endpoint, cfg.ServerKey, payload)
}

func (c *Client) log() *zap.Logger {
	if c.logger == nil {
		return zap.NewNop()
	}
	return c.logger
}
