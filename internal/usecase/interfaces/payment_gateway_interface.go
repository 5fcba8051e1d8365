package interfaces

import (
	"context"

	"paytabs_gateway/pkg/paytabs"
)

// IPaymentGateway abstracts the PayTabs API. *paytabs.Client satisfies it; the
// infrastructure adapter adds a local mock mode on top.
type IPaymentGateway interface {
	CreatePaymentPage(ctx context.Context, p paytabs.PaymentPageParams) (*paytabs.GatewayResponse, error)
	ValidatePayment(ctx context.Context, tranRef string) (*paytabs.GatewayResponse, error)
	QueryTransaction(ctx context.Context, p paytabs.QueryTransactionParams) (*paytabs.GatewayResponse, error)
}
