package paytabs

// PackageTag is sent in user_defined.package so PayTabs can identify this client.
const PackageTag = "go PT2 V2.0.0"

// Transaction carries the gateway transaction semantics.
// TranRef is only populated for follow-up and query calls.
type Transaction struct {
	TranType  string `json:"tran_type"`
	TranClass string `json:"tran_class"`
	TranRef   string `json:"tran_ref,omitempty"`
}

// Cart is the gateway's representation of the order being paid.
type Cart struct {
	CartID          string  `json:"cart_id"`
	CartCurrency    string  `json:"cart_currency"`
	CartAmount      float64 `json:"cart_amount"`
	CartDescription string  `json:"cart_description"`
}

// ContactDetails holds contact and address data forwarded verbatim to PayTabs.
type ContactDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Street1 string `json:"street1"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Zip     string `json:"zip"`
	IP      string `json:"ip"`
}

type (
	Customer = ContactDetails
	Shipping = ContactDetails
)

// Urls are the merchant's server-to-server callback and browser return endpoints.
type Urls struct {
	Callback  string `json:"callback"`
	ReturnURL string `json:"return_url"`
}

type PaymentCode struct {
	PaymentMethods []string `json:"payment_methods"`
}

// PaymentPageParams is the input of Client.CreatePaymentPage.
type PaymentPageParams struct {
	PaymentCode PaymentCode
	Transaction Transaction
	Cart        Cart
	Customer    Customer
	Shipping    Shipping
	Urls        Urls
	Lang        string
	Framed      bool
}

// QueryTransactionParams is the input of Client.QueryTransaction.
type QueryTransactionParams struct {
	Transaction Transaction
	Cart        Cart
}

type userDefined struct {
	Package string `json:"package"`
}

type paymentPageRequest struct {
	ProfileID       string      `json:"profile_id"`
	PaymentMethods  []string    `json:"payment_methods"`
	TranType        string      `json:"tran_type"`
	TranClass       string      `json:"tran_class"`
	CartID          string      `json:"cart_id"`
	CartCurrency    string      `json:"cart_currency"`
	CartAmount      float64     `json:"cart_amount"`
	CartDescription string      `json:"cart_description"`
	PaypageLang     string      `json:"paypage_lang"`
	CustomerDetails Customer    `json:"customer_details"`
	ShippingDetails Shipping    `json:"shipping_details"`
	Callback        string      `json:"callback"`
	Return          string      `json:"return"`
	Framed          bool        `json:"framed"`
	UserDefined     userDefined `json:"user_defined"`
}

type validatePaymentRequest struct {
	ProfileID string `json:"profile_id"`
	TranRef   string `json:"tran_ref"`
}

type queryTransactionRequest struct {
	ProfileID       string  `json:"profile_id"`
	TranRef         string  `json:"tran_ref"`
	TranType        string  `json:"tran_type"`
	TranClass       string  `json:"tran_class"`
	CartID          string  `json:"cart_id"`
	CartCurrency    string  `json:"cart_currency"`
	CartAmount      float64 `json:"cart_amount"`
	CartDescription string  `json:"cart_description"`
}

// PaymentResult is the outcome block PayTabs attaches to transaction responses.
type PaymentResult struct {
	ResponseStatus  string `json:"response_status"`
	ResponseCode    string `json:"response_code"`
	ResponseMessage string `json:"response_message"`
	TransactionTime string `json:"transaction_time,omitempty"`
}

// Approved reports whether the gateway authorised the transaction.
func (r PaymentResult) Approved() bool {
	return r.ResponseStatus == "A"
}

// GatewayResponse is a successful gateway answer.
//
// Raw keeps the body exactly as received; Fields is a generic decode of it.
// The typed fields cover what callers usually need and are zero when absent.
type GatewayResponse struct {
	TranRef       string         `json:"tran_ref,omitempty"`
	CartID        string         `json:"cart_id,omitempty"`
	RedirectURL   string         `json:"redirect_url,omitempty"`
	PaymentResult *PaymentResult `json:"payment_result,omitempty"`

	Raw    []byte         `json:"-"`
	Fields map[string]any `json:"-"`
}

// Result is the single completion value delivered by the async operations.
type Result struct {
	Response *GatewayResponse
	Err      error
}
