package request

import "paytabs_gateway/pkg/paytabs"

const (
	defaultTranType  = "sale"
	defaultTranClass = "ecom"
	defaultLang      = "en"
)

type CartRequest struct {
	CartID          string  `json:"cart_id"`
	CartCurrency    string  `json:"cart_currency"`
	CartAmount      float64 `json:"cart_amount"`
	CartDescription string  `json:"cart_description"`
}

type ContactRequest struct {
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

// PaymentPageRequest is the body of POST /payments/page.
//
// tran_type, tran_class and lang default to sale, ecom and en. When
// shipping_details is omitted the customer details are sent as shipping.
type PaymentPageRequest struct {
	PaymentMethods []string        `json:"payment_methods"`
	TranType       string          `json:"tran_type"`
	TranClass      string          `json:"tran_class"`
	Cart           CartRequest     `json:"cart"`
	Customer       ContactRequest  `json:"customer_details"`
	Shipping       *ContactRequest `json:"shipping_details"`
	Callback       string          `json:"callback"`
	ReturnURL      string          `json:"return_url"`
	Lang           string          `json:"lang"`
	Framed         bool            `json:"framed"`
}

func (r PaymentPageRequest) ToParams() paytabs.PaymentPageParams {
	shipping := r.Customer
	if r.Shipping != nil {
		shipping = *r.Shipping
	}
	return paytabs.PaymentPageParams{
		PaymentCode: paytabs.PaymentCode{PaymentMethods: r.PaymentMethods},
		Transaction: paytabs.Transaction{
			TranType:  orDefault(r.TranType, defaultTranType),
			TranClass: orDefault(r.TranClass, defaultTranClass),
		},
		Cart:     r.Cart.toCart(),
		Customer: r.Customer.toContact(),
		Shipping: shipping.toContact(),
		Urls:     paytabs.Urls{Callback: r.Callback, ReturnURL: r.ReturnURL},
		Lang:     orDefault(r.Lang, defaultLang),
		Framed:   r.Framed,
	}
}

// QueryTransactionRequest is the body of POST /payments/query.
type QueryTransactionRequest struct {
	TranRef   string      `json:"tran_ref" binding:"required"`
	TranType  string      `json:"tran_type" binding:"required"`
	TranClass string      `json:"tran_class"`
	Cart      CartRequest `json:"cart"`
}

func (r QueryTransactionRequest) ToParams() paytabs.QueryTransactionParams {
	return paytabs.QueryTransactionParams{
		Transaction: paytabs.Transaction{
			TranRef:   r.TranRef,
			TranType:  r.TranType,
			TranClass: orDefault(r.TranClass, defaultTranClass),
		},
		Cart: r.Cart.toCart(),
	}
}

func (c CartRequest) toCart() paytabs.Cart {
	return paytabs.Cart{
		CartID:          c.CartID,
		CartCurrency:    c.CartCurrency,
		CartAmount:      c.CartAmount,
		CartDescription: c.CartDescription,
	}
}

func (c ContactRequest) toContact() paytabs.ContactDetails {
	return paytabs.ContactDetails(c)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
