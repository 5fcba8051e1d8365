package paytabs

import (
	"errors"

	"github.com/goccy/go-json"
)

var ErrEmptyCallback = errors.New("empty paytabs callback body")

// CallbackPayload is what PayTabs posts to the merchant's callback URL once a
// payment page transaction completes.
type CallbackPayload struct {
	TranRef         string         `json:"tran_ref"`
	CartID          string         `json:"cart_id"`
	CartDescription string         `json:"cart_description"`
	CartCurrency    string         `json:"cart_currency"`
	CartAmount      string         `json:"cart_amount"`
	TranCurrency    string         `json:"tran_currency"`
	TranTotal       string         `json:"tran_total"`
	CustomerDetails ContactDetails `json:"customer_details"`
	PaymentResult   PaymentResult  `json:"payment_result"`
	PaymentInfo     struct {
		PaymentMethod      string `json:"payment_method"`
		CardType           string `json:"card_type"`
		CardScheme         string `json:"card_scheme"`
		PaymentDescription string `json:"payment_description"`
	} `json:"payment_info"`

	Raw []byte `json:"-"`
}

func DecodeCallback(body []byte) (*CallbackPayload, error) {
	if len(body) == 0 {
		return nil, ErrEmptyCallback
	}
	var p CallbackPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, err
	}
	p.Raw = body
	return &p, nil
}
