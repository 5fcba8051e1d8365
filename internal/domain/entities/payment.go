package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus is the service-side reading of PayTabs' payment_result.response_status.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDeclined PaymentStatus = "declined"
	PaymentStatusOnHold   PaymentStatus = "on_hold"
	PaymentStatusVoided   PaymentStatus = "voided"
	PaymentStatusError    PaymentStatus = "error"
	PaymentStatusExpired  PaymentStatus = "expired"
)

// PaymentStatusFromResult maps PayTabs response_status codes (A, H, P, V, E,
// D, X). Anything else, including an absent result, is pending.
func PaymentStatusFromResult(responseStatus string) PaymentStatus {
	switch responseStatus {
	case "A":
		return PaymentStatusApproved
	case "H":
		return PaymentStatusOnHold
	case "V":
		return PaymentStatusVoided
	case "E":
		return PaymentStatusError
	case "D":
		return PaymentStatusDeclined
	case "X":
		return PaymentStatusExpired
	default:
		return PaymentStatusPending
	}
}

// Payment is what the service reports back for a gateway exchange.
//
// ProviderPayloadRaw keeps the gateway body as received for traceability;
// ProviderPayload is its generic decode.
type Payment struct {
	TranRef         string        `json:"tran_ref"`
	CartID          string        `json:"cart_id"`
	RedirectURL     string        `json:"redirect_url,omitempty"`
	Status          PaymentStatus `json:"status"`
	ResponseCode    string        `json:"response_code,omitempty"`
	ResponseMessage string        `json:"response_message,omitempty"`
	Date            time.Time     `json:"date"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
