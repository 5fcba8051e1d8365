package response

import (
	"time"

	"paytabs_gateway/internal/domain/entities"
)

type PaymentResponse struct {
	TranRef         string    `json:"tran_ref"`
	CartID          string    `json:"cart_id"`
	RedirectURL     string    `json:"redirect_url,omitempty"`
	Status          string    `json:"status"`
	ResponseCode    string    `json:"response_code,omitempty"`
	ResponseMessage string    `json:"response_message,omitempty"`
	Date            time.Time `json:"date"`

	ProviderPayload map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		TranRef:         p.TranRef,
		CartID:          p.CartID,
		RedirectURL:     p.RedirectURL,
		Status:          string(p.Status),
		ResponseCode:    p.ResponseCode,
		ResponseMessage: p.ResponseMessage,
		Date:            p.Date,
		ProviderPayload: p.ProviderPayload,
	}
}
