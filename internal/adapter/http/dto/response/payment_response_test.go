package response

import (
	"encoding/json"
	"testing"
	"time"

	"paytabs_gateway/internal/domain/entities"
)

func TestFromPayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Payment{
		TranRef:            "T1",
		CartID:             "c1",
		RedirectURL:        "https://secure.paytabs.com/payment/page/X",
		Status:             entities.PaymentStatusApproved,
		ResponseCode:       "G1",
		ResponseMessage:    "Authorised",
		Date:               now,
		ProviderPayloadRaw: json.RawMessage(`{"tran_ref":"T1"}`),
		ProviderPayload:    map[string]interface{}{"tran_ref": "T1"},
	}

	res := FromPayment(p)
	if res.TranRef != "T1" || res.CartID != "c1" || res.Status != "approved" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.ResponseCode != "G1" || res.ResponseMessage != "Authorised" || !res.Date.Equal(now) {
		t.Fatalf("unexpected result fields: %+v", res)
	}
	if res.ProviderPayload["tran_ref"] != "T1" {
		t.Fatalf("unexpected provider payload: %+v", res.ProviderPayload)
	}
}
