package entities

import "testing"

func TestPaymentStatusFromResult(t *testing.T) {
	cases := map[string]PaymentStatus{
		"A": PaymentStatusApproved,
		"H": PaymentStatusOnHold,
		"V": PaymentStatusVoided,
		"E": PaymentStatusError,
		"D": PaymentStatusDeclined,
		"X": PaymentStatusExpired,
		"P": PaymentStatusPending,
		"":  PaymentStatusPending,
		"a": PaymentStatusPending,
	}
	for in, want := range cases {
		if got := PaymentStatusFromResult(in); got != want {
			t.Fatalf("status %q: expected %s, got %s", in, want, got)
		}
	}
}
