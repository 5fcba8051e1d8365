package paytabs

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

type capturedRequest struct {
	Method        string
	Host          string
	Path          string
	Authorization string
	ContentType   string
	Body          map[string]any
}

type fakeGateway struct {
	mu       sync.Mutex
	requests []capturedRequest
	status   int
	response string
	srv      *httptest.Server
}

func newFakeGateway(t *testing.T, status int, response string) *fakeGateway {
	t.Helper()
	g := &fakeGateway{status: status, response: response}
	g.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(raw, &body)

		g.mu.Lock()
		g.requests = append(g.requests, capturedRequest{
			Method:        r.Method,
			Host:          r.Header.Get("X-Original-Host"),
			Path:          r.URL.Path,
			Authorization: r.Header.Get("authorization"),
			ContentType:   r.Header.Get("Content-Type"),
			Body:          body,
		})
		g.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(g.status)
		_, _ = w.Write([]byte(g.response))
	}))
	t.Cleanup(g.srv.Close)
	return g
}

func (g *fakeGateway) client(t *testing.T, cfg Config) *Client {
	t.Helper()
	target, err := url.Parse(g.srv.URL)
	if err != nil {
		t.Fatalf("parse server url: %v", err)
	}
	c, err := NewClient(cfg, WithHTTPClient(&http.Client{Transport: rewriteTransport{target: target}}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func (g *fakeGateway) last(t *testing.T) capturedRequest {
	t.Helper()
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.requests) == 0 {
		t.Fatalf("gateway received no request")
	}
	return g.requests[len(g.requests)-1]
}

func (g *fakeGateway) count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.requests)
}

// rewriteTransport sends every request to the test server and remembers the
// host the client originally targeted.
type rewriteTransport struct {
	target *url.URL
}

func (rt rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("X-Original-Host", req.URL.Host)
	r.URL.Scheme = rt.target.Scheme
	r.URL.Host = rt.target.Host
	r.Host = rt.target.Host
	return http.DefaultTransport.RoundTrip(r)
}

func testConfig() Config {
	return Config{ProfileID: "87654", ServerKey: "SJNL-server-key", Region: RegionARE}
}

func testPaymentPageParams() PaymentPageParams {
	contact := ContactDetails{
		Name:    "John Smith",
		Email:   "john@test.com",
		Phone:   "+971500000000",
		Street1: "404, 11th st",
		City:    "Dubai",
		State:   "DU",
		Country: "AE",
		Zip:     "12345",
		IP:      "1.1.1.1",
	}
	return PaymentPageParams{
		PaymentCode: PaymentCode{PaymentMethods: []string{"creditcard", "applepay"}},
		Transaction: Transaction{TranType: "sale", TranClass: "ecom"},
		Cart:        Cart{CartID: "cart-1", CartCurrency: "AED", CartAmount: 12.5, CartDescription: "Order #1"},
		Customer:    contact,
		Shipping:    contact,
		Urls:        Urls{Callback: "https://merchant.test/callback", ReturnURL: "https://merchant.test/return"},
		Lang:        "en",
	}
}

func TestClient_CreatePaymentPage(t *testing.T) {
	g := newFakeGateway(t, http.StatusOK, `{"tran_ref":"TST123","cart_id":"cart-1","redirect_url":"https://secure.paytabs.com/payment/page/ABC"}`)
	c := g.client(t, testConfig())

	resp, err := c.CreatePaymentPage(context.Background(), testPaymentPageParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.TranRef != "TST123" || resp.RedirectURL != "https://secure.paytabs.com/payment/page/ABC" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Fields["cart_id"] != "cart-1" {
		t.Fatalf("unexpected fields: %+v", resp.Fields)
	}

	req := g.last(t)
	if req.Method != http.MethodPost || req.Host != "secure.paytabs.com" || req.Path != "/payment/request" {
		t.Fatalf("unexpected target: %+v", req)
	}
	if req.Authorization != "SJNL-server-key" {
		t.Fatalf("unexpected authorization header: %q", req.Authorization)
	}
	if req.ContentType != "application/json" {
		t.Fatalf("unexpected content type: %q", req.ContentType)
	}

	b := req.Body
	if b["profile_id"] != "87654" || b["tran_type"] != "sale" || b["tran_class"] != "ecom" {
		t.Fatalf("unexpected transaction fields: %+v", b)
	}
	if b["cart_amount"] != 12.5 || b["cart_currency"] != "AED" || b["paypage_lang"] != "en" {
		t.Fatalf("unexpected cart fields: %+v", b)
	}
	if b["callback"] != "https://merchant.test/callback" || b["return"] != "https://merchant.test/return" {
		t.Fatalf("unexpected urls: %+v", b)
	}
	if b["framed"] != false {
		t.Fatalf("expected framed=false, got %v", b["framed"])
	}
	ud, _ := b["user_defined"].(map[string]any)
	if ud["package"] != PackageTag {
		t.Fatalf("expected package tag %q, got %v", PackageTag, ud["package"])
	}
	methods, _ := b["payment_methods"].([]any)
	if len(methods) != 2 || methods[0] != "creditcard" || methods[1] != "applepay" {
		t.Fatalf("unexpected payment methods: %v", b["payment_methods"])
	}
	customer, _ := b["customer_details"].(map[string]any)
	shipping, _ := b["shipping_details"].(map[string]any)
	if customer["name"] != "John Smith" || customer["ip"] != "1.1.1.1" || shipping["city"] != "Dubai" {
		t.Fatalf("unexpected contact details: customer=%v shipping=%v", customer, shipping)
	}
}

func TestClient_CreatePaymentPage_Framed(t *testing.T) {
	g := newFakeGateway(t, http.StatusOK, `{"tran_ref":"TST1"}`)
	c := g.client(t, testConfig())

	p := testPaymentPageParams()
	p.Framed = true
	if _, err := c.CreatePaymentPage(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.last(t).Body["framed"] != true {
		t.Fatalf("expected framed=true")
	}
}

func TestClient_ValidatePayment(t *testing.T) {
	g := newFakeGateway(t, http.StatusOK, `{"tran_ref":"T123","payment_result":{"response_status":"A","response_code":"G1","response_message":"Authorised"}}`)
	c := g.client(t, testConfig())

	resp, err := c.ValidatePayment(context.Background(), "T123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.PaymentResult == nil || !resp.PaymentResult.Approved() {
		t.Fatalf("expected approved payment result: %+v", resp)
	}

	req := g.last(t)
	if req.Path != "/payment/query" {
		t.Fatalf("expected /payment/query, got %s", req.Path)
	}
	if len(req.Body) != 2 || req.Body["profile_id"] != "87654" || req.Body["tran_ref"] != "T123" {
		t.Fatalf("unexpected payload: %+v", req.Body)
	}
}

func TestClient_QueryTransaction(t *testing.T) {
	g := newFakeGateway(t, http.StatusOK, `{"tran_ref":"T999"}`)
	c := g.client(t, testConfig())

	_, err := c.QueryTransaction(context.Background(), QueryTransactionParams{
		Transaction: Transaction{TranType: "refund", TranClass: "ecom", TranRef: "T123"},
		Cart:        Cart{CartID: "cart-1", CartCurrency: "AED", CartAmount: 5, CartDescription: "partial refund"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := g.last(t)
	if req.Path != "/payment/request" {
		t.Fatalf("expected /payment/request, got %s", req.Path)
	}
	want := map[string]any{
		"profile_id":       "87654",
		"tran_ref":         "T123",
		"tran_type":        "refund",
		"tran_class":       "ecom",
		"cart_id":          "cart-1",
		"cart_currency":    "AED",
		"cart_amount":      float64(5),
		"cart_description": "partial refund",
	}
	if len(req.Body) != len(want) {
		t.Fatalf("unexpected payload keys: %+v", req.Body)
	}
	for k, v := range want {
		if req.Body[k] != v {
			t.Fatalf("field %s: expected %v, got %v", k, v, req.Body[k])
		}
	}
}

func TestClient_SetConfig_LastWriteWins(t *testing.T) {
	g := newFakeGateway(t, http.StatusOK, `{}`)
	c := g.client(t, testConfig())

	if err := c.SetConfig(Config{ProfileID: "111", ServerKey: "key-1", Region: RegionEGY}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.SetConfig(Config{ProfileID: "222", ServerKey: "key-2", Region: RegionSAU}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := c.ValidatePayment(context.Background(), "T1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := g.last(t)
	if req.Host != "secure.paytabs.sa" || req.Authorization != "key-2" || req.Body["profile_id"] != "222" {
		t.Fatalf("request did not use the last config: %+v", req)
	}

	// Empty credentials are not merged with the previous ones.
	if err := c.SetConfig(Config{Region: RegionKWT}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.ValidatePayment(context.Background(), "T2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req = g.last(t)
	if req.Host != "secure-kuwait.paytabs.com" || req.Authorization != "" || req.Body["profile_id"] != "" {
		t.Fatalf("expected blank credentials, got %+v", req)
	}
}

func TestClient_SetConfig_UnknownRegion(t *testing.T) {
	c, err := NewClient(testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = c.SetConfig(Config{ProfileID: "1", ServerKey: "k", Region: "MARS"})
	if !errors.Is(err, ErrUnknownRegion) {
		t.Fatalf("expected ErrUnknownRegion, got %v", err)
	}
	if got := c.Config(); got != testConfig() {
		t.Fatalf("config changed after rejected update: %+v", got)
	}

	if _, err := NewClient(Config{Region: "are"}); !errors.Is(err, ErrUnknownRegion) {
		t.Fatalf("expected ErrUnknownRegion from NewClient, got %v", err)
	}
}

func TestClient_ZeroValueHasNoEndpoint(t *testing.T) {
	var c Client
	_, err := c.ValidatePayment(context.Background(), "T1")

	ge, ok := AsGatewayError(err)
	if !ok {
		t.Fatalf("expected *GatewayError, got %v", err)
	}
	if ge.ResponseCode != 400 || ge.Result != "EINVALIDURL" {
		t.Fatalf("unexpected error: %+v", ge)
	}
	if !errors.Is(err, ErrUnknownRegion) {
		t.Fatalf("expected ErrUnknownRegion in chain, got %v", err)
	}
}

func TestClient_Async_DeliversExactlyOnce(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		g := newFakeGateway(t, http.StatusOK, `{"tran_ref":"T1"}`)
		c := g.client(t, testConfig())

		ch := c.ValidatePaymentAsync(context.Background(), "T1")
		res, ok := <-ch
		if !ok {
			t.Fatalf("channel closed without a result")
		}
		if res.Err != nil || res.Response == nil || res.Response.TranRef != "T1" {
			t.Fatalf("unexpected result: %+v", res)
		}
		if _, ok := <-ch; ok {
			t.Fatalf("expected channel to be closed after one result")
		}
		if g.count() != 1 {
			t.Fatalf("expected one gateway call, got %d", g.count())
		}
	})

	t.Run("failure", func(t *testing.T) {
		g := newFakeGateway(t, http.StatusBadRequest, `{"message":"bad request"}`)
		c := g.client(t, testConfig())

		ch := c.CreatePaymentPageAsync(context.Background(), testPaymentPageParams())
		res := <-ch
		if res.Response != nil {
			t.Fatalf("expected no response, got %+v", res.Response)
		}
		ge, ok := AsGatewayError(res.Err)
		if !ok || ge.ResponseCode != 400 || ge.Result != "bad request" {
			t.Fatalf("unexpected error: %v", res.Err)
		}
		if _, ok := <-ch; ok {
			t.Fatalf("expected channel to be closed after one result")
		}
	})

	t.Run("query", func(t *testing.T) {
		g := newFakeGateway(t, http.StatusOK, `{"tran_ref":"T2"}`)
		c := g.client(t, testConfig())

		res := <-c.QueryTransactionAsync(context.Background(), QueryTransactionParams{Transaction: Transaction{TranRef: "T1"}})
		if res.Err != nil || res.Response.TranRef != "T2" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
