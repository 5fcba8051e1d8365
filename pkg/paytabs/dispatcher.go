package paytabs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type dispatcher struct {
	httpClient *http.Client
	logger     *zap.Logger
}

var defaultDispatcher = &dispatcher{httpClient: http.DefaultClient, logger: zap.NewNop()}

// maxResponseBytes caps how much of a gateway body is read.
var maxResponseBytes int64 = 4 << 20

var errInvalidResponse = errors.New("gateway body is not json")

// post sends one JSON POST and returns either the parsed response or a
// *GatewayError. It never retries.
func (d *dispatcher) post(ctx context.Context, endpoint, serverKey string, payload any) (*GatewayResponse, error) {
	log := d.logger.With(zap.String("request_id", uuid.NewString()), zap.String("url", endpoint))

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error("[paytabs][dispatcher] payload marshal failed", zap.Error(err))
		return nil, newGatewayError(err.Error(), 0, err)
	}

	if u, err := url.Parse(endpoint); err != nil || u.Scheme == "" || u.Host == "" {
		log.Warn("[paytabs][dispatcher] invalid endpoint")
		return nil, newGatewayError(resultInvalidURL, 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		log.Warn("[paytabs][dispatcher] request build failed", zap.Error(err))
		return nil, newGatewayError(resultInvalidURL, 0, err)
	}
	req.Header.Set("authorization", serverKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	log.Debug("[paytabs][dispatcher] post start", zap.Int("payload_len", len(body)))
	resp, err := d.httpClient.Do(req)
	if err != nil {
		code := transportErrorCode(err)
		log.Warn("[paytabs][dispatcher] transport failure", zap.String("result", code), zap.Error(err))
		return nil, newGatewayError(code, 0, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		code := transportErrorCode(err)
		log.Warn("[paytabs][dispatcher] body read failed", zap.Int("status", resp.StatusCode), zap.Error(err))
		return nil, newGatewayError(code, resp.StatusCode, err)
	}
	if int64(len(raw)) > maxResponseBytes {
		log.Warn("[paytabs][dispatcher] body too large", zap.Int("status", resp.StatusCode), zap.Int64("limit", maxResponseBytes))
		return nil, newGatewayError(resultInvalidResponse, resp.StatusCode, nil)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := gatewayMessage(raw, resp.StatusCode)
		log.Warn("[paytabs][dispatcher] gateway rejected request", zap.Int("status", resp.StatusCode), zap.String("result", msg))
		return nil, newGatewayError(msg, resp.StatusCode, nil)
	}

	out, err := decodeGatewayResponse(raw)
	if err != nil {
		log.Warn("[paytabs][dispatcher] response decode failed", zap.Int("status", resp.StatusCode), zap.Error(err))
		return nil, newGatewayError(resultInvalidResponse, resp.StatusCode, err)
	}
	log.Debug("[paytabs][dispatcher] post success", zap.Int("status", resp.StatusCode), zap.String("tran_ref", out.TranRef))
	return out, nil
}

// decodeGatewayResponse accepts any JSON body. Fields is filled when the body
// is an object; the typed accessors are filled field by field and stay zero
// when PayTabs sends an unexpected type.
func decodeGatewayResponse(raw []byte) (*GatewayResponse, error) {
	if !json.Valid(raw) {
		return nil, errInvalidResponse
	}
	out := &GatewayResponse{Raw: raw}

	var known map[string]json.RawMessage
	if err := json.Unmarshal(raw, &known); err != nil {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out.Fields); err != nil {
		out.Fields = nil
	}
	decodeField(known["tran_ref"], &out.TranRef)
	decodeField(known["cart_id"], &out.CartID)
	decodeField(known["redirect_url"], &out.RedirectURL)

	var result map[string]json.RawMessage
	if err := json.Unmarshal(known["payment_result"], &result); err == nil && result != nil {
		out.PaymentResult = &PaymentResult{}
		decodeField(result["response_status"], &out.PaymentResult.ResponseStatus)
		decodeField(result["response_code"], &out.PaymentResult.ResponseCode)
		decodeField(result["response_message"], &out.PaymentResult.ResponseMessage)
		decodeField(result["transaction_time"], &out.PaymentResult.TransactionTime)
	}
	return out, nil
}

func decodeField(raw json.RawMessage, dst *string) {
	if len(raw) == 0 {
		return
	}
	var v string
	if err := json.Unmarshal(raw, &v); err == nil {
		*dst = v
	}
}

// gatewayMessage pulls "message" out of an error body, falling back to the
// status text when the body carries none.
func gatewayMessage(raw []byte, status int) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return http.StatusText(status)
}

func transportErrorCode(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return resultTimedOut
	case errors.Is(err, context.Canceled):
		return resultCanceled
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsTimeout {
			return resultTimedOut
		}
		return resultNotFound
	}

	if name, ok := errnoName(err); ok {
		return name
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return resultTimedOut
	}
	return err.Error()
}
