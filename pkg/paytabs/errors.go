package paytabs

import (
	"errors"
	"fmt"
	"net/http"
)

// ResponseCodeFailure is the response_code reported for every failure,
// whatever status the gateway actually answered with.
const ResponseCodeFailure = http.StatusBadRequest

const (
	resultInvalidURL      = "EINVALIDURL"
	resultNotFound        = "ENOTFOUND"
	resultTimedOut        = "ETIMEDOUT"
	resultCanceled        = "ECANCELED"
	resultInvalidResponse = "invalid gateway response"
)

// GatewayError is the normalized failure shape: {response_code: 400, result: msg}.
//
// Result is the gateway's error message when an HTTP response was received,
// otherwise a transport error code such as ECONNREFUSED. HTTPStatus keeps the
// real status (0 when no response arrived).
type GatewayError struct {
	ResponseCode int    `json:"response_code"`
	Result       string `json:"result"`
	HTTPStatus   int    `json:"-"`

	cause error
}

func newGatewayError(result string, httpStatus int, cause error) *GatewayError {
	return &GatewayError{
		ResponseCode: ResponseCodeFailure,
		Result:       result,
		HTTPStatus:   httpStatus,
		cause:        cause,
	}
}

func (e *GatewayError) Error() string {
	if e.HTTPStatus != 0 {
		return fmt.Sprintf("paytabs: response_code=%d http_status=%d result=%s", e.ResponseCode, e.HTTPStatus, e.Result)
	}
	return fmt.Sprintf("paytabs: response_code=%d result=%s", e.ResponseCode, e.Result)
}

func (e *GatewayError) Unwrap() error { return e.cause }

// Transport reports whether the failure happened before any HTTP response.
func (e *GatewayError) Transport() bool { return e.HTTPStatus == 0 }

// AsGatewayError extracts a *GatewayError from err's chain.
func AsGatewayError(err error) (*GatewayError, bool) {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}
