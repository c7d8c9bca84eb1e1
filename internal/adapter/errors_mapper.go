package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// sentinelFromStatus pairs the API's error statuses with the sentinel each
// one unwraps to on the client side; the inverse of the handler layer's
// error-to-status mapping.
var sentinelFromStatus = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError translates a non-2xx API response into a sentinel error,
// keeping the response body as context. Successful responses map to nil.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	if sentinel, ok := sentinelFromStatus[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, body)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
