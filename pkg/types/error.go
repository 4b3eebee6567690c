package types

import (
	"errors"
	"fmt"
)

// The closed set of error kinds every adapter translates exchange failures
// onto. Callers match with errors.Is against these sentinels and never see
// a raw transport error for a recognized failure mode.
var (
	ErrAuthentication       = errors.New("authentication error")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInvalidOrder         = errors.New("invalid order")
	ErrInvalidAddress       = errors.New("invalid address")
	ErrAddressPending       = errors.New("deposit address pending")
	ErrOrderNotFound        = errors.New("order not found")
	ErrBadRequest           = errors.New("bad request")
	ErrRateLimitExceeded    = errors.New("rate limit exceeded")
	ErrExchangeNotAvailable = errors.New("exchange not available")
	ErrInvalidNonce         = errors.New("invalid nonce")
	ErrArgumentsRequired    = errors.New("arguments required")

	// ErrExchange is the catch-all kind for errors the per-adapter tables
	// do not recognize. The raw body stays attached for diagnosis.
	ErrExchange = errors.New("exchange error")
)

// RequestError is the typed error adapters return for exchange-reported
// failures. Kind is always one of the sentinels above and is exposed
// through Unwrap, so errors.Is(err, types.ErrOrderNotFound) works.
type RequestError struct {
	Kind       error
	Exchange   ExchangeName
	HTTPStatus int
	Code       string
	Message    string
	Body       []byte
}

func (e *RequestError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %v: code=%s %s", e.Exchange, e.Kind, e.Code, e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %v: %s", e.Exchange, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %v: %s", e.Exchange, e.Kind, string(e.Body))
}

func (e *RequestError) Unwrap() error {
	return e.Kind
}

func NewRequestError(kind error, exchange ExchangeName, message string) *RequestError {
	return &RequestError{Kind: kind, Exchange: exchange, Message: message}
}
