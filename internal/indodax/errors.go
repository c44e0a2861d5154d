package indodax

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidSignature indicates the server rejected the request signature or key.
	ErrInvalidSignature = errors.New("invalid signature")
	// ErrInsufficientBalance indicates the account lacks funds for the action.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrOrderNotFound indicates the order does not exist on the exchange.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidPair indicates the trading pair is unknown to the exchange.
	ErrInvalidPair = errors.New("invalid pair")
	// ErrOrderTooSmall indicates the order amount is below the exchange minimum.
	ErrOrderTooSmall = errors.New("order below minimum size")
)

// APIError is a server-side rejection: the envelope came back with
// success=0 and a human-readable message.
type APIError struct {
	Method string
	Code   string
	Msg    string
}

func (e APIError) Error() string {
	msg := "indodax api error"
	if e.Code != "" {
		msg += " " + e.Code
	}
	return msg + ": " + e.Msg
}

// TransportError is a network or HTTP-layer failure before any envelope
// could be interpreted.
type TransportError struct {
	Method string
	Err    error
}

func (e TransportError) Error() string {
	return "indodax transport error (" + e.Method + "): " + e.Err.Error()
}

func (e TransportError) Unwrap() error { return e.Err }

var apiErrorMessageKinds = map[string]error{
	"invalid signature":             ErrInvalidSignature,
	"invalid credentials. bad sign": ErrInvalidSignature,
	"invalid key":                   ErrInvalidSignature,
	"insufficient balance":          ErrInsufficientBalance,
	"invalid order":                 ErrOrderNotFound,
	"order not found":               ErrOrderNotFound,
	"invalid pair":                  ErrInvalidPair,
	"unknown pair":                  ErrInvalidPair,
	"minimum order is rp 10.000":    ErrOrderTooSmall,
}

func newAPIError(method, msg, code string) error {
	apiErr := APIError{Method: method, Msg: msg, Code: code}
	if kind, ok := apiErrorMessageKinds[normalizeAPIErrorMsg(msg)]; ok {
		return errors.Join(apiErr, kind)
	}
	return apiErr
}

func normalizeAPIErrorMsg(msg string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(msg)), ".")
}

// AsAPIError extracts the APIError from an operation error, if present.
func AsAPIError(err error) (APIError, bool) {
	if err == nil {
		return APIError{}, false
	}
	var apiErr APIError
	if !errors.As(err, &apiErr) {
		return APIError{}, false
	}
	return apiErr, true
}

// AsTransportError extracts the TransportError from an operation error, if present.
func AsTransportError(err error) (TransportError, bool) {
	if err == nil {
		return TransportError{}, false
	}
	var trErr TransportError
	if !errors.As(err, &trErr) {
		return TransportError{}, false
	}
	return trErr, true
}
