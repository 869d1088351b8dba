package client

import (
	"fmt"

	"github.com/soulgarden/futures-bot/dictionary"
	"github.com/soulgarden/futures-bot/response"
)

// TransportError means the request never produced an http response.
type TransportError struct {
	Method   string
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s %s: %s", dictionary.ErrTransport, e.Method, e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() []error {
	return []error{dictionary.ErrTransport, e.Err}
}

// APIError is a non-2xx response. Code and Msg come from the exchange error body when it
// decodes, Body always holds the raw text.
type APIError struct {
	StatusCode int
	Code       int
	Msg        string
	Body       string
}

func (e *APIError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: status %d, code %d: %s", dictionary.ErrResponse, e.StatusCode, e.Code, e.Msg)
	}

	return fmt.Sprintf("%s: status %d: %s", dictionary.ErrResponse, e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error {
	return dictionary.ErrResponse
}

// Hint suggests a fix for the exchange codes caused by local setup rather than by the order.
func (e *APIError) Hint() string {
	switch e.Code {
	case response.InvalidSignatureCode:
		return "signature rejected, check BINANCE_API_SECRET"
	case response.TimestampOutsideRecvWindowCode:
		return "local clock is out of sync with the exchange, sync system time or raise recv_window"
	case response.InvalidAPIKeyCode:
		return "api key rejected, check BINANCE_API_KEY and that it was issued for the futures testnet"
	}

	return ""
}
