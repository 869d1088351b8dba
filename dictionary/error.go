package dictionary

import "errors"

var ErrValidation = errors.New("validation failed")

var ErrInvalidSymbol = errors.New("invalid symbol")

var ErrInvalidSide = errors.New("invalid side, must be BUY or SELL")

var ErrInvalidOrderType = errors.New("invalid order type, must be MARKET or LIMIT")

var ErrInvalidQuantity = errors.New("invalid quantity, must be a positive number")

var ErrInvalidPrice = errors.New("invalid price, must be a positive number")

var ErrMissingPrice = errors.New("missing price for LIMIT order")

var ErrInvalidCredentials = errors.New("invalid api credentials")

var ErrSymbolNotFound = errors.New("symbol not found")

var ErrTransport = errors.New("transport error")

var ErrResponse = errors.New("got error response")

var ErrUnsupportedMethod = errors.New("unsupported http method")

var ErrOrderCancelled = errors.New("order cancelled by user")
