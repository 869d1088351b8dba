package dictionary

const (
	SideBuy  = "BUY"
	SideSell = "SELL"
)

const (
	OrderTypeMarket = "MARKET"
	OrderTypeLimit  = "LIMIT"
)

// TimeInForceGTC keeps a limit order open until it is cancelled.
const TimeInForceGTC = "GTC"

const (
	OrderStatusNew             = "NEW"
	OrderStatusPartiallyFilled = "PARTIALLY_FILLED"
	OrderStatusFilled          = "FILLED"
	OrderStatusCanceled        = "CANCELED"
	OrderStatusRejected        = "REJECTED"
	OrderStatusExpired         = "EXPIRED"
)

const (
	PingEndpoint         = "/fapi/v1/ping"
	AccountEndpoint      = "/fapi/v2/account"
	ExchangeInfoEndpoint = "/fapi/v1/exchangeInfo"
	OrderEndpoint        = "/fapi/v1/order"
)

const APIKeyHeader = "X-MBX-APIKEY"

const (
	SymbolParam           = "symbol"
	SideParam             = "side"
	TypeParam             = "type"
	QuantityParam         = "quantity"
	PriceParam            = "price"
	TimeInForceParam      = "timeInForce"
	NewClientOrderIDParam = "newClientOrderId"
	RecvWindowParam       = "recvWindow"
	TimestampParam        = "timestamp"
	SignatureParam        = "signature"
)

const QuoteAsset = "USDT"

const MinCredentialLen = 10

const DefaultIntBase = 10

// MaxDecimalExponent bounds the exponent of quantities and prices, so "1e1000000" is rejected
// instead of being expanded into a megabyte of digits.
const MaxDecimalExponent = 18
