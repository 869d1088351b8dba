package response

import (
	"testing"

	"github.com/mailru/easyjson"
)

func TestOrder_Unmarshal(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"orderId": 4070539473,
		"symbol": "BTCUSDT",
		"status": "NEW",
		"clientOrderId": "0b3c2a0e-2f1c-4f0e-9b8d-2f7c1f6a9e11",
		"price": "0.00",
		"avgPrice": "0.00",
		"origQty": "0.001",
		"executedQty": "0.000",
		"cumQty": "0.000",
		"cumQuote": "0.00000",
		"timeInForce": "GTC",
		"type": "MARKET",
		"reduceOnly": false,
		"closePosition": false,
		"side": "BUY",
		"positionSide": "BOTH",
		"stopPrice": "0.00",
		"workingType": "CONTRACT_PRICE",
		"priceProtect": false,
		"origType": "MARKET",
		"updateTime": 1700000000123
	}`)

	o := &Order{}
	if err := easyjson.Unmarshal(body, o); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if o.OrderID != 4070539473 || o.Status != "NEW" || o.ExecutedQty != "0.000" || o.UpdateTime != 1700000000123 {
		t.Errorf("Unmarshal() = %+v", o)
	}
}

func TestExchangeInfo_Unmarshal(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"timezone": "UTC",
		"serverTime": 1700000000000,
		"rateLimits": [{"rateLimitType": "REQUEST_WEIGHT", "interval": "MINUTE", "limit": 2400}],
		"symbols": [
			{
				"symbol": "BTCUSDT",
				"status": "TRADING",
				"contractType": "PERPETUAL",
				"baseAsset": "BTC",
				"quoteAsset": "USDT",
				"pricePrecision": 2,
				"quantityPrecision": 3,
				"filters": [{"filterType": "PRICE_FILTER", "tickSize": "0.10"}],
				"orderTypes": ["LIMIT", "MARKET"]
			},
			{"symbol": "ETHUSDT", "status": "TRADING", "pricePrecision": 2}
		]
	}`)

	info := &ExchangeInfo{}
	if err := easyjson.Unmarshal(body, info); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if len(info.Symbols) != 2 {
		t.Fatalf("got %d symbols, want 2", len(info.Symbols))
	}

	if s := info.Symbols[0]; s.Symbol != "BTCUSDT" || s.QuantityPrecision != 3 || s.BaseAsset != "BTC" {
		t.Errorf("first symbol = %+v", s)
	}
}

func TestAccount_Unmarshal(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"feeTier": 0,
		"canTrade": true,
		"totalWalletBalance": "15000.00000000",
		"totalUnrealizedProfit": "-1.25000000",
		"totalMarginBalance": "14998.75000000",
		"availableBalance": "14900.00000000",
		"assets": [
			{"asset": "USDT", "walletBalance": "15000.00000000", "unrealizedProfit": "-1.25000000", "availableBalance": "14900.00000000"},
			{"asset": "BNB", "walletBalance": "0.00000000"}
		],
		"positions": []
	}`)

	a := &Account{}
	if err := easyjson.Unmarshal(body, a); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if a.AvailableBalance != "14900.00000000" || a.TotalUnrealizedProfit != "-1.25000000" || len(a.Assets) != 2 {
		t.Errorf("Unmarshal() = %+v", a)
	}
}

func TestError_Unmarshal(t *testing.T) {
	t.Parallel()

	e := &Error{}
	if err := easyjson.Unmarshal([]byte(`{"code":-1121,"msg":"Invalid symbol."}`), e); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if e.Code != -1121 || e.Msg != "Invalid symbol." {
		t.Errorf("Unmarshal() = %+v", e)
	}

	if err := easyjson.Unmarshal([]byte(`<html>bad gateway</html>`), &Error{}); err == nil {
		t.Error("Unmarshal() of html must fail")
	}
}
