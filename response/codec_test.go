package response

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/mailru/easyjson"
)

// local copies lose the easyjson methods, so encoding/json falls back to reflection over the tags
type (
	plainOrder        Order
	plainError        Error
	plainAccount      Account
	plainExchangeInfo ExchangeInfo
)

func TestCodecs_MatchEncodingJSON(t *testing.T) {
	t.Parallel()

	order := Order{
		OrderID:       4070539473,
		Symbol:        "ETHUSDT",
		Status:        "NEW",
		ClientOrderID: "0b3c2a0e-2f1c-4f0e-9b8d-2f7c1f6a9e11",
		Price:         "2500.50",
		AvgPrice:      "0.00",
		OrigQty:       "0.010",
		ExecutedQty:   "0.000",
		CumQuote:      "0.00000",
		TimeInForce:   "GTC",
		Type:          "LIMIT",
		Side:          "SELL",
		UpdateTime:    1700000000123,
	}

	apiErr := Error{Code: InvalidSignatureCode, Msg: "Signature for this request is not valid."}

	account := Account{
		TotalWalletBalance:    "15000.00000000",
		AvailableBalance:      "14500.00000000",
		TotalUnrealizedProfit: "-12.50000000",
		TotalMarginBalance:    "14987.50000000",
		Assets: []*Asset{
			{Asset: "USDT", WalletBalance: "15000.00000000", UnrealizedProfit: "-12.5", MarginBalance: "14987.5", AvailableBalance: "14500"},
			{Asset: "BNB", WalletBalance: "0.00000000"},
		},
	}

	info := ExchangeInfo{
		Timezone:   "UTC",
		ServerTime: 1700000000000,
		Symbols: []*Symbol{
			{Symbol: "BTCUSDT", Status: "TRADING", ContractType: "PERPETUAL", BaseAsset: "BTC", QuoteAsset: "USDT", PricePrecision: 2, QuantityPrecision: 3},
		},
	}

	tests := []struct {
		name    string
		value   easyjson.Marshaler
		plain   interface{}
		decoded easyjson.Unmarshaler
	}{
		{name: "order", value: order, plain: plainOrder(order), decoded: &Order{}},
		{name: "error", value: apiErr, plain: plainError(apiErr), decoded: &Error{}},
		{name: "account", value: account, plain: plainAccount(account), decoded: &Account{}},
		{name: "exchange info", value: info, plain: plainExchangeInfo(info), decoded: &ExchangeInfo{}},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := easyjson.Marshal(tt.value)
			if err != nil {
				t.Fatalf("easyjson.Marshal() error = %v", err)
			}

			want, err := json.Marshal(tt.plain)
			if err != nil {
				t.Fatalf("json.Marshal() error = %v", err)
			}

			if string(got) != string(want) {
				t.Errorf("easyjson.Marshal() = %s\nwant %s", got, want)
			}

			if err := easyjson.Unmarshal(want, tt.decoded); err != nil {
				t.Fatalf("easyjson.Unmarshal() error = %v", err)
			}

			if decoded := reflect.ValueOf(tt.decoded).Elem().Interface(); !reflect.DeepEqual(decoded, tt.value) {
				t.Errorf("easyjson.Unmarshal() = %+v, want %+v", decoded, tt.value)
			}
		})
	}
}
