package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/soulgarden/futures-bot/dictionary"
	"github.com/soulgarden/futures-bot/request"
	"github.com/soulgarden/futures-bot/response"
)

type fakeExchange struct {
	symbols     []string
	symbolErr   error
	placeErr    error
	resp        *response.Order
	symbolCalls int
	placeCalls  int
	placed      *request.Order
}

func (e *fakeExchange) GetSymbolInfo(_ context.Context, symbol string) (*response.Symbol, error) {
	e.symbolCalls++

	if e.symbolErr != nil {
		return nil, e.symbolErr
	}

	for _, s := range e.symbols {
		if strings.EqualFold(s, symbol) {
			return &response.Symbol{Symbol: s, Status: "TRADING"}, nil
		}
	}

	return nil, nil
}

func (e *fakeExchange) PlaceOrder(_ context.Context, o *request.Order) (*response.Order, error) {
	e.placeCalls++
	e.placed = o

	if e.placeErr != nil {
		return nil, e.placeErr
	}

	return e.resp, nil
}

func (e *fakeExchange) calls() int {
	return e.symbolCalls + e.placeCalls
}

type fakeNotifier struct {
	placed []*response.Order
}

func (n *fakeNotifier) OrderPlaced(_ *request.Order, r *response.Order) {
	n.placed = append(n.placed, r)
}

func newFakeExchange() *fakeExchange {
	return &fakeExchange{
		symbols: []string{"BTCUSDT", "ETHUSDT"},
		resp: &response.Order{
			OrderID:       123456789,
			Status:        dictionary.OrderStatusFilled,
			ExecutedQty:   "0.001",
			AvgPrice:      "45123.50",
			ClientOrderID: "cli-1",
		},
	}
}

func TestOrder_Place_Market(t *testing.T) {
	t.Parallel()

	ex := newFakeExchange()
	n := &fakeNotifier{}
	logger := zerolog.Nop()

	res, err := NewOrder(ex, n, &logger).Place(context.Background(), &request.OrderInput{
		Symbol: "BTCUSDT", Side: "BUY", Type: "MARKET", Quantity: "0.001",
	})
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	if res.State != StatePlaced {
		t.Errorf("Place() state = %s, want %s", res.State, StatePlaced)
	}

	if res.Response != ex.resp {
		t.Errorf("Place() response = %+v, want exchange response untouched", res.Response)
	}

	if ex.symbolCalls != 1 || ex.placeCalls != 1 {
		t.Errorf("calls: symbol %d, place %d", ex.symbolCalls, ex.placeCalls)
	}

	if ex.placed.Quantity.String() != "0.001" || ex.placed.Price != nil {
		t.Errorf("placed order = %+v", ex.placed)
	}

	if len(n.placed) != 1 || n.placed[0] != res.Response {
		t.Errorf("notifications = %v", n.placed)
	}
}

func TestOrder_Place_Rejected(t *testing.T) {
	t.Parallel()

	apiErr := errors.New("status 400")

	tests := []struct {
		name       string
		in         *request.OrderInput
		placeErr   error
		symbolErr  error
		wantErr    error
		wantReason string
		wantState  State
		wantCalls  int
	}{
		{
			name:       "limit without price",
			in:         &request.OrderInput{Symbol: "ETHUSDT", Side: "SELL", Type: "LIMIT", Quantity: "0.01", Price: ""},
			wantErr:    dictionary.ErrMissingPrice,
			wantReason: "missing price for LIMIT order",
			wantCalls:  0,
		},
		{
			name:      "invalid quantity",
			in:        &request.OrderInput{Symbol: "BTCUSDT", Side: "BUY", Type: "MARKET", Quantity: "-1"},
			wantErr:    dictionary.ErrInvalidQuantity,
			wantReason: `invalid quantity, must be a positive number: "-1"`,
			wantCalls:  0,
		},
		{
			name:      "invalid symbol",
			in:        &request.OrderInput{Symbol: "BTC", Side: "BUY", Type: "MARKET", Quantity: "1"},
			wantErr:    dictionary.ErrInvalidSymbol,
			wantReason: `invalid symbol: "BTC"`,
			wantCalls:  0,
		},
		{
			name:       "unknown symbol",
			in:         &request.OrderInput{Symbol: "FAKEUSDT", Side: "BUY", Type: "MARKET", Quantity: "1"},
			wantErr:    dictionary.ErrSymbolNotFound,
			wantReason: "symbol not found",
			wantCalls:  1,
		},
		{
			name:      "lookup failure",
			in:        &request.OrderInput{Symbol: "BTCUSDT", Side: "BUY", Type: "MARKET", Quantity: "1"},
			symbolErr:  dictionary.ErrTransport,
			wantErr:    dictionary.ErrTransport,
			wantReason: "transport error",
			wantCalls:  1,
		},
		{
			name:      "exchange error",
			in:        &request.OrderInput{Symbol: "BTCUSDT", Side: "BUY", Type: "MARKET", Quantity: "1"},
			placeErr:   apiErr,
			wantErr:    apiErr,
			wantReason: "status 400",
			wantCalls:  2,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ex := newFakeExchange()
			ex.placeErr = tt.placeErr
			ex.symbolErr = tt.symbolErr

			n := &fakeNotifier{}
			logger := zerolog.Nop()

			res, err := NewOrder(ex, n, &logger).Place(context.Background(), tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Place() error = %v, want %v", err, tt.wantErr)
			}

			if res.State != StateRejected {
				t.Errorf("Place() state = %s, want %s", res.State, StateRejected)
			}

			if res.Reason != tt.wantReason {
				t.Errorf("Place() reason = %q, want %q", res.Reason, tt.wantReason)
			}

			if ex.calls() != tt.wantCalls {
				t.Errorf("exchange calls = %d, want %d", ex.calls(), tt.wantCalls)
			}

			if len(n.placed) != 0 {
				t.Errorf("rejected order notified: %v", n.placed)
			}
		})
	}
}

func TestOrder_Place_NilNotifier(t *testing.T) {
	t.Parallel()

	logger := zerolog.Nop()

	res, err := NewOrder(newFakeExchange(), nil, &logger).Place(context.Background(), &request.OrderInput{
		Symbol: "ethusdt", Side: "sell", Type: "limit", Quantity: "0.01", Price: "2500.50",
	})
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	if res.Order.Symbol != "ETHUSDT" || res.Order.Price.String() != "2500.5" {
		t.Errorf("Place() order = %+v", res.Order)
	}
}
