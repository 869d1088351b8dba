package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/soulgarden/futures-bot/conf"
	"github.com/soulgarden/futures-bot/dictionary"
	"github.com/soulgarden/futures-bot/request"
	"github.com/soulgarden/futures-bot/response"
	"github.com/soulgarden/futures-bot/service"
	"github.com/soulgarden/futures-bot/validator"
	"github.com/spf13/cobra"
)

const demoOrderID = 123456789

// demoExchange answers like the testnet would, without any network access.
type demoExchange struct {
	symbols []string
	nextID  int64
	now     func() time.Time
}

func (e *demoExchange) GetSymbolInfo(_ context.Context, symbol string) (*response.Symbol, error) {
	for _, s := range e.symbols {
		if strings.EqualFold(s, symbol) {
			return &response.Symbol{
				Symbol:     s,
				Status:     "TRADING",
				QuoteAsset: dictionary.QuoteAsset,
				BaseAsset:  strings.TrimSuffix(s, dictionary.QuoteAsset),
			}, nil
		}
	}

	return nil, nil
}

func (e *demoExchange) PlaceOrder(_ context.Context, o *request.Order) (*response.Order, error) {
	e.nextID++

	r := &response.Order{
		OrderID:       e.nextID,
		Symbol:        o.Symbol,
		Side:          o.Side,
		Type:          o.Type,
		OrigQty:       o.Quantity.String(),
		ClientOrderID: fmt.Sprintf("demo_%s_order_%03d", strings.ToLower(o.Type), e.nextID-demoOrderID+1),
		UpdateTime:    e.now().UnixMilli(),
	}

	if o.IsLimit() {
		r.Status = dictionary.OrderStatusNew
		r.Price = o.Price.String()
		r.TimeInForce = dictionary.TimeInForceGTC
		r.ExecutedQty = "0.000"
		r.AvgPrice = "0.00"
	} else {
		r.Status = dictionary.OrderStatusFilled
		r.ExecutedQty = o.Quantity.String()
		r.AvgPrice = "45123.50"
	}

	return r, nil
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through validation and order formatting without touching the exchange",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := conf.New()
			if err != nil {
				fmt.Fprintln(out, "Error: load config:", err)

				return err
			}

			logger, closer, err := service.NewLogger(cfg, cmd.ErrOrStderr(), time.Now())
			if err != nil {
				fmt.Fprintln(out, "Error: setup logging:", err)

				return err
			}

			defer closer.Close()

			logger.Info().Msg("demo started")

			ex := &demoExchange{symbols: []string{"BTCUSDT", "ETHUSDT"}, nextID: demoOrderID - 1, now: time.Now}

			runDemo(cmd.Context(), out, service.NewOrder(ex, nil, logger), service.NewConsole(out))

			return nil
		},
	}
}

func runDemo(ctx context.Context, out io.Writer, orderSvc *service.Order, printer service.Printer) {
	fmt.Fprintln(out, "Trading Bot Demo - Binance Futures Testnet")
	fmt.Fprintln(out, strings.Repeat("=", 60))

	examples := []struct {
		title string
		in    *request.OrderInput
	}{
		{"1. Market Order Example", &request.OrderInput{Symbol: "BTCUSDT", Side: "BUY", Type: "MARKET", Quantity: "0.001"}},
		{"2. Limit Order Example", &request.OrderInput{Symbol: "ETHUSDT", Side: "SELL", Type: "LIMIT", Quantity: "0.01", Price: "2500.50"}},
		{"3. Limit Order Without Price", &request.OrderInput{Symbol: "ETHUSDT", Side: "SELL", Type: "LIMIT", Quantity: "0.01"}},
		{"4. Unknown Symbol", &request.OrderInput{Symbol: "FAKEUSDT", Side: "BUY", Type: "MARKET", Quantity: "1"}},
	}

	for _, ex := range examples {
		fmt.Fprintf(out, "\n%s:\n", ex.title)

		res, err := orderSvc.Place(ctx, ex.in)
		if err != nil {
			fmt.Fprintf(out, "Rejected: %s\n", res.Reason)

			continue
		}

		printer.PrintOrderSummary(res.Order)
		printer.PrintOrderResponse(res.Response)
	}

	fmt.Fprintln(out, "\nInput Validation")
	fmt.Fprintln(out, strings.Repeat("-", 40))

	fmt.Fprintln(out, "\nValid inputs:")
	printValidation(out, "BTCUSDT", "BUY", "MARKET", "0.001", "45000.50")

	fmt.Fprintln(out, "\nInvalid inputs:")
	printValidation(out, "INVALID", "INVALID", "INVALID", "-1", "0")

	fmt.Fprintln(out, "\nDemo completed, see the logs directory for log files.")
}

func printValidation(out io.Writer, symbol, side, orderType, quantity, price string) {
	fmt.Fprintf(out, "Symbol %q: %t\n", symbol, validator.Symbol(symbol))
	fmt.Fprintf(out, "Side %q: %t\n", side, validator.Side(side))
	fmt.Fprintf(out, "Order Type %q: %t\n", orderType, validator.OrderType(orderType))
	fmt.Fprintf(out, "Quantity %q: %s\n", quantity, decimalOrErr(validator.Quantity(quantity)))
	fmt.Fprintf(out, "Price %q: %s\n", price, decimalOrErr(validator.Price(price)))
}

func decimalOrErr(v fmt.Stringer, err error) string {
	if err != nil {
		return "invalid"
	}

	return v.String()
}
