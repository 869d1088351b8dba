package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/soulgarden/futures-bot/client"
	"github.com/soulgarden/futures-bot/conf"
	"github.com/soulgarden/futures-bot/dictionary"
	"github.com/soulgarden/futures-bot/request"
	"github.com/soulgarden/futures-bot/service"
	"github.com/soulgarden/futures-bot/validator"
	"github.com/spf13/cobra"
	tb "gopkg.in/tucnak/telebot.v2"
)

var errMissingArgs = errors.New("missing required arguments for order placement: --symbol, --side, --type, --quantity")

type orderFlags struct {
	symbol      string
	side        string
	orderType   string
	quantity    string
	price       string
	accountInfo bool
	yes         bool
}

func (f *orderFlags) input() *request.OrderInput {
	return &request.OrderInput{
		Symbol:   f.symbol,
		Side:     f.side,
		Type:     f.orderType,
		Quantity: f.quantity,
		Price:    f.price,
	}
}

func run(cmd *cobra.Command, f *orderFlags) error {
	out := cmd.OutOrStdout()

	if !f.accountInfo && (f.symbol == "" || f.side == "" || f.orderType == "" || f.quantity == "") {
		fmt.Fprintln(out, "Error:", errMissingArgs)
		_ = cmd.Help()

		return errMissingArgs
	}

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

	logger.Info().Msg("trading bot cli started")

	var o *request.Order

	if !f.accountInfo {
		if o, err = validator.Order(f.input()); err != nil {
			logger.Err(err).Msg("invalid order parameters")
			fmt.Fprintln(out, "Error:", err)

			return err
		}
	}

	if !validator.Credentials(cfg.APIKey, cfg.APISecret) {
		logger.Err(dictionary.ErrInvalidCredentials).Msg("check credentials")
		fmt.Fprintln(out, "Error: api credentials not found or malformed, set BINANCE_API_KEY and BINANCE_API_SECRET")

		return dictionary.ErrInvalidCredentials
	}

	manager := service.NewManager(logger)
	ctx, _ := manager.ListenSignal()

	cli := client.New(cfg, logger)
	printer := service.NewConsole(out)

	if f.accountInfo {
		err = showAccount(ctx, cli, printer, out)
	} else {
		err = placeOrder(ctx, cmd.InOrStdin(), out, f, o, service.NewOrder(cli, newNotifier(cfg, logger), logger), printer)
	}

	if errors.Is(err, dictionary.ErrOrderCancelled) {
		logger.Info().Msg("order cancelled by user")
		fmt.Fprintln(out, "Order cancelled by user.")

		return nil
	}

	if err != nil && (manager.Interrupted() || errors.Is(err, context.Canceled)) {
		logger.Warn().Err(err).Msg("operation cancelled by user")
		fmt.Fprintln(out, "\nOperation cancelled by user.")

		return nil
	}

	if err != nil {
		logger.Err(err).Msg("application error")
		fmt.Fprintln(out, "\nError:", err)

		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Hint() != "" {
			fmt.Fprintln(out, "Hint:", apiErr.Hint())
		}
	}

	return err
}

func showAccount(ctx context.Context, cli *client.Client, printer service.Printer, out io.Writer) error {
	fmt.Fprintln(out, "Fetching account information...")

	if err := cli.Ping(ctx); err != nil {
		return err
	}

	acc, err := cli.GetAccountInfo(ctx)
	if err != nil {
		return err
	}

	printer.PrintAccountInfo(acc)

	return nil
}

func placeOrder(
	ctx context.Context,
	in io.Reader,
	out io.Writer,
	f *orderFlags,
	o *request.Order,
	orderSvc *service.Order,
	printer service.Printer,
) error {
	printer.PrintOrderSummary(o)

	if !f.yes {
		ok, err := confirm(ctx, in, out)
		if err != nil {
			return err
		}

		if !ok {
			return dictionary.ErrOrderCancelled
		}
	}

	fmt.Fprintln(out, "\nPlacing order...")

	res, err := orderSvc.Place(ctx, f.input())
	if err != nil {
		return err
	}

	printer.PrintOrderResponse(res.Response)

	return nil
}

// confirm asks for y/N on out and reads the answer from in. Anything but y is a no.
func confirm(ctx context.Context, in io.Reader, out io.Writer) (bool, error) {
	fmt.Fprint(out, "\nDo you want to place this order? (y/N): ")

	answerCh := make(chan string, 1)

	go func() {
		s, _ := bufio.NewReader(in).ReadString('\n')
		answerCh <- s
	}()

	select {
	case s := <-answerCh:
		return strings.EqualFold(strings.TrimSpace(s), "y"), nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func newNotifier(cfg *conf.Bot, logger *zerolog.Logger) service.Notifier {
	if cfg.Telegram.Token == "" {
		return nil
	}

	bot, err := tb.NewBot(tb.Settings{Token: cfg.Telegram.Token})
	if err != nil {
		logger.Warn().Err(err).Msg("new tg bot, notifications disabled")

		return nil
	}

	return service.NewTelegram(cfg, bot, logger)
}
