package service

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/soulgarden/futures-bot/conf"
	"github.com/soulgarden/futures-bot/request"
	"github.com/soulgarden/futures-bot/response"
	tb "gopkg.in/tucnak/telebot.v2"
)

type Sender interface {
	Send(to tb.Recipient, what interface{}, options ...interface{}) (*tb.Message, error)
}

// Telegram posts placed orders to a single chat. Delivery failures are only logged.
type Telegram struct {
	cfg    *conf.Bot
	logger *zerolog.Logger
	bot    Sender
}

func NewTelegram(cfg *conf.Bot, bot Sender, logger *zerolog.Logger) *Telegram {
	return &Telegram{
		cfg:    cfg,
		logger: logger,
		bot:    bot,
	}
}

func (s *Telegram) OrderPlaced(o *request.Order, r *response.Order) {
	if s.cfg.Telegram.ChatID == 0 {
		s.logger.Warn().Int64("oid", r.OrderID).Msg("telegram chat id is not set, notification skipped")

		return
	}

	if _, err := s.bot.Send(&tb.Chat{ID: s.cfg.Telegram.ChatID}, orderMessage(o, r)); err != nil {
		s.logger.Err(err).
			Int64("chat_id", s.cfg.Telegram.ChatID).
			Int64("oid", r.OrderID).
			Str("symbol", o.Symbol).
			Msg("notify order placed")
	}
}

func orderMessage(o *request.Order, r *response.Order) string {
	b := &strings.Builder{}

	fmt.Fprintf(b, "%s %s %s %s\n", o.Type, o.Side, o.Quantity.String(), o.Symbol)

	if o.Price != nil {
		fmt.Fprintf(b, "price %s\n", o.Price.String())
	}

	fmt.Fprintf(b, "order %d %s, executed %s", r.OrderID, orNA(r.Status), orNA(r.ExecutedQty))

	return b.String()
}
