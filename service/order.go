package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/soulgarden/futures-bot/dictionary"
	"github.com/soulgarden/futures-bot/request"
	"github.com/soulgarden/futures-bot/response"
	"github.com/soulgarden/futures-bot/validator"
)

type State string

const (
	StateCreated       State = "created"
	StateValidated     State = "validated"
	StateSymbolChecked State = "symbol_checked"
	StatePlaced        State = "placed"
	StateRejected      State = "rejected"
)

// Exchange is the part of the api client the order flow needs.
type Exchange interface {
	GetSymbolInfo(ctx context.Context, symbol string) (*response.Symbol, error)
	PlaceOrder(ctx context.Context, o *request.Order) (*response.Order, error)
}

// Notifier is told about every placed order. It must not fail the order.
type Notifier interface {
	OrderPlaced(o *request.Order, r *response.Order)
}

type Result struct {
	State    State
	Order    *request.Order
	Symbol   *response.Symbol
	Response *response.Order
	Reason   string
}

type Order struct {
	exchange Exchange
	notifier Notifier
	logger   *zerolog.Logger
}

// NewOrder builds the order flow. notifier may be nil.
func NewOrder(exchange Exchange, notifier Notifier, logger *zerolog.Logger) *Order {
	return &Order{exchange: exchange, notifier: notifier, logger: logger}
}

// Place runs validation, the symbol lookup and the order call in that order, stopping at the
// first failure. No request is sent when validation fails. Errors from the exchange are
// returned as is.
func (s *Order) Place(ctx context.Context, in *request.OrderInput) (*Result, error) {
	res := &Result{State: StateCreated}

	s.logger.Info().
		Str("symbol", in.Symbol).
		Str("side", in.Side).
		Str("type", in.Type).
		Str("quantity", in.Quantity).
		Str("price", in.Price).
		Msg("attempting to place order")

	o, err := validator.Order(in)
	if err != nil {
		return s.reject(res, err, "invalid order parameters")
	}

	res.Order = o
	res.State = StateValidated

	s.logger.Info().Str("symbol", o.Symbol).Str("state", string(res.State)).Msg("order parameters validated")

	symbol, err := s.exchange.GetSymbolInfo(ctx, o.Symbol)
	if err != nil {
		return s.reject(res, err, "symbol lookup failed")
	}

	if symbol == nil {
		return s.reject(res, fmt.Errorf("%w: %s", dictionary.ErrSymbolNotFound, o.Symbol), "symbol not found on exchange")
	}

	res.Symbol = symbol
	res.State = StateSymbolChecked

	s.logger.Info().Str("symbol", o.Symbol).Str("state", string(res.State)).Msg("symbol validated")

	r, err := s.exchange.PlaceOrder(ctx, o)
	if err != nil {
		return s.reject(res, err, "failed to place order")
	}

	res.Response = r
	res.State = StatePlaced

	s.logger.Info().
		Int64("oid", r.OrderID).
		Str("status", r.Status).
		Str("client_oid", r.ClientOrderID).
		Str("executed_qty", r.ExecutedQty).
		Str("state", string(res.State)).
		Msg("order placed")

	if s.notifier != nil {
		s.notifier.OrderPlaced(o, r)
	}

	return res, nil
}

func (s *Order) reject(res *Result, err error, msg string) (*Result, error) {
	res.State = StateRejected
	res.Reason = reason(err)

	ev := s.logger.Err(err)
	if res.Order != nil {
		ev = ev.Str("symbol", res.Order.Symbol)
	}

	ev.Str("state", string(res.State)).Msg(msg)

	return res, err
}

// reason is the rejection text shown to the user: the failing field for validation errors,
// the bare sentinel for an unknown symbol, the error itself otherwise.
func reason(err error) string {
	switch {
	case errors.Is(err, dictionary.ErrSymbolNotFound):
		return dictionary.ErrSymbolNotFound.Error()
	case errors.Is(err, dictionary.ErrValidation):
		return strings.TrimPrefix(err.Error(), dictionary.ErrValidation.Error()+": ")
	}

	return err.Error()
}
