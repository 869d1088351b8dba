package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/soulgarden/futures-bot/dictionary"
	"github.com/soulgarden/futures-bot/request"
)

var symbolRe = regexp.MustCompile(`^[A-Z]{2,10}USDT$`) //nolint: gochecknoglobals

func Symbol(s string) bool {
	if s == "" {
		return false
	}

	return symbolRe.MatchString(strings.ToUpper(s))
}

func Side(s string) bool {
	switch strings.ToUpper(s) {
	case dictionary.SideBuy, dictionary.SideSell:
		return true
	}

	return false
}

func OrderType(s string) bool {
	switch strings.ToUpper(s) {
	case dictionary.OrderTypeMarket, dictionary.OrderTypeLimit:
		return true
	}

	return false
}

func Quantity(s string) (decimal.Decimal, error) {
	return positive(s, dictionary.ErrInvalidQuantity)
}

func Price(s string) (decimal.Decimal, error) {
	return positive(s, dictionary.ErrInvalidPrice)
}

func Credentials(key, secret string) bool {
	return len(key) >= dictionary.MinCredentialLen && len(secret) >= dictionary.MinCredentialLen
}

// Order validates every field in order and stops at the first failure.
// Any returned error wraps dictionary.ErrValidation.
func Order(in *request.OrderInput) (*request.Order, error) {
	if !Symbol(in.Symbol) {
		return nil, invalid(dictionary.ErrInvalidSymbol, in.Symbol)
	}

	if !Side(in.Side) {
		return nil, invalid(dictionary.ErrInvalidSide, in.Side)
	}

	if !OrderType(in.Type) {
		return nil, invalid(dictionary.ErrInvalidOrderType, in.Type)
	}

	qty, err := Quantity(in.Quantity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dictionary.ErrValidation, err)
	}

	o := &request.Order{
		Symbol:   strings.ToUpper(in.Symbol),
		Side:     strings.ToUpper(in.Side),
		Type:     strings.ToUpper(in.Type),
		Quantity: qty,
	}

	price := strings.TrimSpace(in.Price)

	if !o.IsLimit() {
		// market orders carry no price, a garbage one is still reported
		if price != "" {
			if _, err := Price(price); err != nil {
				return nil, fmt.Errorf("%w: %w", dictionary.ErrValidation, err)
			}
		}

		return o, nil
	}

	if price == "" {
		return nil, fmt.Errorf("%w: %w", dictionary.ErrValidation, dictionary.ErrMissingPrice)
	}

	p, err := Price(price)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dictionary.ErrValidation, err)
	}

	o.Price = &p

	return o, nil
}

func positive(s string, sentinel error) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", sentinel, s)
	}

	if !v.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", sentinel, s)
	}

	if exp := v.Exponent(); exp < -dictionary.MaxDecimalExponent || exp > dictionary.MaxDecimalExponent {
		return decimal.Decimal{}, fmt.Errorf("%w: %q out of range", sentinel, s)
	}

	return v, nil
}

func invalid(sentinel error, val string) error {
	return fmt.Errorf("%w: %w: %q", dictionary.ErrValidation, sentinel, val)
}
