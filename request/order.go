package request

import (
	"github.com/shopspring/decimal"
	"github.com/soulgarden/futures-bot/dictionary"
)

// OrderInput holds order fields exactly as the user typed them.
type OrderInput struct {
	Symbol   string
	Side     string
	Type     string
	Quantity string
	Price    string
}

// Order is a validated order request in canonical upper-case form.
// Price is set if and only if Type is LIMIT.
type Order struct {
	Symbol   string
	Side     string
	Type     string
	Quantity decimal.Decimal
	Price    *decimal.Decimal
}

func (o *Order) IsLimit() bool {
	return o.Type == dictionary.OrderTypeLimit
}

// Params converts the order into wire parameters in transmission order.
func (o *Order) Params() (*Params, error) {
	p := NewParams()

	p.Set(dictionary.SymbolParam, o.Symbol)
	p.Set(dictionary.SideParam, o.Side)
	p.Set(dictionary.TypeParam, o.Type)
	p.Set(dictionary.QuantityParam, o.Quantity.String())

	if o.IsLimit() {
		if o.Price == nil {
			return nil, dictionary.ErrMissingPrice
		}

		p.Set(dictionary.PriceParam, o.Price.String())
		p.Set(dictionary.TimeInForceParam, dictionary.TimeInForceGTC)
	}

	return p, nil
}
