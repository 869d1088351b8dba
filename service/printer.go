package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/soulgarden/futures-bot/dictionary"
	"github.com/soulgarden/futures-bot/request"
	"github.com/soulgarden/futures-bot/response"
)

const lineWidth = 50

const notAvailable = "N/A"

// Printer renders orders and account data for a human.
type Printer interface {
	PrintOrderSummary(o *request.Order)
	PrintOrderResponse(r *response.Order)
	PrintAccountInfo(a *response.Account)
}

type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (p *Console) PrintOrderSummary(o *request.Order) {
	p.header("ORDER REQUEST SUMMARY")
	p.line("Symbol", o.Symbol)
	p.line("Side", o.Side)
	p.line("Type", o.Type)
	p.line("Quantity", o.Quantity.String())

	if o.Price != nil {
		p.line("Price", o.Price.String())
	}

	p.rule()
}

func (p *Console) PrintOrderResponse(r *response.Order) {
	p.header("ORDER RESPONSE DETAILS")
	p.line("Order ID", fmt.Sprintf("%d", r.OrderID))
	p.line("Status", orNA(r.Status))
	p.line("Executed Quantity", orNA(r.ExecutedQty))

	if avg, err := decimal.NewFromString(r.AvgPrice); err == nil && !avg.IsZero() {
		p.line("Average Price", r.AvgPrice)
	}

	p.line("Client Order ID", orNA(r.ClientOrderID))

	if r.UpdateTime > 0 {
		p.line("Update Time", fmt.Sprintf("%d", r.UpdateTime))
	} else {
		p.line("Update Time", notAvailable)
	}

	p.rule()

	// NEW and PARTIALLY_FILLED are not final, the message only says the exchange accepted it
	switch r.Status {
	case dictionary.OrderStatusFilled, dictionary.OrderStatusNew, dictionary.OrderStatusPartiallyFilled:
		fmt.Fprintln(p.w, "ORDER PLACED SUCCESSFULLY!")
	default:
		fmt.Fprintln(p.w, "ORDER STATUS UNCLEAR - CHECK LOGS")
	}
}

func (p *Console) PrintAccountInfo(a *response.Account) {
	p.header("ACCOUNT INFORMATION")
	p.line("Total Wallet Balance", orNA(a.TotalWalletBalance)+" "+dictionary.QuoteAsset)
	p.line("Available Balance", orNA(a.AvailableBalance)+" "+dictionary.QuoteAsset)
	p.line("Total Unrealized PnL", orNA(a.TotalUnrealizedProfit)+" "+dictionary.QuoteAsset)

	for _, asset := range a.Assets {
		if asset == nil {
			continue
		}

		if wb, err := decimal.NewFromString(asset.WalletBalance); err != nil || wb.IsZero() {
			continue
		}

		p.line("  "+asset.Asset, asset.WalletBalance+" (available "+orNA(asset.AvailableBalance)+")")
	}

	p.rule()
}

func (p *Console) header(title string) {
	fmt.Fprintln(p.w)
	p.rule()
	fmt.Fprintln(p.w, title)
	p.rule()
}

func (p *Console) rule() {
	fmt.Fprintln(p.w, strings.Repeat("=", lineWidth))
}

func (p *Console) line(name, val string) {
	fmt.Fprintf(p.w, "%s: %s\n", name, val)
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}

	return s
}
