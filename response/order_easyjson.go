// easyjson codec for order.go, kept in the generator's layout. `go generate ./response` replaces it.

package response

import (
	json "encoding/json"
	easyjson "github.com/mailru/easyjson"
	jlexer "github.com/mailru/easyjson/jlexer"
	jwriter "github.com/mailru/easyjson/jwriter"
)

// suppress unused package warning
var (
	_ *json.RawMessage
	_ *jlexer.Lexer
	_ *jwriter.Writer
	_ easyjson.Marshaler
)

func easyjson5d1c9a08DecodeGithubComSoulgardenFuturesBotResponse(in *jlexer.Lexer, out *Order) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "orderId":
			out.OrderID = int64(in.Int64())
		case "symbol":
			out.Symbol = string(in.String())
		case "status":
			out.Status = string(in.String())
		case "clientOrderId":
			out.ClientOrderID = string(in.String())
		case "price":
			out.Price = string(in.String())
		case "avgPrice":
			out.AvgPrice = string(in.String())
		case "origQty":
			out.OrigQty = string(in.String())
		case "executedQty":
			out.ExecutedQty = string(in.String())
		case "cumQuote":
			out.CumQuote = string(in.String())
		case "timeInForce":
			out.TimeInForce = string(in.String())
		case "type":
			out.Type = string(in.String())
		case "side":
			out.Side = string(in.String())
		case "updateTime":
			out.UpdateTime = int64(in.Int64())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

func easyjson5d1c9a08EncodeGithubComSoulgardenFuturesBotResponse(out *jwriter.Writer, in Order) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"orderId\":"
		out.RawString(prefix[1:])
		out.Int64(int64(in.OrderID))
	}
	{
		const prefix string = ",\"symbol\":"
		out.RawString(prefix)
		out.String(string(in.Symbol))
	}
	{
		const prefix string = ",\"status\":"
		out.RawString(prefix)
		out.String(string(in.Status))
	}
	{
		const prefix string = ",\"clientOrderId\":"
		out.RawString(prefix)
		out.String(string(in.ClientOrderID))
	}
	{
		const prefix string = ",\"price\":"
		out.RawString(prefix)
		out.String(string(in.Price))
	}
	{
		const prefix string = ",\"avgPrice\":"
		out.RawString(prefix)
		out.String(string(in.AvgPrice))
	}
	{
		const prefix string = ",\"origQty\":"
		out.RawString(prefix)
		out.String(string(in.OrigQty))
	}
	{
		const prefix string = ",\"executedQty\":"
		out.RawString(prefix)
		out.String(string(in.ExecutedQty))
	}
	{
		const prefix string = ",\"cumQuote\":"
		out.RawString(prefix)
		out.String(string(in.CumQuote))
	}
	{
		const prefix string = ",\"timeInForce\":"
		out.RawString(prefix)
		out.String(string(in.TimeInForce))
	}
	{
		const prefix string = ",\"type\":"
		out.RawString(prefix)
		out.String(string(in.Type))
	}
	{
		const prefix string = ",\"side\":"
		out.RawString(prefix)
		out.String(string(in.Side))
	}
	{
		const prefix string = ",\"updateTime\":"
		out.RawString(prefix)
		out.Int64(int64(in.UpdateTime))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v Order) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson5d1c9a08EncodeGithubComSoulgardenFuturesBotResponse(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v Order) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson5d1c9a08EncodeGithubComSoulgardenFuturesBotResponse(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *Order) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson5d1c9a08DecodeGithubComSoulgardenFuturesBotResponse(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *Order) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson5d1c9a08DecodeGithubComSoulgardenFuturesBotResponse(l, v)
}
