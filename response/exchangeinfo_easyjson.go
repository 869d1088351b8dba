// easyjson codec for exchangeinfo.go, kept in the generator's layout. `go generate ./response` replaces it.

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

func easyjson9c07e6d2DecodeGithubComSoulgardenFuturesBotResponse(in *jlexer.Lexer, out *Symbol) {
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
		case "symbol":
			out.Symbol = string(in.String())
		case "status":
			out.Status = string(in.String())
		case "contractType":
			out.ContractType = string(in.String())
		case "baseAsset":
			out.BaseAsset = string(in.String())
		case "quoteAsset":
			out.QuoteAsset = string(in.String())
		case "pricePrecision":
			out.PricePrecision = int(in.Int())
		case "quantityPrecision":
			out.QuantityPrecision = int(in.Int())
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

func easyjson9c07e6d2EncodeGithubComSoulgardenFuturesBotResponse(out *jwriter.Writer, in Symbol) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"symbol\":"
		out.RawString(prefix[1:])
		out.String(string(in.Symbol))
	}
	{
		const prefix string = ",\"status\":"
		out.RawString(prefix)
		out.String(string(in.Status))
	}
	{
		const prefix string = ",\"contractType\":"
		out.RawString(prefix)
		out.String(string(in.ContractType))
	}
	{
		const prefix string = ",\"baseAsset\":"
		out.RawString(prefix)
		out.String(string(in.BaseAsset))
	}
	{
		const prefix string = ",\"quoteAsset\":"
		out.RawString(prefix)
		out.String(string(in.QuoteAsset))
	}
	{
		const prefix string = ",\"pricePrecision\":"
		out.RawString(prefix)
		out.Int(int(in.PricePrecision))
	}
	{
		const prefix string = ",\"quantityPrecision\":"
		out.RawString(prefix)
		out.Int(int(in.QuantityPrecision))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v Symbol) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson9c07e6d2EncodeGithubComSoulgardenFuturesBotResponse(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v Symbol) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson9c07e6d2EncodeGithubComSoulgardenFuturesBotResponse(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *Symbol) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson9c07e6d2DecodeGithubComSoulgardenFuturesBotResponse(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *Symbol) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson9c07e6d2DecodeGithubComSoulgardenFuturesBotResponse(l, v)
}

func easyjson9c07e6d2DecodeGithubComSoulgardenFuturesBotResponse1(in *jlexer.Lexer, out *ExchangeInfo) {
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
		case "timezone":
			out.Timezone = string(in.String())
		case "serverTime":
			out.ServerTime = int64(in.Int64())
		case "symbols":
			if in.IsNull() {
				in.Skip()
				out.Symbols = nil
			} else {
				in.Delim('[')
				if out.Symbols == nil {
					if !in.IsDelim(']') {
						out.Symbols = make([]*Symbol, 0, 8)
					} else {
						out.Symbols = []*Symbol{}
					}
				} else {
					out.Symbols = (out.Symbols)[:0]
				}
				for !in.IsDelim(']') {
					var v1 *Symbol
					if in.IsNull() {
						in.Skip()
						v1 = nil
					} else {
						if v1 == nil {
							v1 = new(Symbol)
						}
						(*v1).UnmarshalEasyJSON(in)
					}
					out.Symbols = append(out.Symbols, v1)
					in.WantComma()
				}
				in.Delim(']')
			}
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

func easyjson9c07e6d2EncodeGithubComSoulgardenFuturesBotResponse1(out *jwriter.Writer, in ExchangeInfo) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"timezone\":"
		out.RawString(prefix[1:])
		out.String(string(in.Timezone))
	}
	{
		const prefix string = ",\"serverTime\":"
		out.RawString(prefix)
		out.Int64(int64(in.ServerTime))
	}
	{
		const prefix string = ",\"symbols\":"
		out.RawString(prefix)
		if in.Symbols == nil && (out.Flags&jwriter.NilSliceAsEmpty) == 0 {
			out.RawString("null")
		} else {
			out.RawByte('[')
			for v2, v3 := range in.Symbols {
				if v2 > 0 {
					out.RawByte(',')
				}
				if v3 == nil {
					out.RawString("null")
				} else {
					(*v3).MarshalEasyJSON(out)
				}
			}
			out.RawByte(']')
		}
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v ExchangeInfo) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson9c07e6d2EncodeGithubComSoulgardenFuturesBotResponse1(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v ExchangeInfo) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson9c07e6d2EncodeGithubComSoulgardenFuturesBotResponse1(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *ExchangeInfo) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson9c07e6d2DecodeGithubComSoulgardenFuturesBotResponse1(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *ExchangeInfo) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson9c07e6d2DecodeGithubComSoulgardenFuturesBotResponse1(l, v)
}
