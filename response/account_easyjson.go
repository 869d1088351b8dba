// easyjson codec for account.go, kept in the generator's layout. `go generate ./response` replaces it.

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

func easyjsonb2a47f31DecodeGithubComSoulgardenFuturesBotResponse(in *jlexer.Lexer, out *Asset) {
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
		case "asset":
			out.Asset = string(in.String())
		case "walletBalance":
			out.WalletBalance = string(in.String())
		case "unrealizedProfit":
			out.UnrealizedProfit = string(in.String())
		case "marginBalance":
			out.MarginBalance = string(in.String())
		case "availableBalance":
			out.AvailableBalance = string(in.String())
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

func easyjsonb2a47f31EncodeGithubComSoulgardenFuturesBotResponse(out *jwriter.Writer, in Asset) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"asset\":"
		out.RawString(prefix[1:])
		out.String(string(in.Asset))
	}
	{
		const prefix string = ",\"walletBalance\":"
		out.RawString(prefix)
		out.String(string(in.WalletBalance))
	}
	{
		const prefix string = ",\"unrealizedProfit\":"
		out.RawString(prefix)
		out.String(string(in.UnrealizedProfit))
	}
	{
		const prefix string = ",\"marginBalance\":"
		out.RawString(prefix)
		out.String(string(in.MarginBalance))
	}
	{
		const prefix string = ",\"availableBalance\":"
		out.RawString(prefix)
		out.String(string(in.AvailableBalance))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v Asset) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjsonb2a47f31EncodeGithubComSoulgardenFuturesBotResponse(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v Asset) MarshalEasyJSON(w *jwriter.Writer) {
	easyjsonb2a47f31EncodeGithubComSoulgardenFuturesBotResponse(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *Asset) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjsonb2a47f31DecodeGithubComSoulgardenFuturesBotResponse(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *Asset) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjsonb2a47f31DecodeGithubComSoulgardenFuturesBotResponse(l, v)
}

func easyjsonb2a47f31DecodeGithubComSoulgardenFuturesBotResponse1(in *jlexer.Lexer, out *Account) {
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
		case "totalWalletBalance":
			out.TotalWalletBalance = string(in.String())
		case "availableBalance":
			out.AvailableBalance = string(in.String())
		case "totalUnrealizedProfit":
			out.TotalUnrealizedProfit = string(in.String())
		case "totalMarginBalance":
			out.TotalMarginBalance = string(in.String())
		case "assets":
			if in.IsNull() {
				in.Skip()
				out.Assets = nil
			} else {
				in.Delim('[')
				if out.Assets == nil {
					if !in.IsDelim(']') {
						out.Assets = make([]*Asset, 0, 8)
					} else {
						out.Assets = []*Asset{}
					}
				} else {
					out.Assets = (out.Assets)[:0]
				}
				for !in.IsDelim(']') {
					var v1 *Asset
					if in.IsNull() {
						in.Skip()
						v1 = nil
					} else {
						if v1 == nil {
							v1 = new(Asset)
						}
						(*v1).UnmarshalEasyJSON(in)
					}
					out.Assets = append(out.Assets, v1)
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

func easyjsonb2a47f31EncodeGithubComSoulgardenFuturesBotResponse1(out *jwriter.Writer, in Account) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"totalWalletBalance\":"
		out.RawString(prefix[1:])
		out.String(string(in.TotalWalletBalance))
	}
	{
		const prefix string = ",\"availableBalance\":"
		out.RawString(prefix)
		out.String(string(in.AvailableBalance))
	}
	{
		const prefix string = ",\"totalUnrealizedProfit\":"
		out.RawString(prefix)
		out.String(string(in.TotalUnrealizedProfit))
	}
	{
		const prefix string = ",\"totalMarginBalance\":"
		out.RawString(prefix)
		out.String(string(in.TotalMarginBalance))
	}
	{
		const prefix string = ",\"assets\":"
		out.RawString(prefix)
		if in.Assets == nil && (out.Flags&jwriter.NilSliceAsEmpty) == 0 {
			out.RawString("null")
		} else {
			out.RawByte('[')
			for v2, v3 := range in.Assets {
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
func (v Account) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjsonb2a47f31EncodeGithubComSoulgardenFuturesBotResponse1(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v Account) MarshalEasyJSON(w *jwriter.Writer) {
	easyjsonb2a47f31EncodeGithubComSoulgardenFuturesBotResponse1(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *Account) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjsonb2a47f31DecodeGithubComSoulgardenFuturesBotResponse1(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *Account) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjsonb2a47f31DecodeGithubComSoulgardenFuturesBotResponse1(l, v)
}
