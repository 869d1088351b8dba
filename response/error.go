package response

//go:generate easyjson order.go account.go exchangeinfo.go error.go

//easyjson:json
type Error struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

const InvalidSignatureCode = -1022
const TimestampOutsideRecvWindowCode = -1021
const InvalidAPIKeyCode = -2015
