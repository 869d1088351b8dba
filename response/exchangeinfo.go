package response

//easyjson:json
type ExchangeInfo struct {
	Timezone   string    `json:"timezone"`
	ServerTime int64     `json:"serverTime"`
	Symbols    []*Symbol `json:"symbols"`
}

//easyjson:json
type Symbol struct {
	Symbol            string `json:"symbol"`
	Status            string `json:"status"`
	ContractType      string `json:"contractType"`
	BaseAsset         string `json:"baseAsset"`
	QuoteAsset        string `json:"quoteAsset"`
	PricePrecision    int    `json:"pricePrecision"`
	QuantityPrecision int    `json:"quantityPrecision"`
}
