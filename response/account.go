package response

//easyjson:json
type Account struct {
	TotalWalletBalance    string   `json:"totalWalletBalance"`
	AvailableBalance      string   `json:"availableBalance"`
	TotalUnrealizedProfit string   `json:"totalUnrealizedProfit"`
	TotalMarginBalance    string   `json:"totalMarginBalance"`
	Assets                []*Asset `json:"assets"`
}

//easyjson:json
type Asset struct {
	Asset            string `json:"asset"`
	WalletBalance    string `json:"walletBalance"`
	UnrealizedProfit string `json:"unrealizedProfit"`
	MarginBalance    string `json:"marginBalance"`
	AvailableBalance string `json:"availableBalance"`
}
