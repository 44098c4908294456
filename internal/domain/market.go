package domain

// MarketData is an index or commodity snapshot. Price and Change are in
// the smallest currency unit; ChangePercent is a plain fraction.
type MarketData struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	MarketLabel   string  `json:"marketLabel"`
	Price         int64   `json:"price"`
	Change        int64   `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}

type MutualFund struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	NAV           int64   `json:"nav"`
	OneDayChange  int64   `json:"oneDayChange"`
	OneYearReturn float64 `json:"oneYearReturn"`
}

type Stock struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Company       string  `json:"company"`
	Market        string  `json:"market"`
	Price         int64   `json:"price"`
	DailyChange   int64   `json:"dailyChange"`
	ChangePercent float64 `json:"changePercent"`
}
