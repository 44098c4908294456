package actor

import "github.com/arthanidhi/arthanidhi-cli/internal/domain"

// Demo figures shown while the canister backend carries no market data.
// Amounts are paise.

func demoMarketSummary() []domain.MarketData {
	return []domain.MarketData{
		{Symbol: "NIFTY50", Name: "Nifty 50", MarketLabel: "NSE", Price: 2245030, Change: 15480, ChangePercent: 0.69},
		{Symbol: "SENSEX", Name: "BSE Sensex", MarketLabel: "BSE", Price: 7399125, Change: -21260, ChangePercent: -0.29},
		{Symbol: "GOLD", Name: "Gold (10g)", MarketLabel: "MCX", Price: 6245500, Change: 38200, ChangePercent: 0.62},
	}
}

func demoMutualFunds() []domain.MutualFund {
	return []domain.MutualFund{
		{ID: "an-bluechip", Name: "ArthaNidhi Bluechip Fund", Category: "Large Cap", NAV: 8432, OneDayChange: 21, OneYearReturn: 14.2},
		{ID: "an-balanced", Name: "ArthaNidhi Balanced Advantage", Category: "Hybrid", NAV: 4518, OneDayChange: -9, OneYearReturn: 9.8},
	}
}

func demoStocks() []domain.Stock {
	return []domain.Stock{
		{Symbol: "RELI", Name: "Reliance Industries", Company: "Reliance Industries Ltd", Market: "NSE", Price: 294530, DailyChange: 1240, ChangePercent: 0.42},
		{Symbol: "TCS", Name: "TCS", Company: "Tata Consultancy Services", Market: "NSE", Price: 412980, DailyChange: -3310, ChangePercent: -0.79},
	}
}
