package domain

// Settings are per-customer portal preferences.
type Settings struct {
	IsDarkMode        bool   `json:"isDarkMode"`
	PreferredCurrency string `json:"preferredCurrency"`
}

// DefaultSettings matches the portal defaults for a fresh customer.
func DefaultSettings() Settings {
	return Settings{IsDarkMode: false, PreferredCurrency: "INR"}
}
