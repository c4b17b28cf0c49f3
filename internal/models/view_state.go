package models

// ExchangeViewState is the single snapshot exposed to the presentation
// layer. A fresh value is produced on every background tick and every
// user action; it is never persisted.
// swagger:model ExchangeViewState
type ExchangeViewState struct {
	// Balances per currency, in currency-list order semantics
	Balances map[string]float64 `json:"balances"`

	// Amount the user wants to sell
	SellAmount float64 `json:"sell_amount"`

	// Currency the user sells
	SellCurrency string `json:"sell_currency"`

	// Currencies selectable as sell currency
	SellCurrencyOptions []string `json:"sell_currency_options"`

	// Amount the user receives, derived from the latest known rates
	ReceiveAmount float64 `json:"receive_amount"`

	// Currency the user receives, always distinct from the sell currency
	ReceiveCurrency string `json:"receive_currency"`

	// Currencies selectable as receive currency
	ReceiveCurrencyOptions []string `json:"receive_currency_options"`

	// Human-readable error message, empty when there is none
	Error string `json:"error,omitempty"`

	// Confirmation text shown after a successful conversion; must be
	// explicitly dismissed
	DialogMessage string `json:"dialog_message,omitempty"`
}
