package feeds

// CurrenciesGetter supplies the ordered currency list for a session.
type CurrenciesGetter interface {
	GetCurrencies() []string
}

// Currencies exposes the currency list as a one-shot channel, matching the
// other engine inputs. The list is fixed for a session, so the channel
// emits once and closes.
func Currencies(getter CurrenciesGetter) <-chan []string {
	out := make(chan []string, 1)
	out <- getter.GetCurrencies()
	close(out)
	return out
}
