package services

// CurrenciesProvider supplies the ordered list of currencies available in
// a session. The list order is authoritative: it drives default selections
// and the ordering of all derived option lists.
type CurrenciesProvider interface {
	GetCurrencies() []string
}

// InitialBalancesProvider supplies the balances written to storage on
// first run, before any conversion has happened.
type InitialBalancesProvider interface {
	GetInitialBalances() map[string]float64
}

// DefaultCurrencies is the currency list used when none is configured.
var DefaultCurrencies = []string{"EUR", "USD", "BGN", "UAH"}

// DefaultInitialBalances is the first-run balance seed used when none is
// configured.
var DefaultInitialBalances = map[string]float64{"EUR": 1000.0}

// StaticCurrenciesProvider serves a fixed currency list.
type StaticCurrenciesProvider struct {
	currencies []string
}

// NewStaticCurrenciesProvider creates a provider serving the given list,
// falling back to DefaultCurrencies when the list is empty.
func NewStaticCurrenciesProvider(currencies []string) *StaticCurrenciesProvider {
	if len(currencies) == 0 {
		currencies = DefaultCurrencies
	}
	return &StaticCurrenciesProvider{currencies: currencies}
}

// GetCurrencies returns the currency list.
func (p *StaticCurrenciesProvider) GetCurrencies() []string {
	return p.currencies
}

// StaticInitialBalancesProvider serves a fixed first-run balance seed.
type StaticInitialBalancesProvider struct {
	balances map[string]float64
}

// NewStaticInitialBalancesProvider creates a provider serving the given
// seed, falling back to DefaultInitialBalances when the seed is empty.
func NewStaticInitialBalancesProvider(balances map[string]float64) *StaticInitialBalancesProvider {
	if len(balances) == 0 {
		balances = DefaultInitialBalances
	}
	return &StaticInitialBalancesProvider{balances: balances}
}

// GetInitialBalances returns the first-run balance seed.
func (p *StaticInitialBalancesProvider) GetInitialBalances() map[string]float64 {
	return p.balances
}
