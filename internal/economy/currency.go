package economy

// Currency identifies one of the three wallet currencies. Amounts are
// integer minor units everywhere; no floating point touches a balance.
type Currency string

const (
	// CurrencyGrit is the per-run effort currency, zeroed on prestige.
	CurrencyGrit Currency = "grit"
	// CurrencyTaskCredits is the durable spendable currency. One task
	// credit is worth one reference monetary unit for payout purposes.
	CurrencyTaskCredits Currency = "task_credits"
	// CurrencyCrowns is the prestige-only currency. It has no conversion
	// path into anything else.
	CurrencyCrowns Currency = "crowns"
)

// GritPerTaskCredit is the only defined conversion rate: 100 grit buys
// exactly one task credit.
const GritPerTaskCredit int64 = 100

// CurrencyInfo carries display metadata for the static currency catalog.
type CurrencyInfo struct {
	ID          Currency
	Name        string
	Symbol      string
	Resettable  bool
	Convertible bool
}

// Currencies returns the static catalog of the three supported currencies.
func Currencies() []CurrencyInfo {
	return []CurrencyInfo{
		{ID: CurrencyGrit, Name: "Grit", Symbol: "⚡", Resettable: true, Convertible: true},
		{ID: CurrencyTaskCredits, Name: "Task Credits", Symbol: "◈", Resettable: false, Convertible: false},
		{ID: CurrencyCrowns, Name: "Crowns", Symbol: "♛", Resettable: false, Convertible: false},
	}
}

// ValidCurrency reports whether id names a supported currency.
func ValidCurrency(id Currency) bool {
	switch id {
	case CurrencyGrit, CurrencyTaskCredits, CurrencyCrowns:
		return true
	}
	return false
}
