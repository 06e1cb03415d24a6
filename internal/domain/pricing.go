package domain

// Currency is a passthrough tag on monetary amounts. Listings in different
// currencies are never converted or summed together.
type Currency string

const (
	CurrencyCOP Currency = "COP"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyPEN Currency = "PEN"
	CurrencyVES Currency = "VES"
	CurrencyCLP Currency = "CLP"
	CurrencyARS Currency = "ARS"
)

// Currencies lists every supported currency tag.
var Currencies = []Currency{
	CurrencyCOP, CurrencyUSD, CurrencyEUR, CurrencyPEN,
	CurrencyVES, CurrencyCLP, CurrencyARS,
}

func (c Currency) IsValid() bool {
	for _, v := range Currencies {
		if c == v {
			return true
		}
	}
	return false
}

// PricingMode selects which commission formula applies.
type PricingMode string

const (
	// PricingModePercentage: commission is a percent of the total sale price.
	PricingModePercentage PricingMode = "PERCENTAGE"
	// PricingModeMarkup ("Pase"): the agent asks above the owner's net and
	// keeps the excess.
	PricingModeMarkup PricingMode = "MARKUP"
)

// PricingInput carries the raw financial fields of one submission.
// TotalPrice and CommissionPercent are meaningful in Percentage mode;
// OwnerNet and AskPrice in Markup mode.
type PricingInput struct {
	Mode              PricingMode `json:"mode"`
	Currency          Currency    `json:"currency"`
	TotalPrice        float64     `json:"total_price"`
	CommissionPercent float64     `json:"commission_percent"`
	OwnerNet          float64     `json:"owner_net"`
	AskPrice          float64     `json:"ask_price"`
}

// PricingResult is the computed outcome. SaleEvent == AgentCommission +
// OwnerNet in both modes, except when the Markup floor triggers; that case
// sets MarginWarning so the caller can warn about a money-losing listing.
type PricingResult struct {
	SaleEvent       float64 `json:"sale_event"`
	AgentCommission float64 `json:"agent_commission"`
	OwnerNet        float64 `json:"owner_net"`
	MarginWarning   bool    `json:"margin_warning"`
}
