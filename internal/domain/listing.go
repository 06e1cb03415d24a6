package domain

type SaleStatus string

const (
	SaleStatusAvailable SaleStatus = "AVAILABLE"
	SaleStatusReserved  SaleStatus = "RESERVED"
	SaleStatusSold      SaleStatus = "SOLD"
	SaleStatusRented    SaleStatus = "RENTED"
)

type PropertyType string

const (
	PropertyTypeApartment PropertyType = "APARTMENT"
	PropertyTypeHouse     PropertyType = "HOUSE"
	PropertyTypeLot       PropertyType = "LOT"
	PropertyTypeShop      PropertyType = "SHOP"
	PropertyTypeWarehouse PropertyType = "WAREHOUSE"
)

type AgeBracket string

const (
	AgeBracketOffPlan AgeBracket = "OFF_PLAN"
	AgeBracketNew     AgeBracket = "NEW"
	AgeBracketUsed    AgeBracket = "USED"
)

type PropertyCondition string

const (
	PropertyConditionExcellent PropertyCondition = "EXCELLENT"
	PropertyConditionGood      PropertyCondition = "GOOD"
	PropertyConditionNeedsWork PropertyCondition = "NEEDS_WORK"
)

type ParkingType string

const (
	ParkingTypePrivate ParkingType = "PRIVATE"
	ParkingTypeShared  ParkingType = "SHARED"
	ParkingTypeNone    ParkingType = "NONE"
)

// PreSale describes an off-plan project block. Present only when the unit is
// sold before construction finishes.
type PreSale struct {
	Builder      string  `json:"builder"`
	Project      string  `json:"project"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	DownPayment  float64 `json:"down_payment"`
	Installments int32   `json:"installments"`
}

// Listing is the persisted property record. Created once at submission time;
// later mutated only by CRM actions (status changes, payment recording).
// There is no delete path.
type Listing struct {
	ID        string     `json:"id"`
	CreatedOn string     `json:"created_on"`
	UpdatedOn string     `json:"updated_on"`
	Status    SaleStatus `json:"status"`
	AgentID   int32      `json:"agent_id"`

	// Owner contact block
	OwnerName     string `json:"owner_name"`
	OwnerDocument string `json:"owner_document"`
	OwnerPhone    string `json:"owner_phone"`
	OwnerAltPhone string `json:"owner_alt_phone"`
	OwnerEmail    string `json:"owner_email"`

	// Financials (snapshot of the pricing result at creation time)
	Currency        Currency `json:"currency"`
	SaleEvent       float64  `json:"sale_event"`
	AgentCommission float64  `json:"agent_commission"`
	OwnerNet        float64  `json:"owner_net"`
	MarginWarning   bool     `json:"margin_warning"`

	// Descriptive attributes
	Title        string            `json:"title"`
	PropertyType PropertyType      `json:"property_type"`
	City         string            `json:"city"`
	Neighborhood string            `json:"neighborhood"`
	Stratum      string            `json:"stratum"`
	Area         float64           `json:"area"`
	Rooms        int32             `json:"rooms"`
	Bathrooms    int32             `json:"bathrooms"`
	Floor        string            `json:"floor"`
	Age          AgeBracket        `json:"age"`
	Condition    PropertyCondition `json:"condition"`
	Parking      ParkingType       `json:"parking"`
	Amenities    []string          `json:"amenities"`
	Notes        string            `json:"notes"`

	PreSale *PreSale `json:"pre_sale,omitempty"`

	// CRM / sale progress
	BuyerClient string  `json:"buyer_client"`
	AmountPaid  float64 `json:"amount_paid"`
	Debt        float64 `json:"debt"`

	// Media references (names only; file content lives in the storage service)
	PhotoRefs []string `json:"photo_refs"`
	DocRefs   []string `json:"doc_refs"`
}

// CurrencyTotal is one per-currency slice of the inventory value. Totals are
// grouped by currency tag because amounts are never converted; summing across
// tags would be meaningless.
type CurrencyTotal struct {
	Currency        Currency `json:"currency"`
	Listings        int32    `json:"listings"`
	SaleValue       float64  `json:"sale_value"`
	CommissionValue float64  `json:"commission_value"`
}

// InventorySummary aggregates the portfolio for the stats view.
type InventorySummary struct {
	TotalListings    int32                `json:"total_listings"`
	CountsByStatus   map[SaleStatus]int32 `json:"counts_by_status"`
	TotalsByCurrency []CurrencyTotal      `json:"totals_by_currency"`
}
