package domain

import "time"

// Action and event type codes used in DTCC swap data repository disclosures.
const (
	ActionNew        = "NEWT"
	ActionTerminate  = "TERM"
	EventTermination = "ETRM"

	// BasketProduct entries carry unclear weighting and are excluded from
	// notional totals.
	BasketProduct = "Equity:Swap:PriceReturnBasicPerformance:Basket"
)

// SwapRecord is one disseminated swap event. OriginalDisseminationID links an
// amendment or termination back to the event it modifies; it is empty for
// chain roots.
type SwapRecord struct {
	DisseminationID         string
	OriginalDisseminationID string
	ActionType              string
	EventType               string
	EventTimestamp          time.Time
	ExecutionTimestamp      time.Time
	ExpirationDate          string
	ProductName             string
	NotionalAmount          float64
	NotionalCurrency        string
	NotionalQuantity        float64
}

// PositionChain groups every dissemination ID that traces to one root.
type PositionChain struct {
	RootID    string
	MemberIDs []string
}

// OpenPosition is a NEWT-rooted chain whose latest event does not terminate
// it. Notional and quantity totals are keyed by currency code.
type OpenPosition struct {
	RootID         string
	LastID         string
	LastAction     string
	EventTimestamp time.Time
	ExecutionTime  time.Time
	ExpirationDate string
	ProductName    string
	Notional       map[string]float64
	Quantity       map[string]float64
}

// SwapActivity is the per-day NEWT trade count series split by product group.
type SwapActivity struct {
	Dates    []time.Time
	All      []int
	CFD      []int
	NonCFD   []int
	Notional []map[string]float64
}
