package domain

import "time"

// Transaction is one row of operator-selected tabular data. Date always holds
// a valid calendar date and Price/Volume are non-negative; rows violating
// either invariant are rejected at parse time.
type Transaction struct {
	Date   time.Time
	Ticker string
	Price  float64
	Volume float64

	// ReportedFails is the failure-to-deliver quantity when the source file
	// carries one, otherwise 0. The derived trend never depends on it.
	ReportedFails float64
}
