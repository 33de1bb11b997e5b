package domain

import (
	"fmt"
	"time"
)

// Granularity is the time bucket used to collapse transactions into one
// derived point.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// ParseGranularity accepts the canonical names and their single-letter
// shorthands used by the interactive menu.
func ParseGranularity(s string) (Granularity, error) {
	switch s {
	case "daily", "d", "":
		return GranularityDaily, nil
	case "weekly", "w":
		return GranularityWeekly, nil
	case "monthly", "m":
		return GranularityMonthly, nil
	}
	return "", fmt.Errorf("unknown granularity %q (want daily, weekly or monthly)", s)
}

// AggMode selects how row volumes are collapsed within a bucket.
type AggMode string

const (
	AggSum  AggMode = "sum"
	AggMean AggMode = "mean"
	AggMax  AggMode = "max"
)

func ParseAggMode(s string) (AggMode, error) {
	switch s {
	case "sum", "":
		return AggSum, nil
	case "mean", "avg":
		return AggMean, nil
	case "max":
		return AggMax, nil
	}
	return "", fmt.Errorf("unknown aggregation mode %q (want sum, mean or max)", s)
}

// SeriesPoint is one derived bucket.
type SeriesPoint struct {
	Date          time.Time
	Volume        float64
	MeanPrice     float64
	SimulatedFTD  float64
	RowCount      int
	ReportedFails float64
}

// DerivedSeries is the deterministic product of a transaction set and an
// analysis request, sorted ascending by bucket date.
type DerivedSeries struct {
	Granularity Granularity
	Mode        AggMode
	Ticker      string
	Points      []SeriesPoint
}

// PricePoint is one observation from an external reference-price provider.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// ChartData is the renderable result of one visualization request: the fixed
// interactive series plus an optional best-effort reference overlay.
type ChartData struct {
	Title     string
	Series    DerivedSeries
	Reference []PricePoint
}

// AnalysisRequest describes one visualization invocation.
type AnalysisRequest struct {
	Dir         string
	File        string
	Granularity Granularity
	Mode        AggMode
	Ticker      string
}
