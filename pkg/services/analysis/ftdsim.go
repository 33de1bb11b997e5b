package analysis

import (
	"math"

	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
)

// The simulated fail rate is a crude settlement-stress heuristic: a base rate
// amplified by the absolute bucket-over-bucket price move, capped so thin
// buckets cannot explode. It is an approximation, not authoritative FTD data.
const (
	simBaseFailRate    = 0.02
	simMoveSensitivity = 10.0
	simMaxFailRate     = 0.15
)

// simulateFails fills SimulatedFTD for points already sorted by date. The
// result depends only on the Volume and MeanPrice columns, so identical
// inputs always produce identical trends.
func simulateFails(points []domain.SeriesPoint) {
	prevPrice := 0.0
	for i := range points {
		ret := 0.0
		if i > 0 && prevPrice > 0 {
			ret = (points[i].MeanPrice - prevPrice) / prevPrice
		}
		rate := simBaseFailRate * (1 + simMoveSensitivity*math.Abs(ret))
		if rate > simMaxFailRate {
			rate = simMaxFailRate
		}
		points[i].SimulatedFTD = math.Round(points[i].Volume * rate)
		prevPrice = points[i].MeanPrice
	}
}
