package pricing

import (
	"context"
	"time"

	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
)

// Provider fetches a daily reference-price series for one ticker. It exists
// purely as chart enrichment: callers treat any error as "no overlay".
type Provider interface {
	Name() string
	FetchDailySeries(ctx context.Context, ticker string, from, to time.Time) ([]domain.PricePoint, error)
}
