package archive

import (
	"fmt"
	"iter"
	"time"

	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
)

const CategorySwaps = "swaps"

// swapsSource enumerates the DTCC swap data repository's cumulative
// security-based equity reports, one zip per trading day named
// SEC_CUMULATIVE_EQUITIES_<YYYY>_<MM>_<DD>.zip. Weekends are skipped; the
// repository publishes nothing for them.
type swapsSource struct {
	baseURL string
}

func NewSwapsSource(baseURL string) Source {
	return &swapsSource{baseURL: baseURL}
}

func (s *swapsSource) Name() string { return CategorySwaps }

func (s *swapsSource) Enumerate(req domain.FetchRequest) (iter.Seq[domain.ArchiveRef], error) {
	from := req.From.UTC().Truncate(24 * time.Hour)
	to := req.To.UTC().Truncate(24 * time.Hour)
	if to.Before(from) {
		return nil, &domain.RetrievalError{
			Category: CategorySwaps,
			Err:      fmt.Errorf("range end %s before start %s", req.To.Format("2006-01-02"), req.From.Format("2006-01-02")),
		}
	}

	return func(yield func(domain.ArchiveRef) bool) {
		for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
			if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
				continue
			}
			name := fmt.Sprintf("SEC_CUMULATIVE_EQUITIES_%s.zip", day.Format("2006_01_02"))
			ref := domain.ArchiveRef{
				Category: CategorySwaps,
				URL:      s.baseURL + "/" + name,
				Name:     name,
			}
			if !yield(ref) {
				return
			}
		}
	}, nil
}
