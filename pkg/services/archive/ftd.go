package archive

import (
	"fmt"
	"iter"
	"time"

	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
)

const CategoryFTD = "ftd"

// ftdSource enumerates SEC fails-to-deliver archives. The SEC publishes two
// files per month, covering the first and second half, named
// cnsfails<yyyymm>a.zip and cnsfails<yyyymm>b.zip.
type ftdSource struct {
	baseURL string
}

func NewFTDSource(baseURL string) Source {
	return &ftdSource{baseURL: baseURL}
}

func (s *ftdSource) Name() string { return CategoryFTD }

func (s *ftdSource) Enumerate(req domain.FetchRequest) (iter.Seq[domain.ArchiveRef], error) {
	from := time.Date(req.From.Year(), req.From.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(req.To.Year(), req.To.Month(), 1, 0, 0, 0, 0, time.UTC)
	if to.Before(from) {
		return nil, &domain.RetrievalError{
			Category: CategoryFTD,
			Err:      fmt.Errorf("range end %s before start %s", req.To.Format("2006-01"), req.From.Format("2006-01")),
		}
	}

	return func(yield func(domain.ArchiveRef) bool) {
		for month := from; !month.After(to); month = month.AddDate(0, 1, 0) {
			for _, half := range []string{"a", "b"} {
				name := fmt.Sprintf("cnsfails%s%s.zip", month.Format("200601"), half)
				ref := domain.ArchiveRef{
					Category: CategoryFTD,
					URL:      s.baseURL + "/" + name,
					Name:     name,
				}
				if !yield(ref) {
					return
				}
			}
		}
	}, nil
}
