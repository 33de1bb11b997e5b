package archive

import (
	"fmt"
	"iter"

	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
)

const CategoryEdgar = "edgar"

// edgarSource enumerates EDGAR full-index form listings, one form.idx per
// quarter under <base>/<year>/QTR<q>/. The downloaded file is stored as
// form_<year>_QTR<q>.idx so a flat category directory stays collision-free.
type edgarSource struct {
	baseURL string
}

func NewEdgarSource(baseURL string) Source {
	return &edgarSource{baseURL: baseURL}
}

func (s *edgarSource) Name() string { return CategoryEdgar }

func (s *edgarSource) Enumerate(req domain.FetchRequest) (iter.Seq[domain.ArchiveRef], error) {
	fromYear, toYear := req.From.Year(), req.To.Year()
	fromQ := (int(req.From.Month()) + 2) / 3
	toQ := (int(req.To.Month()) + 2) / 3
	if toYear*4+toQ < fromYear*4+fromQ {
		return nil, &domain.RetrievalError{
			Category: CategoryEdgar,
			Err:      fmt.Errorf("range end %d QTR%d before start %d QTR%d", toYear, toQ, fromYear, fromQ),
		}
	}

	return func(yield func(domain.ArchiveRef) bool) {
		for year := fromYear; year <= toYear; year++ {
			startQ, endQ := 1, 4
			if year == fromYear {
				startQ = fromQ
			}
			if year == toYear {
				endQ = toQ
			}
			for q := startQ; q <= endQ; q++ {
				ref := domain.ArchiveRef{
					Category: CategoryEdgar,
					URL:      fmt.Sprintf("%s/%d/QTR%d/form.idx", s.baseURL, year, q),
					Name:     fmt.Sprintf("form_%d_QTR%d.idx", year, q),
				}
				if !yield(ref) {
					return
				}
			}
		}
	}, nil
}
