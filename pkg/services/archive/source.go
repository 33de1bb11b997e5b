package archive

import (
	"iter"

	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
)

// Source enumerates the remote files one archive category publishes.
// Enumerate returns a finite sequence generated lazily from the request
// bounds; ranging over it again restarts it, and the same request always
// yields the same refs in the same order.
type Source interface {
	Name() string
	Enumerate(req domain.FetchRequest) (iter.Seq[domain.ArchiveRef], error)
}
