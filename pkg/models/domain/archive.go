package domain

import "time"

// ArchiveRef identifies one remote archive file within a category before it
// has been downloaded.
type ArchiveRef struct {
	Category string
	URL      string
	Name     string
}

// ArchiveRecord is a downloaded archive. The content on disk is byte-identical
// to what the remote host served; records are never mutated after creation.
type ArchiveRecord struct {
	Ref         ArchiveRef
	Path        string
	Size        int64
	RetrievedAt time.Time
}

// FetchOutcome is the per-item result of a batch download. Exactly one of
// Record or Err is set.
type FetchOutcome struct {
	Ref    ArchiveRef
	Record *ArchiveRecord
	Err    error
}

// FetchReport collects the outcomes of one fetch request in enumeration order.
type FetchReport struct {
	Category string
	Outcomes []FetchOutcome
}

func (r *FetchReport) Succeeded() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Err == nil {
			n++
		}
	}
	return n
}

func (r *FetchReport) Failed() int { return len(r.Outcomes) - r.Succeeded() }

// FetchRequest describes one fetch invocation. From/To bound the enumerated
// period; sources interpret the bounds at their own resolution (month, day or
// quarter).
type FetchRequest struct {
	Category string
	From     time.Time
	To       time.Time
	OutDir   string
}
