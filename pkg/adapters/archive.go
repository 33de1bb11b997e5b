package adapters

import (
	"github.com/artpersonnft/SECthingv2/pkg/models/api"
	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
)

func MapFetchOutcomeDomainToApi(o domain.FetchOutcome) api.FetchOutcome {
	out := api.FetchOutcome{
		Name: o.Ref.Name,
		URL:  o.Ref.URL,
	}
	if o.Record != nil {
		out.Path = o.Record.Path
		out.Size = o.Record.Size
		t := o.Record.RetrievedAt
		out.RetrievedAt = &t
	}
	if o.Err != nil {
		out.Error = o.Err.Error()
	}
	return out
}

func MapFetchReportDomainToApi(r *domain.FetchReport) api.FetchReport {
	report := api.FetchReport{
		Category:  r.Category,
		Succeeded: r.Succeeded(),
		Failed:    r.Failed(),
		Outcomes:  make([]api.FetchOutcome, 0, len(r.Outcomes)),
	}
	for _, o := range r.Outcomes {
		report.Outcomes = append(report.Outcomes, MapFetchOutcomeDomainToApi(o))
	}
	return report
}
