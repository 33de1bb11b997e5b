package export

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
)

type TableConfig struct {
	NameWidth   int
	StatusWidth int
	SizeWidth   int
	DetailWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:   42,
		StatusWidth: 8,
		SizeWidth:   12,
		DetailWidth: 60,
	}
}

// Reporter prints fetch and swap-analysis results to the console.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

type fetchRow struct {
	Name   string
	Status string
	Size   string
	Detail string
}

type fetchView struct {
	Category  string
	Succeeded int
	Failed    int
	Rows      []fetchRow
}

// HandleFetch renders the per-item outcome table for one batch download.
func (c *Reporter) HandleFetch(report *domain.FetchReport) error {
	view := fetchView{
		Category:  report.Category,
		Succeeded: report.Succeeded(),
		Failed:    report.Failed(),
	}
	for _, o := range report.Outcomes {
		row := fetchRow{Name: o.Ref.Name}
		if o.Err != nil {
			row.Status = "failed"
			row.Detail = o.Err.Error()
		} else {
			row.Status = "ok"
			row.Size = fmt.Sprintf("%d B", o.Record.Size)
			row.Detail = o.Record.Path
		}
		view.Rows = append(view.Rows, row)
	}

	funcMap := template.FuncMap{
		"formatRow": func(name, status, size, detail string) string {
			return fmt.Sprintf("| %-*s | %-*s | %-*s | %-*s |",
				c.config.NameWidth, truncate(name, c.config.NameWidth),
				c.config.StatusWidth, status,
				c.config.SizeWidth, size,
				c.config.DetailWidth, truncate(detail, c.config.DetailWidth))
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.StatusWidth+2),
				strings.Repeat("-", c.config.SizeWidth+2),
				strings.Repeat("-", c.config.DetailWidth+2))
		},
	}

	tmpl := `
Fetch report: {{.Category}} ({{.Succeeded}} succeeded, {{.Failed}} failed)

{{separator}}
{{formatRow "Item" "Status" "Size" "Detail"}}
{{separator}}
{{range .Rows}}{{formatRow .Name .Status .Size .Detail}}
{{end}}{{separator}}
`
	t, err := template.New("fetch").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, view)
}

type openPositionView struct {
	domain.OpenPosition
	Amounts []string
}

type swapView struct {
	Base        string
	TotalChains int
	Open        []openPositionView
	ExportPath  string
}

// HandleOpenPositions prints the open-chain summary, one block per position,
// in the layout the original console report used.
func (c *Reporter) HandleOpenPositions(base string, totalChains int, positions []domain.OpenPosition, exportPath string) error {
	view := swapView{Base: base, TotalChains: totalChains, ExportPath: exportPath}
	for _, p := range positions {
		view.Open = append(view.Open, openPositionView{
			OpenPosition: p,
			Amounts:      formatAmounts(p),
		})
	}

	tmpl := `
Swap analysis: {{.Base}}
Total unique position chains: {{.TotalChains}}
Open (non-terminated) chains rooted in NEWT: {{len .Open}}
{{range .Open}}
Root ID: {{.RootID}}
Last Dissemination ID: {{.LastID}}
Last Action: {{.LastAction}}
Event Timestamp: {{.EventTimestamp.Format "2006-01-02T15:04:05Z"}}
Expiration Date: {{.ExpirationDate}}
Swap Type: {{.ProductName}}
{{- range .Amounts}}
{{.}}
{{- end}}
--------------------------------------------------
{{end}}
{{- if .ExportPath}}Open chains saved to {{.ExportPath}}
{{end}}`
	t, err := template.New("swaps").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, view)
}

func formatAmounts(p domain.OpenPosition) []string {
	currencies := map[string]bool{}
	for cur := range p.Notional {
		currencies[cur] = true
	}
	for cur := range p.Quantity {
		currencies[cur] = true
	}
	sorted := make([]string, 0, len(currencies))
	for cur := range currencies {
		sorted = append(sorted, cur)
	}
	sort.Strings(sorted)

	var lines []string
	for _, cur := range sorted {
		if v := p.Notional[cur]; v != 0 {
			lines = append(lines, fmt.Sprintf("Notional_%s: %.2f", cur, v))
		}
		if v := p.Quantity[cur]; v != 0 {
			lines = append(lines, fmt.Sprintf("Quantity_%s: %.2f", cur, v))
		}
	}
	return lines
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}
