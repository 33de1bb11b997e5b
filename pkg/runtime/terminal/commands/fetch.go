package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/artpersonnft/SECthingv2/pkg/adapters"
	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
)

type FetchCmd struct {
	category string
	from     string
	to       string
	outDir   string
	asJSON   bool
	deps     Deps
}

func NewFetchCmd(deps Deps) *cobra.Command {
	fc := &FetchCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download archive files for a category and date range",
		RunE:  fc.run,
	}

	cmd.Flags().StringVar(&fc.category, "category", "", "Archive category (see `sources`)")
	cmd.Flags().StringVar(&fc.from, "from", "", "Range start (2006-01 or 2006-01-02)")
	cmd.Flags().StringVar(&fc.to, "to", "", "Range end, inclusive (defaults to --from)")
	cmd.Flags().StringVar(&fc.outDir, "out", "", "Output directory (defaults to the profile data_dir)")
	cmd.Flags().BoolVar(&fc.asJSON, "json", false, "Emit the report as JSON instead of a table")

	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func (fc *FetchCmd) run(cmd *cobra.Command, _ []string) error {
	from, err := parseRangeBound(fc.from)
	if err != nil {
		return err
	}
	to := from
	if fc.to != "" {
		if to, err = parseRangeBound(fc.to); err != nil {
			return err
		}
	}
	outDir := fc.outDir
	if outDir == "" {
		outDir = fc.deps.Profile.DataDir
	}

	baseURL, err := baseURLFor(fc.deps.Settings, fc.category)
	if err != nil {
		return err
	}
	source, err := fc.deps.Registry.Create(fc.category, baseURL)
	if err != nil {
		return err
	}

	report, err := fc.deps.Downloader.Fetch(cmd.Context(), source, domain.FetchRequest{
		Category: fc.category,
		From:     from,
		To:       to,
		OutDir:   outDir,
	})
	if err != nil {
		return err
	}
	if fc.asJSON {
		enc := json.NewEncoder(fc.deps.Output)
		enc.SetIndent("", "  ")
		if err := enc.Encode(adapters.MapFetchReportDomainToApi(report)); err != nil {
			return err
		}
	} else if err := fc.deps.Reporter.HandleFetch(report); err != nil {
		return err
	}
	if len(report.Outcomes) > 0 && report.Succeeded() == 0 {
		return fmt.Errorf("all %d items failed", len(report.Outcomes))
	}
	return nil
}

func parseRangeBound(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "2006-01", "2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (want 2006, 2006-01 or 2006-01-02)", s)
}
