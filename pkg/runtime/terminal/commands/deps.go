package commands

import (
	"fmt"
	"io"

	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
	"github.com/artpersonnft/SECthingv2/pkg/runtime/terminal/export"
	"github.com/artpersonnft/SECthingv2/pkg/services/analysis"
	"github.com/artpersonnft/SECthingv2/pkg/services/archive"
	"github.com/artpersonnft/SECthingv2/pkg/services/config"
)

// Deps carries the collaborators every subcommand shares. Input/Output are
// injectable so the interactive loop is testable without a real terminal.
type Deps struct {
	Registry   archive.Registry
	Downloader *archive.Downloader
	Analyzer   *analysis.Analyzer
	Settings   *config.Settings
	Profile    *config.Profile
	Reporter   *export.Reporter
	Input      io.Reader
	Output     io.Writer
}

// baseURLFor resolves the configured endpoint for a category.
func baseURLFor(s *config.Settings, category string) (string, error) {
	switch category {
	case archive.CategoryFTD:
		return s.FTDBaseURL, nil
	case archive.CategorySwaps:
		return s.SwapsBaseURL, nil
	case archive.CategoryEdgar:
		return s.EdgarBaseURL, nil
	}
	return "", fmt.Errorf("no endpoint configured for category %q", category)
}

func granularityAndMode(granularity, mode string) (domain.Granularity, domain.AggMode, error) {
	g, err := domain.ParseGranularity(granularity)
	if err != nil {
		return "", "", err
	}
	m, err := domain.ParseAggMode(mode)
	if err != nil {
		return "", "", err
	}
	return g, m, nil
}
