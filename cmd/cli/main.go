package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/artpersonnft/SECthingv2/pkg/runtime/terminal"
	"github.com/artpersonnft/SECthingv2/pkg/services/archive"
	"github.com/artpersonnft/SECthingv2/pkg/services/config"
	"github.com/artpersonnft/SECthingv2/pkg/services/pricing"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	settings, err := config.LoadSettings(os.Getenv("SECTHING_SETTINGS"))
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	profilePath := os.Getenv("SECTHING_RC")
	if profilePath == "" {
		profilePath = config.DefaultProfilePath()
	}
	profiles, err := config.NewRegistry(profilePath)
	if err != nil {
		return fmt.Errorf("load profiles: %w", err)
	}
	profile, err := profiles.GetProfile(ctx, os.Getenv("SECTHING_PROFILE"))
	if err != nil {
		return fmt.Errorf("resolve profile: %w", err)
	}

	registry := archive.NewRegistry()
	for category, factory := range map[string]archive.SourceFactory{
		archive.CategoryFTD:   archive.NewFTDSource,
		archive.CategorySwaps: archive.NewSwapsSource,
		archive.CategoryEdgar: archive.NewEdgarSource,
	} {
		if err := registry.Register(category, factory); err != nil {
			return err
		}
	}

	cli := terminal.NewCLI(terminal.Options{
		Registry: registry,
		Downloader: archive.NewDownloader(
			&http.Client{Timeout: settings.HTTPTimeout},
			profile.UserAgent,
		),
		Settings: settings,
		Profile:  profile,
		Prices:   pricing.NewYahooProvider(),
		Output:   os.Stdout,
	})

	return cli.Execute(ctx)
}
