package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/artpersonnft/SECthingv2/pkg/server"
	"github.com/artpersonnft/SECthingv2/pkg/services/archive"
	"github.com/artpersonnft/SECthingv2/pkg/services/config"
)

var profilePath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Serve downloaded archives and rendered charts",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&profilePath, "profile", "p", config.DefaultProfilePath(),
		"Path to the profile rc file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	profiles, err := config.NewRegistry(profilePath)
	if err != nil {
		return fmt.Errorf("failed to load profile file: %w", err)
	}
	profile, err := profiles.GetProfile(ctx, os.Getenv("SECTHING_PROFILE"))
	if err != nil {
		return fmt.Errorf("failed to resolve profile: %w", err)
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

	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = "127.0.0.1"
	}
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8484"
	}
	addr := net.JoinHostPort(host, port)

	logger.Info().Str("data_dir", profile.DataDir).Str("charts_dir", profile.ChartsDir).Msg("serving archive tree")

	api := server.NewWebAPI(server.Config{
		Addr: addr,
		Dependencies: server.Dependencies{
			Registry:  registry,
			DataDir:   profile.DataDir,
			ChartsDir: profile.ChartsDir,
			Logger:    logger,
		},
	})
	return api.Start()
}
