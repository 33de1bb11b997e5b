package terminal

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/artpersonnft/SECthingv2/pkg/runtime/terminal/commands"
	"github.com/artpersonnft/SECthingv2/pkg/runtime/terminal/export"
	"github.com/artpersonnft/SECthingv2/pkg/services/analysis"
	"github.com/artpersonnft/SECthingv2/pkg/services/archive"
	"github.com/artpersonnft/SECthingv2/pkg/services/config"
	"github.com/artpersonnft/SECthingv2/pkg/services/pricing"
)

// CLI represents the command-line interface
type CLI struct {
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry   archive.Registry
	Downloader *archive.Downloader
	Settings   *config.Settings
	Profile    *config.Profile
	Prices     pricing.Provider
	Input      io.Reader
	Output     io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	deps := commands.Deps{
		Registry:   opts.Registry,
		Downloader: opts.Downloader,
		Analyzer:   analysis.NewAnalyzer(opts.Prices),
		Settings:   opts.Settings,
		Profile:    opts.Profile,
		Reporter:   export.NewReporter(opts.Output),
		Input:      opts.Input,
		Output:     opts.Output,
	}

	cli := &CLI{}
	cli.rootCmd = newRootCmd(deps)
	return cli
}

func (cli *CLI) Execute(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

func newRootCmd(deps commands.Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secthing",
		Short: "SEC archive fetcher and transaction visualizer",
	}

	cmd.AddCommand(commands.NewFetchCmd(deps))
	cmd.AddCommand(commands.NewAnalyzeCmd(deps))
	cmd.AddCommand(commands.NewSwapsCmd(deps))
	cmd.AddCommand(commands.NewSourcesCmd(deps))
	cmd.AddCommand(commands.NewInteractiveCmd(deps))

	return cmd
}
