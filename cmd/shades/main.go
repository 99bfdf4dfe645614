// ABOUTME: Command-line front end for brand extraction and rebranding
// ABOUTME: Builds a library client from the same environment configuration as the API server

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
	"github.com/DTI-Technologies/shades-webapp/core/services"
	stdhttp "github.com/DTI-Technologies/shades-webapp/infrastructure/http/standard"
	"github.com/DTI-Technologies/shades-webapp/pkg/config"
	"github.com/DTI-Technologies/shades-webapp/pkg/shades"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, red("error:"), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "shades",
		Short:         "Extract brand identities from web pages and rebrand them",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log retrieval attempts to stderr")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colorized output")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			color.NoColor = true
		}
	}

	rootCmd.AddCommand(newExtractCmd(), newRebrandCmd())
	return rootCmd
}

// buildPipeline wires the library client from environment configuration
func buildPipeline(cmd *cobra.Command) (interfaces.BrandPipeline, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, err
	}
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.ApplyFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := "error"
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	logger := shades.LoggerTo(level, cmd.ErrOrStderr())

	timeout := cfg.Retrieval.AlternateTimeout
	if cfg.Retrieval.DirectTimeout > timeout {
		timeout = cfg.Retrieval.DirectTimeout
	}

	opts := []shades.Option{
		shades.WithLogger(logger),
		shades.WithHTTPClient(stdhttp.NewStandardHTTPClient(timeout, cfg.Retrieval.MaxRedirects)),
		shades.WithRetrieval(cfg.Retrieval),
		shades.WithLogoColors(false),
	}
	if cfg.AI.Enabled() {
		opts = append(opts, shades.WithStyleGenerator(services.NewAIStyleGenerator(cfg.AI, logger)))
	}

	client, err := shades.NewClient(opts...)
	if err != nil {
		return nil, err
	}
	return client, nil
}
