// ABOUTME: extract subcommand prints the brand inferred from a page
// ABOUTME: Output is indented JSON so it can be fed back as a rebrand target

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <url>",
		Short: "Print the brand elements inferred from a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alternate, _ := cmd.Flags().GetBool("alternate")

			brands, err := buildPipeline(cmd)
			if err != nil {
				return err
			}
			return runExtract(cmd, brands, args[0], alternate)
		},
	}

	cmd.Flags().BoolP("alternate", "a", false, "Skip the direct fetch and use the alternate retrieval paths")
	return cmd
}

func runExtract(cmd *cobra.Command, brands interfaces.BrandPipeline, url string, alternate bool) error {
	analysis, err := brands.Analyze(cmd.Context(), url, interfaces.AnalyzeOptions{
		PreferAlternatePath: alternate,
	})
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(analysis.Brand, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
