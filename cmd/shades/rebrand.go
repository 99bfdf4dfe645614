// ABOUTME: rebrand subcommand rewrites a page for a target brand given on the command line
// ABOUTME: Writes the rebranded markup to a file or stdout and reports the change counters

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/DTI-Technologies/shades-webapp/core/domain"
	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
)

type rebrandFlags struct {
	name      string
	primary   string
	secondary string
	accent    string
	font      string
	logo      string
	out       string
	alternate bool
	aiCSS     bool
}

func newRebrandCmd() *cobra.Command {
	var flags rebrandFlags

	cmd := &cobra.Command{
		Use:   "rebrand <url>",
		Short: "Rewrite a page for another brand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			brands, err := buildPipeline(cmd)
			if err != nil {
				return err
			}
			return runRebrand(cmd, brands, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.name, "name", "", "Target brand name")
	cmd.Flags().StringVar(&flags.primary, "primary", "", "Target primary color")
	cmd.Flags().StringVar(&flags.secondary, "secondary", "", "Target secondary color")
	cmd.Flags().StringVar(&flags.accent, "accent", "", "Target accent color")
	cmd.Flags().StringVar(&flags.font, "font", "", "Target primary font family")
	cmd.Flags().StringVar(&flags.logo, "logo", "", "Target logo URL")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "Write the rebranded markup to this file instead of stdout")
	cmd.Flags().BoolVarP(&flags.alternate, "alternate", "a", false, "Skip the direct fetch and use the alternate retrieval paths")
	cmd.Flags().BoolVar(&flags.aiCSS, "ai-css", false, "Append AI generated CSS when OPENAI_API_KEY is set")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("primary")
	_ = cmd.MarkFlagRequired("font")

	return cmd
}

// target builds the brand the page is rewritten to
func (f rebrandFlags) target() domain.BrandElements {
	return domain.BrandElements{
		Name: f.name,
		Logo: f.logo,
		Colors: domain.BrandColors{
			Primary:   f.primary,
			Secondary: f.secondary,
			Accent:    f.accent,
		},
		Typography: domain.Typography{Primary: f.font},
	}
}

func runRebrand(cmd *cobra.Command, brands interfaces.BrandPipeline, url string, flags rebrandFlags) error {
	ctx := cmd.Context()

	content, err := brands.Scrape(ctx, url, flags.alternate)
	if err != nil {
		return err
	}
	original := brands.Extract(*content)
	target := flags.target()

	result, err := brands.Rebrand(ctx, *content, original, target, interfaces.RebrandOptions{
		GenerateCSS: flags.aiCSS,
	})
	if err != nil {
		return err
	}

	if err := writeMarkup(cmd.OutOrStdout(), flags.out, result.HTML); err != nil {
		return err
	}

	report := cmd.ErrOrStderr()
	fmt.Fprintf(report, "%s %s %s %s\n", green("Rebranded"), cyan(original.Name), "->", cyan(target.Name))
	fmt.Fprintf(report, "  names:  %d\n", result.Changes.NameReplacements)
	fmt.Fprintf(report, "  colors: %d\n", result.Changes.ColorReplacements)
	fmt.Fprintf(report, "  fonts:  %d\n", result.Changes.FontReplacements)
	if result.Changes.LogoReplaced {
		fmt.Fprintf(report, "  logo:   %s\n", green("replaced"))
	} else {
		fmt.Fprintf(report, "  logo:   %s\n", yellow("unchanged"))
	}
	return nil
}

func writeMarkup(stdout io.Writer, path, markup string) error {
	if path == "" {
		_, err := io.WriteString(stdout, markup)
		return err
	}
	if err := os.WriteFile(path, []byte(markup), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
