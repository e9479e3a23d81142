package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func (c *CLI) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate translations and content without building",
		Long: `Validates the site's localization setup: the default locale must define
every UI string and data key, and every content entry must belong to a
configured locale. An entry under a locale-shaped directory that is not in
locales.codes (say blog/de/ when only en and fr are configured) is built
for no locale at all; check fails on those so they cannot vanish silently.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.validator.Check(cmd.Context())
			if err != nil {
				return fmt.Errorf("check: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, locale := range sortedLocales(report.MissingTextKeys) {
				fmt.Fprintf(out, "locale %s is missing UI strings (fallback applies): %v\n", locale, report.MissingTextKeys[locale])
			}
			for _, locale := range sortedLocales(report.MissingDataKeys) {
				fmt.Fprintf(out, "locale %s is missing data keys (fallback applies): %v\n", locale, report.MissingDataKeys[locale])
			}
			for _, id := range report.OrphanEntries {
				fmt.Fprintf(out, "entry %s has an unconfigured locale prefix and is built for no locale\n", id)
			}

			// Coverage gaps are informational; orphaned content is a defect.
			if len(report.OrphanEntries) > 0 {
				return fmt.Errorf("check: %d entries belong to no configured locale", len(report.OrphanEntries))
			}
			if report.Clean() {
				fmt.Fprintln(out, "ok")
			}
			return nil
		},
	}
}

func sortedLocales(m map[string][]string) []string {
	out := make([]string, 0, len(m))
	for locale := range m {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}
