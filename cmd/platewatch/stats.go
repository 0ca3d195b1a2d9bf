package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/platewatch/platewatch/internal/compliance"
	"github.com/platewatch/platewatch/internal/model"
	"github.com/platewatch/platewatch/internal/tui/themes"
)

func init() {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print compliance statistics for the cached dataset",
		Long: `Summarize the cached inspection dataset: overall compliance rate,
status distribution, and the highest-volume inspection categories.`,
		RunE: runStats,
	}

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer func() { _ = store.Close() }()

	records, info, err := loadCachedRecords(ctx, store)
	if err != nil {
		return fmt.Errorf("no cached data, run 'platewatch fetch' first: %w", err)
	}

	summary := compliance.Summarize(records)
	categories := compliance.SummarizeByCategory(records)
	theme := themes.Default

	var b strings.Builder

	b.WriteString(theme.Title.Render("Inspection Summary"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  Inspections:     %s\n", theme.Bold.Render(fmt.Sprintf("%d", summary.Tally.Total)))

	rateStyle := theme.Bold.Foreground(theme.BandColor(compliance.BandFor(summary.ComplianceRate)))
	fmt.Fprintf(&b, "  Compliance rate: %s\n", rateStyle.Render(summary.RateLabel()))
	fmt.Fprintf(&b, "  Cities covered:  %s\n", theme.Bold.Render(fmt.Sprintf("%d", summary.UniqueCities)))

	if info != nil {
		fmt.Fprintf(&b, "  Fetched:         %s\n", theme.Muted.Render(info.FetchedAt.Local().Format("2006-01-02 15:04")))
	}

	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("By Status"))
	b.WriteString("\n")
	for _, status := range model.AllStatuses() {
		count := summary.Tally.ByStatus[status]
		if count == 0 {
			continue
		}
		label := theme.StatusStyle(status).Render(string(status))
		fmt.Fprintf(&b, "  %-60s %5d  (%.1f%%)\n", label, count, summary.Tally.Percent(status))
	}

	if len(categories) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render("Top Categories"))
		b.WriteString("\n")
		for _, cat := range categories {
			rate := cat.Percent(model.StatusCompliant)
			style := theme.Bold.Foreground(theme.BandColor(compliance.BandFor(rate)))
			fmt.Fprintf(&b, "  %-32s %5d inspections  %s compliant\n",
				cat.Category, cat.Tally.Total, style.Render(fmt.Sprintf("%5.1f%%", rate)))
		}
	}

	fmt.Fprintln(os.Stdout, b.String())
	return nil
}
