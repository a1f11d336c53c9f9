package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/skillpilot/skillpilot/internal/theme"
)

// StatsCmd shows usage counters
type StatsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Top    int    `help:"Number of entries shown per ranking" default:"10"`
}

// Run executes the stats command
func (s *StatsCmd) Run(container *Container) error {
	stats, err := container.Stats.Load(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}

	if s.Format == "json" {
		return printJSON(stats)
	}

	fmt.Println(theme.TitleStyle.Render("Usage"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Scans\t%s\n", formatNumber(stats.TotalScans))
	fmt.Fprintf(w, "Links created\t%s\n", formatNumber(stats.TotalLinksCreated))
	fmt.Fprintf(w, "Links removed\t%s\n", formatNumber(stats.TotalLinksRemoved))
	fmt.Fprintf(w, "Broken links cleaned\t%s\n", formatNumber(stats.TotalBrokenCleaned))
	w.Flush()

	s.renderRanking("Most toggled skills", stats.ToggleCounts)
	s.renderRanking("Most applied profiles", stats.ProfileApplyCounts)
	return nil
}

func (s *StatsCmd) renderRanking(title string, counts map[string]int64) {
	fmt.Println()
	fmt.Println(theme.HeaderStyle.Render(title))
	if len(counts) == 0 {
		fmt.Println(theme.MutedStyle.Render("No data yet."))
		return
	}

	for i, key := range rankKeys(counts) {
		if s.Top > 0 && i >= s.Top {
			break
		}
		fmt.Printf("%3d. %-30s %s\n", i+1, key, formatNumber(counts[key]))
	}
}

// rankKeys orders keys by count descending, then by key
func rankKeys(counts map[string]int64) []string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

// formatNumber formats a number with comma separators
func formatNumber(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var result []byte
	for i := range len(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, s[i])
	}
	return string(result)
}
