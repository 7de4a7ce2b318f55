package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/heurigo/bench"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle  = lipgloss.NewStyle().Bold(true)
	rowStyle    = lipgloss.NewStyle().PaddingLeft(1)
)

// renderReport writes agg's averages to stderr as a styled title line plus
// a single data line per solver. Machine consumers should read
// bench.AggregateResult directly instead of scraping this output.
func renderReport(agg bench.AggregateResult) {
	title := headerStyle.Render(fmt.Sprintf("%s (%d runs)", agg.Name, len(agg.Runs)))
	line := rowStyle.Render(fmt.Sprintf(
		"%s %s  %s %s  %s %s  %s %s",
		labelStyle.Render("avg-lb"), valueStyle.Render(fmt.Sprintf("%.4f", agg.AvgLB)),
		labelStyle.Render("avg-ub"), valueStyle.Render(fmt.Sprintf("%.4f", agg.AvgUB)),
		labelStyle.Render("avg-iter"), valueStyle.Render(fmt.Sprintf("%.1f", agg.AvgIter)),
		labelStyle.Render("avg-time"), valueStyle.Render(agg.AvgTime.String()),
	))
	fmt.Fprintln(os.Stderr, title)
	fmt.Fprintln(os.Stderr, line)
}
