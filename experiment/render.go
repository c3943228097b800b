package experiment

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
)

// Color helpers shared by the rendered report. Data rows stay plain fmt so
// piped output remains parseable; color auto-disables off a TTY anyway.
var (
	bold  = color.New(color.Bold)
	green = color.New(color.FgGreen)
)

func colorPrintf(w io.Writer, c *color.Color, format string, a ...any) {
	_, _ = c.Fprintf(w, format, a...)
}

func colorPrintln(w io.Writer, c *color.Color, a ...any) {
	_, _ = c.Fprintln(w, a...)
}

func (e *Experiment) printBanner() {
	colorPrintln(e.out, bold, "╔════════════════════════════════════════════════════════════╗")
	colorPrintf(e.out, bold, "║       %-52s ║\n", "Parallel Decomposition Micro-Benchmark")
	colorPrintln(e.out, bold, "╚════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(e.out)
}

func (e *Experiment) printConfig(phaseCount int) {
	warmupNote := " (first discarded as warm-up)"
	if e.cfg.NoWarmup {
		warmupNote = " (all kept)"
	}

	colorPrintln(e.out, bold, "⚙️  Configuration:")
	fmt.Fprintf(e.out, "  Phases:       %d of 4\n", phaseCount)
	fmt.Fprintf(e.out, "  Trials:       %d per measurement%s\n", e.cfg.Trials, warmupNote)
	fmt.Fprintf(e.out, "  Seed:         %d\n", e.cfg.Seed)
	fmt.Fprintf(e.out, "  Parallelism:  %d logical CPUs\n", e.report.Parallelism)
	if e.cfg.Cooldown > 0 {
		fmt.Fprintf(e.out, "  Cooldown:     %v between trials\n", e.cfg.Cooldown)
	}
	if e.cfg.Pin {
		fmt.Fprintln(e.out, "  Pinning:      workers pinned to cores")
	}
	fmt.Fprintln(e.out)
}

func (e *Experiment) sectionHeader(title string, descriptions ...string) {
	fmt.Fprintln(e.out)
	colorPrintln(e.out, bold, "═══════════════════════════════════════════════════════════")
	colorPrintln(e.out, bold, title)
	colorPrintln(e.out, bold, "═══════════════════════════════════════════════════════════")
	for _, desc := range descriptions {
		fmt.Fprintln(e.out, desc)
	}
	fmt.Fprintln(e.out)
}

// renderDemoTable prints the Phase A comparison, ranked by mean time with the
// sequential run as the baseline column.
func (e *Experiment) renderDemoTable(results []DemoResult) {
	ranked := make([]DemoResult, len(results))
	copy(ranked, results)
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].MeanMS < ranked[j].MeanMS })

	rank := make(map[string]int, len(ranked))
	for i, r := range ranked {
		rank[r.Strategy] = i + 1
	}

	var baselineMS float64
	for _, r := range results {
		if r.Strategy == "Sequential" {
			baselineMS = r.MeanMS
		}
	}

	table := tablewriter.NewWriter(e.out)
	table.Header("Rank", "Strategy", "Workers", "Mean", "Min", "Max", "StdDev", "vs Sequential")

	for _, r := range results {
		_ = table.Append(
			rankIcon(rank[r.Strategy]),
			r.Strategy,
			fmt.Sprintf("%d", r.Workers),
			formatMillis(r.MeanMS),
			formatMillis(r.MinMS),
			formatMillis(r.MaxMS),
			formatMillis(r.StdDevMS),
			vsBaseline(r.MeanMS, baselineMS, r.Strategy == "Sequential"),
		)
	}

	_ = table.Render()
}

func (e *Experiment) renderSweepCSV(rows []SweepRow) {
	fmt.Fprintln(e.out, "N,M,T_seq_ms,T_par_range_ms,Speedup_range")
	for _, row := range rows {
		fmt.Fprintf(e.out, "%d,%d,%.3f,%.3f,%.2f\n",
			row.Size, row.Workers, row.SeqMS, row.RangeMS, row.Speedup)
	}
}

func (e *Experiment) renderCostCSV(rows []CostRow, workers []int) {
	var header strings.Builder
	header.WriteString("K,T_seq_ms")
	for _, m := range workers {
		fmt.Fprintf(&header, ",T_M%d_ms", m)
	}
	fmt.Fprintln(e.out, header.String())

	for _, row := range rows {
		fmt.Fprintf(e.out, "%d,%.2f", row.Cost, row.SeqMS)
		for _, ms := range row.RangeMS {
			fmt.Fprintf(e.out, ",%.2f", ms)
		}
		fmt.Fprintln(e.out)
	}
}

func (e *Experiment) renderBalanceRows(rows []BalanceRow) {
	for _, row := range rows {
		fmt.Fprintf(e.out, "M=%d: Ranges=%.2f ms, Cyclic=%.2f ms (lower is better)\n",
			row.Workers, row.RangeMS, row.CyclicMS)
	}
}

func rankIcon(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("%d", rank)
	}
}

// vsBaseline formats a strategy's mean relative to the sequential baseline;
// below 1.00x is faster than sequential.
func vsBaseline(ms, baselineMS float64, isBaseline bool) string {
	if isBaseline {
		return "baseline"
	}
	if baselineMS <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.2fx", ms/baselineMS)
}

func formatMillis(ms float64) string {
	return fmt.Sprintf("%.3f ms", ms)
}

// formatNumber adds comma separators to an integer.
func formatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// progressBar builds a stderr progress bar for a sweep, or returns nil when
// progress output is off. Progress goes to stderr so stdout stays
// machine-readable.
func (e *Experiment) progressBar(total int, description string) *progressbar.ProgressBar {
	if !e.cfg.Progress || e.silent() {
		return nil
	}

	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func barAdd(bar *progressbar.ProgressBar) {
	if bar != nil {
		_ = bar.Add(1)
	}
}

func barFinish(bar *progressbar.ProgressBar) {
	if bar != nil {
		_ = bar.Finish()
	}
}
