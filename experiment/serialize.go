package experiment

import (
	"encoding/json"
	"fmt"
)

// Report is the machine-readable form of a run, emitted in place of the
// rendered tables when JSON output is selected.
type Report struct {
	Parallelism int    `json:"parallelism"`
	GoVersion   string `json:"go_version"`
	Trials      int    `json:"trials"`
	Warmup      bool   `json:"warmup"`
	Seed        int64  `json:"seed"`

	Demo        []DemoResult `json:"demo,omitempty"`
	Sweep       []SweepRow   `json:"sweep,omitempty"`
	CostWorkers []int        `json:"cost_workers,omitempty"`
	Cost        []CostRow    `json:"cost,omitempty"`
	Balance     []BalanceRow `json:"balance,omitempty"`
}

// DemoResult holds one strategy's sample statistics from the demonstration
// phase.
type DemoResult struct {
	Strategy string  `json:"strategy"`
	Workers  int     `json:"workers"`
	MeanMS   float64 `json:"mean_ms"`
	MinMS    float64 `json:"min_ms"`
	MaxMS    float64 `json:"max_ms"`
	StdDevMS float64 `json:"stddev_ms"`
}

// SweepRow is one (N, M) cell of the size-versus-workers sweep.
type SweepRow struct {
	Size    int     `json:"n"`
	Workers int     `json:"m"`
	SeqMS   float64 `json:"t_seq_ms"`
	RangeMS float64 `json:"t_par_range_ms"`
	Speedup float64 `json:"speedup_range"`
}

// CostRow is one cost factor of the per-element cost sweep. RangeMS holds
// one measurement per entry of the report's CostWorkers, in order.
type CostRow struct {
	Cost    int       `json:"k"`
	SeqMS   float64   `json:"t_seq_ms"`
	RangeMS []float64 `json:"t_range_ms"`
}

// BalanceRow is one worker count of the imbalance comparison.
type BalanceRow struct {
	Workers  int     `json:"m"`
	RangeMS  float64 `json:"range_ms"`
	CyclicMS float64 `json:"cyclic_ms"`
}

// outputJSON writes the report as indented JSON.
func (e *Experiment) outputJSON() error {
	data, err := json.MarshalIndent(e.report, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing report: %w", err)
	}

	fmt.Fprintln(e.out, string(data))
	return nil
}
