// Command fraudwatch-sim runs the fraud-alert scheduling experiments and the
// branch transaction-log merge exercises as a batch, printing the summary
// tables to stdout. Use -seed for reproducible alert batches.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/fraudwatch/fraudwatch/internal/dispatch"
	"github.com/fraudwatch/fraudwatch/internal/generate"
	"github.com/fraudwatch/fraudwatch/internal/metrics"
	"github.com/fraudwatch/fraudwatch/internal/report"
	"github.com/fraudwatch/fraudwatch/internal/txmerge"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed for generated alerts (0 = time-based)")
	printMetrics := flag.Bool("metrics", false, "print the large random demo run in Prometheus exposition format")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	params := generate.DefaultParams()

	// Timing experiment output (for graphing externally).
	fmt.Println("=== Greedy Algorithm Scheduling Timing Experiment ===")
	report.TimingCSV(os.Stdout, []int{100, 500, 1000, 2000, 5000}, func(size int) time.Duration {
		alerts := generate.Batch(rng, size, params)
		teams := classicTeams()
		start := time.Now()
		s := dispatch.NewScheduler(alerts, teams)
		s.Schedule()
		return time.Since(start)
	})

	fmt.Println("\n=== Demo: Large Random Test ===")
	demo := runTest(generate.Batch(rng, 1000, params))
	if *printMetrics {
		fmt.Println()
		if err := metrics.Encode(os.Stdout, demo); err != nil {
			slog.Error("metrics encoding failed", "err", err)
		}
	}

	fmt.Println("\n=== Edge Case Test 1: Overlapping Alerts ===")
	runTest(mustAlerts([]alertSpec{
		{"O1", 1, 5, 3, 4.0, "Branch1"},
		{"O2", 4, 8, 5, 2.5, "Branch2"},
		{"O3", 7, 10, 2, 3.5, "Branch3"},
		{"O4", 6, 9, 4, 1.2, "Branch4"},
		{"O5", 3, 6, 3, 3.0, "Branch5"},
	}))

	fmt.Println("\n=== Edge Case Test 2: Zero Length and Same Start/End Alerts ===")
	runTest(mustAlerts([]alertSpec{
		{"Z1", 5, 5, 1, 2.0, "Branch1"},
		{"Z2", 5, 5, 3, 2.5, "Branch2"},
		{"Z3", 5, 5, 4, 1.5, "Branch3"},
		{"Z4", 1, 2, 2, 3.5, "Branch4"},
		{"Z5", 2, 3, 3, 2.0, "Branch5"},
	}))

	fmt.Println("\n=== Example Test: Known Intervals ===")
	runTest(mustAlerts([]alertSpec{
		{"E1", 1, 4, 1, 1.0, "Branch0"},
		{"E2", 3, 5, 1, 1.0, "Branch0"},
		{"E3", 0, 6, 1, 1.0, "Branch0"},
		{"E4", 5, 7, 1, 1.0, "Branch0"},
		{"E5", 8, 9, 1, 1.0, "Branch0"},
		{"E6", 5, 9, 1, 1.0, "Branch0"},
	}))

	fmt.Println()
	runMergeExercises()
}

// classicTeams is the three-team roster used across all experiments.
func classicTeams() []*dispatch.Team {
	return []*dispatch.Team{
		dispatch.NewTeam("Alpha", 1.1),
		dispatch.NewTeam("Beta", 0.9),
		dispatch.NewTeam("Gamma", 1.0),
	}
}

type alertSpec struct {
	id       string
	start    int
	end      int
	urgency  int
	severity float64
	location string
}

func mustAlerts(specs []alertSpec) []*dispatch.Alert {
	alerts := make([]*dispatch.Alert, 0, len(specs))
	for _, s := range specs {
		a, err := dispatch.NewAlert(s.id, s.start, s.end, s.urgency, s.severity, s.location)
		if err != nil {
			slog.Error("bad alert in scenario", "id", s.id, "err", err)
			os.Exit(1)
		}
		alerts = append(alerts, a)
	}
	return alerts
}

// runTest schedules alerts on a fresh roster, prints the summary table and
// returns the run for further inspection.
func runTest(alerts []*dispatch.Alert) *report.Run {
	fmt.Printf("Total alerts generated: %d\n", len(alerts))

	teams := classicTeams()

	memBefore := report.MemoryUsageMB()
	startedAt := time.Now()

	s := dispatch.NewScheduler(alerts, teams)
	s.Schedule()

	duration := time.Since(startedAt)
	memAfter := report.MemoryUsageMB()

	run := report.Build("sim", startedAt, duration,
		len(alerts), teams, s.Unassigned(), memAfter-memBefore)
	run.WriteTable(os.Stdout)
	return run
}

// --- transaction-log merge exercises ----------------------------------------

func runMergeExercises() {
	rng := rand.New(rand.NewSource(777))
	priorities := []string{"Low", "Medium", "High"}

	// Random per-branch logs with non-decreasing timestamps.
	const branches, perBranch = 8, 2000
	logs := make([][]txmerge.Transaction, branches)
	for b := 0; b < branches; b++ {
		log := make([]txmerge.Transaction, 0, perBranch)
		t := 0
		for i := 0; i < perBranch; i++ {
			t += rng.Intn(5)
			log = append(log, txmerge.New(t, priorities[rng.Intn(3)], b, i))
		}
		logs[b] = log
	}
	start := time.Now()
	merged := txmerge.MergeK(logs)
	fmt.Println("=== Simulated Test: Transaction Merge (Divide & Conquer) ===")
	fmt.Printf("%-38s %d\n", "Merged transaction count:", len(merged))
	fmt.Printf("%-38s %d\n", "Runtime (ms):", time.Since(start).Milliseconds())
	fmt.Println("Validation: " + passFail(txmerge.Validate(merged)))

	// Same timestamp, differing priorities: higher priority merges first.
	dup := [][]txmerge.Transaction{
		{
			txmerge.New(10, "High", 0, 1),
			txmerge.New(10, "Medium", 0, 2),
		},
		{
			txmerge.New(10, "High", 1, 1),
			txmerge.New(10, "Low", 1, 2),
		},
	}
	dupMerged := txmerge.MergeK(dup)
	fmt.Println("=== Edge Case: Duplicate Timestamps, Priorities ===")
	fmt.Println("Merged Output:")
	for _, t := range dupMerged {
		fmt.Println(t)
	}
	fmt.Println("Validation: " + passFail(txmerge.Validate(dupMerged)))

	// Empty branch logs are skipped without affecting order.
	empty := [][]txmerge.Transaction{{}, {}, dup[0]}
	emptyMerged := txmerge.MergeK(empty)
	fmt.Println("=== Edge Case: Empty Branch Logs ===")
	fmt.Println("Merged Output:")
	for _, t := range emptyMerged {
		fmt.Println(t)
	}
	fmt.Println("Validation: " + passFail(txmerge.Validate(emptyMerged)))

	// Stress: all-High logs, large N, ties broken by branch then txn ID.
	const bigN = 16000
	stress := make([][]txmerge.Transaction, branches)
	for b := 0; b < branches; b++ {
		log := make([]txmerge.Transaction, 0, bigN)
		t := rng.Intn(10)
		for j := 0; j < bigN; j++ {
			log = append(log, txmerge.New(t+j, "High", b, j))
		}
		stress[b] = log
	}
	startStress := time.Now()
	stressMerged := txmerge.MergeK(stress)
	fmt.Println("=== Stress Test: Same Priority, Large N ===")
	fmt.Printf("%-38s %d\n", "Merged transaction count:", len(stressMerged))
	fmt.Printf("%-38s %d\n", "Runtime (ms):", time.Since(startStress).Milliseconds())
	fmt.Println("Validation: " + passFail(txmerge.Validate(stressMerged)))

	fmt.Println("\n=== Example Test: Transaction Merge ===")
	branch0 := []txmerge.Transaction{
		txmerge.New(1, "High", 0, 1),
		txmerge.New(5, "Low", 0, 2),
	}
	branch1 := []txmerge.Transaction{
		txmerge.New(3, "Medium", 1, 1),
		txmerge.New(5, "High", 1, 2),
	}
	fmt.Printf("Branch 0: %v\n", branch0)
	fmt.Printf("Branch 1: %v\n", branch1)
	fmt.Println("Merged Output:")
	for _, t := range txmerge.MergeK([][]txmerge.Transaction{branch0, branch1}) {
		fmt.Println(t)
	}
}

func passFail(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}
