package bench

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	vmetrics "github.com/VictoriaMetrics/metrics"
	"github.com/noshiro-pf/immu/cmd/util"
	"github.com/noshiro-pf/immu/lib/container"
	"github.com/noshiro-pf/immu/lib/immutable"
	"github.com/noshiro-pf/immu/lib/registry"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// BenchCmd represents the bench command group
	BenchCmd = &cobra.Command{
		Use:     "bench",
		Short:   "Benchmark the immu containers on this machine",
		Long:    "Runs single-threaded latency workloads over the persistent map/set, the projected variants, the ring buffer queue and the dynamic array stack, and reports per-operation timings.",
		RunE:    run,
		PreRunE: processConfig,
	}

	benchOps     = 100_000
	benchKeys    = 1_000
	benchMapSize = 1_000
	benchSkip    = make([]string, 0)
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// add flags
	key := "ops"
	BenchCmd.Flags().Int(key, 100_000, util.WrapString("Number of operations per workload"))
	key = "keys"
	BenchCmd.Flags().Int(key, 1_000, util.WrapString("How many different keys to spread the operations over"))
	key = "size"
	BenchCmd.Flags().Int(key, 1_000, util.WrapString("Number of entries in the pre-built container fixtures"))
	key = "skip"
	BenchCmd.Flags().String(key, "", util.WrapString("Workloads to skip (comma separated - e.g. map.set,queue)"))
	key = "csv"
	BenchCmd.Flags().String(key, "", util.WrapString("Optional path to save benchmark results as CSV"))
	key = "prom"
	BenchCmd.Flags().String(key, "", util.WrapString("Optional path to export collected metrics in Prometheus text format"))
}

func processConfig(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	benchOps = viper.GetInt("ops")
	benchKeys = viper.GetInt("keys")
	benchMapSize = viper.GetInt("size")
	benchSkip = strings.Split(viper.GetString("skip"), ",")

	return nil
}

// --------------------------------------------------------------------------
// Workloads
// --------------------------------------------------------------------------

// workload is a single benchmarked operation; fn receives the operation
// counter and performs exactly one operation against pre-built state.
type workload struct {
	name string
	fn   func(i int)
}

// buildWorkloads prepares fixtures and returns the closed-over workloads.
func buildWorkloads() []workload {
	keys := make([]string, benchKeys)
	for i := range keys {
		keys[i] = "key-" + strconv.Itoa(i)
	}
	key := func(i int) string { return keys[i%benchKeys] }

	entries := make([]immutable.Entry[string, int], benchMapSize)
	for i := range entries {
		entries[i] = immutable.E("key-"+strconv.Itoa(i), i)
	}
	m := immutable.NewMap(entries...)

	setA := immutable.NewSet[string]()
	setB := immutable.NewSet[string]()
	setA = setA.WithMutations(func(tx immutable.SetTx[string]) {
		for i := 0; i < benchMapSize; i++ {
			tx.Add("a-" + strconv.Itoa(i))
		}
	})
	setB = setB.WithMutations(func(tx immutable.SetTx[string]) {
		for i := benchMapSize / 2; i < 3*benchMapSize/2; i++ {
			tx.Add("a-" + strconv.Itoa(i))
		}
	})

	q := container.NewQueue[int]()
	st := container.NewStack[int]()

	reg := registry.New[immutable.Map[string, int]]("bench")
	reg.Publish("snapshot", m)

	return []workload{
		{"map.get", func(i int) { _ = m.Get(key(i)) }},
		{"map.set", func(i int) { _ = m.Set(key(i), i) }},
		{"map.delete", func(i int) { _ = m.Delete(key(i)) }},
		{"map.batch16", func(i int) {
			_ = m.WithMutations(func(tx immutable.MapTx[string, int]) {
				for j := 0; j < 16; j++ {
					tx.Set(key(i+j), i)
				}
			})
		}},
		{"set.union", func(i int) { _ = immutable.Union(setA, setB) }},
		{"set.diff", func(i int) { _ = immutable.Diff(setA, setB) }},
		{"queue", func(i int) {
			q.Enqueue(i)
			if i%2 == 1 {
				q.Dequeue()
			}
		}},
		{"stack", func(i int) {
			st.Push(i)
			if i%2 == 1 {
				st.Pop()
			}
		}},
		{"registry.update", func(i int) {
			reg.Update("snapshot", func(cur immutable.Map[string, int], _ bool) immutable.Map[string, int] {
				return cur.Set(key(i), i)
			})
		}},
	}
}

// --------------------------------------------------------------------------
// Runner
// --------------------------------------------------------------------------

func run(_ *cobra.Command, _ []string) error {

	fmt.Println("Benchmark tool for the immu containers")

	// Print configuration
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Printf("Operations per workload: %d\n", benchOps)
	fmt.Printf("Key spread: %d\n", benchKeys)
	fmt.Printf("Fixture size: %d\n", benchMapSize)
	fmt.Println()

	fmt.Println("starting workloads...")
	fmt.Println()

	reg := gometrics.NewRegistry()

	for _, w := range buildWorkloads() {
		if shouldSkip(w.name) {
			continue
		}

		timer := gometrics.GetOrRegisterTimer(w.name, reg)

		// copy-on-write workloads rebuild the container per operation, so
		// they get fewer iterations to keep runs comparable in wall time
		ops := benchOps
		switch w.name {
		case "map.get", "queue", "stack":
		default:
			ops = benchOps / 100
		}

		for i := 0; i < ops; i++ {
			start := time.Now()
			w.fn(i)
			timer.UpdateSince(start)
		}

		printResult(w.name, timer)
	}

	// Write results to csv if specified
	if csvPath := viper.GetString("csv"); csvPath != "" {
		fmt.Printf("\nExporting results to CSV: %s\n", csvPath)
		if err := writeResultsToCSV(csvPath, reg); err != nil {
			return fmt.Errorf("failed to export results to CSV: %v", err)
		}
		fmt.Println("Export complete")
	}

	// Write collected metrics in Prometheus text format if specified
	if promPath := viper.GetString("prom"); promPath != "" {
		fmt.Printf("\nExporting metrics to: %s\n", promPath)
		f, err := os.Create(promPath)
		if err != nil {
			return fmt.Errorf("failed to create metrics file: %v", err)
		}
		defer f.Close()
		vmetrics.WritePrometheus(f, false)
	}

	return nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func shouldSkip(name string) bool {
	// Check if the workload is in the skip list
	for _, skip := range benchSkip {
		if name == skip {
			return true
		}
	}
	return false
}

func printResult(name string, t gometrics.Timer) {
	fmt.Printf("%-16s %10d ops   mean %9.0f ns/op   p95 %9.0f ns/op   max %9d ns\n",
		name, t.Count(), t.Mean(), t.Percentile(0.95), t.Max())
}

func writeResultsToCSV(path string, reg gometrics.Registry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"workload", "ops", "mean_ns", "p50_ns", "p95_ns", "p99_ns", "max_ns"}); err != nil {
		return err
	}

	type row struct {
		name  string
		timer gometrics.Timer
	}
	rows := make([]row, 0)
	reg.Each(func(name string, metric interface{}) {
		if t, ok := metric.(gometrics.Timer); ok {
			rows = append(rows, row{name: name, timer: t})
		}
	})
	sort.Slice(rows, func(i, j int) bool { return rows[i].name < rows[j].name })

	for _, r := range rows {
		t := r.timer
		ps := t.Percentiles([]float64{0.5, 0.95, 0.99})
		record := []string{
			r.name,
			strconv.FormatInt(t.Count(), 10),
			strconv.FormatFloat(t.Mean(), 'f', 0, 64),
			strconv.FormatFloat(ps[0], 'f', 0, 64),
			strconv.FormatFloat(ps[1], 'f', 0, 64),
			strconv.FormatFloat(ps[2], 'f', 0, 64),
			strconv.FormatInt(t.Max(), 10),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return nil
}
