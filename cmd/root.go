package cmd

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/jchien19/CS377-Final-Project/sim"
)

var (
	// CLI flags shared by run and compare
	logLevel     string  // Log verbosity level
	workloadFile string  // YAML workload file path
	workloadName string  // Canned workload name (used when no file is given)
	mlfqLevels   int     // Number of MLFQ priority levels
	mlfqQuantum  []int64 // Per-level time quantum list
	mlfqAllot    []int64 // Per-level time allotment list
	boostEvery   int64   // Ticks between priority boosts (0 disables)
	rrQuantum    int64   // Round Robin quantum
	minGran      int64   // CFS minimum granularity (accepted, inert)

	// run-only flags
	policyName   string // Which policy to run
	showTimeline bool   // Print the MLFQ per-tick timeline
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "Tick-driven simulator for CPU scheduling policies",
}

// setupLogging configures logrus from the --log-level flag.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// loadJobs resolves the workload from --workload-file or --workload.
func loadJobs() (string, []*sim.Job) {
	if workloadFile != "" {
		spec, err := sim.LoadWorkloadSpec(workloadFile)
		if err != nil {
			logrus.Fatalf("unable to load workload: %v", err)
		}
		return spec.Name, spec.Build()
	}
	spec, ok := sim.CannedWorkloads[workloadName]
	if !ok {
		names := make([]string, 0, len(sim.CannedWorkloads))
		for n := range sim.CannedWorkloads {
			names = append(names, n)
		}
		logrus.Fatalf("unknown workload %q (have: %s)", workloadName, strings.Join(names, ", "))
	}
	return spec.Name, spec.Build()
}

// policyOptions builds engine options from CLI flags.
func policyOptions() sim.PolicyOptions {
	opts := sim.DefaultPolicyOptions()
	opts.MLFQ = sim.MLFQConfig{
		Levels:        mlfqLevels,
		Quantum:       mlfqQuantum,
		Allotment:     mlfqAllot,
		BoostInterval: boostEvery,
	}
	opts.RoundRobin.Quantum = rrQuantum
	opts.CFS.MinGranularity = minGran
	return opts
}

// runCmd executes a single policy over the selected workload.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling policy over a workload",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		if !sim.IsValidPolicy(policyName) {
			logrus.Fatalf("unknown policy %q (have: %s)", policyName, strings.Join(sim.PolicyNames, ", "))
		}
		p, err := sim.NewPolicy(policyName, policyOptions())
		if err != nil {
			logrus.Fatalf("invalid configuration: %v", err)
		}

		name, jobs := loadJobs()
		completed, metrics, err := p.Schedule(jobs)
		if err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}

		logrus.Infof("workload %q: %d jobs completed", name, len(completed))
		metrics.Print(p.Name())
		if showTimeline {
			for _, e := range metrics.Timeline {
				cmd.Println(e)
			}
		}
	},
}

// compareCmd runs every policy over the same workload and prints the report.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare all scheduling policies over a workload",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		name, jobs := loadJobs()
		results, err := sim.Compare(jobs, sim.PolicyNames, policyOptions())
		if err != nil {
			logrus.Fatalf("comparison failed: %v", err)
		}
		sim.PrintComparison(name, results)
	},
}

func init() {
	for _, c := range []*cobra.Command{runCmd, compareCmd} {
		c.Flags().StringVar(&logLevel, "log-level", "warn", "log verbosity (debug, info, warn, error)")
		c.Flags().StringVar(&workloadFile, "workload-file", "", "YAML workload file")
		c.Flags().StringVar(&workloadName, "workload", "same-arrival", "canned workload name")
		c.Flags().IntVar(&mlfqLevels, "mlfq-levels", 3, "number of MLFQ priority levels")
		c.Flags().Int64SliceVar(&mlfqQuantum, "mlfq-quantum", nil, "per-level MLFQ quantum list (default doubling from 1)")
		c.Flags().Int64SliceVar(&mlfqAllot, "mlfq-allotment", nil, "per-level MLFQ allotment list (default 2x quantum)")
		c.Flags().Int64Var(&boostEvery, "boost-interval", 0, "ticks between MLFQ priority boosts (0 disables)")
		c.Flags().Int64Var(&rrQuantum, "rr-quantum", 2, "Round Robin time quantum")
		c.Flags().Int64Var(&minGran, "cfs-min-granularity", 1, "CFS minimum granularity (accepted, currently inert)")
	}
	runCmd.Flags().StringVar(&policyName, "policy", "mlfq", "policy to run (fifo, sjf, stcf, round-robin, mlfq, cfs)")
	runCmd.Flags().BoolVar(&showTimeline, "timeline", false, "print the per-tick timeline (MLFQ only)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
