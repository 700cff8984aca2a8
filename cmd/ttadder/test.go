// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/spf13/cobra"

	"github.com/db47h/ttadder/hwsim"
	"github.com/db47h/ttadder/hwtest"
	"github.com/db47h/ttadder/tt"
)

var testFlags struct {
	model   string
	freqKHz float64
	spc     uint
	workers int
	trace   bool
}

var testCmd = &cobra.Command{
	Use:   "test [scenarios.yaml...]",
	Short: "Run test scenarios on the simulated circuit",
	Long: `Test runs the built-in test scenarios, or the scenarios in the given YAML
files, on the simulated circuit. Each scenario starts on a fresh circuit held
in reset. The command stops at the first mismatch.`,
	RunE: runTest,
}

func init() {
	f := testCmd.Flags()
	f.StringVar(&testFlags.model, "model", "both", "circuit to test: behavioral, gate or both")
	f.Float64Var(&testFlags.freqKHz, "freq", float64(hwtest.DefaultFreq/sim.KHz), "clock frequency in kHz")
	f.UintVar(&testFlags.spc, "spc", hwtest.DefaultStepsPerCycle, "simulation steps per clock cycle")
	f.IntVar(&testFlags.workers, "workers", 1, "simulator goroutines, 0 for GOMAXPROCS")
	f.BoolVar(&testFlags.trace, "trace", false, "print the pin values of every clock cycle")
	rootCmd.AddCommand(testCmd)
}

type model struct {
	name   string
	device hwsim.NewPartFn
}

func models(name string) ([]model, error) {
	var ms []model
	if name == "behavioral" || name == "both" {
		ms = append(ms, model{"behavioral", tt.Behavioral})
	}
	if name == "gate" || name == "both" {
		g, err := tt.GateLevel()
		if err != nil {
			return nil, err
		}
		ms = append(ms, model{"gate", g})
	}
	if len(ms) == 0 {
		return nil, errors.Errorf("unknown model %q", name)
	}
	return ms, nil
}

func loadScenarios(files []string) ([]hwtest.Scenario, error) {
	if len(files) == 0 {
		return tt.Scenarios()
	}
	var all []hwtest.Scenario
	for _, name := range files {
		ss, err := hwtest.LoadScenarioFile(name)
		if err != nil {
			return nil, err
		}
		all = append(all, ss...)
	}
	return all, nil
}

func runTest(cmd *cobra.Command, args []string) error {
	if testFlags.spc < tt.MinStepsPerCycle && testFlags.model != "behavioral" {
		return errors.Errorf("the gate-level circuit needs at least %d steps per cycle", tt.MinStepsPerCycle)
	}
	ms, err := models(testFlags.model)
	if err != nil {
		return err
	}
	ss, err := loadScenarios(args)
	if err != nil {
		return err
	}

	builder := hwtest.MakeBenchBuilder().
		WithFreq(sim.Freq(testFlags.freqKHz) * sim.KHz).
		WithStepsPerCycle(testFlags.spc).
		WithWorkers(testFlags.workers)
	log := logger()

	out := cmd.OutOrStdout()
	for _, m := range ms {
		for _, s := range ss {
			if err := runScenario(cmd, builder.WithLogger(log.WithName(m.name)), m, s, out); err != nil {
				fmt.Fprintf(out, "FAIL %s/%s\n", m.name, s.Name)
				return err
			}
		}
	}
	return nil
}

func runScenario(cmd *cobra.Command, builder hwtest.BenchBuilder, m model, s hwtest.Scenario, out io.Writer) error {
	b, err := builder.Build(m.device)
	if err != nil {
		return errors.Wrap(err, m.name)
	}
	defer b.Close()

	err = hwtest.Run(cmd.Context(), b, s)
	if testFlags.trace {
		printTrace(out, b.Trace())
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "PASS %s/%s (%d cycles, %v)\n", m.name, s.Name, b.Cycles(), b.SimTime())
	return nil
}

func printTrace(w io.Writer, trace []hwtest.Sample) {
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "cycle\ttime\trst_n\tena\tui_in\tuio_in\tuo_out\tuio_out\t")
	for _, s := range trace {
		fmt.Fprintf(tw, "%d\t%v\t%d\t%d\t%#02x\t%#02x\t%d\t%#02x\t\n",
			s.Cycle, s.Time, b2i(s.RstN), b2i(s.Ena), s.UIIn, s.UIOIn, s.UOOut, s.UIOOut)
	}
	tw.Flush()
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
