package cli

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/boolmat/cnotbfs/internal/bitmatrix"
	"github.com/boolmat/cnotbfs/internal/circuit"
	"github.com/boolmat/cnotbfs/internal/engine"
	"github.com/boolmat/cnotbfs/internal/goalfile"
)

// newRunCommand builds the default command: search the CNOT-circuit space
// for dimension N, either enumerating it fully or searching for a specific
// goal matrix. Its argument handling preserves the original's
// "prog [-<limit>] [<goalfile>]" convention alongside the named flags
// below, per spec §6.
func newRunCommand() *Command {
	fs, rf := newRunFlagSet(engine.DefaultConfig())

	return &Command{
		Flags: fs,
		Usage: "run [-<limit>] [<goalfile>] [flags]",
		Short: "search the CNOT-circuit BFS space",
		Long: "Enumerates the reachable CNOT-circuit space from the identity matrix for the " +
			"configured dimension N, or — when a goal matrix file is given — searches " +
			"bidirectionally for a circuit connecting the identity to it and prints the " +
			"reconstructed circuit as OpenQASM 2.0.",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			return runExec(ctx, o, fs, rf, args)
		},
	}
}

func runExec(ctx context.Context, o *IO, fs *flag.FlagSet, rf *runFlags, args []string) error {
	started := time.Now()

	var goalPath string
	if len(args) > 0 {
		goalPath = args[len(args)-1]
	}

	overrides := rf.overrides(fs)

	cfg, err := engine.LoadConfig(engine.LoadConfigInput{ConfigPath: rf.config, Overrides: overrides})
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg, o)
	if err != nil {
		return err
	}

	o.Printf("Handling matrices of size N = %d\n", cfg.N)
	o.Printf("Using DTree + %d extra bits, max-size %d\n", cfg.Extra, cfg.Max)
	o.Printf("Use Nauty: %s. Swaps-for-free: %s. Polynomial: %s\n", boolFlag(cfg.Nauty), boolFlag(cfg.Swap), boolFlag(cfg.Poly))
	o.Printf("Running with %d workers\n", workerCount(cfg.Workers))

	if cfg.Limit >= 0 {
		o.Printf("Cutting off at maximum distance: %d\n", cfg.Limit)
	}

	id := bitmatrix.IdentityMatrix(cfg.N)

	if goalPath != "" {
		goal, err := goalfile.Read(goalPath, cfg.N)
		if err != nil {
			return err
		}

		if goal == 0 {
			return fmt.Errorf("%w: 0-matrix cannot be generated", engine.ErrGoalFile)
		}

		result, err := eng.FindCircuit(ctx, id, goal)
		if err != nil {
			return err
		}

		if !result.Bidir.Found {
			if result.Bidir.LimitReached {
				o.WarnLLM(
					fmt.Sprintf("goal not found within --limit=%d", cfg.Limit),
					"the search was cut off before exhausting the space; rerun with a larger --limit or --limit=-1 to search unbounded before concluding the goal is unreachable",
				)
			}

			o.Printf("Goal not found after %d steps:\n", result.Bidir.ForwardDepth+result.Bidir.BackwardDepth-2)
			o.Printf("%s", circuit.PrettyMatrix(goal, cfg.N))

			return reportElapsed(o, started)
		}

		o.Printf("Found at distance %d (%d + %d)\n",
			result.Bidir.ForwardDepth+result.Bidir.BackwardDepth-2, result.Bidir.ForwardDepth-1, result.Bidir.BackwardDepth-1)

		if err := emitCircuit(o, cfg, result, id, goal); err != nil {
			return err
		}

		return reportElapsed(o, started)
	}

	enum, err := eng.Enumerate(ctx, id)
	if err != nil {
		return err
	}

	o.Printf("Total size: %d (%d orbits), completed at depth %d\n", enum.Result.MatrixTotal, enum.Result.OrbitTotal, enum.Result.Depth)

	if enum.Poly != nil {
		printPoly(o, cfg.N, enum.Poly)
	}

	return reportElapsed(o, started)
}

func emitCircuit(o *IO, cfg engine.Config, result engine.CircuitResult, id, goal bitmatrix.Matrix) error {
	render := func(w *bytes.Buffer) error {
		return circuit.Emit(w, result.Trace, id, goal, cfg.N, cfg.Swap)
	}

	if cfg.OutFile == "" {
		var buf bytes.Buffer
		if err := render(&buf); err != nil {
			return err
		}

		o.Printf("%s", buf.String())

		return nil
	}

	return circuit.WriteFile(cfg.OutFile, render)
}

func printPoly(o *IO, n int, coef []uint64) {
	o.Printf("Polynomial coefficients (%d/%d): [", n, n/2)

	for i := 0; i <= n; i++ {
		sep := ","
		if i == n {
			sep = "]"
		}

		o.Printf("%d%s ", coef[n-i], sep)
	}

	o.Printf("\n")
}

func reportElapsed(o *IO, started time.Time) error {
	o.Printf("Total time: %ss\n", formatSeconds(time.Since(started)))

	return nil
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.6g", d.Seconds())
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}

	return "0"
}

func workerCount(workers int) int {
	if workers > 0 {
		return workers
	}

	return runtime.GOMAXPROCS(0)
}
