package cli

import (
	"context"
	"fmt"

	"github.com/boolmat/cnotbfs/internal/circuit"
	"github.com/boolmat/cnotbfs/internal/engine"
	"github.com/boolmat/cnotbfs/internal/goalfile"
)

// newInspectCommand builds the "inspect" command: the supplemented
// investigate() debug dump (original_source/src/matrix_cnot.cpp carries it
// commented out at the goal-read call site) for a single matrix file —
// its canonical representative, orbit size, essential-index count, and the
// permutation(s) carrying it to the representative.
func newInspectCommand() *Command {
	fs, rf := newRunFlagSet(engine.DefaultConfig())

	return &Command{
		Flags: fs,
		Usage: "inspect <matrixfile> [flags]",
		Short: "print a matrix's canonical representative, orbit size, and essential-index count",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("%w: inspect requires a matrix file argument", engine.ErrGoalFile)
			}

			overrides := rf.overrides(fs)

			cfg, err := engine.LoadConfig(engine.LoadConfigInput{ConfigPath: rf.config, Overrides: overrides})
			if err != nil {
				return err
			}

			eng, err := engine.New(cfg, nil)
			if err != nil {
				return err
			}

			m, err := goalfile.Read(args[0], cfg.N)
			if err != nil {
				return err
			}

			inv, err := eng.Investigate(m)
			if err != nil {
				return err
			}

			o.Printf("Matrix:\n%s", circuit.PrettyMatrix(m, cfg.N))
			o.Printf("Essential indices: %d\n", inv.Essential)
			o.Printf("Orbit size: %d\n", inv.OrbitSize)
			o.Printf("Representative:\n%s", circuit.PrettyMatrix(inv.Representative, cfg.N))

			if cfg.Swap {
				o.Printf("Row permutation:\n%s", circuit.PrettyPerm(inv.RowPerm, cfg.N))
				o.Printf("Column permutation:\n%s", circuit.PrettyPerm(inv.ColPerm, cfg.N))
			} else {
				o.Printf("Permutation:\n%s", circuit.PrettyPerm(inv.RowPerm, cfg.N))
			}

			return nil
		},
	}
}
