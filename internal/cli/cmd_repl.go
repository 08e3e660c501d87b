package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/boolmat/cnotbfs/internal/bitmatrix"
	"github.com/boolmat/cnotbfs/internal/circuit"
	"github.com/boolmat/cnotbfs/internal/engine"
	"github.com/boolmat/cnotbfs/internal/goalfile"
)

// newReplCommand builds the "repl" command: an interactive multi-goal
// session, so a user exploring several goal matrices against the same
// dimension/regime loads the configuration and builds the canonicalizer
// once. Each search still runs its own bidirectional BFS. Styled after cmd/sloty's liner-based REPL in the
// teacher repo (prompt loop, history file, tab completion, exit/help).
func newReplCommand() *Command {
	fs, rf := newRunFlagSet(engine.DefaultConfig())

	return &Command{
		Flags: fs,
		Usage: "repl [flags]",
		Short: "interactively search for circuits to several goal matrices",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			overrides := rf.overrides(fs)

			cfg, err := engine.LoadConfig(engine.LoadConfigInput{ConfigPath: rf.config, Overrides: overrides})
			if err != nil {
				return err
			}

			eng, err := engine.New(cfg, o)
			if err != nil {
				return err
			}

			r := &repl{cfg: cfg, eng: eng, out: o}

			return r.run(ctx)
		},
	}
}

type repl struct {
	cfg engine.Config
	eng *engine.Engine
	out *IO
	ln  *liner.State
}

func replHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".cnotbfs_history")
}

func (r *repl) run(ctx context.Context) error {
	r.ln = liner.NewLiner()
	defer r.ln.Close()

	r.ln.SetCtrlCAborts(true)
	r.ln.SetCompleter(r.completer)

	if f, err := os.Open(replHistoryFile()); err == nil {
		_, _ = r.ln.ReadHistory(f)
		f.Close()
	}

	r.out.Printf("cnotbfs repl (n=%d, swap=%v, nauty=%v)\n", r.cfg.N, r.cfg.Swap, r.cfg.Nauty)
	r.out.Printf("Type 'help' for available commands.\n\n")

	for {
		line, err := r.ln.Prompt("cnotbfs> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				r.out.Printf("\nBye!\n")
				break
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.ln.AppendHistory(line)

		parts := strings.Fields(line)
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "exit", "quit", "q":
			r.out.Printf("Bye!\n")
			r.saveHistory()

			return nil
		case "help", "?":
			r.printHelp()
		case "search":
			r.cmdSearch(ctx, args)
		case "inspect":
			r.cmdInspect(args)
		default:
			r.out.Printf("Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}

	r.saveHistory()

	return nil
}

func (r *repl) saveHistory() {
	path := replHistoryFile()
	if path == "" {
		return
	}

	if f, err := os.Create(path); err == nil {
		_, _ = r.ln.WriteHistory(f)
		f.Close()
	}
}

func (r *repl) completer(line string) []string {
	commands := []string{"search", "inspect", "help", "exit", "quit", "q"}

	var out []string

	lower := strings.ToLower(line)
	for _, c := range commands {
		if strings.HasPrefix(c, lower) {
			out = append(out, c)
		}
	}

	return out
}

func (r *repl) printHelp() {
	r.out.Printf("Commands:\n")
	r.out.Printf("  search <matrixfile> [limit]   Search for a circuit from the identity to the goal matrix\n")
	r.out.Printf("  inspect <matrixfile>           Show a matrix's canonical representative and orbit size\n")
	r.out.Printf("  help                           Show this help\n")
	r.out.Printf("  exit / quit / q                Exit\n")
}

func (r *repl) cmdSearch(ctx context.Context, args []string) {
	if len(args) < 1 {
		r.out.Printf("Usage: search <matrixfile> [limit]\n")
		return
	}

	goal, err := goalfile.Read(args[0], r.cfg.N)
	if err != nil {
		r.out.Printf("Error: %v\n", err)
		return
	}

	cfg := r.cfg

	if len(args) >= 2 {
		limit, parseErr := strconv.Atoi(args[1])
		if parseErr != nil {
			r.out.Printf("Error: invalid limit %q\n", args[1])
			return
		}

		cfg.Limit = limit
	}

	id := bitmatrix.IdentityMatrix(cfg.N)

	eng := r.eng
	if len(args) >= 2 {
		limited, newErr := engine.New(cfg, r.out)
		if newErr != nil {
			r.out.Printf("Error: %v\n", newErr)
			return
		}

		eng = limited
	}

	result, err := eng.FindCircuit(ctx, id, goal)
	if err != nil {
		r.out.Printf("Error: %v\n", err)
		return
	}

	if !result.Bidir.Found {
		r.out.Printf("Goal not found after %d steps\n", result.Bidir.ForwardDepth+result.Bidir.BackwardDepth-2)
		return
	}

	var buf bytes.Buffer
	if err := circuit.Emit(&buf, result.Trace, id, goal, cfg.N, cfg.Swap); err != nil {
		r.out.Printf("Error: %v\n", err)
		return
	}

	r.out.Printf("%s", buf.String())
}

func (r *repl) cmdInspect(args []string) {
	if len(args) < 1 {
		r.out.Printf("Usage: inspect <matrixfile>\n")
		return
	}

	m, err := goalfile.Read(args[0], r.cfg.N)
	if err != nil {
		r.out.Printf("Error: %v\n", err)
		return
	}

	inv, err := r.eng.Investigate(m)
	if err != nil {
		r.out.Printf("Error: %v\n", err)
		return
	}

	r.out.Printf("Orbit size: %d, essential indices: %d\n", inv.OrbitSize, inv.Essential)
	r.out.Printf("%s", circuit.PrettyMatrix(inv.Representative, r.cfg.N))
}
