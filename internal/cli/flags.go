package cli

import (
	"regexp"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/boolmat/cnotbfs/internal/engine"
)

// legacyLimit matches the original CLI's bare "-<limit>" leading argument
// (matrix_cnot.cpp's main(): "if args[1] starts with '-', it's a depth
// limit, not a flag"). normalizeLegacyArgs rewrites it to "--limit=<n>"
// before pflag ever sees it, so the legacy form keeps working alongside the
// named flags below instead of pflag rejecting it as an unknown flag.
var legacyLimit = regexp.MustCompile(`^-([0-9]+)$`)

func normalizeLegacyArgs(args []string) []string {
	out := make([]string, len(args))

	for i, a := range args {
		if m := legacyLimit.FindStringSubmatch(a); m != nil {
			out[i] = "--limit=" + m[1]
			continue
		}

		out[i] = a
	}

	return out
}

// runFlags holds the named-flag counterparts to engine.Overrides for the
// "run" command, bound to a pflag.FlagSet so both forms (flags and the
// legacy positional convention) can populate the same engine.Overrides.
type runFlags struct {
	n       int
	extra   int
	max     uint
	swap    bool
	nauty   bool
	poly    bool
	beat    time.Duration
	workers int
	probe   string
	hash    string
	config  string
	out     string
	limit   int
}

func newRunFlagSet(defaults engine.Config) (*flag.FlagSet, *runFlags) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)

	rf := &runFlags{}

	fs.IntVar(&rf.n, "n", defaults.N, "matrix dimension (1..8)")
	fs.IntVar(&rf.extra, "extra", defaults.Extra, "table-scale margin added to every level's sizing hint")
	fs.UintVar(&rf.max, "max", defaults.Max, "maximum table scale (log2 of bucket count)")
	fs.BoolVar(&rf.swap, "swap", defaults.Swap, "allow independent row/column permutations (free SWAP gates)")
	fs.BoolVar(&rf.nauty, "nauty", defaults.Nauty, "use the graph canonicalizer even without --swap")
	fs.BoolVar(&rf.poly, "poly", defaults.Poly, "accumulate the middle-depth essential-index polynomial (incompatible with --swap)")
	fs.DurationVar(&rf.beat, "beat", defaults.Beat, "worker heartbeat interval (0 disables)")
	fs.IntVar(&rf.workers, "workers", defaults.Workers, "worker count (0 selects GOMAXPROCS)")
	fs.StringVar(&rf.probe, "probe", defaults.Probe, "hash set probe strategy: linear or quadlinear")
	fs.StringVar(&rf.hash, "hash", defaults.Hash, "hash set hash function: xxhash or murmur")
	fs.StringVar(&rf.config, "config", "", "path to a JSONC config file")
	fs.StringVar(&rf.out, "out", "", "write the reconstructed circuit to this file instead of stdout")
	fs.IntVar(&rf.limit, "limit", defaults.Limit, "maximum BFS depth, -1 for unbounded")

	return fs, rf
}

func (rf *runFlags) overrides(fs *flag.FlagSet) engine.Overrides {
	var o engine.Overrides

	if fs.Changed("n") {
		o.N = &rf.n
	}

	if fs.Changed("extra") {
		o.Extra = &rf.extra
	}

	if fs.Changed("max") {
		o.Max = &rf.max
	}

	if fs.Changed("swap") {
		o.Swap = &rf.swap
	}

	if fs.Changed("nauty") {
		o.Nauty = &rf.nauty
	}

	if fs.Changed("poly") {
		o.Poly = &rf.poly
	}

	if fs.Changed("beat") {
		o.Beat = &rf.beat
	}

	if fs.Changed("workers") {
		o.Workers = &rf.workers
	}

	if fs.Changed("probe") {
		o.Probe = &rf.probe
	}

	if fs.Changed("hash") {
		o.Hash = &rf.hash
	}

	if fs.Changed("limit") {
		o.Limit = &rf.limit
	}

	if fs.Changed("out") {
		o.OutFile = &rf.out
	}

	return o
}
